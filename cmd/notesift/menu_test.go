package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/notesift/internal/config"
	"github.com/backmassage/notesift/internal/logging"
	"github.com/backmassage/notesift/internal/pipeline"
)

// scriptedReader feeds canned lines to the menu loop and records prompts.
type scriptedReader struct {
	lines   []string
	pos     int
	prompts []string
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if r.pos >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

func (r *scriptedReader) Close() error { return nil }

// stubPipeline replaces runPipeline for the duration of the test and
// records the options of each invocation.
func stubPipeline(t *testing.T) *[]pipeline.Options {
	t.Helper()
	orig := runPipeline
	t.Cleanup(func() { runPipeline = orig })

	var calls []pipeline.Options
	runPipeline = func(cfg *config.Config, log *logging.Logger, opts pipeline.Options) pipeline.Result {
		calls = append(calls, opts)
		return pipeline.Result{OK: true, Message: "ok", Transfer: &pipeline.TransferResult{}}
	}
	return &calls
}

func TestMenuLoop_DryRunChoice(t *testing.T) {
	calls := stubPipeline(t)
	reader := &scriptedReader{lines: []string{"1", "4"}}

	require.NoError(t, menuLoop(reader, nil, nil))
	require.Len(t, *calls, 1)
	assert.True(t, (*calls)[0].DryRun)
	assert.False(t, (*calls)[0].RenameOnly)
}

func TestMenuLoop_LiveRunConfirmed(t *testing.T) {
	calls := stubPipeline(t)
	reader := &scriptedReader{lines: []string{"2", "y", "4"}}

	require.NoError(t, menuLoop(reader, nil, nil))
	require.Len(t, *calls, 1)
	assert.False(t, (*calls)[0].DryRun)
	assert.False(t, (*calls)[0].RenameOnly)
}

func TestMenuLoop_LiveRunDeclined(t *testing.T) {
	calls := stubPipeline(t)
	reader := &scriptedReader{lines: []string{"2", "n", "4"}}

	require.NoError(t, menuLoop(reader, nil, nil))
	assert.Empty(t, *calls)
}

func TestMenuLoop_RenameOnlyConfirmed(t *testing.T) {
	calls := stubPipeline(t)
	reader := &scriptedReader{lines: []string{"3", "yes", "4"}}

	require.NoError(t, menuLoop(reader, nil, nil))
	require.Len(t, *calls, 1)
	assert.True(t, (*calls)[0].RenameOnly)
	assert.False(t, (*calls)[0].DryRun)
}

func TestMenuLoop_InvalidChoiceReprompts(t *testing.T) {
	calls := stubPipeline(t)
	reader := &scriptedReader{lines: []string{"7", "banana", "4"}}

	require.NoError(t, menuLoop(reader, nil, nil))
	assert.Empty(t, *calls)
	assert.Len(t, reader.prompts, 3)
}

func TestMenuLoop_EOFExits(t *testing.T) {
	calls := stubPipeline(t)
	reader := &scriptedReader{}

	require.NoError(t, menuLoop(reader, nil, nil))
	assert.Empty(t, *calls)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"lowercase y", "y", true},
		{"yes", "yes", true},
		{"uppercase Y", "Y", true},
		{"padded yes", "  yes  ", true},
		{"n declines", "n", false},
		{"empty declines", "", false},
		{"anything else declines", "sure", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &scriptedReader{lines: []string{tt.line}}
			assert.Equal(t, tt.want, confirm(reader, "? "))
		})
	}
}

func TestConfirm_EOFConfirms(t *testing.T) {
	reader := &scriptedReader{}
	assert.True(t, confirm(reader, "? "))
}
