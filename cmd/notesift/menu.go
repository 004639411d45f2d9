package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/backmassage/notesift/internal/config"
	"github.com/backmassage/notesift/internal/display"
	"github.com/backmassage/notesift/internal/logging"
	"github.com/backmassage/notesift/internal/pipeline"
)

// lineReader abstracts interactive input so the menu loop is testable.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader() (*readlineReader, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *readlineReader) Close() error { return r.rl.Close() }

// runPipeline is swappable in tests.
var runPipeline = pipeline.Run

// menuLoop drives the interactive four-item menu until the user exits.
// Read errors (EOF, interrupt) end the loop.
func menuLoop(reader lineReader, cfg *config.Config, log *logging.Logger) error {
	for {
		fmt.Println()
		fmt.Print(display.Menu())
		choice, err := reader.ReadLine("Enter choice (1-4): ")
		if err != nil {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			res := runPipeline(cfg, log, pipeline.Options{DryRun: true})
			fmt.Print(display.Summary(res))
		case "2":
			if !confirm(reader, "Execute live run? (y/n): ") {
				fmt.Println("Cancelled.")
				continue
			}
			res := runPipeline(cfg, log, pipeline.Options{})
			fmt.Print(display.Summary(res))
		case "3":
			if !confirm(reader, "Confirm copy operation? (y/n): ") {
				fmt.Println("Cancelled.")
				continue
			}
			res := runPipeline(cfg, log, pipeline.Options{RenameOnly: true})
			fmt.Print(display.Summary(res))
		case "4":
			return nil
		default:
			fmt.Println("Invalid choice, try again.")
		}
	}
}

// confirm reads a y/n answer. EOF (piped input) counts as confirmation.
func confirm(reader lineReader, prompt string) bool {
	line, err := reader.ReadLine(prompt)
	if err != nil {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
