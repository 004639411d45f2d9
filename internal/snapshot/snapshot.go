// Package snapshot discovers timestamped export folders under the history
// root and enumerates their note files.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/backmassage/notesift/internal/logging"
)

// Fixed per-snapshot layout of an export folder.
const (
	NotesSubdir   = "notes"
	IndexFileName = "index.html"
)

// ErrHistoryNotFound reports a missing history root directory.
var ErrHistoryNotFound = errors.New("history directory not found")

// Snapshot is one timestamped export folder under the history root.
type Snapshot struct {
	// Timestamp is the 12-digit YYYYMMDDHHMM token extracted from the
	// folder name. Fixed-width, so lexical order is chronological order.
	Timestamp string
	Path      string
}

// Name returns the snapshot's folder name.
func (s Snapshot) Name() string { return filepath.Base(s.Path) }

// NotesDir returns the sub-directory holding the exported note files.
func (s Snapshot) NotesDir() string { return filepath.Join(s.Path, NotesSubdir) }

// IndexFile returns the per-snapshot index document path.
func (s Snapshot) IndexFile() string { return filepath.Join(s.Path, IndexFileName) }

// List scans historyDir for export folders named <prefix>_<12 digits>_...
// and returns them sorted ascending by timestamp (oldest first). Folders
// without a parseable timestamp are logged and skipped. A missing history
// directory yields an empty result and a wrapped [ErrHistoryNotFound].
func List(historyDir, prefix string, log *logging.Logger) ([]Snapshot, error) {
	entries, err := os.ReadDir(historyDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrHistoryNotFound, historyDir)
		}
		return nil, fmt.Errorf("read history directory %s: %w", historyDir, err)
	}

	re := regexp.MustCompile(regexp.QuoteMeta(prefix) + `_(\d{12})_`)

	var snaps []Snapshot
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := re.FindStringSubmatch(e.Name())
		if m == nil {
			log.Warn("Cannot parse timestamp from folder: %s", e.Name())
			continue
		}
		snaps = append(snaps, Snapshot{
			Timestamp: m[1],
			Path:      filepath.Join(historyDir, e.Name()),
		})
		log.Info("Found snapshot: %s (timestamp: %s)", e.Name(), m[1])
	}

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Timestamp < snaps[j].Timestamp })
	return snaps, nil
}

// NoteFiles returns the set of non-directory entries directly under the
// snapshot's notes directory. A missing notes directory yields an empty set
// and a warning; identity is by filename, not content.
func NoteFiles(s Snapshot, log *logging.Logger) map[string]struct{} {
	files := make(map[string]struct{})

	entries, err := os.ReadDir(s.NotesDir())
	if err != nil {
		log.Warn("Notes directory not found: %s", s.NotesDir())
		return files
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files[e.Name()] = struct{}{}
	}

	log.Info("Found %d files in %s", len(files), s.NotesDir())
	return files
}
