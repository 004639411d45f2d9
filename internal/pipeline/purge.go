package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/notesift/internal/compare"
	"github.com/backmassage/notesift/internal/logging"
	"github.com/backmassage/notesift/internal/snapshot"
)

// DeleteDuplicates removes the named files from the snapshot's notes
// directory and returns how many were deleted. With dryRun set, intentions
// are logged and nothing is removed. Missing files and per-file errors are
// logged and skipped; the pass always completes.
func DeleteDuplicates(snap snapshot.Snapshot, names compare.Set, dryRun bool, log *logging.Logger) int {
	deleted := 0
	for _, name := range compare.Sorted(names) {
		path := filepath.Join(snap.NotesDir(), name)
		if _, err := os.Stat(path); err != nil {
			log.Warn("File not found: %s", path)
			continue
		}
		if dryRun {
			log.Info("[DRY] Would delete: %s", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Error("Delete failed %s: %v", path, err)
			continue
		}
		log.Info("Deleted: %s", path)
		deleted++
	}
	return deleted
}
