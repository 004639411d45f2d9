// Package pipeline orchestrates snapshot discovery, set comparison, and the
// copy/rename pass, and aggregates the run outcome.
package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/backmassage/notesift/internal/compare"
	"github.com/backmassage/notesift/internal/index"
	"github.com/backmassage/notesift/internal/logging"
	"github.com/backmassage/notesift/internal/naming"
	"github.com/backmassage/notesift/internal/snapshot"
)

// TransferAll copies every mapped note file from snap into targetDir,
// renamed to its sanitized display title. With dryRun set, intended
// operations are logged and nothing on disk changes.
func TransferAll(snap snapshot.Snapshot, targetDir string, dryRun bool, log *logging.Logger) TransferResult {
	log.Info("Copying and renaming files from %s", snap.Name())

	res := TransferResult{TargetDir: targetDir, DryRun: dryRun}

	titles := index.ResolveTitles(snap, log)
	if len(titles) == 0 {
		res.Message = "no title mapping found"
		return res
	}
	if _, err := os.Stat(snap.NotesDir()); err != nil {
		res.Message = "notes directory not found"
		return res
	}

	if !dryRun {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			log.Error("Cannot create target directory %s: %v", targetDir, err)
			res.Message = "cannot create target directory"
			return res
		}
	}

	res.Total = len(titles)
	for _, filename := range sortedKeys(titles) {
		copyOne(snap, filename, titles[filename], targetDir, dryRun, log, &res)
	}

	res.OK = true
	res.Message = "copy and rename complete"
	log.Info("Copy results - total: %d, copied: %d, skipped: %d, errors: %d",
		res.Total, res.Copied, res.Skipped, res.Errored)
	return res
}

// TransferUnique diffs the two snapshots' note sets and copies each side's
// unique files into targetDir, renamed via that side's own title mapping.
// A unique filename missing from its own side's mapping is skipped; it
// never falls back to the other side's map.
func TransferUnique(newer, older snapshot.Snapshot, targetDir string, dryRun bool, log *logging.Logger) TransferResult {
	log.Info("Copying files unique to the two newest snapshots...")

	uniqueNewer, uniqueOlder := compare.UniquePair(
		snapshot.NoteFiles(newer, log),
		snapshot.NoteFiles(older, log),
	)
	log.Info("%s: %d unique files", newer.Name(), len(uniqueNewer))
	log.Info("%s: %d unique files", older.Name(), len(uniqueOlder))

	res := TransferResult{
		TargetDir:   targetDir,
		DryRun:      dryRun,
		UniqueNewer: len(uniqueNewer),
		UniqueOlder: len(uniqueOlder),
	}

	titlesNewer := index.ResolveTitles(newer, log)
	titlesOlder := index.ResolveTitles(older, log)
	if len(titlesNewer) == 0 && len(titlesOlder) == 0 {
		res.Message = "no title mapping found"
		return res
	}

	if !dryRun {
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			log.Error("Cannot create target directory %s: %v", targetDir, err)
			res.Message = "cannot create target directory"
			return res
		}
	}

	res.Total = len(uniqueNewer) + len(uniqueOlder)
	copySide(newer, uniqueNewer, titlesNewer, targetDir, dryRun, log, &res)
	copySide(older, uniqueOlder, titlesOlder, targetDir, dryRun, log, &res)

	res.OK = true
	res.Message = "unique file copy complete"
	log.Info("Unique copy results - total: %d, copied: %d, skipped: %d, errors: %d",
		res.Total, res.Copied, res.Skipped, res.Errored)
	return res
}

// copySide transfers one snapshot's unique files using its own title map.
func copySide(snap snapshot.Snapshot, unique compare.Set, titles map[string]string,
	targetDir string, dryRun bool, log *logging.Logger, res *TransferResult) {
	if len(unique) == 0 {
		return
	}
	log.Info("Copying unique files from %s...", snap.Name())

	for _, filename := range compare.Sorted(unique) {
		title, ok := titles[filename]
		if !ok {
			log.Warn("No title mapping for %s", filename)
			res.Skipped++
			continue
		}
		copyOne(snap, filename, title, targetDir, dryRun, log, res)
	}
}

// copyOne transfers a single mapped note file. Failures are absorbed into
// the result counters; the batch always continues.
func copyOne(snap snapshot.Snapshot, filename, title, targetDir string,
	dryRun bool, log *logging.Logger, res *TransferResult) {
	source := filepath.Join(snap.NotesDir(), filename)
	if _, err := os.Stat(source); err != nil {
		log.Warn("Source file not found: %s", source)
		res.Skipped++
		return
	}

	stem := naming.Sanitize(title)

	if dryRun {
		// No collision probing in dry-run; see naming.TargetPath.
		log.Info("[DRY] Would copy: %s -> %s", source, naming.TargetPath(targetDir, stem))
		return
	}

	target := naming.ResolveCollision(targetDir, stem)
	if err := copyFile(source, target); err != nil {
		log.Error("Copy failed %s -> %s: %v", source, target, err)
		res.Errored++
		return
	}
	log.Success("Copied: %s -> %s", filename, filepath.Base(target))
	res.Copied++
}

// copyFile copies contents, permissions, and modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
