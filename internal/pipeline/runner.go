package pipeline

import (
	"github.com/backmassage/notesift/internal/backup"
	"github.com/backmassage/notesift/internal/compare"
	"github.com/backmassage/notesift/internal/config"
	"github.com/backmassage/notesift/internal/logging"
	"github.com/backmassage/notesift/internal/snapshot"
)

// Options select the run mode for [Run].
type Options struct {
	DryRun bool
	// RenameOnly always transfers the single newest snapshot in full,
	// ignoring older history and duplicate telemetry.
	RenameOnly bool
	// Backup copies the newest snapshot tree aside before a live transfer.
	Backup bool
	// PurgeDuplicates deletes duplicate files from the newest snapshot
	// after the copy pass. Off by default; the standard policy only logs
	// duplicate counts.
	PurgeDuplicates bool
}

// Run is the top-level entry point: discover snapshots, pick single- or
// dual-snapshot mode by count, drive the transfer, and aggregate counters.
func Run(cfg *config.Config, log *logging.Logger, opts Options) Result {
	log.Info("==================================================")
	log.Info("Starting snapshot reconciliation")
	log.Info("History: %s", cfg.HistoryDir)
	log.Info("Target:  %s", cfg.TargetDir)
	if opts.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}

	res := Result{DryRun: opts.DryRun}

	snaps, err := snapshot.List(cfg.HistoryDir, cfg.FolderPrefix, log)
	if err != nil {
		log.Error("%v", err)
	}
	if len(snaps) == 0 {
		log.Error("No valid folders found under %s", cfg.HistoryDir)
		res.Message = "no valid folders found"
		return res
	}
	res.SnapshotCount = len(snaps)

	newest := snaps[len(snaps)-1]
	res.NewestFolder = newest.Path
	log.Info("Found %d snapshots, newest: %s (timestamp: %s)", len(snaps), newest.Name(), newest.Timestamp)

	if opts.Backup && !opts.DryRun {
		path, err := backup.Create(newest.Path)
		if err != nil {
			log.Error("%v", err)
			res.Message = "backup failed"
			return res
		}
		res.BackupPath = path
		log.Success("Backup created: %s", path)
	}

	var transfer TransferResult
	switch {
	case opts.RenameOnly, len(snaps) == 1:
		if opts.RenameOnly {
			log.Info("Rename-only mode: transferring newest snapshot in full")
		} else {
			log.Info("Single snapshot detected: transferring all files")
		}
		transfer = TransferAll(newest, cfg.TargetDir, opts.DryRun, log)

	default:
		second := snaps[len(snaps)-2]
		log.Info("Comparing newest pair: %s vs %s", newest.Name(), second.Name())

		// Duplicate telemetry over the newest pair. Snapshots older than
		// the second-most-recent are never inspected.
		dups := compare.DuplicatesAcrossOlder(
			snapshot.NoteFiles(newest, log),
			snapshot.NoteFiles(second, log),
		)
		res.DuplicateCount = len(dups)
		log.Info("Duplicate files across newest pair: %d (kept)", len(dups))

		transfer = TransferUnique(newest, second, cfg.TargetDir, opts.DryRun, log)

		// Purge runs after the copy pass so the set comparison above saw
		// the archive untouched.
		if opts.PurgeDuplicates {
			res.PurgedCount = DeleteDuplicates(newest, dups, opts.DryRun, log)
		}
	}

	res.Transfer = &transfer
	res.OK = transfer.OK
	res.Message = transfer.Message

	logRunSummary(log, &res)
	return res
}

func logRunSummary(log *logging.Logger, res *Result) {
	log.Info("==================================================")
	if !res.OK {
		log.Error("Run failed: %s", res.Message)
		return
	}
	t := res.Transfer
	log.Info("Run complete: %d snapshots, %d duplicates", res.SnapshotCount, res.DuplicateCount)
	log.Info("Files - total: %d, copied: %d, skipped: %d, errors: %d",
		t.Total, t.Copied, t.Skipped, t.Errored)
	if t.UniqueNewer > 0 || t.UniqueOlder > 0 {
		log.Info("Unique files - newer: %d, older: %d", t.UniqueNewer, t.UniqueOlder)
	}
	if res.PurgedCount > 0 {
		log.Info("Purged duplicates: %d", res.PurgedCount)
	}
	if res.BackupPath != "" {
		log.Info("Backup: %s", res.BackupPath)
	}
	log.Info("Target directory: %s", t.TargetDir)
	log.Info("==================================================")
}
