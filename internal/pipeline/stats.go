package pipeline

// TransferResult aggregates the outcome of one copy pass. OK is false only
// for operation-level failures (no title mapping, missing notes directory,
// target directory creation failure); per-file problems are absorbed into
// the Skipped and Errored counters.
type TransferResult struct {
	OK      bool
	Message string

	Total   int // candidate files considered
	Copied  int
	Skipped int // missing source or no title mapping for the file
	Errored int

	// Per-side unique counts, populated by dual-snapshot transfers only.
	UniqueNewer int
	UniqueOlder int

	TargetDir string
	DryRun    bool
}

// Result is the run controller's terminal outcome for one invocation.
type Result struct {
	OK      bool
	Message string

	SnapshotCount  int
	NewestFolder   string
	DuplicateCount int // telemetry; duplicates are never deleted by default
	PurgedCount    int
	BackupPath     string

	Transfer *TransferResult
	DryRun   bool
}
