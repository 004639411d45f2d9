// Command notesift reconciles timestamped note-archive exports: it diffs the
// newest snapshots under a history directory and copies the unique files to
// an output directory, renamed to their human-readable titles.
package main

func main() {
	Execute()
}
