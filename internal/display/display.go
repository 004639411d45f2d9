// Package display renders the banner, the interactive menu, and run
// summaries for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/notesift/internal/pipeline"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	choiceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

const banner = ` _   _       _       ____  _  __ _
| \ | | ___ | |_ ___/ ___|(_)/ _| |_
|  \| |/ _ \| __/ _ \___ \| | |_| __|
| |\  | (_) | ||  __/___) | |  _| |_
|_| \_|\___/ \__\___|____/|_|_|  \__|`

// Banner returns the styled startup banner.
func Banner(version string) string {
	return bannerStyle.Render(banner) + "\n" + dimStyle.Render("snapshot reconciler v"+version) + "\n"
}

// Menu returns the interactive menu block.
func Menu() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Select an operation:"))
	b.WriteString("\n")
	for _, line := range []string{
		"1. Dry run (preview operations, change nothing)",
		"2. Live run (compare newest snapshots, copy unique files)",
		"3. Rename only (copy newest snapshot in full)",
		"4. Exit",
	} {
		b.WriteString("  " + choiceStyle.Render(line) + "\n")
	}
	return b.String()
}

// Summary renders the run result for interactive display. The log stream
// carries the detailed per-file lines; this is the human recap.
func Summary(res pipeline.Result) string {
	if !res.OK {
		return failStyle.Render("Run failed: "+res.Message) + "\n"
	}

	var b strings.Builder
	b.WriteString(okStyle.Render(res.Message) + "\n")
	if res.DryRun {
		b.WriteString(dimStyle.Render("(dry run - nothing was written)") + "\n")
	}
	b.WriteString(fmt.Sprintf("  Snapshots:  %d\n", res.SnapshotCount))
	b.WriteString(fmt.Sprintf("  Duplicates: %d\n", res.DuplicateCount))
	if t := res.Transfer; t != nil {
		b.WriteString(fmt.Sprintf("  Files:      %d total, %d copied, %d skipped, %d errors\n",
			t.Total, t.Copied, t.Skipped, t.Errored))
		if t.UniqueNewer > 0 || t.UniqueOlder > 0 {
			b.WriteString(fmt.Sprintf("  Unique:     %d newer, %d older\n", t.UniqueNewer, t.UniqueOlder))
		}
		b.WriteString(fmt.Sprintf("  Target:     %s\n", t.TargetDir))
	}
	if res.BackupPath != "" {
		b.WriteString(fmt.Sprintf("  Backup:     %s\n", res.BackupPath))
	}
	return b.String()
}
