package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/notesift/internal/config"
	"github.com/backmassage/notesift/internal/display"
	"github.com/backmassage/notesift/internal/logging"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

var (
	flagRoot    string
	flagHistory string
	flagTarget  string
	flagPrefix  string
	flagConfig  string
	flagLogFile string
	flagVerbose bool
	flagColor   bool
	flagNoColor bool

	cfg *config.Config
	log *logging.Logger
)

// rootCmd runs the interactive menu when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "notesift",
	Short: "Reconcile timestamped note-archive exports",
	Long: `NoteSift scans a history directory of dated note exports, finds the files
unique to the newest snapshots, renames them to their human-readable titles
from each snapshot's index page, and copies them into an output directory.

Without a subcommand it opens an interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(display.Banner(version))
		reader, err := newReadlineReader()
		if err != nil {
			return err
		}
		defer reader.Close()
		return menuLoop(reader, cfg, log)
	},
}

// setup resolves configuration and opens the run logger. Everything after
// this logs through log; only bootstrap errors go to stderr via cobra.
func setup(cmd *cobra.Command, args []string) error {
	color := ""
	if flagColor {
		color = string(config.ColorAlways)
	}
	if flagNoColor {
		color = string(config.ColorNever)
	}

	var err error
	cfg, err = config.Load(config.Overrides{
		RootDir:    flagRoot,
		HistoryDir: flagHistory,
		TargetDir:  flagTarget,
		Prefix:     flagPrefix,
		ConfigFile: flagConfig,
		LogFile:    flagLogFile,
		Verbose:    flagVerbose,
		Color:      color,
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	historyAbs, err := filepath.Abs(cfg.HistoryDir)
	if err != nil {
		return err
	}
	targetAbs, err := filepath.Abs(cfg.TargetDir)
	if err != nil {
		return err
	}
	if err := cfg.ValidatePaths(historyAbs, targetAbs); err != nil {
		return err
	}

	log, err = logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	log.Info("Log file: %s", log.FilePath())
	return nil
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "notesift: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRoot, "root", "", "Base directory (history and output default beneath it)")
	pf.StringVar(&flagHistory, "history", "", "History directory holding the export snapshots")
	pf.StringVar(&flagTarget, "target", "", "Output directory for renamed copies")
	pf.StringVar(&flagPrefix, "prefix", "", "Export folder name prefix (default \"voicenotes\")")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default \"<root>/.notesift.yaml\")")
	pf.StringVar(&flagLogFile, "log", "", "Log file path (default timestamped file under root)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&flagColor, "color", false, "Force colored logs")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored logs")
}
