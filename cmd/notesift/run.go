package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/notesift/internal/display"
	"github.com/backmassage/notesift/internal/pipeline"
)

var (
	flagYes    bool
	flagBackup bool
	flagPurge  bool
)

// runCmd executes the live pipeline.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the live pipeline (copies files)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagYes {
			reader, err := newReadlineReader()
			if err != nil {
				return err
			}
			defer reader.Close()
			if !confirm(reader, "Execute live run? (y/n): ") {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		res := runPipeline(cfg, log, pipeline.Options{
			Backup:          flagBackup,
			PurgeDuplicates: flagPurge,
		})
		fmt.Print(display.Summary(res))
		if !res.OK {
			return errors.New(res.Message)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	runCmd.Flags().BoolVar(&flagBackup, "backup", false, "Back up the newest snapshot before copying")
	runCmd.Flags().BoolVar(&flagPurge, "purge-duplicates", false, "Delete duplicate files from the newest snapshot after copying")
	rootCmd.AddCommand(runCmd)
}
