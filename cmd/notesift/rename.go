package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/notesift/internal/display"
	"github.com/backmassage/notesift/internal/pipeline"
)

var flagRenameYes bool

// renameCmd copies the newest snapshot in full, skipping duplicate telemetry
// and ignoring older history.
var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Copy and rename the newest snapshot in full",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagRenameYes {
			reader, err := newReadlineReader()
			if err != nil {
				return err
			}
			defer reader.Close()
			if !confirm(reader, "Confirm copy operation? (y/n): ") {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		res := runPipeline(cfg, log, pipeline.Options{RenameOnly: true})
		fmt.Print(display.Summary(res))
		if !res.OK {
			return errors.New(res.Message)
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().BoolVarP(&flagRenameYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(renameCmd)
}
