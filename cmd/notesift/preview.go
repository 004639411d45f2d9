package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/notesift/internal/display"
	"github.com/backmassage/notesift/internal/pipeline"
)

// previewCmd runs the full pipeline in dry-run mode.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the full pipeline without writing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := runPipeline(cfg, log, pipeline.Options{DryRun: true})
		fmt.Print(display.Summary(res))
		if !res.OK {
			return errors.New(res.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
