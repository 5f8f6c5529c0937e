package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aspectsort/internal/logs"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var runID string
	var follow bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the end of the aspectsort log file",
		Example: `  aspectsort log -n 100
  aspectsort log --run 3f1c9a52-8d0e-4f7a-b1c4-6a2f0e9d7c11
  aspectsort log --follow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LogFilePath()
			if path == "" {
				return errors.New("file logging is disabled; set [logging] file = true")
			}

			filter := logs.RunFilter(runID)
			recent, offset, err := logs.Last(path, lines, filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range recent {
				fmt.Fprintln(out, line)
			}
			if !follow {
				return nil
			}
			return logs.Follow(cmd.Context(), path, offset, 500*time.Millisecond, filter, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVar(&runID, "run", "", "Only show lines from this run id")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	return cmd
}
