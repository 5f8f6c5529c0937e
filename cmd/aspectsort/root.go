package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)
	var sortFlags sortFlags

	rootCmd := &cobra.Command{
		Use:   "aspectsort [directory] [limiter]",
		Short: "Sort images and videos into folders named after their aspect ratio",
		Long: `Sort images and videos into folders named after their aspect ratio.

Each file's width and height are approximated by the closest ratio whose
denominator does not exceed the limiter (default 10), and the file is copied
(or moved with --move) into <directory>/<label>/, for example 16x9 or 4x3.
Files that cannot be read are reported and left alone.

A directory named like a subcommand (ratio, probe, doctor, log, config) must
be written as a path, for example ./log.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, ctx, &sortFlags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")
	sortFlags.register(rootCmd)
	rootCmd.SetFlagErrorFunc(limiterFlagError)

	rootCmd.AddCommand(newRatioCommand(ctx))
	rootCmd.AddCommand(newProbeCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newLogCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
