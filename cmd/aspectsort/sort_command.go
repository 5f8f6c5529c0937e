package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aspectsort/internal/probe"
	"aspectsort/internal/ratio"
	"aspectsort/internal/sorter"
)

type sortFlags struct {
	move          bool
	recursive     bool
	dryRun        bool
	includeHidden bool
	layout        string
	output        string
	json          bool
}

func (f *sortFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.move, "move", false, "Move files instead of copying them")
	flags.BoolVarP(&f.recursive, "recursive", "r", false, "Descend into subdirectories")
	flags.BoolVarP(&f.dryRun, "dry-run", "n", false, "Report where files would go without touching them")
	flags.BoolVar(&f.includeHidden, "include-hidden", false, "Also sort dotfiles")
	flags.StringVar(&f.layout, "layout", "", "Output layout: in_place or sibling")
	flags.StringVarP(&f.output, "output", "o", "", "Sort into this directory instead of the layout default")
	flags.BoolVar(&f.json, "json", false, "Print the run summary as JSON")
}

// apply overrides opts with every flag the user set explicitly.
func (f *sortFlags) apply(cmd *cobra.Command, opts *sorter.Options) {
	flags := cmd.Flags()
	if flags.Changed("move") {
		opts.Move = f.move
	}
	if flags.Changed("recursive") {
		opts.Recursive = f.recursive
	}
	if flags.Changed("include-hidden") {
		opts.IncludeHidden = f.includeHidden
	}
	if flags.Changed("layout") {
		opts.Layout = f.layout
	}
	if flags.Changed("output") {
		opts.OutputDir = f.output
	}
	opts.DryRun = f.dryRun
}

func parseLimiter(value string) (int, error) {
	limiter, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || limiter < 1 {
		return 0, fmt.Errorf("limiter %q must be a positive integer: %w", value, ratio.ErrInvalidArgument)
	}
	return limiter, nil
}

// limiterFlagError reports a negative limiter, which pflag parses as a
// cluster of unknown shorthand flags ("-3"), as an invalid limiter.
func limiterFlagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown shorthand flag") {
		return err
	}
	idx := strings.LastIndex(msg, " in ")
	if idx < 0 {
		return err
	}
	value := msg[idx+len(" in "):]
	if _, convErr := strconv.Atoi(value); convErr != nil {
		return err
	}
	_, limiterErr := parseLimiter(value)
	return limiterErr
}

func runSort(cmd *cobra.Command, ctx *commandContext, flags *sortFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	opts := sorter.OptionsFromConfig(cfg, root)
	if len(args) > 1 {
		limiter, err := parseLimiter(args[1])
		if err != nil {
			return err
		}
		opts.Limiter = limiter
	}
	flags.apply(cmd, &opts)

	logger, closer, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := sorter.New(opts, probe.NewFromConfig(cfg), logger)
	if err != nil {
		return err
	}
	summary, runErr := s.Run(cmd.Context())
	if runErr != nil && !summary.Interrupted {
		return runErr
	}

	err = emit(cmd, flags.json, summary, func() string {
		return renderSummary(summary, shouldColorize(cmd.OutOrStdout()))
	})
	if err != nil {
		return err
	}
	return runErr
}
