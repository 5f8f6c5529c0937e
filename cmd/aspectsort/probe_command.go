package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"aspectsort/internal/probe"
	"aspectsort/internal/ratio"
)

type probeResult struct {
	File   string `json:"file"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Size   int64  `json:"size,omitempty"`
	Probe  string `json:"probe,omitempty"`
	Label  string `json:"label,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var limiter int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe FILE...",
		Short: "Show the dimensions and ratio label of media files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limiter") {
				limiter = cfg.Sort.Limiter
			}
			if limiter < 1 {
				return fmt.Errorf("limiter %d must be positive: %w", limiter, ratio.ErrInvalidArgument)
			}

			extractor := probe.NewFromConfig(cfg)
			results := make([]probeResult, 0, len(args))
			for _, path := range args {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				results = append(results, probeOne(cmd, extractor, path, limiter))
			}

			return emit(cmd, asJSON, results, func() string {
				return probeTable(results) + "\n"
			})
		},
	}
	cmd.Flags().IntVarP(&limiter, "limiter", "l", 0, "Limiter used for the label (defaults to the configured value)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

func probeOne(cmd *cobra.Command, extractor *probe.Extractor, path string, limiter int) probeResult {
	result := probeResult{File: path}
	info, err := os.Stat(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	dims, err := extractor.Extract(cmd.Context(), path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	label, err := ratio.Label(dims.Width, dims.Height, limiter)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Width = dims.Width
	result.Height = dims.Height
	result.Size = info.Size()
	result.Probe = dims.Source
	result.Label = label
	return result
}

func probeTable(results []probeResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Error != "" {
			rows = append(rows, []string{r.File, "", "", "", r.Error})
			continue
		}
		rows = append(rows, []string{
			r.File,
			probe.Dimensions{Width: r.Width, Height: r.Height}.String(),
			humanize.Bytes(uint64(r.Size)),
			r.Probe,
			r.Label,
		})
	}
	return renderTable(probeColumns, rows, nil)
}
