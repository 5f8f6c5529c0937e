package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aspectsort/internal/ratio"
)

type ratioResult struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Limiter int    `json:"limiter"`
	Label   string `json:"label"`
	Name    string `json:"name,omitempty"`
}

func newRatioCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ratio WIDTHxHEIGHT [limiter]",
		Short: "Print the ratio label for a width and height",
		Example: `  aspectsort ratio 1920x1080
  aspectsort ratio 2048x858 100`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, err := parseDimensions(args[0])
			if err != nil {
				return err
			}
			limiter := 0
			if len(args) > 1 {
				if limiter, err = parseLimiter(args[1]); err != nil {
					return err
				}
			} else {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				limiter = cfg.Sort.Limiter
			}

			r, err := ratio.Approximate(width, height, limiter)
			if err != nil {
				return err
			}
			name, _ := ratio.Describe(r)
			result := ratioResult{Width: width, Height: height, Limiter: limiter, Label: r.Label(), Name: name}
			return emit(cmd, asJSON, result, func() string {
				if name != "" {
					return fmt.Sprintf("%s (%s)\n", result.Label, name)
				}
				return result.Label + "\n"
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

// parseDimensions accepts "WxH", "W:H", or "W/H".
func parseDimensions(value string) (int, int, error) {
	value = strings.TrimSpace(value)
	sep := strings.IndexAny(value, "xX:/")
	if sep <= 0 || sep == len(value)-1 {
		return 0, 0, fmt.Errorf("dimensions %q must look like WIDTHxHEIGHT: %w", value, ratio.ErrInvalidArgument)
	}
	width, errW := strconv.Atoi(value[:sep])
	height, errH := strconv.Atoi(value[sep+1:])
	if errW != nil || errH != nil || width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("dimensions %q must be positive integers: %w", value, ratio.ErrInvalidArgument)
	}
	return width, height, nil
}
