package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aspectsort/internal/deps"
	"aspectsort/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report configuration, paths, and external dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			configDetail := ctx.configPath
			if !ctx.configFound {
				configDetail = fmt.Sprintf("defaults (%s not found)", ctx.configPath)
			}
			settings := statusSection{title: "Configuration"}
			settings.add("Config", statusInfo, configDetail)
			settings.add("Limiter", statusInfo, fmt.Sprintf("%d", cfg.Sort.Limiter))
			settings.add("Layout", statusInfo, cfg.Sort.Layout)
			settings.add("Move", statusInfo, yesNo(cfg.Sort.Move))
			settings.add("Images", statusInfo, strings.Join(cfg.Media.ImageExtensions, " "))
			settings.add("Videos", statusInfo, strings.Join(cfg.Media.VideoExtensions, " "))
			settings.add("Log file", statusInfo, logFileDetail(cfg.LogFilePath()))

			checks := statusSection{title: "Checks"}
			for _, result := range preflight.RunAll(cfg) {
				// Without ffprobe only video files are skipped.
				checks.addCheck(result, result.Name == "FFprobe")
			}

			fmt.Fprintln(out, settings.render(colorize))
			fmt.Fprintln(out, checks.render(colorize))
			fmt.Fprintln(out, dependencyTable(preflight.CheckSystemDeps(cfg)))
			return nil
		},
	}
}

func logFileDetail(path string) string {
	if path == "" {
		return "disabled"
	}
	return path
}

func dependencyTable(statuses []deps.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		detail := status.Path
		if !status.Available {
			detail = status.Detail
		}
		rows = append(rows, []string{status.Name, status.State(), detail, status.Description})
	}
	return renderTable(dependencyColumns, rows, nil)
}
