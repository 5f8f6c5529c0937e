package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aspectsort/internal/ratio"
	"aspectsort/internal/sorter"
)

var numberPrinter = message.NewPrinter(language.English)

func renderSummary(summary sorter.Summary, colorize bool) string {
	var b strings.Builder

	verb := "Sorted"
	if summary.DryRun {
		verb = "Would sort"
	}
	fmt.Fprintf(&b, "%s %s into %s (%s, limiter %d)\n",
		verb, pluralFiles(summary.Processed()), summary.Output, summary.Mode, summary.Limiter)

	if counts := summary.Counts(); len(counts) > 0 {
		b.WriteString(ratioTable(counts, summary.Processed()))
		b.WriteString("\n")
	}

	totals := statusSection{title: "Summary"}
	totals.add("Processed", statusOK, numberPrinter.Sprintf("%d", summary.Processed()))
	skippedKind := statusOK
	if len(summary.Skipped) > 0 {
		skippedKind = statusWarn
	}
	totals.add("Skipped", skippedKind, numberPrinter.Sprintf("%d", len(summary.Skipped)))
	totals.add("Ignored", statusInfo, numberPrinter.Sprintf("%d", summary.Ignored))
	totals.add("Data", statusInfo, humanize.Bytes(uint64(summary.Bytes)))
	if top, ok := summary.MostCommon(); ok {
		totals.add("Most common", statusInfo, fmt.Sprintf("%s (%s)", top.Label, pluralFiles(top.Count)))
	}
	if summary.Interrupted {
		totals.add("Interrupted", statusError, "files already sorted were left in place")
	}
	totals.add("Run ID", statusInfo, summary.RunID)
	b.WriteString("\n")
	b.WriteString(totals.render(colorize))

	if len(summary.Skipped) > 0 {
		skipped := statusSection{title: "Skipped files"}
		for _, skip := range summary.Skipped {
			skipped.add(relativeTo(summary.Root, skip.Path), statusPlain, skip.Reason)
		}
		b.WriteString("\n")
		b.WriteString(skipped.render(colorize))
	}
	return b.String()
}

// ratioTable lists each label with its common name, file count and share of
// the processed files, with a totals footer.
func ratioTable(counts []sorter.LabelCount, total int) string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{
			c.Label,
			knownAs(c.Label),
			numberPrinter.Sprintf("%d", c.Count),
			share(c.Count, total),
		})
	}
	footer := []string{"Total", "", numberPrinter.Sprintf("%d", total), ""}
	return renderTable(ratioColumns, rows, footer)
}

func share(count, total int) string {
	if total <= 0 {
		return ""
	}
	return numberPrinter.Sprintf("%.1f%%", float64(count)*100/float64(total))
}

func knownAs(label string) string {
	r, ok := ratio.ParseLabel(label)
	if !ok {
		return ""
	}
	name, _ := ratio.Describe(r)
	return name
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return numberPrinter.Sprintf("%d files", n)
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
