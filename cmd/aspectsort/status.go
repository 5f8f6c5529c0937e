package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"aspectsort/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
	// statusPlain lines carry no tag, e.g. a skipped file and its reason.
	statusPlain
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const statusIndent = "  "

type statusLine struct {
	label   string
	kind    statusKind
	message string
}

// statusSection is a titled block of "label: [TAG] message" lines whose
// messages start in one column.
type statusSection struct {
	title string
	lines []statusLine
}

func (s *statusSection) add(label string, kind statusKind, message string) {
	s.lines = append(s.lines, statusLine{label: label, kind: kind, message: message})
}

// addCheck records a preflight result. Checks that only disable part of a
// run are warnings rather than errors.
func (s *statusSection) addCheck(result preflight.Result, soft bool) {
	kind := statusOK
	switch {
	case result.Passed:
	case soft:
		kind = statusWarn
	default:
		kind = statusError
	}
	s.add(result.Name, kind, result.Detail)
}

func (s *statusSection) render(colorize bool) string {
	width := 0
	for _, line := range s.lines {
		if line.kind != statusPlain {
			width = max(width, len(line.label)+1)
		}
	}

	var b strings.Builder
	heading := fmt.Sprintf("== %s ==", strings.TrimSpace(s.title))
	rule := strings.Repeat("-", len(heading))
	if colorize {
		heading = ansiBlue + heading + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	b.WriteString(heading + "\n" + rule + "\n")
	for _, line := range s.lines {
		b.WriteString(line.render(width, colorize) + "\n")
	}
	return b.String()
}

func (l statusLine) render(width int, colorize bool) string {
	if l.kind == statusPlain {
		return fmt.Sprintf("%s%s: %s", statusIndent, l.label, l.message)
	}
	tag := "[" + statusKindLabel(l.kind) + "]"
	if l.message != "" {
		tag += " " + l.message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, width, l.label+":", tag)
	if colorize {
		if color := statusKindColor(l.kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
