package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 24
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText(kind, message))
	return paint(base, kind, colorize)
}

// renderBanner is the single-line form used for the last diagnostic of a run.
func renderBanner(kind statusKind, message string, colorize bool) string {
	return paint(statusText(kind, message), kind, colorize)
}

func statusText(kind statusKind, message string) string {
	if message == "" {
		return fmt.Sprintf("[%s]", statusKindLabel(kind))
	}
	return fmt.Sprintf("[%s] %s", statusKindLabel(kind), message)
}

func paint(line string, kind statusKind, colorize bool) string {
	if !colorize {
		return line
	}
	if color := statusKindColor(kind); color != "" {
		return color + line + ansiReset
	}
	return line
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

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// resolveColor applies a colour policy to writer.
func resolveColor(policy string, writer io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "auto":
		return shouldColorize(writer), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported color policy %q (want auto, always or never)", policy)
	}
}

func shouldColorize(writer io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
