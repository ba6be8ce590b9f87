package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rtcalc/internal/pipeline"
	"rtcalc/internal/render"
	"rtcalc/internal/textutil"
)

// errDiagnostics marks a --strict run whose input raised diagnostics.
var errDiagnostics = errors.New("pace notes contain errors")

type calcOptions struct {
	format      string
	style       string
	color       string
	numbering   string
	allErrors   bool
	strict      bool
	records     bool
	lineNumbers bool
}

func newCalcCommand(ctx *commandContext) *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc [file|-]",
		Short: "Calculate the timing table for a pace-note file",
		Long: `Read pace notes from a file (or stdin when the argument is omitted or "-"),
compute distances, speeds and elapsed times, and print the table.

Each line is a waypoint "distance [speed]", "..." to start an RT segment,
"===" to end it, or blank.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, ctx, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: table, markdown, csv, html, json")
	flags.StringVar(&opts.style, "style", "", "Table style: rounded, light, ascii")
	flags.StringVar(&opts.color, "color", "", "Colour the error banner: auto, always, never")
	flags.StringVar(&opts.numbering, "numbering", "", "Line numbering in messages: compact, source")
	flags.BoolVar(&opts.allErrors, "all-errors", false, "List every diagnostic, not only the last one")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with status 2 when the input raised diagnostics")
	flags.BoolVar(&opts.records, "records", false, "Print the classified input records instead of the table")
	flags.BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "Prefix each row with its input line")
	return cmd
}

func runCalc(cmd *cobra.Command, ctx *commandContext, args []string, opts calcOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(firstNonEmpty(opts.format, cfg.Output.Format))
	if err != nil {
		return err
	}
	style, err := render.ParseStyle(firstNonEmpty(opts.style, cfg.Output.Style))
	if err != nil {
		return err
	}
	colorize, err := resolveColor(firstNonEmpty(opts.color, cfg.Output.Color), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	runner, _, err := ctx.newRunner(opts.numbering, nil)
	if err != nil {
		return err
	}
	result := runner.Run(cmd.Context(), text)

	renderOpts := render.Options{Format: format, Style: style, ShowLine: opts.lineNumbers}
	out := cmd.OutOrStdout()
	if opts.records {
		err = render.Records(out, result.Records, renderOpts)
	} else {
		err = render.Rows(out, result, renderOpts)
	}
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	if result.HasError() {
		writeDiagnostics(cmd.ErrOrStderr(), result, opts.allErrors, colorize)
		if opts.strict {
			count := len(result.Diagnostics)
			return fmt.Errorf("%w: %d %s", errDiagnostics, count, textutil.Ternary(count == 1, "problem", "problems"))
		}
	}
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read pace notes: %w", err)
	}
	return string(data), nil
}

func writeDiagnostics(w io.Writer, result pipeline.Result, all bool, colorize bool) {
	if !all {
		fmt.Fprintln(w, renderBanner(statusError, result.ErrorMessage(), colorize))
		return
	}
	for _, line := range renderSectionHeader("Diagnostics", colorize) {
		fmt.Fprintln(w, line)
	}
	for _, d := range result.Diagnostics {
		fmt.Fprintln(w, renderStatusLine(d.Kind.String(), statusError, d.Message(), colorize))
	}
}
