package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"rtcalc/internal/pacenote"
	"rtcalc/internal/pipeline"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Style selects the box drawing used by FormatTable.
type Style string

const (
	StyleRounded Style = "rounded"
	StyleLight   Style = "light"
	StyleASCII   Style = "ascii"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatMarkdown, FormatCSV, FormatHTML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", value)
	}
}

// ParseStyle validates a table style name.
func ParseStyle(value string) (Style, error) {
	switch s := Style(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return StyleRounded, nil
	case StyleRounded, StyleLight, StyleASCII:
		return s, nil
	default:
		return "", fmt.Errorf("unsupported table style %q", value)
	}
}

// Options tunes rendering.
type Options struct {
	Format Format
	Style  Style
	// ShowLine prefixes each row with its 1-based input line.
	ShowLine bool
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// Rows writes the computed rows of result.
func Rows(w io.Writer, result pipeline.Result, opts Options) error {
	if opts.Format == FormatJSON {
		return writeJSON(w, NewDocument(result))
	}

	headers := RowHeaders
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight}
	if opts.ShowLine {
		headers = append([]string{"Line"}, headers...)
		aligns = append([]columnAlignment{alignRight}, aligns...)
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		cells := Cells(row)
		if opts.ShowLine {
			cells = append([]string{strconv.Itoa(row.Line + 1)}, cells...)
		}
		rows = append(rows, cells)
	}
	return writeTable(w, headers, rows, aligns, opts)
}

// Records writes the classified input records, the parser's view of the text.
func Records(w io.Writer, records []pacenote.Record, opts Options) error {
	if opts.Format == FormatJSON {
		return writeJSON(w, newRecordDocs(records))
	}
	headers := []string{"Line", "Kind", "Distance", "Speed", "Text"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.DisplayLine()),
			rec.Kind.String(),
			rec.Distance.String(),
			rec.Speed.String(),
			rec.Text,
		})
	}
	return writeTable(w, headers, rows, aligns, opts)
}

func writeTable(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment, opts Options) error {
	tw := newTableWriter(headers, rows, aligns, opts.Style)

	var out string
	switch opts.Format {
	case FormatMarkdown:
		out = tw.RenderMarkdown()
	case FormatCSV:
		out = tw.RenderCSV()
	case FormatHTML:
		out = tw.RenderHTML()
	case FormatTable, "":
		out = tw.Render()
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newTableWriter(headers []string, rows [][]string, aligns []columnAlignment, style Style) table.Writer {
	columns := len(headers)

	tw := table.NewWriter()
	tw.SetStyle(tableStyle(style))

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)
	return tw
}

func tableStyle(style Style) table.Style {
	switch style {
	case StyleLight:
		return table.StyleLight
	case StyleASCII:
		return table.StyleDefault
	default:
		return table.StyleRounded
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
