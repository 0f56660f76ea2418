// Package report renders inference results as plain text, markdown or HTML.
// The accept/reject decision at a significance level is made here; the
// inference engine only reports statistics and p-values.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"infstat/internal/errors"
)

// Format selects the output rendering
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat maps a flag or config value to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", errors.InvalidInputf("unknown output format %q", s)
}

// Report is a titled table with optional trailing notes and a decision
type Report struct {
	Title   string
	Header  []string
	Rows    [][]string
	Notes   []string
	Verdict *Decision
}

// AddRow appends a row of cells
func (r *Report) AddRow(cells ...string) {
	r.Rows = append(r.Rows, cells)
}

// AddNote appends a free-text line printed after the table
func (r *Report) AddNote(format string, args ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Render writes the report to w in the given format
func Render(w io.Writer, r *Report, format Format) error {
	var out string
	switch format {
	case FormatText:
		out = Text(r)
	case FormatMarkdown:
		out = Markdown(r)
	case FormatHTML:
		out = HTML(r)
	default:
		return errors.InvalidInputf("unknown output format %q", string(format))
	}
	_, err := io.WriteString(w, out)
	return err
}

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	rejectColor = color.New(color.FgRed)
	retainColor = color.New(color.FgGreen)
)

// Text renders the report as an aligned plain-text table. The title and the
// decision are coloured when color.NoColor is false.
func Text(r *Report) string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(titleColor.Sprint(r.Title) + "\n")
		b.WriteString(strings.Repeat("=", len([]rune(r.Title))) + "\n")
	}

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	if len(r.Header) > 0 {
		fmt.Fprintln(tw, strings.Join(r.Header, "\t"))
	}
	for _, row := range r.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	for _, note := range r.Notes {
		b.WriteString(note + "\n")
	}
	if r.Verdict != nil {
		c := retainColor
		if r.Verdict.Reject {
			c = rejectColor
		}
		b.WriteString(c.Sprint(r.Verdict.line()) + "\n")
	}
	return b.String()
}

// Markdown renders the report as a heading, a pipe table and paragraphs
func Markdown(r *Report) string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(fmt.Sprintf("## %s\n\n", r.Title))
	}

	if len(r.Rows) > 0 {
		header := r.Header
		if len(header) == 0 {
			header = make([]string, len(r.Rows[0]))
		}
		b.WriteString("| " + strings.Join(escapeCells(header), " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
		for _, row := range r.Rows {
			b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
		}
		b.WriteString("\n")
	}

	for _, note := range r.Notes {
		b.WriteString(note + "\n\n")
	}
	if r.Verdict != nil {
		b.WriteString(fmt.Sprintf("**%s**\n\n", r.Verdict.line()))
	}
	return b.String()
}

// HTML renders the markdown form through gomarkdown
func HTML(r *Report) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(Markdown(r)), p, renderer))
}

func escapeCells(cells []string) []string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", `\|`)
	}
	return escaped
}
