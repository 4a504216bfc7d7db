// Package render formats patterns and search results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/juggle/search"
	"github.com/katalvlaran/juggle/siteswap"
)

// Mode selects the table flavour.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// ResultOptions selects the columns of Results.
type ResultOptions struct {
	Mode        Mode
	Transitions bool // add getin and getout columns
	Local       bool // add the per-juggler notation
}

// Results writes one table per result.
func Results(w io.Writer, results []search.Result, opts ResultOptions) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, Title(res.Params)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, resultTable(res, opts)); err != nil {
			return err
		}
		if err := Status(w, res); err != nil {
			return err
		}
	}

	return nil
}

// Title describes the parameters of a run.
func Title(p search.Params) string {
	return fmt.Sprintf("period %d, %d objects, throws %d..%d, %d juggler(s)",
		p.Period, p.Objects, max(p.MinThrow, 0), p.MaxThrow, p.Jugglers)
}

func resultTable(res search.Result, opts ResultOptions) string {
	t := newWriter(opts.Mode)
	header := table.Row{"#", "pattern", "objects"}
	if res.Params.Jugglers > 1 {
		header = append(header, "divided")
	}
	if opts.Transitions {
		header = append(header, "getin", "getout")
	}
	if opts.Local && res.Params.Jugglers > 1 {
		header = append(header, "local")
	}
	t.AppendHeader(header)

	for i, p := range res.Patterns {
		row := table.Row{i + 1, p.String(), p.Objects()}
		if res.Params.Jugglers > 1 {
			row = append(row, p.DividedString())
		}
		if opts.Transitions {
			row = append(row, orDash(p.Getin()), orDash(p.Getout()))
		}
		if opts.Local && res.Params.Jugglers > 1 {
			row = append(row, strings.Join(p.LocalStrings(), " | "))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d found", len(res.Patterns))})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	return render(t, opts.Mode)
}

// Analysis writes a key/value table describing p.
func Analysis(w io.Writer, p *siteswap.Pattern, mode Mode) error {
	t := newWriter(mode)
	t.AppendHeader(table.Row{"property", "value"})

	valid := p.IsValid()
	t.AppendRow(table.Row{"pattern", p.String()})
	t.AppendRow(table.Row{"period", p.Period()})
	t.AppendRow(table.Row{"jugglers", p.Jugglers()})
	t.AppendRow(table.Row{"valid", valid})
	if valid && !p.HasInvalid() {
		t.AppendRow(table.Row{"objects", p.Objects()})
		t.AppendRow(table.Row{"max throw", p.MaxThrow()})
		t.AppendRow(table.Row{"canonical", p.Canonical().String()})
		t.AppendRow(table.Row{"getin", orDash(p.Getin())})
		t.AppendRow(table.Row{"getout", orDash(p.Getout())})
		if p.Jugglers() > 1 {
			t.AppendRow(table.Row{"divided", p.DividedString()})
			t.AppendRow(table.Row{"self/pass", p.PatternView().String()})
			for j, s := range p.LocalStrings() {
				t.AppendRow(table.Row{fmt.Sprintf("juggler %c", 'A'+j), s})
			}
			for j, g := range p.LocalGetins() {
				t.AppendRow(table.Row{fmt.Sprintf("getin %c", 'A'+j), orDash(g)})
			}
			for j, g := range p.LocalGetouts() {
				t.AppendRow(table.Row{fmt.Sprintf("getout %c", 'A'+j), orDash(g)})
			}
		}
	}

	_, err := fmt.Fprintln(w, render(t, mode))
	return err
}

// Status writes a coloured one-line summary of res.
func Status(w io.Writer, res search.Result) error {
	var err error
	switch res.Stop {
	case search.StopExhausted:
		_, err = green.Fprintf(w, "✓ %d patterns, search complete (%d steps, %s)\n",
			len(res.Patterns), res.Steps, res.Elapsed.Round(time.Microsecond))
	case search.StopLimit:
		_, err = yellow.Fprintf(w, "⚠ %d patterns, result limit reached (%d steps, %s)\n",
			len(res.Patterns), res.Steps, res.Elapsed.Round(time.Microsecond))
	default:
		_, err = red.Fprintf(w, "✗ %d patterns, search stopped: %s (%d steps, %s)\n",
			len(res.Patterns), res.Stop, res.Steps, res.Elapsed.Round(time.Microsecond))
	}

	return err
}

// Error writes a red error line. It is the last thing printed before
// exit, so write failures are dropped.
func Error(w io.Writer, err error) {
	red.Fprintf(w, "error: %v\n", err)
}

func newWriter(m Mode) table.Writer {
	t := table.NewWriter()
	if m == ASCII {
		t.SetStyle(table.StyleLight)
	}
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	return t
}

func render(t table.Writer, m Mode) string {
	if m == Markdown {
		return t.RenderMarkdown()
	}

	return t.Render()
}

func orDash(p *siteswap.Pattern) string {
	if p.Period() == 0 {
		return "-"
	}

	return p.String()
}
