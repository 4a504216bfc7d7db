package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/juggle/internal/logging"
	"github.com/katalvlaran/juggle/internal/render"
	"github.com/katalvlaran/juggle/siteswap"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var flags struct {
		jugglers int
		markdown bool
	}
	cmd := &cobra.Command{
		Use:   "analyze <pattern>",
		Short: "Show validity, canonical form and transitions of a pattern",
		Long: `Analyze one pattern: validity, object count, canonical rotation,
getin and getout, and for passing patterns the divided notation, the
self/pass view and every juggler's local throws and transitions.

Usage:
  juggle analyze 531
  juggle analyze 86277 --jugglers 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := siteswap.ParseHeights(args[0], flags.jugglers)
			if err != nil {
				return err
			}
			logging.Component(a.logger, "analyze").Debug("pattern parsed",
				"pattern", p.String(), "jugglers", p.Jugglers(), "valid", p.IsValid())

			mode := render.ASCII
			if flags.markdown {
				mode = render.Markdown
			}
			return render.Analysis(cmd.OutOrStdout(), p, mode)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.jugglers, "jugglers", "j", 1, "Number of jugglers")
	f.BoolVar(&flags.markdown, "markdown", false, "Render a Markdown table")

	return cmd
}
