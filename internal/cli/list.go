package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	lio "github.com/matzehuels/logtrack/pkg/io"
)

// listCommand prints the built-in scenes or exports one as a scene file.
func (c *CLI) listCommand() *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in scenes",
		Example: `  logtrack list
  logtrack list --export three > my-scene.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if export != "" {
				def, err := catalog.Lookup(export)
				if err != nil {
					return err
				}
				return lio.WriteScene(def, out)
			}
			return writeExampleTable(out, catalog.All())
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "write the named scene as TOML to stdout")
	return cmd
}

func writeExampleTable(w io.Writer, defs []catalog.Definition) error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		tracks := make([]string, len(d.Tracks))
		for i, t := range d.Tracks {
			tracks[i] = swatch(t.Color) + " " + t.Name
		}
		ticks, _ := primitive.DepthTicks(d.MaxDepth, d.TickInterval)
		rows = append(rows, []string{
			string(d.Name),
			d.Title,
			strings.Join(tracks, "\n"),
			fmt.Sprintf("0–%s ft", primitive.FormatTick(d.MaxDepth)),
			fmt.Sprintf("%s ft", primitive.FormatTick(d.Step)),
			fmt.Sprintf("%d", len(ticks)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Tracks", "Depth", "Step", "Ticks").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return nameStyle.Padding(0, 1)
			case col >= 3:
				return base.Foreground(colorGray)
			}
			return base
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
