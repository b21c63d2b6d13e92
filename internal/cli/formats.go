package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizier/pkg/pipeline"
	"github.com/matzehuels/vizier/pkg/render"
)

// formatsCommand creates the formats command listing the output formats.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printFormatTable()
		},
	}
}

// printFormatTable renders the format catalog as a table.
func printFormatTable() {
	rows := [][]string{}
	for _, f := range render.Formats() {
		name := f.String()
		if name == pipeline.DefaultFormat {
			name += " (default)"
		}
		data := "text"
		if f.Binary() {
			data = "binary"
		}
		rows = append(rows, []string{name, f.MIME(), "." + f.Ext(), data})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Format", "MIME Type", "Ext", "Data").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	fmt.Println(t.Render())
}
