package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/pipeline"
)

// enginesCommand creates the engines command listing the layout engines.
func (c *CLI) enginesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List available layout engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printEngineTable()
		},
	}
}

// printEngineTable renders the engine catalog as a table.
func printEngineTable() {
	rows := [][]string{}
	for _, e := range engine.Engines() {
		name := e.String()
		if name == pipeline.DefaultEngine {
			name += " (default)"
		}
		rows = append(rows, []string{name, e.Description()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Engine", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
}
