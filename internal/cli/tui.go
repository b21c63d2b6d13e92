package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/pipeline"
	"github.com/matzehuels/vizier/pkg/render"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EngineListModel - Interactive layout engine selection
// =============================================================================

// EngineListModel is the bubbletea model for interactive engine selection.
type EngineListModel struct {
	Engines  []engine.Engine
	Cursor   int
	Selected *engine.Engine
}

// NewEngineListModel creates a new engine list model.
func NewEngineListModel() EngineListModel {
	return EngineListModel{Engines: engine.Engines()}
}

func (m EngineListModel) Init() tea.Cmd {
	return nil
}

func (m EngineListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Engines)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Engines[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m EngineListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout Engine"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, e := range m.Engines {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		marker := " "
		if e.String() == pipeline.DefaultEngine {
			marker = StyleSuccess.Render("*")
		}

		line := fmt.Sprintf("%s%s %-10s  %s", cursor, marker, e, listDimStyle.Render(e.Description()))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s default\n", StyleSuccess.Render("*")))

	return b.String()
}

// =============================================================================
// FormatListModel - Interactive output format selection
// =============================================================================

// FormatListModel is the bubbletea model for interactive format selection.
// Multiple formats can be toggled before confirming.
type FormatListModel struct {
	Formats []render.Format
	Cursor  int
	Checked map[int]bool
	Done    bool
	Height  int
	Offset  int
}

// NewFormatListModel creates a new format list model.
func NewFormatListModel() FormatListModel {
	return FormatListModel{
		Formats: render.Formats(),
		Checked: make(map[int]bool),
		Height:  12,
	}
}

// Selected returns the confirmed format names in display order.
func (m FormatListModel) Selected() []string {
	if !m.Done {
		return nil
	}
	var names []string
	for i, f := range m.Formats {
		if m.Checked[i] {
			names = append(names, f.String())
		}
	}
	return names
}

func (m FormatListModel) Init() tea.Cmd {
	return nil
}

func (m FormatListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Formats)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "enter":
			// Confirming with nothing toggled selects the current row.
			if len(m.checkedIndexes()) == 0 {
				m.Checked[m.Cursor] = true
			}
			m.Done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FormatListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Output Formats"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Formats) {
		end = len(m.Formats)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := m.Formats[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = "[x]"
		}

		data := "text"
		if f.Binary() {
			data = "binary"
		}

		rows = append(rows, []string{cursor, check, f.String(), f.MIME(), "." + f.Ext(), data})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Format", "MIME Type", "Ext", "Data").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Formats) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			isChecked := m.Checked[actualIdx]

			base := lipgloss.NewStyle()
			if col == 3 || col == 5 {
				base = base.Foreground(colorDim)
			}

			if isCurrent {
				if col != 3 && col != 5 {
					return base.Foreground(colorCyan).Bold(true)
				}
				return base.Bold(true)
			}
			if isChecked {
				if col != 3 && col != 5 {
					return base.Foreground(colorGreen)
				}
				return base
			}
			if col != 3 && col != 5 {
				return base.Foreground(colorWhite)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.Cursor+1, len(m.Formats), len(m.checkedIndexes()))))

	return b.String()
}

func (m FormatListModel) checkedIndexes() []int {
	var idx []int
	for i, on := range m.Checked {
		if on {
			idx = append(idx, i)
		}
	}
	return idx
}
