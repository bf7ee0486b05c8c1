package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/spheregrid/pkg/assemble"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/layout"
	"github.com/matzehuels/spheregrid/pkg/palette"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	detailKeyStyle = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	detailBox      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// NodeRow - resolved node data
// =============================================================================

// NodeRow is a node with its resolved placement and palette.
type NodeRow struct {
	Node      grid.Node
	Placement layout.Placement
	Palette   palette.Palette
	Info      []string
}

// nodeRows resolves every node of cfg. The config must have passed
// validation.
func nodeRows(cfg *grid.Config) ([]NodeRow, error) {
	l, err := layout.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	rows := make([]NodeRow, 0, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		p, _ := l.Placement(n.ID)
		rows = append(rows, NodeRow{
			Node:      n,
			Placement: p,
			Palette:   palette.For(n.State),
			Info:      assemble.InfoLines(n),
		})
	}
	return rows, nil
}

// =============================================================================
// NodeBrowserModel - interactive node inspection
// =============================================================================

// NodeBrowserModel is the bubbletea model for browsing the nodes of a grid.
type NodeBrowserModel struct {
	Title  string
	Rows   []NodeRow
	Cursor int
	Height int
	Offset int
}

// NewNodeBrowserModel creates a new node browser.
func NewNodeBrowserModel(title string, rows []NodeRow) NodeBrowserModel {
	return NodeBrowserModel{Title: title, Rows: rows, Height: 12}
}

func (m NodeBrowserModel) Init() tea.Cmd {
	return nil
}

func (m NodeBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Rows); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, help line and detail panel.
		m.Height = max(msg.Height-20, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m NodeBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no nodes"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.nodeTable())
	b.WriteString("\n")
	b.WriteString(m.detail(m.Rows[m.Cursor]))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

func (m NodeBrowserModel) nodeTable() string {
	end := min(m.Offset+m.Height, len(m.Rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Rows[i].Node
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, n.ID, n.Label, n.Tier, string(n.State), n.Domain})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Label", "Tier", "State", "Domain").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 4 {
				base = base.Foreground(stateColor(m.Rows[idx].Node.State))
			} else if idx != m.Cursor {
				base = base.Foreground(colorGray)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		}).
		Render()
}

// detail renders the resolved geometry and colors of one node.
func (m NodeBrowserModel) detail(r NodeRow) string {
	n := r.Node
	var lines []string
	line := func(key, value string) {
		lines = append(lines, detailKeyStyle.Render(key)+" "+StyleValue.Render(value))
	}

	line("node", fmt.Sprintf("%s (%s)", n.ID, n.Label))
	line("anchor", fmt.Sprintf("%.1f, %.1f", r.Placement.Anchor.X, r.Placement.Anchor.Y))
	line("size", fmt.Sprintf("%.1f  %s %s", r.Placement.Size, n.EffectiveImportance(), n.EffectiveShape()))
	line("angle", fmt.Sprintf("%g°", n.Angle))
	line("palette", strings.Join([]string{
		swatch(r.Palette.Fill.Hex()),
		swatch(r.Palette.Stroke.Hex()),
		swatch(r.Palette.Glow.Hex()),
	}, " "))
	for _, info := range r.Info {
		line("", info)
	}
	if n.Description != "" {
		line("about", n.Description)
	}

	return detailBox.Render(strings.Join(lines, "\n"))
}

// swatch renders a hex color in its own color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("● " + hex)
}

func stateColor(s grid.State) lipgloss.Color {
	switch s {
	case grid.StateLocked:
		return colorDim
	case grid.StateEligible:
		return colorYellow
	case grid.StateUnlocked:
		return colorGreen
	}
	return colorWhite
}
