package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/palette"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func browse(t *testing.T, m NodeBrowserModel, keys ...string) NodeBrowserModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(NodeBrowserModel)
	}
	return m
}

func sampleRows(t *testing.T) []NodeRow {
	t.Helper()
	rows, err := nodeRows(grid.Default())
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestNodeRows(t *testing.T) {
	cfg := grid.Default()
	rows := sampleRows(t)
	if len(rows) != len(cfg.Nodes) {
		t.Fatalf("got %d rows, want %d", len(rows), len(cfg.Nodes))
	}
	for i, r := range rows {
		if r.Node.ID != cfg.Nodes[i].ID || r.Placement.ID != r.Node.ID {
			t.Errorf("row %d: node %q placement %q", i, r.Node.ID, r.Placement.ID)
		}
		if r.Placement.Size <= 0 {
			t.Errorf("row %d: size %v", i, r.Placement.Size)
		}
		if r.Palette.Fill != palette.For(r.Node.State).Fill {
			t.Errorf("row %d: palette does not follow state %s", i, r.Node.State)
		}
	}
}

func TestNodeRowsUnknownTier(t *testing.T) {
	cfg := grid.Default()
	cfg.Nodes[1].Tier = "R999"
	if _, err := nodeRows(cfg); err == nil {
		t.Error("nodeRows should fail on an unknown tier")
	}
}

func TestNodeBrowserNavigation(t *testing.T) {
	rows := sampleRows(t)
	m := NewNodeBrowserModel("test", rows)
	m.Height = 3

	m = browse(t, m, "up")
	if m.Cursor != 0 {
		t.Errorf("up at top: cursor = %d", m.Cursor)
	}

	m = browse(t, m, "down", "j", "down", "j")
	if m.Cursor != 4 {
		t.Errorf("cursor = %d, want 4", m.Cursor)
	}
	if m.Offset != 2 {
		t.Errorf("offset = %d, want 2", m.Offset)
	}

	m = browse(t, m, "k", "up", "k")
	if m.Cursor != 1 || m.Offset != 1 {
		t.Errorf("cursor, offset = %d, %d; want 1, 1", m.Cursor, m.Offset)
	}

	m = browse(t, m, "G")
	if m.Cursor != len(rows)-1 || m.Offset != len(rows)-3 {
		t.Errorf("G: cursor, offset = %d, %d", m.Cursor, m.Offset)
	}
	m = browse(t, m, "down")
	if m.Cursor != len(rows)-1 {
		t.Errorf("down at bottom moved cursor to %d", m.Cursor)
	}

	m = browse(t, m, "g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("g: cursor, offset = %d, %d", m.Cursor, m.Offset)
	}
}

func TestNodeBrowserQuit(t *testing.T) {
	m := NewNodeBrowserModel("test", sampleRows(t))
	for _, k := range []string{"q", "esc"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestNodeBrowserWindowSize(t *testing.T) {
	m := NewNodeBrowserModel("test", sampleRows(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	if h := next.(NodeBrowserModel).Height; h != 5 {
		t.Errorf("height = %d, want minimum 5", h)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if h := next.(NodeBrowserModel).Height; h != 20 {
		t.Errorf("height = %d, want 20", h)
	}
}

func TestNodeBrowserView(t *testing.T) {
	rows := sampleRows(t)
	m := NewNodeBrowserModel("Sphere Grid", rows)
	m = browse(t, m, "down")
	r := rows[1]

	view := m.View()
	for _, want := range []string{"Sphere Grid", r.Node.ID, "anchor", r.Palette.Fill.Hex(), "[2/"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	for _, line := range r.Info {
		if !strings.Contains(view, line) {
			t.Errorf("view missing info line %q", line)
		}
	}

	empty := NewNodeBrowserModel("empty", nil).View()
	if !strings.Contains(empty, "no nodes") {
		t.Errorf("empty view = %q", empty)
	}
}
