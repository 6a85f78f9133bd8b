package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runesMsg(string(r)))
	}
	return m
}

func TestPalette_FilterAndApply(t *testing.T) {
	m := New(testConfig("hello")).SetSize(60, 3)
	m.Buffer().SelectAll()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if !m.PaletteOpen() {
		t.Fatalf("palette not opened")
	}

	m = typeRunes(m, "ital")
	if got := m.Text(); got != "hello" {
		t.Fatalf("typing into the palette edited the text: %q", got)
	}
	lines := plainLines(m.View())
	if !strings.HasPrefix(lines[2], "format: ital") {
		t.Fatalf("palette prompt: got %q", lines[2])
	}
	if !strings.HasPrefix(lines[1], " I italic") {
		t.Fatalf("palette popup row: got %q", lines[1])
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.PaletteOpen() {
		t.Fatalf("palette still open after enter")
	}
	if got := m.Text(); got != "*hello*" {
		t.Fatalf("text after palette pick: got %q, want %q", got, "*hello*")
	}
}

func TestPalette_NavigateAndCancel(t *testing.T) {
	m := New(testConfig("x")).SetSize(60, 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.palette.selected; got != 2 {
		t.Fatalf("selected after two downs: got %d, want 2", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.palette.selected; got != 1 {
		t.Fatalf("selected after up: got %d, want 1", got)
	}

	m = typeRunes(m, "zzz")
	if got := len(m.palette.matches); got != 0 {
		t.Fatalf("matches for nonsense query: got %d", got)
	}
	if got := plainLines(m.View())[2]; !strings.Contains(got, "no match") {
		t.Fatalf("prompt without matches: got %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.PaletteOpen() {
		t.Fatalf("enter without matches must keep the palette open")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.PaletteOpen() {
		t.Fatalf("palette still open after esc")
	}
	if got := m.Text(); got != "x" {
		t.Fatalf("text changed: got %q", got)
	}
	if got := plainLines(m.View())[2]; !strings.HasPrefix(got, "Preview│") {
		t.Fatalf("button row not restored: got %q", got)
	}
}

func TestPalette_PopupFollowsSelection(t *testing.T) {
	m := New(testConfig("x")).SetSize(60, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})

	// Three content rows show the first three formats.
	lines := plainLines(m.View())
	if !strings.HasPrefix(lines[0], " H1 heading 1") || !strings.HasPrefix(lines[2], " H3 heading 3") {
		t.Fatalf("popup rows: got %q", lines[:3])
	}

	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	lines = plainLines(m.View())
	if !strings.HasPrefix(lines[2], " I italic") {
		t.Fatalf("selected row not scrolled into view: got %q", lines[:3])
	}
}
