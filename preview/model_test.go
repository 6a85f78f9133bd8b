package preview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

func plainConfig() Config {
	return Config{
		RendererOptions: []glamour.TermRendererOption{glamour.WithColorProfile(termenv.Ascii)},
	}
}

func TestRenderer_PlaceholderForEmptyText(t *testing.T) {
	r, err := NewRenderer(DefaultStyles(), 40, glamour.WithColorProfile(termenv.Ascii))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := r.Render("", "Nothing to preview")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "Nothing to preview") {
		t.Fatalf("placeholder missing from %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("render output keeps trailing newline: %q", got)
	}

	got, err = r.Render("**hello** world", "Nothing to preview")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "Nothing to preview") || !strings.Contains(got, "hello") {
		t.Fatalf("unexpected render %q", got)
	}
	if strings.Contains(got, "**") {
		t.Fatalf("markers not rendered: %q", got)
	}
}

func TestModel_RendersPlaceholderAndText(t *testing.T) {
	cfg := plainConfig()
	cfg.Placeholder = "Start typing"
	m := New(cfg).SetSize(40, 5)

	if !strings.Contains(m.Rendered(), "Start typing") {
		t.Fatalf("placeholder not rendered: %q", m.Rendered())
	}

	m = m.SetText("# Heading")
	if !strings.Contains(m.Rendered(), "Heading") {
		t.Fatalf("text not rendered: %q", m.Rendered())
	}
	if m.Text() != "# Heading" {
		t.Fatalf("text: got %q", m.Text())
	}
}

func TestModel_CycleLinksAndOpen(t *testing.T) {
	var opened []string
	cfg := plainConfig()
	cfg.OnLink = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	m := New(cfg).SetSize(60, 6).SetText("[a](http://a.example) and [b](http://b.example)")

	if _, ok := m.FocusedLink(); ok {
		t.Fatalf("no link should be focused initially")
	}

	steps := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: "http://a.example"},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: "http://b.example"},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: "http://a.example"},
		{msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: "http://b.example"},
	}
	for i, st := range steps {
		m, _ = m.Update(st.msg)
		l, ok := m.FocusedLink()
		if !ok || l.URL != st.want {
			t.Fatalf("step %d: focused %q (ok=%v), want %q", i, l.URL, ok, st.want)
		}
	}

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected open command")
	}
	msg, ok := cmd().(LinkOpenedMsg)
	if !ok {
		t.Fatalf("command message: got %T, want LinkOpenedMsg", msg)
	}
	if msg.URL != "http://b.example" || msg.Err != nil {
		t.Fatalf("opened msg: got %+v", msg)
	}
	if len(opened) != 1 || opened[0] != "http://b.example" {
		t.Fatalf("OnLink calls: got %v", opened)
	}

	m, _ = m.Update(LinkOpenedMsg{URL: "http://b.example", Err: errors.New("no browser")})
	if !strings.Contains(m.View(), "link 2/2") {
		t.Fatalf("status line missing from view:\n%s", m.View())
	}
}

func TestModel_OpenWithoutHandlerIsNoop(t *testing.T) {
	m := New(plainConfig()).SetSize(40, 4).SetText("[a](http://a.example)")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("expected nil command without OnLink")
	}
}

func TestModel_SetTextDropsStaleFocus(t *testing.T) {
	m := New(plainConfig()).SetSize(40, 4).SetText("[a](http://a) [b](http://b)")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if l, _ := m.FocusedLink(); l.URL != "http://b" {
		t.Fatalf("focused: got %q, want %q", l.URL, "http://b")
	}

	m = m.SetText("[a](http://a)")
	if _, ok := m.FocusedLink(); ok {
		t.Fatalf("stale focus kept after text change")
	}
	if got := len(m.Links()); got != 1 {
		t.Fatalf("links: got %d, want 1", got)
	}
}
