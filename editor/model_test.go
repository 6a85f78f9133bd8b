package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/mdflourish/buffer"
	"github.com/iw2rmb/mdflourish/format"
)

func TestNew_InitialMode(t *testing.T) {
	cases := []struct {
		name        string
		show, only  bool
		want        Mode
		wantFocused bool
	}{
		{name: "editing", want: Editing, wantFocused: true},
		{name: "show preview", show: true, want: Previewing},
		{name: "only preview", only: true, want: Previewing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig("x")
			cfg.ShowPreview = tc.show
			cfg.OnlyPreview = tc.only
			m := New(cfg)
			if m.Mode() != tc.want {
				t.Fatalf("mode: got %v, want %v", m.Mode(), tc.want)
			}
			if m.InputFocused() != tc.wantFocused {
				t.Fatalf("input focused: got %v, want %v", m.InputFocused(), tc.wantFocused)
			}
		})
	}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(testConfig("a\nb\nc")).Blur()

	m = m.SetSize(20, 3)
	if got := lipgloss.Height(m.View()); got != 3 {
		t.Fatalf("height after SetSize(20,3): got %d, want %d", got, 3)
	}

	m = m.SetSize(20, 6)
	if got := lipgloss.Height(m.View()); got != 6 {
		t.Fatalf("height after SetSize(20,6): got %d, want %d", got, 6)
	}

	m = m.TogglePreview()
	if got := lipgloss.Height(m.View()); got != 6 {
		t.Fatalf("preview height after SetSize(20,6): got %d, want %d", got, 6)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(testConfig("one\ntwo\nthree")).Blur().SetSize(40, 3)

	got := plainLines(m.View())
	want := []string{
		"one",
		"two",
		"Preview│H1H2H3BIS<>>-1.Link",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestView_OnlyPreviewHidesButtonRow(t *testing.T) {
	cfg := testConfig("# Title")
	cfg.OnlyPreview = true
	m := New(cfg).SetSize(30, 4)

	view := xansi.Strip(m.View())
	if strings.Contains(view, "Preview│") {
		t.Fatalf("button row rendered with OnlyPreview:\n%s", view)
	}
	if !strings.Contains(view, "Title") {
		t.Fatalf("rendered markdown missing:\n%s", view)
	}
}

func TestView_PlaceholderInInputAndPreview(t *testing.T) {
	cfg := testConfig("")
	cfg.Placeholder = "Write something"
	m := New(cfg).Blur().SetSize(40, 4)

	if got := plainLines(m.View())[0]; got != "Write something" {
		t.Fatalf("input placeholder: got %q", got)
	}

	m = m.TogglePreview()
	if !strings.Contains(xansi.Strip(m.View()), "Write something") {
		t.Fatalf("preview placeholder missing:\n%s", m.View())
	}
}

func TestView_SoftWrapKeepsCursorVisible(t *testing.T) {
	m := New(testConfig("")).SetSize(6, 3)
	m, _ = m.Update(runesMsg("abcdefghijklmnop"))

	got := plainLines(m.View())
	if got[len(got)-2] != "p" {
		t.Fatalf("last input row: got %q, want %q (view %q)", got[len(got)-2], "p", got)
	}
}

func TestSetDefaultText_DivergenceGuard(t *testing.T) {
	var changes []string
	cfg := testConfig("draft")
	cfg.OnMarkdownChange = func(s string) { changes = append(changes, s) }
	m := New(cfg)
	m.Buffer().SetCursor(5)

	m = m.SetDefaultText("loaded")
	if got := m.Text(); got != "loaded" {
		t.Fatalf("text after default change: got %q, want %q", got, "loaded")
	}
	if got := m.Selection(); got != buffer.Caret(0) {
		t.Fatalf("selection after default change: got %+v, want caret at 0", got)
	}

	m, _ = m.Update(runesMsg("X"))
	if got := m.Text(); got != "Xloaded" {
		t.Fatalf("text after typing: got %q", got)
	}

	m = m.SetDefaultText("server")
	if got := m.Text(); got != "Xloaded" {
		t.Fatalf("diverged text overwritten: got %q", got)
	}
	m = m.SetDefaultText("again")
	if got := m.Text(); got != "Xloaded" {
		t.Fatalf("diverged text overwritten by later default: got %q", got)
	}

	if diff := cmp.Diff([]string{"loaded", "Xloaded"}, changes); diff != "" {
		t.Fatalf("OnMarkdownChange calls (-want +got):\n%s", diff)
	}
}

func TestSetDefaultText_CRLFDefaultStillResyncs(t *testing.T) {
	m := New(testConfig("a\r\nb"))
	if got := m.Text(); got != "a\nb" {
		t.Fatalf("initial text: got %q, want %q", got, "a\nb")
	}

	m = m.SetDefaultText("fresh\r\nline")
	if got := m.Text(); got != "fresh\nline" {
		t.Fatalf("untouched CRLF default not replaced: got %q", got)
	}
	m = m.SetDefaultText("third")
	if got := m.Text(); got != "third" {
		t.Fatalf("second default not applied: got %q", got)
	}
}

func TestSetDefaultText_SameDefaultIsNoop(t *testing.T) {
	calls := 0
	cfg := testConfig("same")
	cfg.OnChange = func(ChangeEvent) { calls++ }
	m := New(cfg)
	m.Buffer().SetCursor(2)
	m, _ = m.Update(nil)
	calls = 0

	m = m.SetDefaultText("same")
	if m.Selection() != buffer.Caret(2) || calls != 0 {
		t.Fatalf("same default changed state: sel %+v, calls %d", m.Selection(), calls)
	}
}

func TestNew_ForegroundColorTintsToolbar(t *testing.T) {
	cfg := testConfig("")
	cfg.ForegroundColor = "black"
	m := New(cfg)
	if got, want := m.style.Foreground, lipgloss.TerminalColor(lipgloss.Color("#000000")); got != want {
		t.Fatalf("foreground: got %v, want %v", got, want)
	}
	if got := m.style.Button.GetForeground(); got != lipgloss.Color("#000000") {
		t.Fatalf("button foreground: got %v", got)
	}

	cfg.ForegroundColor = "no-such-color"
	m = New(cfg)
	if m.style.Foreground != nil {
		t.Fatalf("unknown color must leave the style untouched, got %v", m.style.Foreground)
	}
}

func TestNew_FormatsAreCopied(t *testing.T) {
	custom := []format.Format{{Key: "x", Title: "X", Action: format.Wrap("x", "x")}}
	m := New(Config{Formats: custom})
	custom[0].Title = "changed"
	if got := m.Formats()[0].Title; got != "X" {
		t.Fatalf("format title: got %q, want %q", got, "X")
	}

	if got := len(New(Config{}).Formats()); got != len(format.Defaults()) {
		t.Fatalf("default formats: got %d, want %d", got, len(format.Defaults()))
	}
}

func TestNew_MarkdownStyleMergedOntoDefaults(t *testing.T) {
	red := "#ff0000"
	cfg := testConfig("[a](http://a)")
	cfg.MarkdownStyle = &ansi.StyleConfig{Link: ansi.StylePrimitive{Color: &red}}
	m := New(cfg)

	pc := m.previewConfig()
	if pc.Styles == nil || pc.Styles.Link.Color == nil || *pc.Styles.Link.Color != red {
		t.Fatalf("merged link color missing: %+v", pc.Styles)
	}
	if pc.Styles.Link.Underline == nil || !*pc.Styles.Link.Underline {
		t.Fatalf("default link underline lost in merge")
	}
}
