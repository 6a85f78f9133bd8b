package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// Config configures the preview Model.
type Config struct {
	// Styles is the full style table. The zero value selects DefaultStyles.
	Styles *ansi.StyleConfig
	// Placeholder is rendered when the text is empty.
	Placeholder string

	// OnLink opens a link target. It runs inside a tea.Cmd; a nil OnLink
	// disables link activation.
	OnLink func(url string) error

	KeyMap KeyMap
	// Status styles the link status line.
	Status lipgloss.Style

	// RendererOptions are passed to glamour after the style table.
	RendererOptions []glamour.TermRendererOption

	Logger *zap.Logger
}

// KeyMap defines the preview bindings. Scrolling uses the viewport's own
// bindings.
type KeyMap struct {
	NextLink key.Binding
	PrevLink key.Binding
	OpenLink key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextLink: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next link")),
		PrevLink: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous link")),
		OpenLink: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open link")),
	}
}

// LinkOpenedMsg reports the result of activating a link.
type LinkOpenedMsg struct {
	URL string
	Err error
}

// Model is a read-only, scrollable view of rendered markdown.
type Model struct {
	cfg    Config
	styles ansi.StyleConfig
	log    *zap.Logger

	viewport viewport.Model
	width    int
	height   int

	text     string
	rendered string
	links    []Link
	focused  int // index into links, -1 when no link is focused

	renderer *Renderer
}

func New(cfg Config) Model {
	m := Model{
		cfg:      cfg,
		styles:   DefaultStyles(),
		log:      cfg.Logger,
		viewport: viewport.New(0, 0),
		focused:  -1,
	}
	if cfg.Styles != nil {
		m.styles = *cfg.Styles
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if len(m.cfg.KeyMap.OpenLink.Keys()) == 0 {
		m.cfg.KeyMap = DefaultKeyMap()
	}
	m.rerender()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// SetText replaces the previewed markdown.
func (m Model) SetText(text string) Model {
	if text == m.text && m.renderer != nil {
		return m
	}
	m.text = text
	m.links = Links(text)
	if m.focused >= len(m.links) {
		m.focused = -1
	}
	m.rerender()
	return m
}

func (m Model) Text() string { return m.text }

// Links returns the links of the current text in document order.
func (m Model) Links() []Link { return append([]Link(nil), m.links...) }

// FocusedLink returns the link that OpenLink would activate.
func (m Model) FocusedLink() (Link, bool) {
	if m.focused < 0 || m.focused >= len(m.links) {
		return Link{}, false
	}
	return m.links[m.focused], true
}

// Rendered returns the full rendered document.
func (m Model) Rendered() string { return m.rendered }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == m.width && height == m.height {
		return m
	}
	widthChanged := width != m.width
	m.width, m.height = width, height
	m.layout()
	if widthChanged {
		m.renderer = nil
		m.rerender()
	}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case LinkOpenedMsg:
		if msg.Err != nil {
			m.log.Warn("open link", zap.String("url", msg.URL), zap.Error(msg.Err))
		} else {
			m.log.Debug("opened link", zap.String("url", msg.URL))
		}
		return m, nil
	case tea.KeyMsg:
		km := m.cfg.KeyMap
		switch {
		case key.Matches(msg, km.NextLink):
			m.cycleLink(1)
			return m, nil
		case key.Matches(msg, km.PrevLink):
			m.cycleLink(-1)
			return m, nil
		case key.Matches(msg, km.OpenLink):
			return m, m.openFocusedLink()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	status := m.statusLine()
	if status == "" {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + status
}

func (m *Model) cycleLink(delta int) {
	n := len(m.links)
	if n == 0 {
		return
	}
	switch {
	case m.focused < 0 && delta > 0:
		m.focused = 0
	case m.focused < 0:
		m.focused = n - 1
	default:
		m.focused = ((m.focused+delta)%n + n) % n
	}
	m.scrollToFocusedLink()
}

func (m Model) openFocusedLink() tea.Cmd {
	l, ok := m.FocusedLink()
	if !ok || m.cfg.OnLink == nil {
		return nil
	}
	open := m.cfg.OnLink
	return func() tea.Msg {
		return LinkOpenedMsg{URL: l.URL, Err: open(l.URL)}
	}
}

// scrollToFocusedLink scrolls to the first rendered line that mentions the
// focused link's URL or text.
func (m *Model) scrollToFocusedLink() {
	l, ok := m.FocusedLink()
	if !ok || m.viewport.Height <= 0 {
		return
	}
	lines := strings.Split(xansi.Strip(m.rendered), "\n")
	for i, line := range lines {
		if (l.URL != "" && strings.Contains(line, l.URL)) || (l.Text != "" && strings.Contains(line, l.Text)) {
			if i < m.viewport.YOffset || i >= m.viewport.YOffset+m.viewport.Height {
				m.viewport.SetYOffset(i)
			}
			return
		}
	}
}

func (m Model) statusLine() string {
	if len(m.links) == 0 {
		return ""
	}
	var s string
	if l, ok := m.FocusedLink(); ok {
		s = fmt.Sprintf("link %d/%d: %s", m.focused+1, len(m.links), l.URL)
	} else {
		s = fmt.Sprintf("%d links, %s to select", len(m.links), m.cfg.KeyMap.NextLink.Help().Key)
	}
	if m.width > 0 {
		s = xansi.Truncate(s, m.width, "…")
	}
	return m.cfg.Status.Render(s)
}

func (m *Model) layout() {
	h := m.height
	if len(m.links) > 0 && h > 0 {
		h--
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func (m *Model) rerender() {
	m.layout()
	if m.renderer == nil {
		r, err := NewRenderer(m.styles, m.width, m.cfg.RendererOptions...)
		if err != nil {
			m.log.Error("create preview renderer", zap.Error(err))
		}
		m.renderer = r
	}

	src := m.text
	if src == "" {
		src = m.cfg.Placeholder
	}
	out := src
	if m.renderer != nil {
		rendered, err := m.renderer.Render(m.text, m.cfg.Placeholder)
		if err != nil {
			m.log.Warn("render preview", zap.Error(err))
		} else {
			out = rendered
		}
	}
	m.rendered = out
	m.viewport.SetContent(out)
}
