package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdflourish/buffer"
	"github.com/iw2rmb/mdflourish/format"
	"github.com/iw2rmb/mdflourish/internal/colorname"
	"github.com/iw2rmb/mdflourish/preview"
)

type Model struct {
	cfg   Config
	style Style
	log   *zap.Logger

	buf         *buffer.Buffer
	formats     []format.Format
	defaultText string

	mode    Mode
	focused bool

	viewport viewport.Model
	preview  preview.Model
	width    int
	height   int

	palette paletteState

	mouseAnchor   int
	mouseDragging bool

	lastVersion     uint64
	lastTextVersion uint64
}

func New(cfg Config) Model {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if len(cfg.KeyMap.TogglePreview.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}

	formats := format.Defaults()
	if cfg.Formats != nil {
		formats = append([]format.Format(nil), cfg.Formats...)
	}

	style := cfg.Style
	if cfg.ForegroundColor != "" {
		if c, ok := colorname.Resolve(cfg.ForegroundColor); ok {
			style = style.tinted(c)
		} else {
			log.Warn("unknown foreground color", zap.String("color", cfg.ForegroundColor))
		}
	}

	m := Model{
		cfg:         cfg,
		style:       style,
		log:         log,
		buf:         buffer.New(cfg.DefaultText),
		formats:     formats,
		defaultText: buffer.NormalizeNewlines(cfg.DefaultText),
		focused:     true,
		viewport:    viewport.New(0, 0),
	}
	m.preview = preview.New(m.previewConfig())
	if cfg.OnlyPreview || cfg.ShowPreview {
		m.mode = Previewing
		m.preview = m.preview.SetText(m.buf.Text())
	}
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.refreshInput()
	return m
}

func (m Model) previewConfig() preview.Config {
	styles := preview.DefaultStyles()
	if m.cfg.MarkdownStyle != nil {
		merged, err := preview.MergeStyles(styles, *m.cfg.MarkdownStyle)
		if err != nil {
			m.log.Warn("merge markdown style", zap.Error(err))
		} else {
			styles = merged
		}
	}
	return preview.Config{
		Styles:          &styles,
		Placeholder:     m.cfg.Placeholder,
		OnLink:          m.cfg.OnLink,
		Status:          m.style.LinkStatus,
		RendererOptions: m.cfg.PreviewOptions,
		Logger:          m.log.Named("preview"),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Buffer returns the underlying document. Mutations made through it are
// reported on the next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Text() string { return m.buf.Text() }

func (m Model) Selection() buffer.Selection { return m.buf.Selection() }

func (m Model) Mode() Mode { return m.mode }

// Formats returns the formats backing the button row.
func (m Model) Formats() []format.Format {
	return append([]format.Format(nil), m.formats...)
}

// Host returns the capability that formatting actions run against.
func (m Model) Host() format.Host { return format.BufferHost{Buf: m.buf} }

func (m Model) Focus() Model {
	m.focused = true
	m.refreshInput()
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	m.palette = paletteState{}
	m.refreshInput()
	return m
}

func (m Model) Focused() bool { return m.focused }

// InputFocused reports whether keystrokes edit the text: the component is
// focused and in Editing mode.
func (m Model) InputFocused() bool { return m.focused && m.mode == Editing }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	h := m.contentHeight()
	m.viewport.Width = width
	m.viewport.Height = h
	m.preview = m.preview.SetSize(width, h)
	m.refreshInput()
	return m
}

func (m Model) toolbarHeight() int {
	if m.cfg.OnlyPreview {
		return 0
	}
	return 1
}

func (m Model) contentHeight() int {
	h := m.height - m.toolbarHeight()
	if h < 0 {
		return 0
	}
	return h
}

// TogglePreview flips between Editing and Previewing. It is a no-op when
// the editor is pinned to the preview.
func (m Model) TogglePreview() Model {
	if m.cfg.OnlyPreview {
		return m
	}
	m.mode = Transition(m.mode, EventToggle)
	m.palette = paletteState{}
	m.mouseDragging = false
	if m.mode == Previewing {
		m.preview = m.preview.SetText(m.buf.Text())
	}
	m.log.Debug("mode changed", zap.Stringer("mode", m.mode))
	m.refreshInput()
	return m
}

// ApplyFormat runs f against the current text and selection. Formats are
// ignored while previewing.
func (m Model) ApplyFormat(f format.Format) Model {
	if m.mode != Editing || f.Action == nil {
		return m
	}
	if format.Apply(m.Host(), f.Action) {
		m.log.Debug("format applied", zap.String("format", f.Key))
	}
	m.sync()
	return m
}

// SetDefaultText updates the externally supplied default. The text is
// replaced only while it still equals the previous default; once the user
// has edited it, their text is kept. The remembered default always advances.
func (m Model) SetDefaultText(text string) Model {
	text = buffer.NormalizeNewlines(text)
	prev := m.defaultText
	m.defaultText = text
	if text == prev || m.buf.Text() != prev {
		return m
	}
	m.buf.SetState(text, buffer.Caret(0), buffer.ChangeSourceSync)
	m.log.Debug("default text applied", zap.Int("len", m.buf.Len()))
	m.sync()
	return m
}

// sync reports buffer changes made since the last call and refreshes the
// derived views.
func (m *Model) sync() {
	v, tv := m.buf.Version(), m.buf.TextVersion()
	if v == m.lastVersion {
		return
	}
	textChanged := tv != m.lastTextVersion
	m.lastVersion, m.lastTextVersion = v, tv

	if textChanged {
		if m.mode == Previewing {
			m.preview = m.preview.SetText(m.buf.Text())
		}
		if m.cfg.OnMarkdownChange != nil {
			m.cfg.OnMarkdownChange(m.buf.Text())
		}
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
	m.refreshInput()
}

func (m Model) View() string {
	body := m.viewport.View()
	if m.mode == Previewing {
		body = m.preview.View()
	} else if m.palette.open {
		body = m.paletteOverlay(body)
	}
	if m.toolbarHeight() == 0 {
		return body
	}
	return body + "\n" + m.toolbarView()
}
