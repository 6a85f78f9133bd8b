package editor

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdflourish/format"
)

const defaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// DefaultText is the initial markdown. Later defaults are applied with
	// Model.SetDefaultText.
	DefaultText string

	// OnMarkdownChange is called with the full text after every edit that
	// changes it.
	OnMarkdownChange func(text string)
	// OnChange is called after every effective text, cursor, or selection
	// change.
	OnChange func(ChangeEvent)

	// ShowPreview starts the editor in Previewing mode.
	ShowPreview bool
	// OnlyPreview pins the editor to Previewing mode and hides the button row.
	OnlyPreview bool

	// Placeholder is shown in the input and in the preview while the text is
	// empty.
	Placeholder string

	// MarkdownStyle is merged onto preview.DefaultStyles. Only fields set in
	// MarkdownStyle replace the defaults.
	MarkdownStyle *ansi.StyleConfig
	// PreviewOptions are passed to the glamour renderer after the style table.
	PreviewOptions []glamour.TermRendererOption

	// Formats replaces the default format set. Nil selects format.Defaults.
	Formats []format.Format
	// ButtonRenderer replaces the default button rendering.
	ButtonRenderer ButtonRenderer

	// ForegroundColor tints the preview toggle, the separator, and the default
	// buttons. It accepts color names ("black", "grey"), "#rrggbb", and ANSI
	// indexes. Unknown names leave Style untouched.
	ForegroundColor string

	Style  Style
	KeyMap KeyMap

	Clipboard Clipboard

	// OnLink opens a link activated in the preview.
	OnLink func(url string) error

	Logger *zap.Logger

	// TabWidth is the tab stop width of the input. Zero selects 4.
	TabWidth int
}
