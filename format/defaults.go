package format

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Format describes one button of the formatting row.
type Format struct {
	// Key is a stable identifier, unique within a format list.
	Key string
	// Title is the button label.
	Title string
	// Help is a short description used by the palette and help views.
	Help string

	Binding key.Binding
	// Style is applied to the default button on top of the row style.
	Style lipgloss.Style

	Action Action
}

// Keys of the default formats.
const (
	KeyHeading1    = "h1"
	KeyHeading2    = "h2"
	KeyHeading3    = "h3"
	KeyBold        = "bold"
	KeyItalic      = "italic"
	KeyStrike      = "strike"
	KeyCode        = "code"
	KeyQuote       = "quote"
	KeyList        = "list"
	KeyOrderedList = "ordered-list"
	KeyLink        = "link"
)

var defaultFormats = []Format{
	{
		Key:     KeyHeading1,
		Title:   "H1",
		Help:    "heading 1",
		Binding: key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "heading 1")),
		Action:  PrefixLine("# "),
	},
	{
		Key:     KeyHeading2,
		Title:   "H2",
		Help:    "heading 2",
		Binding: key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "heading 2")),
		Action:  PrefixLine("## "),
	},
	{
		Key:     KeyHeading3,
		Title:   "H3",
		Help:    "heading 3",
		Binding: key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "heading 3")),
		Action:  PrefixLine("### "),
	},
	{
		Key:     KeyBold,
		Title:   "B",
		Help:    "bold",
		Binding: key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Style:   lipgloss.NewStyle().Bold(true),
		Action:  Wrap("**", "**"),
	},
	{
		Key:     KeyItalic,
		Title:   "I",
		Help:    "italic",
		Binding: key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Style:   lipgloss.NewStyle().Italic(true),
		Action:  Wrap("*", "*"),
	},
	{
		Key:     KeyStrike,
		Title:   "S",
		Help:    "strikethrough",
		Binding: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strikethrough")),
		Style:   lipgloss.NewStyle().Strikethrough(true),
		Action:  Wrap("~~", "~~"),
	},
	{
		Key:     KeyCode,
		Title:   "<>",
		Help:    "code",
		Binding: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code")),
		Action:  WrapBlock("`", "```"),
	},
	{
		Key:     KeyQuote,
		Title:   ">",
		Help:    "blockquote",
		Binding: key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "blockquote")),
		Action:  PrefixLine("> "),
	},
	{
		Key:     KeyList,
		Title:   "-",
		Help:    "list item",
		Binding: key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "list item")),
		Action:  PrefixLine("- "),
	},
	{
		Key:     KeyOrderedList,
		Title:   "1.",
		Help:    "numbered list item",
		Binding: key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "numbered item")),
		Action:  PrefixLine("1. "),
	},
	{
		Key:     KeyLink,
		Title:   "Link",
		Help:    "link",
		Binding: key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "link")),
		Style:   lipgloss.NewStyle().Underline(true),
		Action:  Link(DefaultLinkPlaceholder),
	},
}

// Defaults returns a copy of the default format list, in button order.
// Changing the returned slice does not affect later calls.
func Defaults() []Format {
	out := make([]Format, len(defaultFormats))
	copy(out, defaultFormats)
	return out
}

// Find returns the format with the given key.
func Find(formats []Format, k string) (Format, bool) {
	for _, f := range formats {
		if f.Key == k {
			return f, true
		}
	}
	return Format{}, false
}
