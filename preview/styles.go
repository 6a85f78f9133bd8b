package preview

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/glamour/ansi"
)

// Palette used by DefaultStyles.
const (
	colorText       = "#222222"
	colorQuote      = "#808080"
	colorLink       = "#0000ff"
	colorRule       = "#cccccc"
	colorNumber     = "#97C0D8"
	colorCodeBg     = "#dddddd"
	colorInlineCode = "#eeeeee"
)

const defaultMargin = 1

// DefaultStyles returns the fixed style table used for the preview.
//
// Terminals have a single font size, so heading levels are told apart by
// their prefix and weight rather than by size.
func DefaultStyles() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				BlockSuffix: "\n",
				Color:       stringPtr(colorText),
			},
			Margin: uintPtr(defaultMargin),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(colorQuote)},
			Indent:         uintPtr(1),
			IndentToken:    stringPtr("│ "),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(colorText),
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "# ", Underline: boolPtr(true)},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "## "},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "### "},
		},
		H4: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "#### "},
		},
		H5: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "##### ", Bold: boolPtr(false)},
		},
		H6: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "###### ", Bold: boolPtr(false), Faint: boolPtr(true)},
		},
		Text: ansi.StylePrimitive{
			Color: stringPtr(colorText),
		},
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  stringPtr(colorRule),
			Format: "\n────────\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
			Color:       stringPtr(colorNumber),
			Bold:        boolPtr(true),
		},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(colorLink),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: stringPtr(colorLink),
		},
		Image: ansi.StylePrimitive{
			Color:     stringPtr(colorLink),
			Underline: boolPtr(true),
		},
		ImageText: ansi.StylePrimitive{
			Color:  stringPtr(colorQuote),
			Format: "Image: {{.text}} →",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix:          " ",
				Suffix:          " ",
				Color:           stringPtr(colorText),
				BackgroundColor: stringPtr(colorInlineCode),
				Bold:            boolPtr(true),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color:           stringPtr(colorText),
					BackgroundColor: stringPtr(colorCodeBg),
				},
				Margin: uintPtr(2),
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(colorText)},
			},
			CenterSeparator: stringPtr("┼"),
			ColumnSeparator: stringPtr("│"),
			RowSeparator:    stringPtr("─"),
		},
	}
}

// MergeStyles layers overrides onto base, in order.
//
// Only fields set in an override replace the base: non-nil pointers and
// non-empty strings. Nested blocks merge field by field. base is never
// modified.
func MergeStyles(base ansi.StyleConfig, overrides ...ansi.StyleConfig) (ansi.StyleConfig, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return base, fmt.Errorf("encode base style: %w", err)
	}
	// Decoding into a fresh value detaches every pointer from base.
	var out ansi.StyleConfig
	if err := json.Unmarshal(raw, &out); err != nil {
		return base, fmt.Errorf("decode base style: %w", err)
	}

	for i, o := range overrides {
		patch, err := json.Marshal(o)
		if err != nil {
			return base, fmt.Errorf("encode style override %d: %w", i, err)
		}
		if err := json.Unmarshal(patch, &out); err != nil {
			return base, fmt.Errorf("apply style override %d: %w", i, err)
		}
	}
	return out, nil
}

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }
