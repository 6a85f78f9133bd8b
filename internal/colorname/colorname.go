// Package colorname resolves user-facing color names into lipgloss colors.
//
// Accepted forms are W3C/X11 names ("black", "grey", "royalblue"), "#rrggbb"
// hex triplets, and ANSI palette indexes ("0".."255").
package colorname

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Resolve converts name into a lipgloss color. It reports false for an empty
// or unknown name.
func Resolve(name string) (lipgloss.Color, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return lipgloss.Color(name), true
	}

	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault || !c.Valid() {
		return "", false
	}
	hex := c.Hex()
	if hex < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", hex)), true
}
