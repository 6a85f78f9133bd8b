package colorname

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		want lipgloss.Color
		ok   bool
	}{
		{name: "black", want: "#000000", ok: true},
		{name: "Blue", want: "#0000ff", ok: true},
		{name: "#97C0D8", want: "#97c0d8", ok: true},
		{name: "240", want: "240", ok: true},
		{name: " red ", want: "#ff0000", ok: true},
		{name: "", ok: false},
		{name: "not-a-color", ok: false},
		{name: "999", ok: false},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.name)
		if ok != tc.ok {
			t.Fatalf("Resolve(%q) ok: got %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("Resolve(%q): got %q, want %q", tc.name, got, tc.want)
		}
	}
}
