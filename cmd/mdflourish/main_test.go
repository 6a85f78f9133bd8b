package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdflourish"
	"github.com/iw2rmb/mdflourish/editor"
)

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"-version"}, &out, &errOut); err != nil {
		t.Fatalf("run -version: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), mdflourish.Banner(); got != want {
		t.Fatalf("version output: got %q, want %q", got, want)
	}
}

func TestParseFlags(t *testing.T) {
	var errOut bytes.Buffer
	o, err := parseFlags([]string{"-only-preview", "-fg", "grey", "notes.md"}, &errOut)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !o.onlyPreview || o.foreground != "grey" || o.file != "notes.md" {
		t.Fatalf("options: got %+v", o)
	}

	if _, err := parseFlags([]string{"a.md", "b.md"}, &errOut); err == nil {
		t.Fatalf("expected error for two input files")
	}
	if _, err := parseFlags([]string{"-nope"}, &errOut); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdflourish.log")
	logger, err := newLogger(path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hello", zap.String("k", "v"))
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"hello"`) || !strings.Contains(string(b), `"k":"v"`) {
		t.Fatalf("log content: %s", b)
	}
}

func TestModel_QuitAndForwarding(t *testing.T) {
	m := newModel(options{}, "hi", zap.NewNop())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	m = updated.(model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	m = updated.(model)
	if got := m.editor.Text(); got != "!hi" {
		t.Fatalf("text: got %q, want %q", got, "!hi")
	}
	if m.editor.Mode() != editor.Editing {
		t.Fatalf("mode: got %v", m.editor.Mode())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
