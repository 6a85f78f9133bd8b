package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/mdflourish"
	"github.com/iw2rmb/mdflourish/editor"
)

const defaultText = `# mdflourish

Select some text and press **alt+b**, or click a button below.

- ctrl+p toggles the preview
- ctrl+k opens the format palette
- ctrl+q quits and prints the text

[Project page](https://github.com/iw2rmb/mdflourish)
`

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

type options struct {
	logPath     string
	showPreview bool
	onlyPreview bool
	foreground  string
	placeholder string
	version     bool
	file        string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("mdflourish", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.logPath, "log", "", "write JSON logs to `file`")
	fs.BoolVar(&o.showPreview, "preview", false, "start in preview mode")
	fs.BoolVar(&o.onlyPreview, "only-preview", false, "show only the rendered preview")
	fs.StringVar(&o.foreground, "fg", "", "button tint: color name, #rrggbb, or ANSI index")
	fs.StringVar(&o.placeholder, "placeholder", "Write some markdown...", "text shown while the document is empty")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 1 {
		return o, errors.New("at most one input file")
	}
	o.file = fs.Arg(0)
	return o, nil
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return logger, nil
}

// openURL hands url to the platform opener without waiting for it.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	return cmd.Process.Release()
}

type model struct {
	editor editor.Model
	quit   key.Binding
}

func newModel(o options, text string, logger *zap.Logger) model {
	cfg := editor.Config{
		DefaultText:     text,
		ShowPreview:     o.showPreview,
		OnlyPreview:     o.onlyPreview,
		Placeholder:     o.placeholder,
		ForegroundColor: o.foreground,
		Style:           editor.DefaultStyle(),
		Clipboard:       systemClipboard{},
		OnLink:          openURL,
		Logger:          logger.Named("editor"),
		OnMarkdownChange: func(s string) {
			logger.Debug("markdown changed", zap.Int("runes", len([]rune(s))))
		},
	}
	return model{
		editor: editor.New(cfg),
		quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.version {
		_, err := fmt.Fprintln(stdout, mdflourish.Banner())
		return err
	}

	text := defaultText
	if o.file != "" {
		b, err := os.ReadFile(o.file)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = string(b)
	}

	logger, err := newLogger(o.logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("version", mdflourish.Version()), zap.Bool("preview", o.showPreview || o.onlyPreview))

	p := tea.NewProgram(newModel(o, text, logger), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(model); ok {
		_, err = fmt.Fprint(stdout, fm.editor.Text())
	}
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
