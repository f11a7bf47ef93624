// Package main is the entry point for the vir editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/ionut-t/vir/adapter-bubbletea"
	"github.com/ionut-t/vir/config"
	"github.com/ionut-t/vir/core"
)

const messageDuration = 3 * time.Second

// logEnv names a log file to write to, like -log.
const logEnv = "VIR_LOG"

type options struct {
	configPath string
	logPath    string
	file       string
}

type Model struct {
	editor editor.Model
	file   string
	perm   os.FileMode
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.SaveMsg:
		if err := os.WriteFile(m.file, []byte(msg.Content+"\n"), m.perm); err != nil {
			log.Printf("save %s: %v", m.file, err)
			return m, m.editor.DispatchError(err, messageDuration)
		}
		m.editor.MarkSaved(msg.Content)
		return m, m.editor.DispatchMessage(fmt.Sprintf("%q written", filepath.Base(m.file)), messageDuration)

	case editor.YankMsg:
		return m, m.editor.DispatchMessage(fmt.Sprintf("%d bytes yanked", len(msg.Content)), messageDuration)

	case editor.DeleteMsg:
		return m, m.editor.DispatchMessage(fmt.Sprintf("%d bytes deleted", len(msg.Content)), messageDuration)

	case editor.QuitMsg:
		return m, tea.Quit
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(editor.Model)

	return m, cmd
}

func (m Model) View() string {
	return m.editor.View()
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	closeLog, err := setupLogging(opts.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	// There is nothing to edit without the file.
	info, err := os.Stat(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	content, err := os.ReadFile(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	bindings, err := config.Load(opts.configPath)
	if err != nil {
		log.Printf("using default key bindings: %v", err)
	}

	textEditor := editor.New(80, 24)
	textEditor.GetEditor().SetBindings(bindings)
	textEditor.SetBytes(content)
	textEditor.SetFileName(filepath.Base(opts.file))
	textEditor.Focus()

	m := Model{
		editor: textEditor,
		file:   opts.file,
		perm:   info.Mode().Perm(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.configPath != "" {
		if watcher, err := config.NewWatcher(opts.configPath); err != nil {
			log.Printf("config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			go forwardBindings(p, watcher)
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running Bubble Tea program: %v\n", err)
		return 1
	}

	return 0
}

func forwardBindings(p *tea.Program, w *config.Watcher) {
	for {
		select {
		case b, ok := <-w.Bindings():
			if !ok {
				return
			}
			p.Send(editor.BindingsMsg{Bindings: b})
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			p.Send(editor.ErrorMsg{ID: core.ErrConfigReloadId, Error: err})
		}
	}
}

func parseFlags() options {
	var opts options

	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = ""
	}

	flag.StringVar(&opts.configPath, "config", defaultConfig, "Path to the key-binding file (.toml or .yaml)")
	flag.StringVar(&opts.logPath, "log", os.Getenv(logEnv), "Write debug logs to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vir - a small modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vir [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)

	return opts
}

// setupLogging sends log output to path, or discards it when path is empty.
// Stdout belongs to the terminal UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "vir")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}
