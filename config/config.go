// Package config resolves the key-binding table for the editor from a TOML
// (or YAML) file and the environment.
//
// The file maps action names to key names, one table per mode:
//
//	[global]
//	interrupt = "ctrl+c"
//	save = "ctrl+s"
//
//	[normal]
//	delete = "d"
//	exit = "q"
//
//	[textobjects]
//	word = "w"
//
//	[options]
//	indent_width = 2
//	word_break = "*?_-.[]"
//
// Anything not mentioned keeps its built-in default.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ionut-t/vir/core"
)

const (
	// AppName is the directory under the user config dir.
	AppName = "vir"

	// WordCharsEnv overrides the word-break set when set.
	WordCharsEnv = "WORDCHARS"
)

var ErrUnknownFormat = errors.New("unknown config format")

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type file struct {
	Global      map[string]any `toml:"global" yaml:"global"`
	Insert      map[string]any `toml:"insert" yaml:"insert"`
	Normal      map[string]any `toml:"normal" yaml:"normal"`
	Visual      map[string]any `toml:"visual" yaml:"visual"`
	TextObjects map[string]any `toml:"textobjects" yaml:"textobjects"`
	Options     options        `toml:"options" yaml:"options"`
}

type options struct {
	IndentWidth *int    `toml:"indent_width" yaml:"indent_width"`
	WordBreak   *string `toml:"word_break" yaml:"word_break"`
}

// DefaultPath returns $XDG_CONFIG_HOME/vir/config.toml, falling back to
// ~/.config/vir/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("locating config dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// Load reads the bindings at path. A missing file yields the defaults and no
// error. An unreadable or malformed file also yields the defaults, together
// with the error that caused the fallback; callers should log it and carry on.
func Load(path string) (bindings core.Bindings, err error) {
	bindings = core.DefaultBindings()
	defer func() { applyEnv(&bindings) }()

	if path == "" {
		return bindings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bindings, nil
		}
		return bindings, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes data as TOML, or as YAML when path ends in .yaml or .yml, and
// applies it over the defaults.
func Parse(path string, data []byte) (core.Bindings, error) {
	var f file

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		if err := toml.Unmarshal(data, &f); err != nil {
			return core.DefaultBindings(), &ParseError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return core.DefaultBindings(), &ParseError{Path: path, Err: err}
		}
	default:
		return core.DefaultBindings(), fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return f.apply(core.DefaultBindings()), nil
}

func (f file) apply(b core.Bindings) core.Bindings {
	for action, key := range keys("global", f.Global) {
		switch action {
		case "interrupt":
			b.Interrupt = key
		case "save":
			b.Save = key
		default:
			log.Printf("config: unknown global action %q", action)
		}
	}

	rebind("insert", f.Insert, b.Insert, core.ParseInsertAction)
	rebind("normal", f.Normal, b.Normal, core.ParseNormalAction)
	rebind("visual", f.Visual, b.Visual, core.ParseVisualAction)
	rebind("textobjects", f.TextObjects, b.TextObjects, core.ParseObjectKind)

	if w := f.Options.IndentWidth; w != nil {
		if *w < 0 {
			log.Printf("config: ignoring negative indent_width %d", *w)
		} else {
			b.IndentWidth = *w
		}
	}
	if wb := f.Options.WordBreak; wb != nil {
		b.WordBreak = *wb
	}

	return b
}

func rebind[A comparable](table string, entries map[string]any, m map[string]A, parse func(string) (A, bool)) {
	for name, key := range keys(table, entries) {
		action, ok := parse(name)
		if !ok {
			log.Printf("config: unknown %s action %q", table, name)
			continue
		}
		core.Rebind(m, action, key)
	}
}

// keys lower-cases the action names and canonicalises the key names of one
// table. Entries that are not strings or not valid keys are dropped.
func keys(table string, entries map[string]any) map[string]string {
	out := make(map[string]string, len(entries))
	for name, v := range entries {
		s, ok := v.(string)
		if !ok {
			log.Printf("config: [%s] %s: expected a key name, got %T", table, name, v)
			continue
		}
		key, err := core.ParseKeyName(s)
		if err != nil {
			log.Printf("config: [%s] %s: %v", table, name, err)
			continue
		}
		out[strings.ToLower(name)] = key.Name()
	}
	return out
}

func applyEnv(b *core.Bindings) {
	if chars, ok := os.LookupEnv(WordCharsEnv); ok {
		b.WordBreak = chars
	}
}
