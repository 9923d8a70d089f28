// Package prefs remembers console choices between runs: the colour theme
// and the sort option picked for each resource view. The file lives at
// ~/.config/talentdesk/prefs.toml unless a path is given.
package prefs

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs are the remembered console choices.
type Prefs struct {
	Theme string `toml:"theme"`
	// Sort maps a resource name to the last chosen sort option.
	Sort map[string]string `toml:"sort,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/talentdesk/prefs.toml"
	defaultTheme     = "Nightfall"
)

// DefaultPath is where prefs live when no path is configured.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults are the prefs of a first run.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// SortFor returns the remembered sort option for a view.
func (p Prefs) SortFor(view string) string {
	return p.Sort[view]
}

// WithSort returns a copy of p remembering option for view.
func (p Prefs) WithSort(view, option string) Prefs {
	next := maps.Clone(p.Sort)
	if next == nil {
		next = make(map[string]string)
	}
	next[view] = option
	p.Sort = next
	return p
}

// Load reads prefs from path. The returned Prefs are always usable: a
// missing file yields Defaults and no error, while an unreadable or
// malformed file yields Defaults together with the error so the caller can
// report it and carry on.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(raw, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	maps.DeleteFunc(p.Sort, func(_, option string) bool {
		return strings.TrimSpace(option) == ""
	})
	return p, nil
}

// Save writes p to path through a temporary file in the same directory so
// a crash never leaves a truncated prefs file behind.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
