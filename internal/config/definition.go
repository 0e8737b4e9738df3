// Package config reads wizard definitions from TOML and turns them into
// sequence sources.
package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"seqwizard/internal/system"

	"github.com/BurntSushi/toml"
)

const configDirName = "seqwizard"

type Strategy string

const (
	StrategyLinear     Strategy = "linear"
	StrategyCollection Strategy = "collection"
	StrategyChain      Strategy = "chain"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyLinear:
		return StrategyLinear, nil
	case StrategyCollection:
		return StrategyCollection, nil
	case StrategyChain:
		return StrategyChain, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want linear, collection or chain)", s)
}

type Kind string

const (
	KindInput   Kind = "input"
	KindChoice  Kind = "choice"
	KindSummary Kind = "summary"
)

type OptionDef struct {
	Label       string `toml:"label"`
	Description string `toml:"description"`
	Next        string `toml:"next"`
}

type StepDef struct {
	ID          string      `toml:"id"`
	Kind        Kind        `toml:"kind"`
	Title       string      `toml:"title"`
	Prompt      string      `toml:"prompt"`
	Placeholder string      `toml:"placeholder"`
	Required    bool        `toml:"required"`
	Next        string      `toml:"next"`
	QRCode      bool        `toml:"qr_code"`
	Options     []OptionDef `toml:"options"`
}

type Definition struct {
	Title    string    `toml:"title"`
	Strategy string    `toml:"strategy"`
	Buttons  string    `toml:"buttons"`
	Steps    []StepDef `toml:"steps"`
}

// Parse decodes and validates a wizard definition. Keys the schema does not
// know are rejected.
func Parse(data []byte) (Definition, error) {
	var def Definition

	md, err := toml.Decode(string(data), &def)
	if err != nil {
		return Definition{}, fmt.Errorf("invalid wizard definition: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Definition{}, fmt.Errorf("unknown keys in wizard definition: %s", strings.Join(keys, ", "))
	}

	for i := range def.Steps {
		if def.Steps[i].Kind == "" {
			def.Steps[i].Kind = KindInput
		}
	}

	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate reports every problem with the definition at once.
func (d Definition) Validate() error {
	var errs []error

	if _, err := ParseStrategy(d.Strategy); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(strings.TrimSpace(d.Buttons)) {
	case "", "horizontal", "vertical":
	default:
		errs = append(errs, fmt.Errorf("unknown buttons layout %q (want horizontal or vertical)", d.Buttons))
	}

	if len(d.Steps) == 0 {
		errs = append(errs, errors.New("a wizard needs at least one step"))
	}

	ids := make(map[string]bool, len(d.Steps))
	for i, s := range d.Steps {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("step %d has no id", i+1))
			continue
		}
		if ids[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate step id %q", s.ID))
		}
		ids[s.ID] = true
	}

	for _, s := range d.Steps {
		switch s.Kind {
		case "", KindInput, KindSummary:
		case KindChoice:
			if len(s.Options) == 0 {
				errs = append(errs, fmt.Errorf("choice step %q has no options", s.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("step %q has unknown kind %q", s.ID, s.Kind))
		}

		if s.Next != "" && !ids[s.Next] {
			errs = append(errs, fmt.Errorf("step %q points to unknown step %q", s.ID, s.Next))
		}
		for _, o := range s.Options {
			if o.Next != "" && !ids[o.Next] {
				errs = append(errs, fmt.Errorf("option %q of step %q points to unknown step %q", o.Label, s.ID, o.Next))
			}
		}
	}

	return errors.Join(errs...)
}

// Resolve finds the definition file. A relative path that does not exist in
// the working directory is looked up in ~/.config/seqwizard.
func Resolve(fs system.FileSystem, path string) (string, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return path, nil
	}
	if !fs.IsNotExist(err) {
		return "", fmt.Errorf("could not stat %s: %w", path, err)
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("wizard definition %s not found: %w", path, err)
	}

	home, homeErr := fs.UserHomeDir()
	if homeErr != nil {
		return "", fmt.Errorf("wizard definition %s not found: %w", path, err)
	}

	fallback := filepath.Join(home, ".config", configDirName, path)
	if _, err := fs.Stat(fallback); err != nil {
		return "", fmt.Errorf("wizard definition %s not found: %w", path, err)
	}

	log.Printf("config: resolved %s to %s", path, fallback)
	return fallback, nil
}

// Load resolves, reads and parses the definition at path.
func Load(fs system.FileSystem, path string) (Definition, error) {
	resolved, err := Resolve(fs, path)
	if err != nil {
		return Definition{}, err
	}

	data, err := fs.ReadFile(resolved)
	if err != nil {
		return Definition{}, fmt.Errorf("could not read %s: %w", resolved, err)
	}

	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", resolved, err)
	}

	log.Printf("config: loaded %q with %d steps", def.Title, len(def.Steps))
	return def, nil
}
