package effect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Def is the static definition of a status effect, loaded from YAML or
// built by an ability factory. Instantiating a Def produces a fresh
// runtime Effect; the Def itself is never mutated by gameplay.
type Def struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        Type   `yaml:"type"`
	Duration    int    `yaml:"duration"`
	Power       int    `yaml:"power"`
	Description string `yaml:"description"`
	LuaOnApply  string `yaml:"lua_on_apply"`  // optional scripted hook
	LuaOnTick   string `yaml:"lua_on_tick"`   // optional scripted hook
	LuaOnExpire string `yaml:"lua_on_expire"` // optional scripted hook
}

// Validate checks that the definition satisfies its invariants.
//
// Precondition: d must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Type is a
// member of the closed effect set, Duration >= 1, and Power >= 0.
func (d *Def) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("effect def: id must not be empty")
	}
	if d.Name == "" {
		return fmt.Errorf("effect def %q: name must not be empty", d.ID)
	}
	if !Known(d.Type) {
		return fmt.Errorf("effect def %q: unknown effect type %q", d.ID, d.Type)
	}
	if d.Duration < 1 {
		return fmt.Errorf("effect def %q: duration must be >= 1, got %d", d.ID, d.Duration)
	}
	if d.Power < 0 {
		return fmt.Errorf("effect def %q: power must be >= 0, got %d", d.ID, d.Power)
	}
	return nil
}

// Instantiate creates a fresh runtime Effect from this definition.
//
// Postcondition: The returned effect has Remaining == Duration and
// shares no mutable state with the definition.
func (d *Def) Instantiate() *Effect {
	return &Effect{
		Name:        d.Name,
		Type:        d.Type,
		Power:       d.Power,
		Duration:    d.Duration,
		Remaining:   d.Duration,
		Description: d.Description,
	}
}

// LoadDefs reads every *.yaml file in dir, parses each as a Def, and
// returns the validated definitions.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all definitions, or an error on the first
// parse or validation failure; on error the partial result is discarded.
func LoadDefs(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading effect dir %q: %w", dir, err)
	}
	var defs []*Def
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		defs = append(defs, &def)
	}
	return defs, nil
}
