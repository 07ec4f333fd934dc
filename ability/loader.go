package ability

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emberworks/rpgkit/effect"
)

// Def is the YAML form of an ability definition. The effect block, when
// present, is an inline status effect template.
type Def struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Type        Type        `yaml:"type"`
	Power       int         `yaml:"power"`
	ManaCost    int         `yaml:"mana_cost"`
	Cooldown    int         `yaml:"cooldown"`
	Description string      `yaml:"description"`
	Effect      *effect.Def `yaml:"effect"`
}

// Build creates a fresh Ability from the definition. Each call returns
// an independent instance with its own cooldown state.
func (d *Def) Build() *Ability {
	return &Ability{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Power:       d.Power,
		ManaCost:    d.ManaCost,
		Cooldown:    d.Cooldown,
		Description: d.Description,
		Effect:      d.Effect,
	}
}

// Validate checks the definition by building and validating an instance.
func (d *Def) Validate() error {
	return d.Build().Validate()
}

// Registry holds ability definitions keyed by ID. Build is used at
// lookup time so that every character gets its own cooldown state.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Def)}
}

// Register adds d to the registry, overwriting any existing entry with
// the same ID.
//
// Precondition: d must not be nil and d.ID must not be empty.
func (r *Registry) Register(d *Def) {
	r.defs[d.ID] = d
}

// Build returns a fresh Ability instance for id, or (nil, false) if the
// id is not registered.
func (r *Registry) Build(id string) (*Ability, bool) {
	d, ok := r.defs[id]
	if !ok {
		return nil, false
	}
	return d.Build(), true
}

// IDs returns the registered definition IDs in no particular order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.defs))
	for id := range r.defs {
		out = append(out, id)
	}
	return out
}

// LoadDefs reads every *.yaml file in dir, parses each as a Def,
// validates it, and returns a populated Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error on the first
// parse or validation failure.
func LoadDefs(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ability dir %q: %w", dir, err)
	}
	reg := NewRegistry()
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
		reg.Register(&def)
	}
	return reg, nil
}
