package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/character"
	"github.com/emberworks/rpgkit/item"
	"github.com/emberworks/rpgkit/loot"
	"github.com/emberworks/rpgkit/shop"
)

// AbilityLookup resolves an ability ID to a fresh ability instance.
// Both BuildAbility and (*ability.Registry).Build satisfy it.
type AbilityLookup func(id string) (*ability.Ability, bool)

// DropRef is one drop table line in an enemy template, referencing an
// item by ID.
type DropRef struct {
	ItemID string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
}

// EnemyTemplate defines a reusable enemy archetype loaded from YAML.
// Ability and item references are resolved at Build time.
type EnemyTemplate struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Level      int       `yaml:"level"`
	HP         int       `yaml:"hp"`
	Mana       int       `yaml:"mana"`
	Attack     int       `yaml:"attack"`
	Defense    int       `yaml:"defense"`
	ExpReward  int       `yaml:"exp_reward"`
	GoldReward int       `yaml:"gold_reward"`
	Abilities  []string  `yaml:"abilities"`
	Drops      []DropRef `yaml:"drops"`
}

// Validate checks that the template satisfies basic invariants.
// Reference resolution happens at Build time, not here.
//
// Precondition: t must not be nil.
func (t *EnemyTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("enemy template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("enemy template %q: name must not be empty", t.ID)
	}
	if t.Level < 1 {
		return fmt.Errorf("enemy template %q: level must be >= 1, got %d", t.ID, t.Level)
	}
	if t.HP < 1 {
		return fmt.Errorf("enemy template %q: hp must be >= 1, got %d", t.ID, t.HP)
	}
	if t.Mana < 0 {
		return fmt.Errorf("enemy template %q: mana must be >= 0, got %d", t.ID, t.Mana)
	}
	if t.ExpReward < 0 || t.GoldReward < 0 {
		return fmt.Errorf("enemy template %q: rewards must be >= 0", t.ID)
	}
	for i, d := range t.Drops {
		if d.ItemID == "" {
			return fmt.Errorf("enemy template %q: drop[%d] must reference an item", t.ID, i)
		}
		if d.Chance < 0 || d.Chance > 1.0 {
			return fmt.Errorf("enemy template %q: drop[%d] chance must be in [0, 1], got %f", t.ID, i, d.Chance)
		}
	}
	return nil
}

// Build assembles a live enemy character from the template, resolving
// ability IDs through lookup and drop item IDs through items.
//
// Precondition: t must have passed Validate; lookup and items must be
// non-nil.
// Postcondition: Returns an enemy with a reward block, or an error
// naming the first unresolved reference.
func (t *EnemyTemplate) Build(lookup AbilityLookup, items *item.Registry) (*character.Character, error) {
	c := character.NewEnemy(t.Name, t.HP, t.Mana, t.Attack, t.Defense,
		t.Level, t.ExpReward, t.GoldReward)

	for _, id := range t.Abilities {
		ab, ok := lookup(id)
		if !ok {
			return nil, fmt.Errorf("enemy template %q: unknown ability %q", t.ID, id)
		}
		c.AddAbility(ab)
	}

	for _, d := range t.Drops {
		it, ok := items.Get(d.ItemID)
		if !ok {
			return nil, fmt.Errorf("enemy template %q: unknown drop item %q", t.ID, d.ItemID)
		}
		c.Reward.Drops = append(c.Reward.Drops, loot.Entry{Item: it, Chance: d.Chance})
	}
	return c, nil
}

// LoadEnemyTemplates reads every *.yaml file in dir and returns the
// validated templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates, or an error on the first parse
// or validation failure.
func LoadEnemyTemplates(dir string) ([]*EnemyTemplate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading enemy dir %q: %w", dir, err)
	}
	var templates []*EnemyTemplate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var tmpl EnemyTemplate
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tmpl); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, &tmpl)
	}
	return templates, nil
}

// StockRef is one stocked item reference in a shop template.
type StockRef struct {
	ItemID   string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

// ShopTemplate defines a pre-stocked shop loaded from YAML.
type ShopTemplate struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	BuyMultiplier  float64    `yaml:"buy_multiplier"`
	SellMultiplier float64    `yaml:"sell_multiplier"`
	Stock          []StockRef `yaml:"stock"`
}

// Validate checks that the template satisfies basic invariants,
// including the shop multiplier rules.
func (t *ShopTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("shop template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("shop template %q: name must not be empty", t.ID)
	}
	if t.BuyMultiplier <= 0 || t.SellMultiplier <= 0 {
		return fmt.Errorf("shop template %q: multipliers must be > 0", t.ID)
	}
	if t.SellMultiplier > t.BuyMultiplier {
		return fmt.Errorf("shop template %q: sell multiplier must not exceed buy multiplier", t.ID)
	}
	for i, s := range t.Stock {
		if s.ItemID == "" {
			return fmt.Errorf("shop template %q: stock[%d] must reference an item", t.ID, i)
		}
		if s.Quantity < 1 {
			return fmt.Errorf("shop template %q: stock[%d] quantity must be >= 1, got %d", t.ID, i, s.Quantity)
		}
	}
	return nil
}

// Build assembles a stocked shop from the template, resolving stock
// item IDs through items.
//
// Precondition: t must have passed Validate; items must be non-nil.
func (t *ShopTemplate) Build(items *item.Registry) (*shop.Shop, error) {
	s, err := shop.New(t.Name, t.BuyMultiplier, t.SellMultiplier)
	if err != nil {
		return nil, fmt.Errorf("shop template %q: %w", t.ID, err)
	}
	for _, ref := range t.Stock {
		it, ok := items.Get(ref.ItemID)
		if !ok {
			return nil, fmt.Errorf("shop template %q: unknown stock item %q", t.ID, ref.ItemID)
		}
		s.AddStock(it, ref.Quantity)
	}
	return s, nil
}

// LoadShopTemplates reads every *.yaml file in dir and returns the
// validated templates.
func LoadShopTemplates(dir string) ([]*ShopTemplate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading shop dir %q: %w", dir, err)
	}
	var templates []*ShopTemplate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var tmpl ShopTemplate
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tmpl); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, &tmpl)
	}
	return templates, nil
}
