// Package item defines the item value object shared by character
// inventories, loot tables, and shop stock.
package item

import "fmt"

// Type classifies an item.
type Type string

const (
	Weapon     Type = "weapon"
	Armor      Type = "armor"
	Consumable Type = "consumable"
	Misc       Type = "misc"
)

// Known reports whether t is a valid item type.
func Known(t Type) bool {
	switch t {
	case Weapon, Armor, Consumable, Misc:
		return true
	}
	return false
}

// Stat keys recognised in an Item's Stats map.
const (
	StatAttack  = "attack"
	StatDefense = "defense"
	StatHeal    = "heal"
	StatMana    = "mana"
)

// Item is an immutable value object describing a piece of equipment or
// a consumable. Items may be referenced from multiple owners (an
// inventory and a shop listing) without exclusive ownership; duplication
// on transfer is acceptable.
//
// Invariant: Value >= 0.
type Item struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Type        Type           `yaml:"type"`
	Value       int            `yaml:"value"` // gold value
	Description string         `yaml:"description"`
	Stats       map[string]int `yaml:"stats"` // e.g. {"attack": 10, "defense": 5}
}

// AttackBonus returns the item's flat attack contribution.
func (i *Item) AttackBonus() int {
	return i.Stats[StatAttack]
}

// DefenseBonus returns the item's flat defense contribution.
func (i *Item) DefenseBonus() int {
	return i.Stats[StatDefense]
}

// Validate checks that the item satisfies its invariants.
//
// Precondition: i must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Type is a
// valid item type, and Value >= 0.
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item: id must not be empty")
	}
	if i.Name == "" {
		return fmt.Errorf("item %q: name must not be empty", i.ID)
	}
	if !Known(i.Type) {
		return fmt.Errorf("item %q: unknown item type %q", i.ID, i.Type)
	}
	if i.Value < 0 {
		return fmt.Errorf("item %q: value must be >= 0, got %d", i.ID, i.Value)
	}
	return nil
}

// String returns a short display form: "Name (type) - Description".
func (i *Item) String() string {
	return fmt.Sprintf("%s (%s) - %s", i.Name, i.Type, i.Description)
}
