// Package content provides factories for pre-made items, abilities,
// enemies, and shops, plus YAML template loading for content authored
// on disk. Factories are pure constructors: no runtime behaviour beyond
// object assembly.
package content

import (
	"fmt"
	"strings"

	"github.com/emberworks/rpgkit/item"
)

// slug derives a stable lowercase ID from a display name.
func slug(name string) string {
	s := strings.ToLower(name)
	s = strings.NewReplacer(" ", "_", "(", "", ")", "", ".", "").Replace(s)
	return s
}

// NewWeapon creates a weapon granting attackBonus attack. A value <= 0
// defaults to attackBonus * 10 gold.
func NewWeapon(name string, attackBonus, value int, description string) *item.Item {
	if value <= 0 {
		value = attackBonus * 10
	}
	return &item.Item{
		ID:          slug(name),
		Name:        name,
		Type:        item.Weapon,
		Value:       value,
		Description: description,
		Stats:       map[string]int{item.StatAttack: attackBonus},
	}
}

// NewArmor creates an armor piece granting defenseBonus defense. A
// value <= 0 defaults to defenseBonus * 8 gold.
func NewArmor(name string, defenseBonus, value int, description string) *item.Item {
	if value <= 0 {
		value = defenseBonus * 8
	}
	return &item.Item{
		ID:          slug(name),
		Name:        name,
		Type:        item.Armor,
		Value:       value,
		Description: description,
		Stats:       map[string]int{item.StatDefense: defenseBonus},
	}
}

// NewConsumable creates a plain consumable with no stat effects.
func NewConsumable(name string, value int, description string) *item.Item {
	return &item.Item{
		ID:          slug(name),
		Name:        name,
		Type:        item.Consumable,
		Value:       value,
		Description: description,
	}
}

// NewHealthPotion creates a consumable restoring healingPower HP,
// valued at half its healing power.
func NewHealthPotion(healingPower int) *item.Item {
	name := fmt.Sprintf("Health Potion (%d HP)", healingPower)
	return &item.Item{
		ID:          slug(name),
		Name:        name,
		Type:        item.Consumable,
		Value:       healingPower / 2,
		Description: fmt.Sprintf("Restores %d HP when consumed", healingPower),
		Stats:       map[string]int{item.StatHeal: healingPower},
	}
}

// NewManaPotion creates a consumable restoring manaPower mana, valued
// at half its mana power.
func NewManaPotion(manaPower int) *item.Item {
	name := fmt.Sprintf("Mana Potion (%d MP)", manaPower)
	return &item.Item{
		ID:          slug(name),
		Name:        name,
		Type:        item.Consumable,
		Value:       manaPower / 2,
		Description: fmt.Sprintf("Restores %d MP when consumed", manaPower),
		Stats:       map[string]int{item.StatMana: manaPower},
	}
}
