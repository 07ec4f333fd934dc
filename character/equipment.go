package character

import (
	"fmt"

	"github.com/emberworks/rpgkit/item"
)

// Equip moves it from the inventory into the given equipment slot. An
// empty slot name defaults to the item's type. If the slot is occupied
// the current occupant is unequipped back into the inventory first.
// Returns false if the item is not in the inventory.
//
// Equipped items contribute to TotalAttack and TotalDefense only; base
// stats are never mutated by equipment.
func (c *Character) Equip(it *item.Item, slot string) bool {
	if !c.RemoveItem(it) {
		return false
	}
	if slot == "" {
		slot = string(it.Type)
	}
	if current, ok := c.Equipped[slot]; ok {
		c.Inventory = append(c.Inventory, current)
	}
	c.Equipped[slot] = it
	return true
}

// Unequip moves the item in slot back into the inventory. Returns false
// if the slot is empty.
func (c *Character) Unequip(slot string) bool {
	it, ok := c.Equipped[slot]
	if !ok {
		return false
	}
	delete(c.Equipped, slot)
	c.Inventory = append(c.Inventory, it)
	return true
}

// Consume uses a consumable from the inventory, applying its "heal" and
// "mana" stats and removing it. Fails as a no-op for non-consumables or
// items not held.
func (c *Character) Consume(it *item.Item) (string, bool) {
	if it.Type != item.Consumable {
		return fmt.Sprintf("%s cannot consume %s.", c.Name, it.Name), false
	}
	if !c.RemoveItem(it) {
		return fmt.Sprintf("%s does not have %s.", c.Name, it.Name), false
	}
	if heal := it.Stats[item.StatHeal]; heal > 0 {
		c.Heal(heal)
	}
	if mana := it.Stats[item.StatMana]; mana > 0 {
		c.RestoreMana(mana)
	}
	return fmt.Sprintf("%s consumes %s.", c.Name, it.Name), true
}
