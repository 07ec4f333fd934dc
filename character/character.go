// Package character defines the character domain model shared by
// players and enemies, and the combat state transitions that operate
// on it.
//
// A Character is a plain data holder plus synchronous methods; it is
// not safe for concurrent use. The caller (an external game loop) owns
// turn sequencing and character lifecycle.
package character

import (
	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/effect"
	"github.com/emberworks/rpgkit/item"
	"github.com/emberworks/rpgkit/loot"
	"github.com/emberworks/rpgkit/rng"
)

// Character holds the stats, inventory, equipment, abilities, and
// active status effects of one combatant. Role-specific state lives in
// the optional Progression (player) and Reward (enemy) blocks rather
// than in subtypes.
//
// Invariants: 0 <= HP <= MaxHP; 0 <= Mana <= MaxMana.
type Character struct {
	Name string

	MaxHP   int
	HP      int
	MaxMana int
	Mana    int

	// Attack and Defense are the base stats; equipment and status
	// effects contribute through TotalAttack and TotalDefense only.
	Attack  int
	Defense int

	Abilities []*ability.Ability
	Inventory []*item.Item
	Equipped  map[string]*item.Item
	Effects   *effect.Set

	// Progression is non-nil for player characters.
	Progression *Progression
	// Reward is non-nil for enemy characters.
	Reward *Reward
}

// New creates a character with the given base stats, full HP and mana,
// and no role block attached.
func New(name string, hp, mana, attack, defense int) *Character {
	return &Character{
		Name:     name,
		MaxHP:    hp,
		HP:       hp,
		MaxMana:  mana,
		Mana:     mana,
		Attack:   attack,
		Defense:  defense,
		Equipped: make(map[string]*item.Item),
		Effects:  effect.NewSet(),
	}
}

// NewPlayer creates a level 1 player character with an attached
// progression block.
func NewPlayer(name string, hp, mana, attack, defense int) *Character {
	c := New(name, hp, mana, attack, defense)
	c.Progression = &Progression{
		Level:            1,
		ExperienceToNext: baseExperienceToNext,
	}
	return c
}

// NewEnemy creates an enemy character with an attached reward block.
func NewEnemy(name string, hp, mana, attack, defense, level, expReward, goldReward int) *Character {
	c := New(name, hp, mana, attack, defense)
	c.Reward = &Reward{
		Level:            level,
		ExperienceReward: expReward,
		GoldReward:       goldReward,
	}
	return c
}

// Alive reports whether the character has HP remaining.
func (c *Character) Alive() bool {
	return c.HP > 0
}

// AddAbility appends ab to the character's ability list. List order is
// significant: the enemy AI breaks ties by first match.
func (c *Character) AddAbility(ab *ability.Ability) {
	c.Abilities = append(c.Abilities, ab)
}

// AddItem places it into the character's inventory.
func (c *Character) AddItem(it *item.Item) {
	c.Inventory = append(c.Inventory, it)
}

// RemoveItem removes the first inventory entry equal to it and reports
// whether one was found.
func (c *Character) RemoveItem(it *item.Item) bool {
	for i, held := range c.Inventory {
		if held == it {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// TotalAttack returns base attack plus equipped-item attack bonuses
// plus active strength-modifier deltas, floored at 0. Computed on
// demand, never cached.
func (c *Character) TotalAttack() int {
	total := c.Attack
	for _, it := range c.Equipped {
		total += it.AttackBonus()
	}
	total += c.Effects.AttackDelta()
	if total < 0 {
		return 0
	}
	return total
}

// TotalDefense returns base defense plus equipped-item defense bonuses
// plus active defense-modifier deltas, floored at 0.
func (c *Character) TotalDefense() int {
	total := c.Defense
	for _, it := range c.Equipped {
		total += it.DefenseBonus()
	}
	total += c.Effects.DefenseDelta()
	if total < 0 {
		return 0
	}
	return total
}

// TickCooldowns reduces every ability's current cooldown by one turn.
// Call once per turn alongside ProcessStatusEffects.
func (c *Character) TickCooldowns() {
	for _, ab := range c.Abilities {
		ab.TickCooldown()
	}
}

// RollDrops resolves the enemy's drop table with independent draws.
// Characters without a reward block yield nothing.
//
// Precondition: src must be non-nil.
func (c *Character) RollDrops(src rng.Source) []loot.Drop {
	if c.Reward == nil {
		return nil
	}
	return loot.Roll(c.Reward.Drops, src)
}
