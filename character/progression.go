package character

import (
	"fmt"

	"github.com/emberworks/rpgkit/rng"
)

// baseExperienceToNext is the experience required to reach level 2.
const baseExperienceToNext = 100

// statPointsPerLevel is the number of allocatable points granted on
// each level-up.
const statPointsPerLevel = 2

// Progression is the player-role block: level, experience, gold, and
// unspent stat points.
//
// Invariant: StatPoints only increases via level-up and decreases via
// allocation.
type Progression struct {
	Level            int
	Experience       int
	ExperienceToNext int
	Gold             int
	StatPoints       int
}

// AddGold credits amount to the player's purse.
//
// Precondition: amount >= 0.
func (p *Progression) AddGold(amount int) {
	p.Gold += amount
}

// SpendGold debits amount if the player can afford it and reports
// whether the debit happened.
//
// Postcondition: Gold >= 0.
func (p *Progression) SpendGold(amount int) bool {
	if p.Gold < amount {
		return false
	}
	p.Gold -= amount
	return true
}

// GainExperience credits exp and levels the character up for every
// threshold crossed, returning one message per level gained. Characters
// without a progression block gain nothing.
//
// src drives the random stat growth per level; nil src uses fixed
// midpoint growth.
func (c *Character) GainExperience(exp int, src rng.Source) []string {
	if c.Progression == nil {
		return nil
	}
	c.Progression.Experience += exp

	var messages []string
	for c.Progression.Experience >= c.Progression.ExperienceToNext {
		messages = append(messages, c.levelUp(src))
	}
	return messages
}

// growth returns a stat increase in [min, max], or the midpoint when
// src is nil.
func growth(src rng.Source, min, max int) int {
	if src == nil {
		return (min + max) / 2
	}
	return min + src.Intn(max-min+1)
}

// levelUp advances one level: the threshold carries over and grows by
// 20%, stats increase (HP +8..12, mana +3..7, attack +1..3, defense
// +1..2 — current HP and mana rise with their maximums), and the player
// gains stat points.
func (c *Character) levelUp(src rng.Source) string {
	p := c.Progression
	p.Experience -= p.ExperienceToNext
	p.Level++
	p.ExperienceToNext = p.ExperienceToNext * 12 / 10

	hpGain := growth(src, 8, 12)
	manaGain := growth(src, 3, 7)

	c.MaxHP += hpGain
	c.HP += hpGain
	c.MaxMana += manaGain
	c.Mana += manaGain
	c.Attack += growth(src, 1, 3)
	c.Defense += growth(src, 1, 2)
	p.StatPoints += statPointsPerLevel

	return fmt.Sprintf("%s leveled up to level %d!", c.Name, p.Level)
}

// Allocatable stat names accepted by AllocateStatPoint.
const (
	StatMaxHP   = "max_hp"
	StatMaxMana = "max_mana"
	StatAttack  = "attack"
	StatDefense = "defense"
)

// AllocateStatPoint spends one unspent stat point on the named stat.
// Raising a maximum raises the current value with it. Returns false for
// unknown stats, characters without progression, or when no points
// remain.
func (c *Character) AllocateStatPoint(stat string) bool {
	if c.Progression == nil || c.Progression.StatPoints <= 0 {
		return false
	}
	switch stat {
	case StatMaxHP:
		c.MaxHP++
		c.HP++
	case StatMaxMana:
		c.MaxMana++
		c.Mana++
	case StatAttack:
		c.Attack++
	case StatDefense:
		c.Defense++
	default:
		return false
	}
	c.Progression.StatPoints--
	return true
}
