// Package ai implements the enemy ability selection policy.
package ai

import (
	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/character"
)

// DefaultLowHealthThreshold is the HP ratio below which an enemy
// prefers a usable heal.
const DefaultLowHealthThreshold = 0.25

// Selector chooses which ability an enemy uses on its turn. Selection
// is deterministic: given the same character state it always returns
// the same ability.
type Selector struct {
	// LowHealthThreshold is the HP ratio below which healing is
	// preferred. Zero or negative means DefaultLowHealthThreshold.
	LowHealthThreshold float64
}

// NewSelector returns a Selector with the given low-health threshold;
// threshold <= 0 selects the default.
func NewSelector(threshold float64) *Selector {
	if threshold <= 0 {
		threshold = DefaultLowHealthThreshold
	}
	return &Selector{LowHealthThreshold: threshold}
}

// Choose selects the ability self should use against target:
//
//  1. If self's HP ratio is below the low-health threshold and a usable
//     heal ability exists, the first such heal.
//  2. Otherwise the highest-power usable attack or debuff ability, ties
//     broken by ability list order.
//  3. nil when nothing is usable.
//
// Usability follows character.CanUse: mana covers the cost and the
// ability is off cooldown.
//
// Precondition: self must be non-nil.
func (s *Selector) Choose(self, target *character.Character) *ability.Ability {
	threshold := s.LowHealthThreshold
	if threshold <= 0 {
		threshold = DefaultLowHealthThreshold
	}

	var usable []*ability.Ability
	for _, ab := range self.Abilities {
		if self.CanUse(ab) {
			usable = append(usable, ab)
		}
	}
	if len(usable) == 0 {
		return nil
	}

	if self.MaxHP > 0 && float64(self.HP)/float64(self.MaxHP) < threshold {
		for _, ab := range usable {
			if ab.Type == ability.Heal {
				return ab
			}
		}
	}

	var best *ability.Ability
	for _, ab := range usable {
		if ab.Type != ability.Attack && ab.Type != ability.Debuff {
			continue
		}
		if best == nil || ab.Power > best.Power {
			best = ab
		}
	}
	return best
}
