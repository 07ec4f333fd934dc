// Package ability defines action definitions with mana costs, cooldowns,
// and optional attached status effect templates.
package ability

import (
	"fmt"

	"github.com/emberworks/rpgkit/effect"
)

// Type classifies an ability's effect on its target.
type Type string

const (
	Attack Type = "attack"
	Heal   Type = "heal"
	Buff   Type = "buff"
	Debuff Type = "debuff"
)

// Known reports whether t is a valid ability type.
func Known(t Type) bool {
	switch t {
	case Attack, Heal, Buff, Debuff:
		return true
	}
	return false
}

// Ability is an action a character can take in combat. The Effect field,
// when non-nil, is a status effect template instantiated onto the
// ability's target on each successful use.
//
// Invariant: CurrentCooldown is in [0, Cooldown].
// Abilities belong exclusively to the character holding them.
type Ability struct {
	ID          string
	Name        string
	Type        Type
	Power       int
	ManaCost    int
	Cooldown    int
	Description string
	Effect      *effect.Def

	// CurrentCooldown is the number of turns before the ability is
	// usable again. Mutated by TriggerCooldown and TickCooldown.
	CurrentCooldown int
}

// Ready reports whether the ability is off cooldown.
func (a *Ability) Ready() bool {
	return a.CurrentCooldown == 0
}

// TriggerCooldown starts the full cooldown after a successful use.
//
// Postcondition: CurrentCooldown == Cooldown.
func (a *Ability) TriggerCooldown() {
	a.CurrentCooldown = a.Cooldown
}

// TickCooldown reduces the current cooldown by one turn, flooring at 0.
//
// Postcondition: CurrentCooldown == max(0, previous - 1).
func (a *Ability) TickCooldown() {
	if a.CurrentCooldown > 0 {
		a.CurrentCooldown--
	}
}

// Validate checks that the ability satisfies its invariants.
//
// Precondition: a must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Type is
// valid, Power, ManaCost, and Cooldown are >= 0, and any attached
// effect template is itself valid.
func (a *Ability) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("ability: id must not be empty")
	}
	if a.Name == "" {
		return fmt.Errorf("ability %q: name must not be empty", a.ID)
	}
	if !Known(a.Type) {
		return fmt.Errorf("ability %q: unknown ability type %q", a.ID, a.Type)
	}
	if a.Power < 0 {
		return fmt.Errorf("ability %q: power must be >= 0, got %d", a.ID, a.Power)
	}
	if a.ManaCost < 0 {
		return fmt.Errorf("ability %q: mana_cost must be >= 0, got %d", a.ID, a.ManaCost)
	}
	if a.Cooldown < 0 {
		return fmt.Errorf("ability %q: cooldown must be >= 0, got %d", a.ID, a.Cooldown)
	}
	if a.Effect != nil {
		if err := a.Effect.Validate(); err != nil {
			return fmt.Errorf("ability %q: %w", a.ID, err)
		}
	}
	return nil
}
