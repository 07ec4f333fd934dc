// Package effect defines timed status effects: the closed effect type
// set, runtime instances, and the active-effect collection attached to
// a character.
package effect

// Type identifies one status effect in the closed effect set.
type Type string

const (
	Poison        Type = "poison"
	Burn          Type = "burn"
	Freeze        Type = "freeze"
	Stun          Type = "stun"
	StrengthBoost Type = "strength_boost"
	DefenseBoost  Type = "defense_boost"
	SpeedBoost    Type = "speed_boost"
	Weakness      Type = "weakness"
	Vulnerability Type = "vulnerability"
	Regeneration  Type = "regeneration"
)

// Kind groups effect types by their per-turn behaviour.
type Kind int

const (
	// DamageOverTime effects subtract power from HP each turn.
	DamageOverTime Kind = iota
	// HealOverTime effects add power to HP each turn.
	HealOverTime
	// Control effects gate the character's ability to act.
	Control
	// StatModifier effects contribute additive attack/defense deltas
	// while active and have no per-turn numeric action.
	StatModifier
)

// Known reports whether t is a member of the closed effect type set.
func Known(t Type) bool {
	switch t {
	case Poison, Burn, Freeze, Stun, StrengthBoost, DefenseBoost,
		SpeedBoost, Weakness, Vulnerability, Regeneration:
		return true
	}
	return false
}

// Kind returns the behaviour group for this effect type.
//
// Precondition: t must be a member of the closed effect set. Panics on
// unknown types so that an extension of the type set cannot silently
// skip the per-turn dispatch.
func (t Type) Kind() Kind {
	switch t {
	case Poison, Burn:
		return DamageOverTime
	case Regeneration:
		return HealOverTime
	case Freeze, Stun:
		return Control
	case StrengthBoost, DefenseBoost, SpeedBoost, Weakness, Vulnerability:
		return StatModifier
	default:
		panic("effect: unknown effect type " + string(t))
	}
}

// Effect is one active status effect instance on a character.
//
// Invariant: Remaining <= Duration.
type Effect struct {
	Name        string
	Type        Type
	Power       int
	Duration    int // total duration in turns
	Remaining   int // turns remaining; the effect is removed at 0
	Description string
}

// Expired reports whether the effect has run out of turns.
func (e *Effect) Expired() bool {
	return e.Remaining <= 0
}

// PreventsAction reports whether this effect blocks the bearer from
// acting this turn.
func (e *Effect) PreventsAction() bool {
	return e.Type.Kind() == Control
}

// AttackDelta returns this effect's additive contribution to total
// attack: positive for strength boosts, negative for weakness, zero
// for everything else.
func (e *Effect) AttackDelta() int {
	switch e.Type {
	case StrengthBoost:
		return e.Power
	case Weakness:
		return -e.Power
	default:
		return 0
	}
}

// DefenseDelta returns this effect's additive contribution to total
// defense: positive for defense boosts, negative for vulnerability,
// zero for everything else.
func (e *Effect) DefenseDelta() int {
	switch e.Type {
	case DefenseBoost:
		return e.Power
	case Vulnerability:
		return -e.Power
	default:
		return 0
	}
}
