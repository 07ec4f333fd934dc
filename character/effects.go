package character

import (
	"fmt"

	"github.com/emberworks/rpgkit/effect"
)

// AddEffect attaches e to the character, replacing any active effect of
// the same type (duration refresh).
func (c *Character) AddEffect(e *effect.Effect) {
	c.Effects.Add(e)
}

// RemoveEffect removes the active effect of type t, if present.
func (c *Character) RemoveEffect(t effect.Type) {
	c.Effects.Remove(t)
}

// HasEffect reports whether an effect of type t is active.
func (c *Character) HasEffect(t effect.Type) bool {
	return c.Effects.Has(t)
}

// ActionPrevented reports whether a control effect (freeze, stun) with
// remaining duration blocks the character from acting this turn.
func (c *Character) ActionPrevented() bool {
	return c.Effects.PreventsAction()
}

// ProcessStatusEffects runs the once-per-turn effect tick: for every
// active effect, in application order, apply its per-turn action,
// decrement its remaining duration, and remove it at zero. Returns one
// human-readable message per effect processed plus one per expiry.
//
// Per-turn actions by kind:
//   - DamageOverTime: subtract power from HP, clamped at 0. The damage
//     is applied to raw HP and is not reduced by defense.
//   - HealOverTime: add power to HP, capped at MaxHP.
//   - Control and StatModifier: no numeric change; they act through
//     ActionPrevented and the Total* computations instead.
//
// Postcondition: 0 <= HP <= MaxHP; no surviving effect has
// Remaining <= 0.
func (c *Character) ProcessStatusEffects() []string {
	var messages []string

	for _, e := range c.Effects.All() {
		switch e.Type.Kind() {
		case effect.DamageOverTime:
			c.HP -= e.Power
			if c.HP < 0 {
				c.HP = 0
			}
			messages = append(messages, fmt.Sprintf(
				"%s takes %d damage from %s!", c.Name, e.Power, e.Name))

		case effect.HealOverTime:
			c.HP += e.Power
			if c.HP > c.MaxHP {
				c.HP = c.MaxHP
			}
			messages = append(messages, fmt.Sprintf(
				"%s regenerates %d HP from %s!", c.Name, e.Power, e.Name))

		case effect.Control:
			messages = append(messages, fmt.Sprintf(
				"%s is unable to act: %s!", c.Name, e.Name))

		case effect.StatModifier:
			messages = append(messages, fmt.Sprintf(
				"%s is affected by %s!", c.Name, e.Name))
		}
	}

	for _, expired := range c.Effects.TickDurations() {
		messages = append(messages, fmt.Sprintf(
			"%s's %s has worn off.", c.Name, expired.Name))
	}

	return messages
}

// StatusSummary returns one line per active effect with its remaining
// duration, suitable for display.
func (c *Character) StatusSummary() []string {
	effects := c.Effects.All()
	out := make([]string, 0, len(effects))
	for _, e := range effects {
		out = append(out, fmt.Sprintf("%s (%d turns remaining)", e.Name, e.Remaining))
	}
	return out
}
