package character

import (
	"fmt"

	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/rng"
)

// TakeDamage applies incoming damage reduced by total defense.
// Effective damage is max(0, incoming - TotalDefense()); HP is floored
// at zero. Returns the effective damage and a descriptive message.
//
// Postcondition: HP >= 0; returned damage >= 0.
func (c *Character) TakeDamage(incoming int) (int, string) {
	effective := incoming - c.TotalDefense()
	if effective < 0 {
		effective = 0
	}
	c.HP -= effective
	if c.HP < 0 {
		c.HP = 0
	}
	if effective == 0 {
		return 0, fmt.Sprintf("%s blocks the attack!", c.Name)
	}
	return effective, fmt.Sprintf("%s takes %d damage!", c.Name, effective)
}

// Heal restores HP, capped at MaxHP. Healing at full HP is a no-op on
// HP but still returns a message.
//
// Postcondition: HP <= MaxHP.
func (c *Character) Heal(amount int) string {
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return fmt.Sprintf("%s heals for %d HP!", c.Name, amount)
}

// RestoreMana restores mana, capped at MaxMana.
//
// Postcondition: Mana <= MaxMana.
func (c *Character) RestoreMana(amount int) string {
	c.Mana += amount
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
	return fmt.Sprintf("%s restores %d mana!", c.Name, amount)
}

// CanUse reports whether the character can pay for and fire ab: mana
// covers the cost and the ability is off cooldown.
func (c *Character) CanUse(ab *ability.Ability) bool {
	return c.Mana >= ab.ManaCost && ab.Ready()
}

// variance returns a draw in [-spread, +spread], or 0 when src is nil.
func variance(src rng.Source, spread int) int {
	if src == nil || spread <= 0 {
		return 0
	}
	return src.Intn(2*spread+1) - spread
}

// UseAbility fires ab from this character at target. If the character
// cannot use the ability (insufficient mana or cooling down) it fails
// as a no-op with a message. On success the mana cost is deducted, the
// cooldown triggered, and the type-specific outcome applied:
//
//   - Attack: damage = TotalAttack() + Power (±5 variance) applied
//     through target.TakeDamage; an attached effect template is
//     instantiated onto the target if it survives.
//   - Heal: Power (±2 variance) restored to the caster's HP; an
//     attached effect template lands on the caster.
//   - Buff: effect template lands on the caster.
//   - Debuff: effect template lands on the target.
//
// src may be nil, in which case no variance is applied. target must be
// non-nil for Attack and Debuff abilities.
//
// Postcondition: On success, ab.CurrentCooldown == ab.Cooldown and
// c.Mana decreased by ab.ManaCost; on failure no state changes.
func (c *Character) UseAbility(ab *ability.Ability, target *Character, src rng.Source) ([]string, bool) {
	if !c.CanUse(ab) {
		return []string{fmt.Sprintf("%s cannot use %s!", c.Name, ab.Name)}, false
	}

	c.Mana -= ab.ManaCost
	ab.TriggerCooldown()

	var messages []string
	switch ab.Type {
	case ability.Attack:
		damage := c.TotalAttack() + ab.Power + variance(src, 5)
		dealt, _ := target.TakeDamage(damage)
		messages = append(messages, fmt.Sprintf(
			"%s attacks %s with %s for %d damage!", c.Name, target.Name, ab.Name, dealt))
		if ab.Effect != nil && target.Alive() {
			eff := ab.Effect.Instantiate()
			target.AddEffect(eff)
			messages = append(messages, fmt.Sprintf("%s is afflicted with %s!", target.Name, eff.Name))
		}

	case ability.Heal:
		amount := ab.Power + variance(src, 2)
		if amount < 0 {
			amount = 0
		}
		c.Heal(amount)
		messages = append(messages, fmt.Sprintf("%s heals for %d HP with %s!", c.Name, amount, ab.Name))
		if ab.Effect != nil {
			eff := ab.Effect.Instantiate()
			c.AddEffect(eff)
			messages = append(messages, fmt.Sprintf("%s gains %s!", c.Name, eff.Name))
		}

	case ability.Buff:
		if ab.Effect != nil {
			eff := ab.Effect.Instantiate()
			c.AddEffect(eff)
			messages = append(messages, fmt.Sprintf("%s gains %s!", c.Name, eff.Name))
		} else {
			messages = append(messages, fmt.Sprintf("%s uses %s!", c.Name, ab.Name))
		}

	case ability.Debuff:
		if ab.Effect != nil && target != nil {
			eff := ab.Effect.Instantiate()
			target.AddEffect(eff)
			messages = append(messages, fmt.Sprintf("%s is afflicted with %s!", target.Name, eff.Name))
		} else {
			messages = append(messages, fmt.Sprintf("%s uses %s!", c.Name, ab.Name))
		}
	}

	return messages, true
}
