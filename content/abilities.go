package content

import (
	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/effect"
)

// NewAttackAbility creates a plain damage ability.
func NewAttackAbility(name string, power, manaCost, cooldown int, description string) *ability.Ability {
	return &ability.Ability{
		ID:          slug(name),
		Name:        name,
		Type:        ability.Attack,
		Power:       power,
		ManaCost:    manaCost,
		Cooldown:    cooldown,
		Description: description,
	}
}

// NewHealAbility creates a healing ability.
func NewHealAbility(name string, power, manaCost, cooldown int, description string) *ability.Ability {
	return &ability.Ability{
		ID:          slug(name),
		Name:        name,
		Type:        ability.Heal,
		Power:       power,
		ManaCost:    manaCost,
		Cooldown:    cooldown,
		Description: description,
	}
}

// NewBuffAbility creates a self-targeted buff carrying the given effect
// template.
func NewBuffAbility(name string, manaCost, cooldown int, def *effect.Def, description string) *ability.Ability {
	return &ability.Ability{
		ID:          slug(name),
		Name:        name,
		Type:        ability.Buff,
		ManaCost:    manaCost,
		Cooldown:    cooldown,
		Description: description,
		Effect:      def,
	}
}

// NewEffectAbility creates an attack ability that also inflicts a
// status effect on the target.
func NewEffectAbility(name string, power, manaCost int, effectType effect.Type,
	effectDuration, effectPower, cooldown int, description string) *ability.Ability {
	return &ability.Ability{
		ID:          slug(name),
		Name:        name,
		Type:        ability.Attack,
		Power:       power,
		ManaCost:    manaCost,
		Cooldown:    cooldown,
		Description: description,
		Effect: &effect.Def{
			ID:          slug(name) + "_effect",
			Name:        name + " Effect",
			Type:        effectType,
			Duration:    effectDuration,
			Power:       effectPower,
			Description: "Status effect from " + name,
		},
	}
}

// Slash is a basic no-cost sword attack.
func Slash() *ability.Ability {
	return NewAttackAbility("Slash", 15, 0, 0, "A basic sword attack")
}

// Fireball is a magical attack with a short cooldown.
func Fireball() *ability.Ability {
	return NewAttackAbility("Fireball", 25, 10, 1, "A magical fireball attack")
}

// Heal restores the caster's health.
func Heal() *ability.Ability {
	return NewHealAbility("Heal", 30, 8, 0, "Restores health")
}

// PowerStrike is a heavy melee attack with a longer cooldown.
func PowerStrike() *ability.Ability {
	return NewAttackAbility("Power Strike", 35, 5, 2, "A devastating melee attack")
}

// PoisonDart inflicts poison damage over time.
func PoisonDart() *ability.Ability {
	return NewEffectAbility("Poison Dart", 10, 8, effect.Poison, 3, 5, 1,
		"A dart coated with poison that deals damage over time")
}

// FlameStrike inflicts burn damage over time.
func FlameStrike() *ability.Ability {
	return NewEffectAbility("Flame Strike", 20, 12, effect.Burn, 3, 8, 2,
		"A fiery attack that burns the target")
}

// IceShard can freeze the target, preventing action.
func IceShard() *ability.Ability {
	return NewEffectAbility("Ice Shard", 15, 10, effect.Freeze, 2, 0, 2,
		"An icy projectile that can freeze enemies")
}

// StunningBlow can stun the target for a turn.
func StunningBlow() *ability.Ability {
	return NewEffectAbility("Stunning Blow", 18, 6, effect.Stun, 1, 0, 3,
		"A powerful blow that can stun the target")
}

// WeaknessCurse reduces the target's attack while active.
func WeaknessCurse() *ability.Ability {
	return NewEffectAbility("Weakness Curse", 5, 15, effect.Weakness, 4, 10, 1,
		"A curse that weakens the enemy's attack power")
}

// ArmorBreak reduces the target's defense while active.
func ArmorBreak() *ability.Ability {
	return NewEffectAbility("Armor Break", 12, 8, effect.Vulnerability, 3, 8, 2,
		"An attack that breaks through armor, reducing defense")
}

// BattleCry is a self-buff raising the caster's attack.
func BattleCry() *ability.Ability {
	return NewBuffAbility("Battle Cry", 10, 3, &effect.Def{
		ID:       "battle_cry_effect",
		Name:     "Battle Cry Effect",
		Type:     effect.StrengthBoost,
		Duration: 5,
		Power:    15,
	}, "A rallying cry that boosts attack power")
}

// ShieldWall is a self-buff raising the caster's defense.
func ShieldWall() *ability.Ability {
	return NewBuffAbility("Shield Wall", 12, 2, &effect.Def{
		ID:       "shield_wall_effect",
		Name:     "Shield Wall Effect",
		Type:     effect.DefenseBoost,
		Duration: 4,
		Power:    12,
	}, "A defensive stance that increases defense")
}

// builtinAbilities maps ability IDs to their constructors for template
// resolution.
var builtinAbilities = map[string]func() *ability.Ability{
	"slash":          Slash,
	"fireball":       Fireball,
	"heal":           Heal,
	"power_strike":   PowerStrike,
	"poison_dart":    PoisonDart,
	"flame_strike":   FlameStrike,
	"ice_shard":      IceShard,
	"stunning_blow":  StunningBlow,
	"weakness_curse": WeaknessCurse,
	"armor_break":    ArmorBreak,
	"battle_cry":     BattleCry,
	"shield_wall":    ShieldWall,
}

// BuildAbility returns a fresh instance of the built-in ability with
// the given ID, or (nil, false) if the ID is unknown. Each call returns
// an independent instance with its own cooldown state.
func BuildAbility(id string) (*ability.Ability, bool) {
	ctor, ok := builtinAbilities[id]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// AbilityIDs returns the IDs of all built-in abilities in no particular
// order.
func AbilityIDs() []string {
	out := make([]string, 0, len(builtinAbilities))
	for id := range builtinAbilities {
		out = append(out, id)
	}
	return out
}
