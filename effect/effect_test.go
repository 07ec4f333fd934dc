package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/emberworks/rpgkit/effect"
)

func TestType_Kind_ClosedSet(t *testing.T) {
	cases := map[effect.Type]effect.Kind{
		effect.Poison:        effect.DamageOverTime,
		effect.Burn:          effect.DamageOverTime,
		effect.Regeneration:  effect.HealOverTime,
		effect.Freeze:        effect.Control,
		effect.Stun:          effect.Control,
		effect.StrengthBoost: effect.StatModifier,
		effect.DefenseBoost:  effect.StatModifier,
		effect.SpeedBoost:    effect.StatModifier,
		effect.Weakness:      effect.StatModifier,
		effect.Vulnerability: effect.StatModifier,
	}
	for typ, kind := range cases {
		assert.Equal(t, kind, typ.Kind(), "kind for %s", typ)
	}
}

func TestType_Kind_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		effect.Type("petrify").Kind()
	})
}

func TestKnown(t *testing.T) {
	assert.True(t, effect.Known(effect.Poison))
	assert.False(t, effect.Known(effect.Type("petrify")))
}

func TestEffect_PreventsAction(t *testing.T) {
	frozen := &effect.Effect{Name: "Frozen", Type: effect.Freeze, Remaining: 2}
	poisoned := &effect.Effect{Name: "Poisoned", Type: effect.Poison, Remaining: 2}
	assert.True(t, frozen.PreventsAction())
	assert.False(t, poisoned.PreventsAction())
}

func TestEffect_AttackDelta(t *testing.T) {
	boost := &effect.Effect{Type: effect.StrengthBoost, Power: 15}
	weak := &effect.Effect{Type: effect.Weakness, Power: 10}
	other := &effect.Effect{Type: effect.DefenseBoost, Power: 12}
	assert.Equal(t, 15, boost.AttackDelta())
	assert.Equal(t, -10, weak.AttackDelta())
	assert.Equal(t, 0, other.AttackDelta())
}

func TestEffect_DefenseDelta(t *testing.T) {
	boost := &effect.Effect{Type: effect.DefenseBoost, Power: 12}
	vuln := &effect.Effect{Type: effect.Vulnerability, Power: 8}
	other := &effect.Effect{Type: effect.StrengthBoost, Power: 15}
	assert.Equal(t, 12, boost.DefenseDelta())
	assert.Equal(t, -8, vuln.DefenseDelta())
	assert.Equal(t, 0, other.DefenseDelta())
}

func TestDef_Validate_AcceptsValid(t *testing.T) {
	def := &effect.Def{ID: "venom", Name: "Venom", Type: effect.Poison, Duration: 3, Power: 5}
	assert.NoError(t, def.Validate())
}

func TestDef_Validate_RejectsEmptyID(t *testing.T) {
	def := &effect.Def{Name: "Venom", Type: effect.Poison, Duration: 3}
	assert.Error(t, def.Validate())
}

func TestDef_Validate_RejectsUnknownType(t *testing.T) {
	def := &effect.Def{ID: "x", Name: "X", Type: effect.Type("petrify"), Duration: 3}
	assert.Error(t, def.Validate())
}

func TestDef_Validate_RejectsZeroDuration(t *testing.T) {
	def := &effect.Def{ID: "x", Name: "X", Type: effect.Poison, Duration: 0}
	assert.Error(t, def.Validate())
}

func TestDef_Validate_RejectsNegativePower(t *testing.T) {
	def := &effect.Def{ID: "x", Name: "X", Type: effect.Poison, Duration: 3, Power: -1}
	assert.Error(t, def.Validate())
}

func TestDef_Instantiate_FreshInstance(t *testing.T) {
	def := &effect.Def{ID: "venom", Name: "Venom", Type: effect.Poison, Duration: 3, Power: 5}
	first := def.Instantiate()
	second := def.Instantiate()
	require.NotSame(t, first, second)

	first.Remaining = 1
	assert.Equal(t, 3, second.Remaining, "instances must not share duration state")
}

func TestProperty_Instantiate_RemainingEqualsDuration(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		duration := rapid.IntRange(1, 20).Draw(rt, "duration")
		power := rapid.IntRange(0, 50).Draw(rt, "power")
		def := &effect.Def{ID: "e", Name: "E", Type: effect.Burn, Duration: duration, Power: power}
		e := def.Instantiate()
		assert.Equal(rt, duration, e.Remaining)
		assert.Equal(rt, duration, e.Duration)
		assert.False(rt, e.Expired())
	})
}
