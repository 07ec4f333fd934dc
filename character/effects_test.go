package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberworks/rpgkit/effect"
)

func TestProcessStatusEffects_PoisonTicksThenExpires(t *testing.T) {
	c := newHero() // 100 HP, defense 5
	c.TakeDamage(20)
	require.Equal(t, 85, c.HP)

	c.AddEffect(&effect.Effect{Name: "Poisoned", Type: effect.Poison, Power: 8, Duration: 3, Remaining: 3})

	// Poison damage bypasses defense entirely.
	msgs := c.ProcessStatusEffects()
	assert.Equal(t, 77, c.HP)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hero takes 8 damage from Poisoned!", msgs[0])

	c.ProcessStatusEffects()
	assert.Equal(t, 69, c.HP)

	msgs = c.ProcessStatusEffects()
	assert.Equal(t, 61, c.HP)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hero's Poisoned has worn off.", msgs[1])
	assert.False(t, c.HasEffect(effect.Poison))

	// Fourth turn: nothing left to process.
	assert.Empty(t, c.ProcessStatusEffects())
	assert.Equal(t, 61, c.HP)
}

func TestProcessStatusEffects_DamageClampsAtZero(t *testing.T) {
	c := newHero()
	c.HP = 5
	c.AddEffect(&effect.Effect{Name: "Burning", Type: effect.Burn, Power: 8, Duration: 2, Remaining: 2})

	c.ProcessStatusEffects()
	assert.Equal(t, 0, c.HP)
	assert.False(t, c.Alive())
}

func TestProcessStatusEffects_RegenerationCapsAtMax(t *testing.T) {
	c := newHero()
	c.HP = 95
	c.AddEffect(&effect.Effect{Name: "Regenerating", Type: effect.Regeneration, Power: 10, Duration: 3, Remaining: 3})

	msgs := c.ProcessStatusEffects()
	assert.Equal(t, 100, c.HP)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hero regenerates 10 HP from Regenerating!", msgs[0])
}

func TestProcessStatusEffects_ControlAndModifierMessages(t *testing.T) {
	c := newHero()
	c.AddEffect(&effect.Effect{Name: "Stunned", Type: effect.Stun, Duration: 1, Remaining: 1})
	c.AddEffect(&effect.Effect{Name: "Strengthened", Type: effect.StrengthBoost, Power: 5, Duration: 2, Remaining: 2})

	msgs := c.ProcessStatusEffects()
	require.Len(t, msgs, 3)
	assert.Equal(t, "Hero is unable to act: Stunned!", msgs[0])
	assert.Equal(t, "Hero is affected by Strengthened!", msgs[1])
	assert.Equal(t, "Hero's Stunned has worn off.", msgs[2])
	assert.Equal(t, 100, c.HP, "control and modifier effects change no HP")
}

func TestProcessStatusEffects_ApplicationOrder(t *testing.T) {
	c := newHero()
	c.AddEffect(&effect.Effect{Name: "Burning", Type: effect.Burn, Power: 4, Duration: 2, Remaining: 2})
	c.AddEffect(&effect.Effect{Name: "Poisoned", Type: effect.Poison, Power: 8, Duration: 2, Remaining: 2})

	msgs := c.ProcessStatusEffects()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hero takes 4 damage from Burning!", msgs[0])
	assert.Equal(t, "Hero takes 8 damage from Poisoned!", msgs[1])
	assert.Equal(t, 88, c.HP)
}

func TestActionPrevented(t *testing.T) {
	c := newHero()
	assert.False(t, c.ActionPrevented())

	c.AddEffect(&effect.Effect{Name: "Frozen", Type: effect.Freeze, Duration: 2, Remaining: 2})
	assert.True(t, c.ActionPrevented())

	c.RemoveEffect(effect.Freeze)
	assert.False(t, c.ActionPrevented())
}

func TestAddEffect_RefreshesDuration(t *testing.T) {
	c := newHero()
	c.AddEffect(&effect.Effect{Name: "Poisoned", Type: effect.Poison, Power: 5, Duration: 3, Remaining: 3})
	c.ProcessStatusEffects()
	c.ProcessStatusEffects()

	// Reapplication resets remaining duration.
	c.AddEffect(&effect.Effect{Name: "Poisoned", Type: effect.Poison, Power: 5, Duration: 3, Remaining: 3})
	got := c.Effects.Get(effect.Poison)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Remaining)
}

func TestStatusSummary(t *testing.T) {
	c := newHero()
	assert.Empty(t, c.StatusSummary())

	c.AddEffect(&effect.Effect{Name: "Poisoned", Type: effect.Poison, Power: 5, Duration: 3, Remaining: 3})
	summary := c.StatusSummary()
	require.Len(t, summary, 1)
	assert.Equal(t, "Poisoned (3 turns remaining)", summary[0])
}
