package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/emberworks/rpgkit/effect"
)

func poisoned(power, duration int) *effect.Effect {
	return &effect.Effect{
		Name:      "Poisoned",
		Type:      effect.Poison,
		Power:     power,
		Duration:  duration,
		Remaining: duration,
	}
}

func TestSet_AddAndHas(t *testing.T) {
	s := effect.NewSet()
	assert.False(t, s.Has(effect.Poison))

	s.Add(poisoned(5, 3))
	assert.True(t, s.Has(effect.Poison))
	assert.Equal(t, 1, s.Len())
}

func TestSet_AddReplacesSameType(t *testing.T) {
	s := effect.NewSet()
	s.Add(poisoned(5, 3))
	s.Add(&effect.Effect{Name: "Burning", Type: effect.Burn, Power: 4, Duration: 2, Remaining: 2})

	refreshed := poisoned(8, 5)
	s.Add(refreshed)

	require.Equal(t, 2, s.Len())
	got := s.Get(effect.Poison)
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Power)
	assert.Equal(t, 5, got.Remaining)

	// Refreshed effect moves to the end of the processing order.
	all := s.All()
	assert.Equal(t, effect.Burn, all[0].Type)
	assert.Equal(t, effect.Poison, all[1].Type)
}

func TestSet_Remove(t *testing.T) {
	s := effect.NewSet()
	s.Add(poisoned(5, 3))
	s.Remove(effect.Poison)
	assert.False(t, s.Has(effect.Poison))
	assert.Equal(t, 0, s.Len())

	// Removing an absent type is a no-op.
	s.Remove(effect.Burn)
	assert.Equal(t, 0, s.Len())
}

func TestSet_TickDurations_RemovesExpired(t *testing.T) {
	s := effect.NewSet()
	s.Add(poisoned(5, 1))
	s.Add(&effect.Effect{Name: "Burning", Type: effect.Burn, Power: 4, Duration: 3, Remaining: 3})

	expired := s.TickDurations()
	require.Len(t, expired, 1)
	assert.Equal(t, effect.Poison, expired[0].Type)
	assert.False(t, s.Has(effect.Poison))
	assert.True(t, s.Has(effect.Burn))
	assert.Equal(t, 2, s.Get(effect.Burn).Remaining)
}

func TestSet_TickDurations_ExpiryOrder(t *testing.T) {
	s := effect.NewSet()
	s.Add(&effect.Effect{Name: "Burning", Type: effect.Burn, Duration: 1, Remaining: 1})
	s.Add(&effect.Effect{Name: "Frozen", Type: effect.Freeze, Duration: 1, Remaining: 1})

	expired := s.TickDurations()
	require.Len(t, expired, 2)
	assert.Equal(t, effect.Burn, expired[0].Type)
	assert.Equal(t, effect.Freeze, expired[1].Type)
	assert.Equal(t, 0, s.Len())
}

func TestSet_PreventsAction(t *testing.T) {
	s := effect.NewSet()
	s.Add(poisoned(5, 3))
	assert.False(t, s.PreventsAction())

	s.Add(&effect.Effect{Name: "Stunned", Type: effect.Stun, Duration: 1, Remaining: 1})
	assert.True(t, s.PreventsAction())

	s.TickDurations()
	assert.False(t, s.PreventsAction())
}

func TestSet_Deltas(t *testing.T) {
	s := effect.NewSet()
	s.Add(&effect.Effect{Name: "Strengthened", Type: effect.StrengthBoost, Power: 15, Duration: 3, Remaining: 3})
	s.Add(&effect.Effect{Name: "Weakened", Type: effect.Weakness, Power: 10, Duration: 3, Remaining: 3})
	s.Add(&effect.Effect{Name: "Shielded", Type: effect.DefenseBoost, Power: 12, Duration: 3, Remaining: 3})
	s.Add(&effect.Effect{Name: "Exposed", Type: effect.Vulnerability, Power: 8, Duration: 3, Remaining: 3})

	assert.Equal(t, 5, s.AttackDelta())
	assert.Equal(t, 4, s.DefenseDelta())
}

func TestProperty_TickDurations_RemainingNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		duration := rapid.IntRange(1, 10).Draw(rt, "duration")
		ticks := rapid.IntRange(0, 15).Draw(rt, "ticks")

		s := effect.NewSet()
		s.Add(poisoned(3, duration))

		for i := 0; i < ticks; i++ {
			s.TickDurations()
		}

		if ticks >= duration {
			assert.False(rt, s.Has(effect.Poison))
		} else {
			e := s.Get(effect.Poison)
			require.NotNil(rt, e)
			assert.Equal(rt, duration-ticks, e.Remaining)
			assert.GreaterOrEqual(rt, e.Remaining, 1)
		}
	})
}

func TestProperty_Set_AtMostOnePerType(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		types := []effect.Type{effect.Poison, effect.Burn, effect.Stun, effect.StrengthBoost}
		s := effect.NewSet()
		adds := rapid.IntRange(1, 20).Draw(rt, "adds")
		for i := 0; i < adds; i++ {
			typ := types[rapid.IntRange(0, len(types)-1).Draw(rt, "type")]
			s.Add(&effect.Effect{Name: string(typ), Type: typ, Duration: 3, Remaining: 3})
		}

		seen := map[effect.Type]int{}
		for _, e := range s.All() {
			seen[e.Type]++
		}
		for typ, n := range seen {
			assert.Equal(rt, 1, n, "type %s appears more than once", typ)
		}
	})
}
