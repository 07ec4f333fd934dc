package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/ai"
	"github.com/emberworks/rpgkit/character"
)

func attack(id string, power, manaCost int) *ability.Ability {
	return &ability.Ability{ID: id, Name: id, Type: ability.Attack, Power: power, ManaCost: manaCost}
}

func heal(id string, power, manaCost int) *ability.Ability {
	return &ability.Ability{ID: id, Name: id, Type: ability.Heal, Power: power, ManaCost: manaCost}
}

func TestNewSelector_DefaultThreshold(t *testing.T) {
	assert.Equal(t, ai.DefaultLowHealthThreshold, ai.NewSelector(0).LowHealthThreshold)
	assert.Equal(t, 0.5, ai.NewSelector(0.5).LowHealthThreshold)
}

func TestChoose_HighestPowerAttack(t *testing.T) {
	enemy := character.NewEnemy("Orc", 50, 30, 12, 3, 2, 40, 15)
	weak := attack("club", 8, 0)
	strong := attack("smash", 20, 5)
	enemy.AddAbility(weak)
	enemy.AddAbility(strong)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, strong, got)
}

func TestChoose_TieBrokenByListOrder(t *testing.T) {
	enemy := character.NewEnemy("Orc", 50, 30, 12, 3, 2, 40, 15)
	first := attack("first", 10, 0)
	second := attack("second", 10, 0)
	enemy.AddAbility(first)
	enemy.AddAbility(second)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, first, got)
}

func TestChoose_HealsWhenLow(t *testing.T) {
	enemy := character.NewEnemy("Shaman", 100, 30, 10, 2, 3, 60, 25)
	enemy.HP = 20 // below the 0.25 default threshold
	smash := attack("smash", 20, 0)
	mend := heal("mend", 15, 10)
	enemy.AddAbility(smash)
	enemy.AddAbility(mend)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, mend, got)
}

func TestChoose_NoHealAtThreshold(t *testing.T) {
	enemy := character.NewEnemy("Shaman", 100, 30, 10, 2, 3, 60, 25)
	enemy.HP = 25 // exactly at threshold, not below
	smash := attack("smash", 20, 0)
	mend := heal("mend", 15, 10)
	enemy.AddAbility(smash)
	enemy.AddAbility(mend)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, smash, got)
}

func TestChoose_LowButNoUsableHeal(t *testing.T) {
	enemy := character.NewEnemy("Shaman", 100, 5, 10, 2, 3, 60, 25)
	enemy.HP = 10
	smash := attack("smash", 20, 0)
	mend := heal("mend", 15, 10) // unaffordable at 5 mana
	enemy.AddAbility(smash)
	enemy.AddAbility(mend)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, smash, got)
}

func TestChoose_SkipsUnusableAbilities(t *testing.T) {
	enemy := character.NewEnemy("Orc", 50, 8, 12, 3, 2, 40, 15)
	expensive := attack("meteor", 50, 30)
	cooling := attack("smash", 20, 0)
	cooling.Cooldown = 2
	cooling.TriggerCooldown()
	affordable := attack("club", 8, 0)
	enemy.AddAbility(expensive)
	enemy.AddAbility(cooling)
	enemy.AddAbility(affordable)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, affordable, got)
}

func TestChoose_DebuffCountsAsOffense(t *testing.T) {
	enemy := character.NewEnemy("Witch", 50, 30, 6, 2, 2, 40, 15)
	curse := &ability.Ability{ID: "curse", Name: "curse", Type: ability.Debuff, Power: 12, ManaCost: 5}
	jab := attack("jab", 4, 0)
	enemy.AddAbility(curse)
	enemy.AddAbility(jab)

	got := ai.NewSelector(0).Choose(enemy, nil)
	assert.Same(t, curse, got)
}

func TestChoose_BuffNeverChosen(t *testing.T) {
	enemy := character.NewEnemy("Orc", 50, 30, 12, 3, 2, 40, 15)
	rage := &ability.Ability{ID: "rage", Name: "rage", Type: ability.Buff, ManaCost: 8}
	enemy.AddAbility(rage)

	assert.Nil(t, ai.NewSelector(0).Choose(enemy, nil))
}

func TestChoose_NothingUsable(t *testing.T) {
	enemy := character.NewEnemy("Orc", 50, 0, 12, 3, 2, 40, 15)
	enemy.AddAbility(attack("meteor", 50, 30))

	assert.Nil(t, ai.NewSelector(0).Choose(enemy, nil))
}

func TestChoose_Deterministic(t *testing.T) {
	build := func() *character.Character {
		enemy := character.NewEnemy("Orc", 50, 30, 12, 3, 2, 40, 15)
		enemy.AddAbility(attack("club", 8, 0))
		enemy.AddAbility(attack("smash", 20, 5))
		enemy.AddAbility(heal("mend", 15, 10))
		return enemy
	}
	sel := ai.NewSelector(0)

	first := sel.Choose(build(), nil)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.ID, sel.Choose(build(), nil).ID)
	}
}

func TestChoose_CustomThreshold(t *testing.T) {
	enemy := character.NewEnemy("Shaman", 100, 30, 10, 2, 3, 60, 25)
	enemy.HP = 40
	smash := attack("smash", 20, 0)
	mend := heal("mend", 15, 10)
	enemy.AddAbility(smash)
	enemy.AddAbility(mend)

	// 40% HP is below a 0.5 threshold but above the default 0.25.
	assert.Same(t, mend, ai.NewSelector(0.5).Choose(enemy, nil))
	assert.Same(t, smash, ai.NewSelector(0).Choose(enemy, nil))
}
