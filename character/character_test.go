package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/character"
	"github.com/emberworks/rpgkit/effect"
	"github.com/emberworks/rpgkit/item"
	"github.com/emberworks/rpgkit/loot"
	"github.com/emberworks/rpgkit/rng"
)

func newHero() *character.Character {
	return character.NewPlayer("Hero", 100, 50, 10, 5)
}

func TestNewPlayer(t *testing.T) {
	c := newHero()
	assert.Equal(t, 100, c.HP)
	assert.Equal(t, 100, c.MaxHP)
	assert.Equal(t, 50, c.Mana)
	require.NotNil(t, c.Progression)
	assert.Equal(t, 1, c.Progression.Level)
	assert.Equal(t, 100, c.Progression.ExperienceToNext)
	assert.Nil(t, c.Reward)
	assert.True(t, c.Alive())
}

func TestNewEnemy(t *testing.T) {
	c := character.NewEnemy("Goblin", 30, 10, 8, 2, 1, 25, 10)
	require.NotNil(t, c.Reward)
	assert.Equal(t, 25, c.Reward.ExperienceReward)
	assert.Equal(t, 10, c.Reward.GoldReward)
	assert.Nil(t, c.Progression)
}

func TestRemoveItem(t *testing.T) {
	c := newHero()
	potion := &item.Item{ID: "potion", Name: "Potion", Type: item.Consumable}
	c.AddItem(potion)

	assert.True(t, c.RemoveItem(potion))
	assert.False(t, c.RemoveItem(potion), "second removal must fail")
	assert.Empty(t, c.Inventory)
}

func TestTotalAttack_EquipmentAndEffects(t *testing.T) {
	c := newHero()
	assert.Equal(t, 10, c.TotalAttack())

	sword := &item.Item{
		ID: "sword", Name: "Sword", Type: item.Weapon,
		Stats: map[string]int{item.StatAttack: 8},
	}
	c.AddItem(sword)
	require.True(t, c.Equip(sword, ""))
	assert.Equal(t, 18, c.TotalAttack())

	c.AddEffect(&effect.Effect{Name: "Strengthened", Type: effect.StrengthBoost, Power: 5, Duration: 3, Remaining: 3})
	assert.Equal(t, 23, c.TotalAttack())

	c.AddEffect(&effect.Effect{Name: "Weakened", Type: effect.Weakness, Power: 40, Duration: 3, Remaining: 3})
	assert.Equal(t, 0, c.TotalAttack(), "total attack floors at zero")
}

func TestTotalDefense_EquipmentAndEffects(t *testing.T) {
	c := newHero()
	assert.Equal(t, 5, c.TotalDefense())

	shield := &item.Item{
		ID: "shield", Name: "Shield", Type: item.Armor,
		Stats: map[string]int{item.StatDefense: 4},
	}
	c.AddItem(shield)
	require.True(t, c.Equip(shield, ""))
	assert.Equal(t, 9, c.TotalDefense())

	c.AddEffect(&effect.Effect{Name: "Exposed", Type: effect.Vulnerability, Power: 30, Duration: 3, Remaining: 3})
	assert.Equal(t, 0, c.TotalDefense(), "total defense floors at zero")
}

func TestTickCooldowns(t *testing.T) {
	c := newHero()
	ab := &ability.Ability{ID: "slash", Name: "Slash", Type: ability.Attack, Power: 15, Cooldown: 2}
	c.AddAbility(ab)
	ab.TriggerCooldown()

	c.TickCooldowns()
	assert.Equal(t, 1, ab.CurrentCooldown)
	c.TickCooldowns()
	assert.True(t, ab.Ready())
}

func TestRollDrops(t *testing.T) {
	src := rng.NewSeededSource(1)

	hero := newHero()
	assert.Nil(t, hero.RollDrops(src), "players have no drop table")

	enemy := character.NewEnemy("Goblin", 30, 10, 8, 2, 1, 25, 10)
	fang := &item.Item{ID: "fang", Name: "Fang", Type: item.Misc, Value: 5}
	enemy.AddDrop(loot.Entry{Item: fang, Chance: 1.0})

	drops := enemy.RollDrops(src)
	require.Len(t, drops, 1)
	assert.Equal(t, fang, drops[0].Item)
}
