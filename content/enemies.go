package content

import (
	"fmt"

	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/character"
	"github.com/emberworks/rpgkit/effect"
	"github.com/emberworks/rpgkit/loot"
	"github.com/emberworks/rpgkit/rng"
)

// EnemyConfig describes a fully customizable enemy for CustomEnemy.
// ExpReward and GoldReward <= 0 are defaulted from the enemy's level
// with a small random spread.
type EnemyConfig struct {
	Name       string
	HP         int
	Mana       int
	Attack     int
	Defense    int
	Level      int
	ExpReward  int
	GoldReward int
	Abilities  []*ability.Ability
	Drops      loot.Table
}

// CustomEnemy assembles an enemy character from cfg. src drives reward
// defaulting; nil src uses midpoint spreads.
func CustomEnemy(cfg EnemyConfig, src rng.Source) *character.Character {
	expReward := cfg.ExpReward
	if expReward <= 0 {
		expReward = cfg.Level*20 + 5 + roll(src, 10)
	}
	goldReward := cfg.GoldReward
	if goldReward <= 0 {
		goldReward = cfg.Level*8 + 2 + roll(src, 6)
	}

	c := character.NewEnemy(cfg.Name, cfg.HP, cfg.Mana, cfg.Attack, cfg.Defense,
		cfg.Level, expReward, goldReward)
	for _, ab := range cfg.Abilities {
		c.AddAbility(ab)
	}
	c.Reward.Drops = cfg.Drops
	return c
}

// roll returns a draw in [0, spread], or the midpoint when src is nil.
func roll(src rng.Source, spread int) int {
	if src == nil {
		return spread / 2
	}
	return src.Intn(spread + 1)
}

// Goblin creates a level-scaled goblin: weak stats, poison and
// attack-weakening tricks.
func Goblin(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Goblin (Lv.%d)", level),
		HP:      30 + (level-1)*8,
		Mana:    10,
		Attack:  6 + (level-1)*2,
		Defense: 2 + (level - 1),
		Level:   level,
		Abilities: []*ability.Ability{
			Slash(),
			PoisonDart(),
			NewEffectAbility("Dirty Fighting", 8, 4, effect.Weakness, 2, 5, 2,
				"A sneaky attack that weakens the opponent"),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Rusty Dagger", 3, 15, ""), Chance: 0.3},
			{Item: NewConsumable("Goblin Ear", 5, ""), Chance: 0.8},
			{Item: NewHealthPotion(25), Chance: 0.2},
		},
	}, src)
}

// Orc creates a level-scaled orc warrior: heavy melee with stuns and a
// self-buff.
func Orc(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Orc Warrior (Lv.%d)", level),
		HP:      60 + (level-1)*12,
		Mana:    20,
		Attack:  12 + (level-1)*3,
		Defense: 5 + (level-1)*2,
		Level:   level,
		Abilities: []*ability.Ability{
			Slash(),
			PowerStrike(),
			StunningBlow(),
			NewBuffAbility("Berserker Rage", 8, 4, &effect.Def{
				ID:       "berserker_rage_effect",
				Name:     "Berserker Rage Effect",
				Type:     effect.StrengthBoost,
				Duration: 3,
				Power:    12,
			}, "Enters a rage that increases attack power"),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Orcish Axe", 8, 50, ""), Chance: 0.4},
			{Item: NewArmor("Leather Armor", 4, 40, ""), Chance: 0.3},
			{Item: NewHealthPotion(50), Chance: 0.5},
		},
	}, src)
}

// SkeletonMage creates a level-scaled caster with freezes, curses, and
// self-regeneration.
func SkeletonMage(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Skeleton Mage (Lv.%d)", level),
		HP:      40 + (level-1)*6,
		Mana:    40 + (level-1)*5,
		Attack:  8 + (level-1)*2,
		Defense: 3 + (level - 1),
		Level:   level,
		Abilities: []*ability.Ability{
			Fireball(),
			Heal(),
			IceShard(),
			WeaknessCurse(),
			NewEffectAbility("Bone Chill", 12, 6, effect.Freeze, 2, 8, 3,
				"A chilling spell that slows the enemy"),
			NewBuffAbility("Dark Ritual", 15, 5, &effect.Def{
				ID:       "dark_ritual_effect",
				Name:     "Dark Ritual Effect",
				Type:     effect.Regeneration,
				Duration: 3,
				Power:    10,
			}, "Channels dark magic to regenerate health"),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Magic Staff", 6, 60, ""), Chance: 0.3},
			{Item: NewManaPotion(40), Chance: 0.6},
			{Item: NewConsumable("Bone Fragment", 8, ""), Chance: 0.9},
		},
	}, src)
}

// Dragon creates a level-scaled boss with a guaranteed trophy drop.
func Dragon(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:       fmt.Sprintf("Ancient Dragon (Lv.%d)", level),
		HP:         200 + (level-1)*25,
		Mana:       80 + (level-1)*8,
		Attack:     25 + (level-1)*4,
		Defense:    15 + (level-1)*3,
		Level:      level,
		ExpReward:  level * 100,
		GoldReward: level * 50,
		Abilities: []*ability.Ability{
			NewAttackAbility("Dragon Breath", 45, 15, 3, "Devastating fire breath"),
			NewAttackAbility("Claw Strike", 30, 0, 1, "Powerful claw attack"),
			Fireball(),
			FlameStrike(),
			ArmorBreak(),
			NewEffectAbility("Dragon's Roar", 15, 8, effect.Stun, 1, 15, 6,
				"A terrifying roar that stuns enemies with fear"),
			NewBuffAbility("Molten Scales", 20, 8, &effect.Def{
				ID:       "molten_scales_effect",
				Name:     "Molten Scales Effect",
				Type:     effect.DefenseBoost,
				Duration: 4,
				Power:    12,
			}, "Hardens scales to increase defense"),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Dragon Sword", 20, 500, ""), Chance: 0.8},
			{Item: NewArmor("Dragon Scale Armor", 15, 400, ""), Chance: 0.7},
			{Item: NewConsumable("Dragon Heart", 1000, ""), Chance: 1.0},
			{Item: NewHealthPotion(100), Chance: 0.9},
		},
	}, src)
}

// VenomousSpider creates a level-scaled spider specialising in poison.
func VenomousSpider(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Venomous Spider (Lv.%d)", level),
		HP:      25 + (level-1)*5,
		Mana:    15 + (level-1)*3,
		Attack:  8 + (level-1)*2,
		Defense: 3 + (level - 1),
		Level:   level,
		Abilities: []*ability.Ability{
			PoisonDart(),
			NewEffectAbility("Venom Bite", 12, 5, effect.Poison, 4, 8, 1,
				"A venomous bite that causes severe poisoning"),
			WeaknessCurse(),
		},
		Drops: loot.Table{
			{Item: NewConsumable("Spider Venom", 25, ""), Chance: 0.7},
			{Item: NewConsumable("Spider Silk", 15, ""), Chance: 0.9},
			{Item: NewHealthPotion(25), Chance: 0.3},
		},
	}, src)
}

// FrostElemental creates a level-scaled elemental specialising in
// freeze and stun control.
func FrostElemental(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Frost Elemental (Lv.%d)", level),
		HP:      70 + (level-1)*10,
		Mana:    60 + (level-1)*8,
		Attack:  10 + (level-1)*2,
		Defense: 8 + (level-1)*2,
		Level:   level,
		Abilities: []*ability.Ability{
			IceShard(),
			NewEffectAbility("Frost Aura", 8, 12, effect.Freeze, 2, 0, 2,
				"An aura of cold that can freeze enemies solid"),
			NewEffectAbility("Ice Prison", 5, 15, effect.Stun, 2, 0, 3,
				"Encases the target in ice, preventing movement"),
		},
		Drops: loot.Table{
			{Item: NewConsumable("Frost Crystal", 40, ""), Chance: 0.6},
			{Item: NewManaPotion(50), Chance: 0.5},
			{Item: NewWeapon("Ice Blade", 7, 45, ""), Chance: 0.4},
		},
	}, src)
}

// FireDemon creates a level-scaled demon specialising in burns.
func FireDemon(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Fire Demon (Lv.%d)", level),
		HP:      80 + (level-1)*12,
		Mana:    50 + (level-1)*6,
		Attack:  14 + (level-1)*3,
		Defense: 6 + (level-1)*2,
		Level:   level,
		Abilities: []*ability.Ability{
			FlameStrike(),
			Fireball(),
			NewEffectAbility("Inferno", 25, 18, effect.Burn, 4, 12, 3,
				"A devastating fire attack that burns for extended periods"),
			ArmorBreak(),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Flame Sword", 12, 80, ""), Chance: 0.5},
			{Item: NewConsumable("Demon Horn", 60, ""), Chance: 0.8},
			{Item: NewHealthPotion(75), Chance: 0.4},
		},
	}, src)
}

// ShadowAssassin creates a level-scaled assassin specialising in stuns
// and defense shredding.
func ShadowAssassin(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Shadow Assassin (Lv.%d)", level),
		HP:      60 + (level-1)*8,
		Mana:    40 + (level-1)*5,
		Attack:  16 + (level-1)*3,
		Defense: 4 + (level - 1),
		Level:   level,
		Abilities: []*ability.Ability{
			StunningBlow(),
			WeaknessCurse(),
			NewEffectAbility("Shadow Strike", 20, 10, effect.Vulnerability, 3, 10, 2,
				"A strike from the shadows that leaves the target vulnerable"),
			NewEffectAbility("Paralyzing Dart", 8, 12, effect.Stun, 2, 0, 3,
				"A dart that paralyzes the target temporarily"),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Shadow Blade", 14, 120, ""), Chance: 0.6},
			{Item: NewConsumable("Shadow Essence", 50, ""), Chance: 0.7},
			{Item: NewArmor("Shadow Cloak", 6, 90, ""), Chance: 0.4},
		},
	}, src)
}

// NatureShaman creates a level-scaled shaman built around regeneration
// and defensive buffs.
func NatureShaman(level int, src rng.Source) *character.Character {
	return CustomEnemy(EnemyConfig{
		Name:    fmt.Sprintf("Nature Shaman (Lv.%d)", level),
		HP:      55 + (level-1)*9,
		Mana:    70 + (level-1)*10,
		Attack:  9 + (level-1)*2,
		Defense: 7 + (level-1)*2,
		Level:   level,
		Abilities: []*ability.Ability{
			Heal(),
			NewBuffAbility("Nature's Blessing", 15, 2, &effect.Def{
				ID:       "natures_blessing_effect",
				Name:     "Nature's Blessing Effect",
				Type:     effect.Regeneration,
				Duration: 5,
				Power:    8,
			}, "Calls upon nature to heal over time"),
			NewBuffAbility("Bark Skin", 12, 3, &effect.Def{
				ID:       "bark_skin_effect",
				Name:     "Bark Skin Effect",
				Type:     effect.DefenseBoost,
				Duration: 4,
				Power:    10,
			}, "Hardens skin like tree bark for increased defense"),
			WeaknessCurse(),
		},
		Drops: loot.Table{
			{Item: NewWeapon("Nature Staff", 8, 65, ""), Chance: 0.5},
			{Item: NewConsumable("Healing Herbs", 30, ""), Chance: 0.8},
			{Item: NewManaPotion(60), Chance: 0.6},
		},
	}, src)
}
