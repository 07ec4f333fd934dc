package character

import "github.com/emberworks/rpgkit/loot"

// Reward is the enemy-role block: level, kill rewards, and the drop
// table queried on death.
type Reward struct {
	Level            int
	ExperienceReward int
	GoldReward       int
	Drops            loot.Table
}

// AddDrop appends an entry to the enemy's drop table.
//
// Precondition: the character must have a reward block; chance must be
// in [0, 1].
func (c *Character) AddDrop(entry loot.Entry) {
	if c.Reward == nil {
		return
	}
	c.Reward.Drops = append(c.Reward.Drops, entry)
}
