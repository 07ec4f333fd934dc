// Package loot provides drop table schema, validation, and resolution.
package loot

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/emberworks/rpgkit/item"
	"github.com/emberworks/rpgkit/rng"
)

// Entry is a single drop table line: an item and its independent drop
// probability.
//
// Invariant: Chance is in [0, 1].
type Entry struct {
	Item   *item.Item
	Chance float64
}

// Table is the list of possible drops for one enemy. Entries are
// evaluated independently: a single kill can yield zero, some, or all
// of the table's items.
type Table []Entry

// Validate checks that every entry satisfies its invariants.
//
// Postcondition: Returns nil iff every entry has a non-nil item and a
// chance in [0, 1]; an empty table is valid.
func (t Table) Validate() error {
	for i, e := range t {
		if e.Item == nil {
			return fmt.Errorf("drop table: entry[%d] must have an item", i)
		}
		if e.Chance < 0 || e.Chance > 1.0 {
			return fmt.Errorf("drop table: entry[%d] chance must be in [0, 1], got %f", i, e.Chance)
		}
	}
	return nil
}

// Drop is one item produced by a table roll. InstanceID distinguishes
// repeated drops of the same item definition.
type Drop struct {
	Item       *item.Item
	InstanceID string
}

// Roll evaluates every table entry with an independent draw from src.
// An entry with chance 1.0 always drops; 0.0 never drops; the long-run
// drop frequency of each entry equals its chance.
//
// Precondition: t must have passed Validate; src must be non-nil.
func Roll(t Table, src rng.Source) []Drop {
	var drops []Drop
	for _, e := range t {
		if src.Float64() < e.Chance {
			drops = append(drops, Drop{
				Item:       e.Item,
				InstanceID: uuid.New().String(),
			})
		}
	}
	return drops
}
