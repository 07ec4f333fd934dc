// Package shop implements price-adjusted item exchange between a shop's
// stock and a player's inventory.
package shop

import (
	"fmt"

	"github.com/emberworks/rpgkit/character"
	"github.com/emberworks/rpgkit/item"
)

// Listing is one stocked item with its remaining quantity.
//
// Invariant: Quantity >= 1 while the listing is present.
type Listing struct {
	Item     *item.Item
	Quantity int
}

// Shop holds a named item stock and the buy/sell price multipliers.
// Multipliers are validated at construction and through SetMultipliers;
// requiring sell <= buy closes the buy/sell cycling money pump.
//
// Invariant: 0 < sellMultiplier <= buyMultiplier.
type Shop struct {
	Name string

	stock    []Listing
	buyMult  float64
	sellMult float64
}

// New creates a shop with the given price multipliers.
//
// Postcondition: Returns an error unless buyMult > 0, sellMult > 0, and
// sellMult <= buyMult.
func New(name string, buyMult, sellMult float64) (*Shop, error) {
	s := &Shop{Name: name}
	if err := s.SetMultipliers(buyMult, sellMult); err != nil {
		return nil, err
	}
	return s, nil
}

// SetMultipliers updates the price multipliers, enforcing positivity
// and sell <= buy.
func (s *Shop) SetMultipliers(buyMult, sellMult float64) error {
	if buyMult <= 0 {
		return fmt.Errorf("shop %q: buy multiplier must be > 0, got %f", s.Name, buyMult)
	}
	if sellMult <= 0 {
		return fmt.Errorf("shop %q: sell multiplier must be > 0, got %f", s.Name, sellMult)
	}
	if sellMult > buyMult {
		return fmt.Errorf("shop %q: sell multiplier (%f) must not exceed buy multiplier (%f)",
			s.Name, sellMult, buyMult)
	}
	s.buyMult = buyMult
	s.sellMult = sellMult
	return nil
}

// BuyPrice returns the gold cost for a player to buy it.
func (s *Shop) BuyPrice(it *item.Item) int {
	return int(float64(it.Value) * s.buyMult)
}

// SellPrice returns the gold credited when a player sells it.
func (s *Shop) SellPrice(it *item.Item) int {
	return int(float64(it.Value) * s.sellMult)
}

// AddStock adds qty units of it to the stock, merging with an existing
// listing for the same item ID.
//
// Precondition: it must be non-nil; qty must be >= 1.
func (s *Shop) AddStock(it *item.Item, qty int) {
	for i := range s.stock {
		if s.stock[i].Item.ID == it.ID {
			s.stock[i].Quantity += qty
			return
		}
	}
	s.stock = append(s.stock, Listing{Item: it, Quantity: qty})
}

// Stock returns a snapshot of the current listings.
func (s *Shop) Stock() []Listing {
	out := make([]Listing, len(s.stock))
	copy(out, s.stock)
	return out
}

// find returns the stock index of the listing for itemID, or -1.
func (s *Shop) find(itemID string) int {
	for i := range s.stock {
		if s.stock[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Buy sells one unit of itemID to player. The purchase succeeds iff the
// item is stocked and the player can afford the buy price; on success
// the gold is deducted, the item enters the player's inventory, and the
// stock quantity decrements, removing the listing at zero. No partial
// transactions.
//
// Precondition: player must have a progression block (gold purse).
func (s *Shop) Buy(player *character.Character, itemID string) bool {
	if player.Progression == nil {
		return false
	}
	idx := s.find(itemID)
	if idx < 0 {
		return false
	}
	it := s.stock[idx].Item
	if !player.Progression.SpendGold(s.BuyPrice(it)) {
		return false
	}
	player.AddItem(it)
	s.stock[idx].Quantity--
	if s.stock[idx].Quantity <= 0 {
		s.stock = append(s.stock[:idx], s.stock[idx+1:]...)
	}
	return true
}

// Sell buys it from player. The default policy accepts any item the
// player holds: the item leaves the player's inventory, the sell price
// is credited, and the item joins the stock.
//
// Precondition: player must have a progression block.
func (s *Shop) Sell(player *character.Character, it *item.Item) bool {
	if player.Progression == nil {
		return false
	}
	if !player.RemoveItem(it) {
		return false
	}
	player.Progression.AddGold(s.SellPrice(it))
	s.AddStock(it, 1)
	return true
}
