package content

import (
	"github.com/emberworks/rpgkit/item"
	"github.com/emberworks/rpgkit/rng"
	"github.com/emberworks/rpgkit/shop"
)

// Default shop price multipliers: shops sell at face value and buy back
// at half.
const (
	DefaultBuyMultiplier  = 1.0
	DefaultSellMultiplier = 0.5
)

// stockQty returns a quantity in [min, max], or the midpoint when src
// is nil.
func stockQty(src rng.Source, min, max int) int {
	if src == nil {
		return (min + max) / 2
	}
	return min + src.Intn(max-min+1)
}

// newDefaultShop builds a shop with the default multipliers. The
// multipliers are compile-time constants that satisfy the shop
// invariants, so construction cannot fail.
func newDefaultShop(name string) *shop.Shop {
	s, err := shop.New(name, DefaultBuyMultiplier, DefaultSellMultiplier)
	if err != nil {
		panic("content: default shop multipliers invalid: " + err.Error())
	}
	return s
}

// WeaponShop creates a blacksmith stocked with 1-3 of each weapon.
// src drives the stock quantities; nil src uses fixed midpoints.
func WeaponShop(src rng.Source) *shop.Shop {
	s := newDefaultShop("Blacksmith's Forge")
	weapons := []*item.Item{
		NewWeapon("Iron Sword", 8, 40, "A sturdy iron sword"),
		NewWeapon("Steel Sword", 12, 80, "A sharp steel blade"),
		NewWeapon("Silver Dagger", 6, 60, "A quick silver dagger"),
		NewWeapon("War Hammer", 15, 120, "A heavy war hammer"),
		NewWeapon("Magic Staff", 10, 100, "A staff imbued with magic"),
	}
	for _, w := range weapons {
		s.AddStock(w, stockQty(src, 1, 3))
	}
	return s
}

// ArmorShop creates an armorer stocked with 1-2 of each armor piece.
func ArmorShop(src rng.Source) *shop.Shop {
	s := newDefaultShop("Armor Emporium")
	armors := []*item.Item{
		NewArmor("Leather Armor", 3, 30, "Basic leather protection"),
		NewArmor("Chain Mail", 6, 60, "Flexible chain mail armor"),
		NewArmor("Plate Armor", 10, 150, "Heavy plate armor"),
		NewArmor("Mage Robes", 4, 80, "Robes that enhance magic"),
		NewArmor("Dragon Scale Vest", 12, 300, "Armor made from dragon scales"),
	}
	for _, a := range armors {
		s.AddStock(a, stockQty(src, 1, 2))
	}
	return s
}

// PotionShop creates an alchemist stocked with 3-8 of each potion.
func PotionShop(src rng.Source) *shop.Shop {
	s := newDefaultShop("Alchemist's Corner")
	potions := []*item.Item{
		NewHealthPotion(25),
		NewHealthPotion(50),
		NewHealthPotion(100),
		NewManaPotion(20),
		NewManaPotion(40),
		NewManaPotion(80),
	}
	for _, p := range potions {
		s.AddStock(p, stockQty(src, 3, 8))
	}
	return s
}
