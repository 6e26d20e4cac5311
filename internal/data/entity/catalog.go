package entity

import (
	"github.com/shopspring/decimal"
)

// MaxQuantityPerTier bounds a single input field, not stock.
const MaxQuantityPerTier = 1000

type Tier struct {
	ID          string
	Name        string
	Price       int64 // whole RM
	Description string
}

func (t Tier) UnitPrice() decimal.Decimal {
	return decimal.NewFromInt(t.Price)
}

// Catalog is the read-only, ordered set of ticket tiers.
type Catalog struct {
	tiers []Tier
	index map[string]int
}

func NewCatalog(tiers ...Tier) *Catalog {
	c := &Catalog{
		tiers: make([]Tier, len(tiers)),
		index: make(map[string]int, len(tiers)),
	}
	copy(c.tiers, tiers)
	for i, t := range c.tiers {
		c.index[t.ID] = i
	}
	return c
}

// Tiers returns a copy in display order.
func (c *Catalog) Tiers() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

func (c *Catalog) Find(id string) (Tier, bool) {
	i, ok := c.index[id]
	if !ok {
		return Tier{}, false
	}
	return c.tiers[i], true
}

func (c *Catalog) Len() int {
	return len(c.tiers)
}

var concertTiers = []Tier{
	{
		ID:          "meet-greet",
		Name:        "Meet & Greet (Ultimate Fan Experience)",
		Price:       1000,
		Description: "Exclusive access to meet the artists backstage.",
	},
	{
		ID:          "vip",
		Name:        "VIP (Front Row)",
		Price:       500,
		Description: "Enjoy front-row seats for the best view of the concert.",
	},
	{
		ID:          "premium",
		Name:        "Premium (Middle Section)",
		Price:       300,
		Description: "Perfect view from the middle section of the stadium.",
	},
	{
		ID:          "regular",
		Name:        "Regular (Back Row)",
		Price:       100,
		Description: "Affordable seats with a great atmosphere at the back.",
	},
}

func ConcertCatalog() *Catalog {
	return NewCatalog(concertTiers...)
}
