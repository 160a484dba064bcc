package entities

import "time"

type TopSeller struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// TopSellersSnapshot is a read-only ranking computed at ComputedAt and
// considered stale after StaleAfter.
type TopSellersSnapshot struct {
	Items      []TopSeller `json:"items"`
	ComputedAt time.Time   `json:"computed_at"`
	StaleAfter time.Time   `json:"stale_after"`
}

func (s TopSellersSnapshot) IsStale(now time.Time) bool {
	return s.ComputedAt.IsZero() || now.After(s.StaleAfter)
}
