package response

import (
	"time"

	"storefront_orders/internal/domain/entities"
)

type ExchangeResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	UserID     string     `json:"user_id"`
	Kind       string     `json:"kind"`
	Reason     string     `json:"reason"`
	Evidence   []string   `json:"evidence"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"admin_notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func FromExchange(e entities.ExchangeRequest) ExchangeResponse {
	evidence := e.Evidence
	if evidence == nil {
		evidence = []string{}
	}
	return ExchangeResponse{
		ID:         e.ID,
		OrderID:    e.OrderID,
		UserID:     e.UserID,
		Kind:       string(e.Kind),
		Reason:     e.Reason,
		Evidence:   evidence,
		Status:     string(e.Status),
		AdminNotes: e.AdminNotes,
		CreatedAt:  e.CreatedAt,
		ResolvedAt: e.ResolvedAt,
	}
}

func FromExchanges(list []entities.ExchangeRequest) []ExchangeResponse {
	out := make([]ExchangeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromExchange(e))
	}
	return out
}

type TopSellersResponse struct {
	Items      []entities.TopSeller `json:"items"`
	ComputedAt *time.Time           `json:"computed_at"`
	StaleAfter *time.Time           `json:"stale_after"`
	Stale      bool                 `json:"stale"`
}

func FromTopSellers(s entities.TopSellersSnapshot, now time.Time) TopSellersResponse {
	res := TopSellersResponse{Items: s.Items, Stale: s.IsStale(now)}
	if res.Items == nil {
		res.Items = []entities.TopSeller{}
	}
	if !s.ComputedAt.IsZero() {
		computed, stale := s.ComputedAt, s.StaleAfter
		res.ComputedAt, res.StaleAfter = &computed, &stale
	}
	return res
}
