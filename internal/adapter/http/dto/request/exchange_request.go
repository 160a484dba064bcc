package request

import (
	"strings"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"
)

type ExchangeCreateRequest struct {
	Kind     string   `json:"kind"`
	Reason   string   `json:"reason" binding:"required"`
	Evidence []string `json:"evidence"`
}

func (r ExchangeCreateRequest) ToCommand() usecase.RequestExchangeCommand {
	return usecase.RequestExchangeCommand{
		Kind:     entities.ExchangeKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		Reason:   strings.TrimSpace(r.Reason),
		Evidence: r.Evidence,
	}
}

// ExchangeResolveRequest is sent by staff. Approve is a pointer so a missing
// field is rejected instead of read as a rejection.
type ExchangeResolveRequest struct {
	Approve    *bool  `json:"approve" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

type SaveCardRequest struct {
	Token string       `json:"token" binding:"required"`
	Payer PayerRequest `json:"payer"`
}
