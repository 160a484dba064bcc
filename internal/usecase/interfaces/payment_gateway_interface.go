package interfaces

import (
	"context"

	"storefront_orders/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// GetPayment returns a zero GatewayPayment when the provider has no such payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.GatewayPayment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
	SearchPayments(ctx context.Context, externalReference string) ([]entities.GatewayPayment, error)
	SearchCustomer(ctx context.Context, email string) (entities.GatewayCustomer, error)
	CreateCustomer(ctx context.Context, payer entities.Payer) (entities.GatewayCustomer, error)
	SaveCard(ctx context.Context, customerID, token string) (entities.SavedCard, error)
	ListCards(ctx context.Context, customerID string) ([]entities.SavedCard, error)
	DeleteCard(ctx context.Context, customerID, cardID string) error
}
