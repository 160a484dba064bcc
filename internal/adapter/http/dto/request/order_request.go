package request

import (
	"strings"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase"
)

type OrderItemRequest struct {
	StockLineID string `json:"stock_line_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

type AddressRequest struct {
	Zip          string `json:"zip" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
}

type PayerRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

type CardRequest struct {
	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id"`
	Installments    int    `json:"installments"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Address       AddressRequest     `json:"address" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	Payer         PayerRequest       `json:"payer" binding:"required"`
	Card          *CardRequest       `json:"card"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	cmd := usecase.CreateOrderCommand{
		Address: r.Address.ToEntity(),
		Method:  entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		Payment: usecase.CheckoutPayment{Payer: r.Payer.ToEntity()},
	}
	for _, it := range r.Items {
		cmd.Lines = append(cmd.Lines, usecase.OrderLineRequest{
			StockLineID: strings.TrimSpace(it.StockLineID),
			Quantity:    it.Quantity,
		})
	}
	if r.Card != nil {
		cmd.Payment.Card = entities.CardDetails{
			Token:           strings.TrimSpace(r.Card.Token),
			PaymentMethodID: strings.TrimSpace(r.Card.PaymentMethodID),
			IssuerID:        strings.TrimSpace(r.Card.IssuerID),
			Installments:    r.Card.Installments,
		}
	}
	return cmd
}

func (a AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Zip:          strings.TrimSpace(a.Zip),
		Street:       strings.TrimSpace(a.Street),
		Number:       strings.TrimSpace(a.Number),
		Complement:   strings.TrimSpace(a.Complement),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		City:         strings.TrimSpace(a.City),
		State:        strings.ToUpper(strings.TrimSpace(a.State)),
	}
}

func (p PayerRequest) ToEntity() entities.Payer {
	return entities.Payer{
		Email:          strings.TrimSpace(p.Email),
		FirstName:      strings.TrimSpace(p.FirstName),
		LastName:       strings.TrimSpace(p.LastName),
		DocumentType:   strings.TrimSpace(p.DocumentType),
		DocumentNumber: strings.TrimSpace(p.DocumentNumber),
	}
}
