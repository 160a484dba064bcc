package response

import (
	"time"

	"storefront_orders/internal/domain/entities"
)

type OrderLineResponse struct {
	StockLineID string  `json:"stock_line_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Status        string              `json:"status"`
	Address       entities.Address    `json:"address"`
	Lines         []OrderLineResponse `json:"lines"`
	Subtotal      float64             `json:"subtotal"`
	Freight       float64             `json:"freight"`
	Discount      float64             `json:"discount"`
	Fee           float64             `json:"fee"`
	Total         float64             `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	Installments  int                 `json:"installments,omitempty"`
	PaymentID     string              `json:"payment_id,omitempty"`
	PaymentType   string              `json:"payment_type,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	ExpiresAt     time.Time           `json:"expires_at"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        string(o.Status),
		Address:       o.Address,
		Lines:         make([]OrderLineResponse, 0, len(o.Lines)),
		Subtotal:      o.Subtotal.Float64(),
		Freight:       o.Freight.Float64(),
		Discount:      o.Discount.Float64(),
		Fee:           o.Fee.Float64(),
		Total:         o.Total.Float64(),
		PaymentMethod: string(o.PaymentMethod),
		Installments:  o.Installments,
		PaymentID:     o.PaymentID,
		PaymentType:   o.PaymentType,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		ExpiresAt:     o.ExpiresAt,
		PaidAt:        o.PaidAt,
	}
	for _, l := range o.Lines {
		res.Lines = append(res.Lines, OrderLineResponse{
			StockLineID: l.StockLineID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Size:        l.Size,
			Color:       l.Color,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.Float64(),
			Total:       l.Total().Float64(),
		})
	}
	return res
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// CreateOrderResponse is returned by checkout. Payment is absent and
// PaymentError is set when the charge could not be submitted.
type CreateOrderResponse struct {
	Order        OrderResponse             `json:"order"`
	Payment      *entities.PaymentArtifact `json:"payment"`
	PaymentError string                    `json:"payment_error,omitempty"`
}

type PaymentStatusResponse struct {
	OrderID       string     `json:"order_id"`
	OrderStatus   string     `json:"order_status"`
	PaymentID     string     `json:"payment_id,omitempty"`
	PaymentStatus string     `json:"payment_status,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func FromPaymentStatus(v entities.PaymentStatusView) PaymentStatusResponse {
	return PaymentStatusResponse{
		OrderID:       v.OrderID,
		OrderStatus:   string(v.OrderStatus),
		PaymentID:     v.PaymentID,
		PaymentStatus: v.PaymentStatus,
		PaidAt:        v.PaidAt,
	}
}
