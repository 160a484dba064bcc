package repository

import (
	"storefront_orders/internal/domain/entities"
)

type addressItem struct {
	Zip          string `dynamodbav:"zip"`
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood,omitempty"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
}

type orderLineItem struct {
	StockLineID string `dynamodbav:"stock_line_id"`
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
	Size        string `dynamodbav:"size,omitempty"`
	Color       string `dynamodbav:"color,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
}

type orderItem struct {
	ID             string          `dynamodbav:"id"`
	UserID         string          `dynamodbav:"user_id"`
	Status         string          `dynamodbav:"status"`
	Address        addressItem     `dynamodbav:"address"`
	Lines          []orderLineItem `dynamodbav:"lines"`
	Subtotal       int64           `dynamodbav:"subtotal"`
	Freight        int64           `dynamodbav:"freight"`
	Discount       int64           `dynamodbav:"discount"`
	Fee            int64           `dynamodbav:"fee"`
	Total          int64           `dynamodbav:"total"`
	PaymentMethod  string          `dynamodbav:"payment_method"`
	Installments   int             `dynamodbav:"installments,omitempty"`
	PaymentID      string          `dynamodbav:"payment_id,omitempty"`
	PaymentType    string          `dynamodbav:"payment_type,omitempty"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
	ExpiresAt      string          `dynamodbav:"expires_at"`
	ExpiresAtEpoch int64           `dynamodbav:"expires_at_epoch"`
	PaidAt         string          `dynamodbav:"paid_at,omitempty"`
}

type stockLineItem struct {
	ID          string `dynamodbav:"id"`
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
	Size        string `dynamodbav:"size,omitempty"`
	Color       string `dynamodbav:"color,omitempty"`
	WeightGrams int    `dynamodbav:"weight_grams"`
	LengthCm    int    `dynamodbav:"length_cm"`
	WidthCm     int    `dynamodbav:"width_cm"`
	HeightCm    int    `dynamodbav:"height_cm"`
	Quantity    int    `dynamodbav:"quantity"`
}

type exchangeItem struct {
	ID         string   `dynamodbav:"id"`
	OrderID    string   `dynamodbav:"order_id"`
	UserID     string   `dynamodbav:"user_id"`
	Kind       string   `dynamodbav:"kind"`
	Reason     string   `dynamodbav:"reason"`
	Evidence   []string `dynamodbav:"evidence,omitempty"`
	Status     string   `dynamodbav:"status"`
	AdminNotes string   `dynamodbav:"admin_notes,omitempty"`
	CreatedAt  string   `dynamodbav:"created_at"`
	ResolvedAt string   `dynamodbav:"resolved_at,omitempty"`
}

type customerItem struct {
	UserID            string `dynamodbav:"user_id"`
	GatewayCustomerID string `dynamodbav:"gateway_customer_id"`
	Email             string `dynamodbav:"email,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:     o.ID,
		UserID: o.UserID,
		Status: string(o.Status),
		Address: addressItem{
			Zip:          o.Address.Zip,
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Complement:   o.Address.Complement,
			Neighborhood: o.Address.Neighborhood,
			City:         o.Address.City,
			State:        o.Address.State,
		},
		Subtotal:       int64(o.Subtotal),
		Freight:        int64(o.Freight),
		Discount:       int64(o.Discount),
		Fee:            int64(o.Fee),
		Total:          int64(o.Total),
		PaymentMethod:  string(o.PaymentMethod),
		Installments:   o.Installments,
		PaymentID:      o.PaymentID,
		PaymentType:    o.PaymentType,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
		ExpiresAt:      formatTime(o.ExpiresAt),
		ExpiresAtEpoch: o.ExpiresAt.UTC().UnixMilli(),
		PaidAt:         formatTimePtr(o.PaidAt),
	}
	it.Lines = make([]orderLineItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		it.Lines = append(it.Lines, orderLineItem{
			StockLineID: l.StockLineID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   int64(l.UnitPrice),
			Size:        l.Size,
			Color:       l.Color,
			Quantity:    l.Quantity,
		})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:     it.ID,
		UserID: it.UserID,
		Status: entities.OrderStatus(it.Status),
		Address: entities.Address{
			Zip:          it.Address.Zip,
			Street:       it.Address.Street,
			Number:       it.Address.Number,
			Complement:   it.Address.Complement,
			Neighborhood: it.Address.Neighborhood,
			City:         it.Address.City,
			State:        it.Address.State,
		},
		Subtotal:      entities.Money(it.Subtotal),
		Freight:       entities.Money(it.Freight),
		Discount:      entities.Money(it.Discount),
		Fee:           entities.Money(it.Fee),
		Total:         entities.Money(it.Total),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Installments:  it.Installments,
		PaymentID:     it.PaymentID,
		PaymentType:   it.PaymentType,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		ExpiresAt:     parseTime(it.ExpiresAt),
		PaidAt:        parseTimePtr(it.PaidAt),
	}
	o.Lines = make([]entities.OrderLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		o.Lines = append(o.Lines, entities.OrderLine{
			StockLineID: l.StockLineID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   entities.Money(l.UnitPrice),
			Size:        l.Size,
			Color:       l.Color,
			Quantity:    l.Quantity,
		})
	}
	return o
}

func toStockLineItem(s entities.StockLine) stockLineItem {
	return stockLineItem{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		UnitPrice:   int64(s.UnitPrice),
		Size:        s.Size,
		Color:       s.Color,
		WeightGrams: s.WeightGrams,
		LengthCm:    s.LengthCm,
		WidthCm:     s.WidthCm,
		HeightCm:    s.HeightCm,
		Quantity:    s.Quantity,
	}
}

func fromStockLineItem(it stockLineItem) entities.StockLine {
	return entities.StockLine{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		UnitPrice:   entities.Money(it.UnitPrice),
		Size:        it.Size,
		Color:       it.Color,
		WeightGrams: it.WeightGrams,
		LengthCm:    it.LengthCm,
		WidthCm:     it.WidthCm,
		HeightCm:    it.HeightCm,
		Quantity:    it.Quantity,
	}
}

func toExchangeItem(e entities.ExchangeRequest) exchangeItem {
	return exchangeItem{
		ID:         e.ID,
		OrderID:    e.OrderID,
		UserID:     e.UserID,
		Kind:       string(e.Kind),
		Reason:     e.Reason,
		Evidence:   e.Evidence,
		Status:     string(e.Status),
		AdminNotes: e.AdminNotes,
		CreatedAt:  formatTime(e.CreatedAt),
		ResolvedAt: formatTimePtr(e.ResolvedAt),
	}
}

func fromExchangeItem(it exchangeItem) entities.ExchangeRequest {
	return entities.ExchangeRequest{
		ID:         it.ID,
		OrderID:    it.OrderID,
		UserID:     it.UserID,
		Kind:       entities.ExchangeKind(it.Kind),
		Reason:     it.Reason,
		Evidence:   it.Evidence,
		Status:     entities.ExchangeStatus(it.Status),
		AdminNotes: it.AdminNotes,
		CreatedAt:  parseTime(it.CreatedAt),
		ResolvedAt: parseTimePtr(it.ResolvedAt),
	}
}
