package sqlstore

import (
	"time"

	"storefront_orders/internal/domain/entities"
)

// Persistence models. They map columns only; no gorm associations, lines are
// loaded by explicit queries.

type AddressColumns struct {
	Zip          string `gorm:"size:16"`
	Street       string `gorm:"size:255"`
	Number       string `gorm:"size:32"`
	Complement   string `gorm:"size:255"`
	Neighborhood string `gorm:"size:128"`
	City         string `gorm:"size:128"`
	State        string `gorm:"size:64"`
}

type OrderModel struct {
	ID             string         `gorm:"primaryKey;size:64"`
	UserID         string         `gorm:"size:64;index;not null"`
	Status         string         `gorm:"size:32;not null;index:idx_orders_status_expires,priority:1"`
	ExpiresAtEpoch int64          `gorm:"not null;index:idx_orders_status_expires,priority:2"`
	Address        AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	Subtotal       int64          `gorm:"not null"`
	Freight        int64          `gorm:"not null"`
	Discount       int64          `gorm:"not null"`
	Fee            int64          `gorm:"not null"`
	Total          int64          `gorm:"not null"`
	PaymentMethod  string         `gorm:"size:32;not null"`
	Installments   int            `gorm:"not null;default:0"`
	PaymentID      string         `gorm:"size:64;index"`
	PaymentType    string         `gorm:"size:32"`
	CreatedAt      time.Time      `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime:false;not null"`
	ExpiresAt      time.Time      `gorm:"not null"`
	PaidAt         *time.Time
}

func (OrderModel) TableName() string { return "orders" }

type OrderLineModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	OrderID     string `gorm:"size:64;not null;index"`
	Position    int    `gorm:"not null"`
	StockLineID string `gorm:"size:64;not null"`
	ProductID   string `gorm:"size:64;not null;index"`
	ProductName string `gorm:"size:255;not null"`
	UnitPrice   int64  `gorm:"not null"`
	Size        string `gorm:"size:32"`
	Color       string `gorm:"size:32"`
	Quantity    int    `gorm:"not null"`
}

func (OrderLineModel) TableName() string { return "order_lines" }

type StockLineModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	ProductID   string `gorm:"size:64;not null;index"`
	ProductName string `gorm:"size:255;not null"`
	UnitPrice   int64  `gorm:"not null"`
	Size        string `gorm:"size:32"`
	Color       string `gorm:"size:32"`
	WeightGrams int
	LengthCm    int
	WidthCm     int
	HeightCm    int
	Quantity    int `gorm:"not null;check:chk_stock_lines_quantity,quantity >= 0"`
}

func (StockLineModel) TableName() string { return "stock_lines" }

type ExchangeModel struct {
	ID         string    `gorm:"primaryKey;size:64"`
	OrderID    string    `gorm:"size:64;not null;index"`
	UserID     string    `gorm:"size:64;not null;index"`
	Kind       string    `gorm:"size:16;not null"`
	Reason     string    `gorm:"type:text;not null"`
	Evidence   []string  `gorm:"serializer:json"`
	Status     string    `gorm:"size:16;not null;index"`
	AdminNotes string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false;not null"`
	ResolvedAt *time.Time
}

func (ExchangeModel) TableName() string { return "exchange_requests" }

type CustomerModel struct {
	UserID            string    `gorm:"primaryKey;size:64"`
	GatewayCustomerID string    `gorm:"size:64;not null"`
	Email             string    `gorm:"size:255"`
	CreatedAt         time.Time `gorm:"autoCreateTime:false;not null"`
}

func (CustomerModel) TableName() string { return "customers" }

// AllModels lists every table managed by AutoMigrate.
func AllModels() []any {
	return []any{&OrderModel{}, &OrderLineModel{}, &StockLineModel{}, &ExchangeModel{}, &CustomerModel{}}
}

func orderToModel(o entities.Order) (OrderModel, []OrderLineModel) {
	m := OrderModel{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         string(o.Status),
		ExpiresAtEpoch: o.ExpiresAt.UTC().UnixMilli(),
		Address: AddressColumns{
			Zip:          o.Address.Zip,
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Complement:   o.Address.Complement,
			Neighborhood: o.Address.Neighborhood,
			City:         o.Address.City,
			State:        o.Address.State,
		},
		Subtotal:      int64(o.Subtotal),
		Freight:       int64(o.Freight),
		Discount:      int64(o.Discount),
		Fee:           int64(o.Fee),
		Total:         int64(o.Total),
		PaymentMethod: string(o.PaymentMethod),
		Installments:  o.Installments,
		PaymentID:     o.PaymentID,
		PaymentType:   o.PaymentType,
		CreatedAt:     o.CreatedAt.UTC(),
		UpdatedAt:     o.UpdatedAt.UTC(),
		ExpiresAt:     o.ExpiresAt.UTC(),
		PaidAt:        utcPtr(o.PaidAt),
	}
	lines := make([]OrderLineModel, 0, len(o.Lines))
	for i, l := range o.Lines {
		lines = append(lines, OrderLineModel{
			OrderID:     o.ID,
			Position:    i,
			StockLineID: l.StockLineID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   int64(l.UnitPrice),
			Size:        l.Size,
			Color:       l.Color,
			Quantity:    l.Quantity,
		})
	}
	return m, lines
}

func orderFromModel(m OrderModel, lines []OrderLineModel) entities.Order {
	o := entities.Order{
		ID:     m.ID,
		UserID: m.UserID,
		Address: entities.Address{
			Zip:          m.Address.Zip,
			Street:       m.Address.Street,
			Number:       m.Address.Number,
			Complement:   m.Address.Complement,
			Neighborhood: m.Address.Neighborhood,
			City:         m.Address.City,
			State:        m.Address.State,
		},
		Status:        entities.OrderStatus(m.Status),
		Subtotal:      entities.Money(m.Subtotal),
		Freight:       entities.Money(m.Freight),
		Discount:      entities.Money(m.Discount),
		Fee:           entities.Money(m.Fee),
		Total:         entities.Money(m.Total),
		PaymentMethod: entities.PaymentMethod(m.PaymentMethod),
		Installments:  m.Installments,
		PaymentID:     m.PaymentID,
		PaymentType:   m.PaymentType,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
		ExpiresAt:     m.ExpiresAt.UTC(),
		PaidAt:        utcPtr(m.PaidAt),
	}
	o.Lines = make([]entities.OrderLine, 0, len(lines))
	for _, l := range lines {
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

func stockLineToModel(s entities.StockLine) StockLineModel {
	return StockLineModel{
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

func stockLineFromModel(m StockLineModel) entities.StockLine {
	return entities.StockLine{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		UnitPrice:   entities.Money(m.UnitPrice),
		Size:        m.Size,
		Color:       m.Color,
		WeightGrams: m.WeightGrams,
		LengthCm:    m.LengthCm,
		WidthCm:     m.WidthCm,
		HeightCm:    m.HeightCm,
		Quantity:    m.Quantity,
	}
}

func exchangeToModel(e entities.ExchangeRequest) ExchangeModel {
	return ExchangeModel{
		ID:         e.ID,
		OrderID:    e.OrderID,
		UserID:     e.UserID,
		Kind:       string(e.Kind),
		Reason:     e.Reason,
		Evidence:   e.Evidence,
		Status:     string(e.Status),
		AdminNotes: e.AdminNotes,
		CreatedAt:  e.CreatedAt.UTC(),
		ResolvedAt: utcPtr(e.ResolvedAt),
	}
}

func exchangeFromModel(m ExchangeModel) entities.ExchangeRequest {
	return entities.ExchangeRequest{
		ID:         m.ID,
		OrderID:    m.OrderID,
		UserID:     m.UserID,
		Kind:       entities.ExchangeKind(m.Kind),
		Reason:     m.Reason,
		Evidence:   m.Evidence,
		Status:     entities.ExchangeStatus(m.Status),
		AdminNotes: m.AdminNotes,
		CreatedAt:  m.CreatedAt.UTC(),
		ResolvedAt: utcPtr(m.ResolvedAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
