package usecase

import (
	"testing"

	"storefront_orders/internal/domain/entities"
)

func TestTwoTierTariff_Freight(t *testing.T) {
	tariff := TwoTierTariff{Local: 800, Remote: 2000}

	tests := []struct {
		name   string
		origin string
		dest   string
		want   entities.Money
	}{
		{name: "same prefix", origin: "01310-100", dest: "01001000", want: 800},
		{name: "different prefix", origin: "01310100", dest: "20040002", want: 2000},
		{name: "missing origin", origin: "", dest: "01001000", want: 2000},
		{name: "short destination", origin: "01310100", dest: "0", want: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tariff.Freight(FreightInput{OriginZip: tt.origin, DestinationZip: tt.dest})
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPricingEngine_Quote(t *testing.T) {
	engine := NewPricingEngine(PricingConfig{
		OriginZip:          "01310100",
		Tariff:             TwoTierTariff{Local: 800, Remote: 2000},
		PixDiscountPercent: 10,
		BoletoFee:          350,
	})
	lines := []entities.OrderLine{{StockLineID: "sl-1", UnitPrice: 6500, Quantity: 2}}

	tests := []struct {
		name   string
		method entities.PaymentMethod
		dest   string
		want   Quote
	}{
		{
			name:   "pix local",
			method: entities.PaymentMethodPix,
			dest:   "01001000",
			want:   Quote{Subtotal: 13000, Freight: 800, Discount: 1380, Total: 12420},
		},
		{
			name:   "card remote",
			method: entities.PaymentMethodCard,
			dest:   "20040002",
			want:   Quote{Subtotal: 13000, Freight: 2000, Total: 15000},
		},
		{
			name:   "boleto local carries the fee",
			method: entities.PaymentMethodBoleto,
			dest:   "01001000",
			want:   Quote{Subtotal: 13000, Freight: 800, Fee: 350, Total: 14150},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Quote(PricingInput{Lines: lines, DestinationZip: tt.dest, Method: tt.method})
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if got.Total != got.Subtotal+got.Freight-got.Discount+got.Fee {
				t.Fatalf("total does not add up: %+v", got)
			}
		})
	}
}

func TestPricingEngine_QuoteRoundsHalfUp(t *testing.T) {
	engine := NewPricingEngine(PricingConfig{
		OriginZip:          "01310100",
		Tariff:             TwoTierTariff{},
		PixDiscountPercent: 10,
	})

	tests := []struct {
		name      string
		unitPrice entities.Money
		wantTotal entities.Money
	}{
		{name: "half cent discount rounds away", unitPrice: 5, wantTotal: 5},
		{name: "13.5 cents rounds to 14", unitPrice: 15, wantTotal: 14},
		{name: "exact", unitPrice: 1000, wantTotal: 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := engine.Quote(PricingInput{
				Lines:  []entities.OrderLine{{StockLineID: "sl-1", UnitPrice: tt.unitPrice, Quantity: 1}},
				Method: entities.PaymentMethodPix,
			})
			if q.Total != tt.wantTotal {
				t.Fatalf("expected total %d, got %d", tt.wantTotal, q.Total)
			}
			if q.Total+q.Discount != tt.unitPrice {
				t.Fatalf("discount and total must add to subtotal, got %+v", q)
			}
		})
	}
}

func TestNewPricingEngine_DefaultTariff(t *testing.T) {
	engine := NewPricingEngine(PricingConfig{OriginZip: "01310100"})
	q := engine.Quote(PricingInput{
		Lines:          []entities.OrderLine{{StockLineID: "sl-1", UnitPrice: 1000, Quantity: 1}},
		DestinationZip: "90000000",
		Method:         entities.PaymentMethodCard,
	})
	if q.Freight != 2000 {
		t.Fatalf("expected default remote freight 2000, got %d", q.Freight)
	}
}
