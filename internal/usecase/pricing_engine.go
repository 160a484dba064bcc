package usecase

import (
	"storefront_orders/internal/domain/entities"
)

// FreightInput is everything a tariff may use to price shipping.
type FreightInput struct {
	OriginZip      string
	DestinationZip string
	WeightGrams    int64
	VolumeCm3      int64
}

// FreightTariff prices shipping for one order.
type FreightTariff interface {
	Freight(in FreightInput) entities.Money
}

// TwoTierTariff charges Local when origin and destination share the two-digit
// postal prefix and Remote otherwise. Weight and volume are ignored.
type TwoTierTariff struct {
	Local  entities.Money
	Remote entities.Money
}

func (t TwoTierTariff) Freight(in FreightInput) entities.Money {
	origin := entities.ZipPrefix(in.OriginZip)
	if origin != "" && origin == entities.ZipPrefix(in.DestinationZip) {
		return t.Local
	}
	return t.Remote
}

type PricingConfig struct {
	OriginZip          string
	Tariff             FreightTariff
	PixDiscountPercent int64
	BoletoFee          entities.Money
}

type PricingInput struct {
	Lines          []entities.OrderLine
	DestinationZip string
	WeightGrams    int64
	VolumeCm3      int64
	Method         entities.PaymentMethod
}

type Quote struct {
	Subtotal entities.Money
	Freight  entities.Money
	Discount entities.Money
	Fee      entities.Money
	Total    entities.Money
}

// PricingEngine is a pure calculator; it holds configuration only.
type PricingEngine struct {
	cfg PricingConfig
}

func NewPricingEngine(cfg PricingConfig) *PricingEngine {
	if cfg.Tariff == nil {
		cfg.Tariff = TwoTierTariff{Local: 800, Remote: 2000}
	}
	return &PricingEngine{cfg: cfg}
}

// Quote prices an order.
//
// The pix discount is a percentage of subtotal+freight and may fall on a
// fraction of a cent, so the total is computed in hundredths of a cent and
// rounded half-up once. Discount is then derived from the rounded total so
// Total == Subtotal + Freight - Discount + Fee always holds.
func (e *PricingEngine) Quote(in PricingInput) Quote {
	var q Quote
	for _, l := range in.Lines {
		q.Subtotal += l.Total()
	}
	q.Freight = e.cfg.Tariff.Freight(FreightInput{
		OriginZip:      e.cfg.OriginZip,
		DestinationZip: in.DestinationZip,
		WeightGrams:    in.WeightGrams,
		VolumeCm3:      in.VolumeCm3,
	})
	if in.Method == entities.PaymentMethodBoleto {
		q.Fee = e.cfg.BoletoFee
	}

	base := int64(q.Subtotal + q.Freight)
	scaled := (base + int64(q.Fee)) * 100
	if in.Method == entities.PaymentMethodPix {
		scaled -= base * e.cfg.PixDiscountPercent
	}
	q.Total = entities.Money(roundHalfUp(scaled, 100))
	q.Discount = q.Subtotal + q.Freight + q.Fee - q.Total
	return q
}

func roundHalfUp(v, unit int64) int64 {
	if v < 0 {
		return -roundHalfUp(-v, unit)
	}
	return (v + unit/2) / unit
}
