package entities

// StockLine is the inventory bucket of one (product, size, color).
//
// Besides the quantity it carries the catalog snapshot used when an order is
// created: product name, unit price and shipping dimensions.
//
// Storage model (DynamoDB):
//   - PK: id
type StockLine struct {
	ID          string `json:"id" yaml:"id"`
	ProductID   string `json:"product_id" yaml:"product_id"`
	ProductName string `json:"product_name" yaml:"product_name"`
	UnitPrice   Money  `json:"unit_price" yaml:"unit_price"`
	Size        string `json:"size,omitempty" yaml:"size"`
	Color       string `json:"color,omitempty" yaml:"color"`
	WeightGrams int    `json:"weight_grams" yaml:"weight_grams"`
	LengthCm    int    `json:"length_cm" yaml:"length_cm"`
	WidthCm     int    `json:"width_cm" yaml:"width_cm"`
	HeightCm    int    `json:"height_cm" yaml:"height_cm"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
}

func (s StockLine) VolumeCm3() int64 {
	return int64(s.LengthCm) * int64(s.WidthCm) * int64(s.HeightCm)
}

// Snapshot copies the catalog fields into an order line.
func (s StockLine) Snapshot(quantity int) OrderLine {
	return OrderLine{
		StockLineID: s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		UnitPrice:   s.UnitPrice,
		Size:        s.Size,
		Color:       s.Color,
		Quantity:    quantity,
	}
}
