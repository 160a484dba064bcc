package main

import (
	"strings"
	"testing"
)

func TestParseStockFile(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		wantLen int
	}{
		{
			name: "valid",
			yaml: `
stock_lines:
  - id: tee-black-m
    product_id: tee-black
    product_name: Black Tee
    price: 65.00
    size: M
    quantity: 10
  - id: tee-black-g
    product_id: tee-black
    product_name: Black Tee
    price: 65.00
    size: G
    quantity: 0
`,
			wantLen: 2,
		},
		{name: "missing id", yaml: "stock_lines:\n  - price: 10\n", wantErr: "id is required"},
		{name: "duplicate id", yaml: "stock_lines:\n  - {id: a, price: 1}\n  - {id: a, price: 1}\n", wantErr: "duplicate id"},
		{name: "zero price", yaml: "stock_lines:\n  - {id: a, price: 0}\n", wantErr: "price must be positive"},
		{name: "not yaml", yaml: "stock_lines: [", wantErr: "parse stock file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := parseStockFile([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(lines) != tt.wantLen {
				t.Fatalf("expected %d lines, got %d", tt.wantLen, len(lines))
			}
			if lines[0].UnitPrice != 6500 || lines[0].Quantity != 10 {
				t.Fatalf("unexpected first line: %+v", lines[0])
			}
		})
	}
}
