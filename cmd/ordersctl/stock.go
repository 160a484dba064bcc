package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"storefront_orders/internal/bootstrap"
	"storefront_orders/internal/domain/entities"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// stockFile is the seed format:
//
//	stock_lines:
//	  - id: tee-black-m
//	    product_id: tee-black
//	    product_name: Black Tee
//	    price: 65.00
//	    size: M
//	    quantity: 10
type stockFile struct {
	StockLines []stockEntry `yaml:"stock_lines"`
}

type stockEntry struct {
	ID          string  `yaml:"id"`
	ProductID   string  `yaml:"product_id"`
	ProductName string  `yaml:"product_name"`
	Price       float64 `yaml:"price"`
	Size        string  `yaml:"size"`
	Color       string  `yaml:"color"`
	WeightGrams int     `yaml:"weight_grams"`
	LengthCm    int     `yaml:"length_cm"`
	WidthCm     int     `yaml:"width_cm"`
	HeightCm    int     `yaml:"height_cm"`
	Quantity    int     `yaml:"quantity"`
}

func (e stockEntry) toEntity() entities.StockLine {
	return entities.StockLine{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		UnitPrice:   entities.NewMoneyFromFloat(e.Price),
		Size:        e.Size,
		Color:       e.Color,
		WeightGrams: e.WeightGrams,
		LengthCm:    e.LengthCm,
		WidthCm:     e.WidthCm,
		HeightCm:    e.HeightCm,
		Quantity:    e.Quantity,
	}
}

func parseStockFile(data []byte) ([]entities.StockLine, error) {
	var f stockFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stock file: %w", err)
	}
	seen := make(map[string]bool, len(f.StockLines))
	lines := make([]entities.StockLine, 0, len(f.StockLines))
	for i, e := range f.StockLines {
		if e.ID == "" {
			return nil, fmt.Errorf("stock_lines[%d]: id is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("stock_lines[%d]: duplicate id %q", i, e.ID)
		}
		if e.Price <= 0 {
			return nil, fmt.Errorf("stock_lines[%d]: price must be positive", i)
		}
		seen[e.ID] = true
		lines = append(lines, e.toEntity())
	}
	return lines, nil
}

func stockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inspect and seed stock lines",
	}
	cmd.AddCommand(stockImportCmd(), stockListCmd())
	return cmd
}

func stockImportCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Create or overwrite stock lines from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lines, err := parseStockFile(data)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d stock lines valid, nothing written\n", len(lines))
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := bootstrap.OpenStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, l := range lines {
				if err := store.StockLines.Upsert(cmd.Context(), l); err != nil {
					return fmt.Errorf("upsert %s: %w", l.ID, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d stock lines\n", len(lines))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	return cmd
}

func stockListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stock line with its available quantity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := bootstrap.OpenStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			lines, err := store.StockLines.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tSIZE\tCOLOR\tPRICE\tQTY")
			for _, l := range lines {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", l.ID, l.ProductName, l.Size, l.Color, l.UnitPrice, l.Quantity)
			}
			return w.Flush()
		},
	}
}
