package catalog

import (
	"cmp"
	"slices"

	"smartfit/internal/domain/entity"
)

// StockState is the listing-level availability of a product.
type StockState string

const (
	InStock    StockState = "in-stock"
	OutOfStock StockState = "out-of-stock"
)

// InventoryLevel is the per-size warning level used by inventory views.
// It is independent from StockState.
type InventoryLevel string

const (
	LevelNormal InventoryLevel = "normal"
	LevelLow    InventoryLevel = "low"
	LevelOut    InventoryLevel = "out-of-stock"
)

// lowStockThreshold is the highest stock still reported as low.
const lowStockThreshold = 10

// PriceNotSet is shown when a product has no usable price.
const PriceNotSet = "Price not set"

// StockStatus reports in-stock when any nested size entry has stock above zero.
func StockStatus(p *entity.Product) StockState {
	state := OutOfStock
	p.ForEachSize(func(_, _, _ string, entry entity.SizeEntry) {
		if entry.Stock > 0 {
			state = InStock
		}
	})

	return state
}

// InventoryLevelOf classifies a single stock count.
func InventoryLevelOf(stock int) InventoryLevel {
	switch {
	case stock > lowStockThreshold:
		return LevelNormal
	case stock > 0:
		return LevelLow
	default:
		return LevelOut
	}
}

// InventoryLine is one variant and size row of an inventory report.
type InventoryLine struct {
	VariantKey string         `json:"variantKey"`
	Color      string         `json:"color,omitempty"`
	SizeKey    string         `json:"sizeKey"`
	Size       string         `json:"size"`
	Stock      int            `json:"stock"`
	Level      InventoryLevel `json:"level"`
}

// InventorySummary counts report lines per level.
type InventorySummary struct {
	TotalStock int `json:"totalStock"`
	Normal     int `json:"normal"`
	Low        int `json:"low"`
	Out        int `json:"outOfStock"`
}

// InventoryReport lists every size entry of a product with its level.
func InventoryReport(p *entity.Product) ([]InventoryLine, InventorySummary) {
	var (
		lines   []InventoryLine
		summary InventorySummary
	)

	p.ForEachSize(func(variantKey, sizeKey, sizeValue string, entry entity.SizeEntry) {
		level := InventoryLevelOf(entry.Stock)
		lines = append(lines, InventoryLine{
			VariantKey: variantKey,
			Color:      p.Variants[variantKey].Color,
			SizeKey:    sizeKey,
			Size:       sizeValue,
			Stock:      entry.Stock,
			Level:      level,
		})

		summary.TotalStock += max(entry.Stock, 0)
		switch level {
		case LevelNormal:
			summary.Normal++
		case LevelLow:
			summary.Low++
		default:
			summary.Out++
		}
	})

	slices.SortFunc(lines, func(a, b InventoryLine) int {
		return cmp.Or(
			cmp.Compare(a.VariantKey, b.VariantKey),
			cmp.Compare(a.SizeKey, b.SizeKey),
			cmp.Compare(a.Size, b.Size),
		)
	})

	return lines, summary
}

// PriceRange returns the lowest and highest price points of a product.
// Variant and size prices are considered first; the flat price is the fallback.
func PriceRange(p *entity.Product) (low, high float64, ok bool) {
	var points []float64
	for _, variant := range p.Variants {
		if positive(variant.Price) {
			points = append(points, *variant.Price)
		}
		for _, values := range variant.Sizes {
			for _, entry := range values {
				if positive(entry.Price) {
					points = append(points, *entry.Price)
				}
			}
		}
	}

	if len(points) == 0 {
		if !positive(p.Price) {
			return 0, 0, false
		}

		return *p.Price, *p.Price, true
	}

	return slices.Min(points), slices.Max(points), true
}

// PriceDisplay renders a product price as ₱P, ₱min - ₱max or PriceNotSet.
func PriceDisplay(p *entity.Product) string {
	low, high, ok := PriceRange(p)
	if !ok {
		return PriceNotSet
	}
	if FromPesos(low) == FromPesos(high) {
		return FormatPeso(low)
	}

	return FormatPeso(low) + " - " + FormatPeso(high)
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}
