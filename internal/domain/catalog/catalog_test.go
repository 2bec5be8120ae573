package catalog

import (
	"encoding/json"
	"testing"

	"smartfit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func productWithStock(stocks ...int) *entity.Product {
	sizes := map[string]map[string]entity.SizeEntry{}
	for i, s := range stocks {
		key := "size_" + string(rune('a'+i))
		sizes[key] = map[string]entity.SizeEntry{key: {Stock: s}}
	}

	return &entity.Product{Variants: map[string]entity.Variant{"v0": {Price: ptr(1000), Sizes: sizes}}}
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		want    StockState
	}{
		{name: "no variants", product: &entity.Product{}, want: OutOfStock},
		{name: "variant without sizes", product: &entity.Product{Variants: map[string]entity.Variant{"v0": {}}}, want: OutOfStock},
		{name: "all zero", product: productWithStock(0, 0, 0), want: OutOfStock},
		{name: "one positive", product: productWithStock(0, 1, 0), want: InStock},
		{name: "plenty", product: productWithStock(40), want: InStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockStatus(tt.product))
		})
	}
}

func TestInventoryLevelOf(t *testing.T) {
	assert.Equal(t, LevelOut, InventoryLevelOf(0))
	assert.Equal(t, LevelLow, InventoryLevelOf(1))
	assert.Equal(t, LevelLow, InventoryLevelOf(10))
	assert.Equal(t, LevelNormal, InventoryLevelOf(11))
}

func TestInventoryReport(t *testing.T) {
	product := &entity.Product{Variants: map[string]entity.Variant{
		"v1": {Color: "white", Sizes: map[string]map[string]entity.SizeEntry{
			"size_9": {"9": {Stock: 4}},
			"size_8": {"8": {Stock: 0}},
		}},
		"v0": {Color: "black", Sizes: map[string]map[string]entity.SizeEntry{
			"size_8": {"8": {Stock: 25}},
		}},
	}}

	lines, summary := InventoryReport(product)

	require.Len(t, lines, 3)
	assert.Equal(t, InventoryLine{VariantKey: "v0", Color: "black", SizeKey: "size_8", Size: "8", Stock: 25, Level: LevelNormal}, lines[0])
	assert.Equal(t, LevelOut, lines[1].Level)
	assert.Equal(t, LevelLow, lines[2].Level)
	assert.Equal(t, InventorySummary{TotalStock: 29, Normal: 1, Low: 1, Out: 1}, summary)
}

func TestPriceDisplay(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		want    string
	}{
		{
			name:    "single variant price",
			product: productWithStock(0),
			want:    "₱1,000",
		},
		{
			name: "range across variants and sizes",
			product: &entity.Product{Variants: map[string]entity.Variant{
				"v0": {Price: ptr(1500)},
				"v1": {Sizes: map[string]map[string]entity.SizeEntry{"size_10": {"10": {Stock: 1, Price: ptr(2499.5)}}}},
			}},
			want: "₱1,500 - ₱2,499.5",
		},
		{
			name: "equal points collapse",
			product: &entity.Product{Variants: map[string]entity.Variant{
				"v0": {Price: ptr(899)},
				"v1": {Price: ptr(899)},
			}},
			want: "₱899",
		},
		{
			name:    "flat price fallback",
			product: &entity.Product{Price: ptr(12345.678), Variants: map[string]entity.Variant{"v0": {}}},
			want:    "₱12,345.68",
		},
		{
			name:    "nothing priced",
			product: &entity.Product{},
			want:    PriceNotSet,
		},
		{
			name:    "zero price is not a price",
			product: &entity.Product{Price: ptr(0)},
			want:    PriceNotSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceDisplay(tt.product))
		})
	}
}

func TestPriceBreakdown(t *testing.T) {
	got := PriceBreakdown(2500, 150, 300.5)

	assert.Equal(t, Money(250000), got.Base)
	assert.Equal(t, Money(45050), got.Customization)
	assert.Equal(t, Money(295050), got.Subtotal)
	assert.Equal(t, Money(35406), got.VAT)
	assert.Equal(t, Money(20000), got.Shipping)
	assert.Equal(t, Money(350456), got.Total)
	assert.Equal(t, "₱3,504.56", got.Total.String())
}

func TestPriceBreakdown_EmptySelection(t *testing.T) {
	got := PriceBreakdown(1000)

	assert.Equal(t, Money(0), got.Customization)
	assert.Equal(t, Money(12000), got.VAT)
	assert.Equal(t, Money(132000), got.Total, "VAT is never charged on shipping")
}

func TestPriceBreakdown_OrderIndependent(t *testing.T) {
	components := []float64{120.35, 99.99, 0.01, 450, 310.1, 75.55}
	want := PriceBreakdown(2999.99, components...)

	reversed := make([]float64, len(components))
	for i, c := range components {
		reversed[len(components)-1-i] = c
	}
	assert.Equal(t, want, PriceBreakdown(2999.99, reversed...))
	assert.Equal(t, want, PriceBreakdown(2999.99, components[3], components[0], components[5], components[1], components[4], components[2]))
}

func TestPricing_CustomRate(t *testing.T) {
	got := Pricing{VATRate: 0.05, ShippingFee: 0}.PriceBreakdown(100)

	assert.Equal(t, Money(500), got.VAT)
	assert.Equal(t, Money(10500), got.Total)
}

func TestMoney_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(map[string]Money{"total": 350456})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 3504.56}`, string(raw))
}
