package entity

// Product is a shoe listed by a shop.
// Sizes are nested twice (size key, then size value) as stored by the shop dashboard.
type Product struct {
	ShopID       string             `json:"shopId"`
	ID           string             `json:"shoeId"`
	ShopName     string             `json:"shopName,omitempty"`
	ShoeName     string             `json:"shoeName"`
	ShoeType     string             `json:"shoeType,omitempty"`
	ShoeBrand    string             `json:"shoeBrand,omitempty"`
	ShoeGender   string             `json:"shoeGender,omitempty"`
	Description  string             `json:"generalDescription,omitempty"`
	DefaultImage string             `json:"defaultImage,omitempty"`
	Price        *float64           `json:"price,omitempty"` // Flat fallback when no variant is priced.
	Variants     map[string]Variant `json:"variants,omitempty"`
	DateAdded    string             `json:"dateAdded,omitempty"`
}

// Variant is one color option of a product.
type Variant struct {
	Color    string                          `json:"color,omitempty"`
	Price    *float64                        `json:"price,omitempty"`
	ImageURL string                          `json:"imageUrl,omitempty"`
	Sizes    map[string]map[string]SizeEntry `json:"sizes,omitempty"`
}

// SizeEntry holds stock and an optional size-level price override.
type SizeEntry struct {
	Stock int      `json:"stock"`
	Price *float64 `json:"price,omitempty"`
}

// ForEachSize visits every nested size entry of every variant.
func (p *Product) ForEachSize(fn func(variantKey, sizeKey, sizeValue string, entry SizeEntry)) {
	for variantKey, variant := range p.Variants {
		for sizeKey, values := range variant.Sizes {
			for sizeValue, entry := range values {
				fn(variantKey, sizeKey, sizeValue, entry)
			}
		}
	}
}
