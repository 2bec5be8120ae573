package catalog

// Default pricing used for customized orders.
const (
	DefaultVATRate     = 0.12
	DefaultShippingFee = 200.0
)

// Pricing holds the tax and shipping settings for custom orders.
type Pricing struct {
	VATRate     float64
	ShippingFee float64
}

// DefaultPricing returns the standard 12% VAT and flat ₱200 shipping.
func DefaultPricing() Pricing {
	return Pricing{VATRate: DefaultVATRate, ShippingFee: DefaultShippingFee}
}

// Breakdown is the itemized price of a customized order.
type Breakdown struct {
	Base          Money `json:"basePrice"`
	Customization Money `json:"customizationPrice"`
	Subtotal      Money `json:"subtotal"`
	VAT           Money `json:"vat"`
	Shipping      Money `json:"shippingFee"`
	Total         Money `json:"total"`
}

// PriceBreakdown computes base + components + VAT on that subtotal + shipping.
// VAT never applies to shipping. All sums run in centavos so the result does
// not depend on component order.
func (p Pricing) PriceBreakdown(base float64, components ...float64) Breakdown {
	var custom Money
	for _, c := range components {
		custom += FromPesos(c)
	}

	b := Breakdown{
		Base:          FromPesos(base),
		Customization: custom,
		Shipping:      FromPesos(p.ShippingFee),
	}
	b.Subtotal = b.Base + b.Customization
	b.VAT = b.Subtotal.ApplyRate(p.VATRate)
	b.Total = b.Subtotal + b.VAT + b.Shipping

	return b
}

// PriceBreakdown uses DefaultPricing.
func PriceBreakdown(base float64, components ...float64) Breakdown {
	return DefaultPricing().PriceBreakdown(base, components...)
}
