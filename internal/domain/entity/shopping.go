package entity

// WishlistEntry marks a product saved by a customer. Existence is membership.
type WishlistEntry struct {
	UserID  string `json:"userId"`
	ShopID  string `json:"shopId"`
	ShoeID  string `json:"shoeId"`
	AddedAt int64  `json:"addedAt"`
}

// CartItem is a product waiting in a customer's cart.
type CartItem struct {
	ID         string `json:"cartId"`
	UserID     string `json:"userId"`
	ShopID     string `json:"shopId"`
	ShoeID     string `json:"shoeId"`
	VariantKey string `json:"variantKey"`
	SizeKey    string `json:"sizeKey,omitempty"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
	AddedAt    int64  `json:"addedAt"`
}

// Customer is a shopper profile.
type Customer struct {
	ID        string `json:"customerId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt int64  `json:"dateAccountCreated,omitempty"`
}
