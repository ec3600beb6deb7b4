package models

const DefaultSize = "L"

// Sizes is the fixed size run every garment is offered in.
var Sizes = []string{"S", "M", "L", "XL", "XXL"}

func ValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type CartItem struct {
	CartID   string  `json:"cart_id"`
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}

func CartItemKey(productID, size string) string {
	return productID + "-" + size
}

func (ci CartItem) LineTotal() int64 {
	return ci.Product.Price * int64(ci.Quantity)
}

func (ci CartItem) LinePoints() int64 {
	return ci.Product.RewardPoints * int64(ci.Quantity)
}
