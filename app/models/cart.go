package models

// Cart is the ordered list of line items owned by the storefront session.
// Every operation returns a new Cart and leaves the receiver untouched.
type Cart []CartItem

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Add increments the (product, size) line if present, otherwise appends a
// new line with quantity 1.
func (c Cart) Add(product Product, size string) Cart {
	if size == "" {
		size = DefaultSize
	}
	key := CartItemKey(product.ID, size)
	out := c.clone()
	for i := range out {
		if out[i].CartID == key {
			out[i].Quantity++
			return out
		}
	}
	return append(out, CartItem{
		CartID:   key,
		Product:  product,
		Size:     size,
		Quantity: 1,
	})
}

// UpdateQuantity applies delta to the line, never dropping below 1.
func (c Cart) UpdateQuantity(key string, delta int) Cart {
	out := c.clone()
	for i := range out {
		if out[i].CartID == key {
			out[i].Quantity = max(1, out[i].Quantity+delta)
		}
	}
	return out
}

func (c Cart) Remove(key string) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.CartID != key {
			out = append(out, item)
		}
	}
	return out
}

func (c Cart) Find(key string) (CartItem, bool) {
	for _, item := range c {
		if item.CartID == key {
			return item, true
		}
	}
	return CartItem{}, false
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

func (c Cart) Subtotal() int64 {
	var total int64
	for _, item := range c {
		total += item.LineTotal()
	}
	return total
}
