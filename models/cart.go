package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartItem is one aggregated line in a session cart. Name, price and image
// are snapshots taken when the product was added.
type CartItem struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// Add increments the quantity of an existing line for the same product,
// otherwise appends a new line snapshotting the product.
func (c *Cart) Add(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		Image:     p.ImageFilename,
	})
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// DecodeCart parses a stored cart payload. Malformed payloads yield an empty
// cart and malformed line items are dropped, so stale or tampered session
// data never reaches a handler.
func DecodeCart(raw string) Cart {
	var cart Cart
	if raw == "" {
		return cart
	}
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return Cart{}
	}
	valid := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID > 0 && item.Quantity > 0 && !item.Price.IsNegative() {
			valid = append(valid, item)
		}
	}
	cart.Items = valid
	return cart
}

func (c Cart) Encode() string {
	b, _ := json.Marshal(c)
	return string(b)
}
