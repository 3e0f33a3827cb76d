package models

import "encoding/gob"

// Cart quantity actions accepted by ChangeQuantity.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// CartItem represents an item in the shopping cart. Name and price
// are snapshotted from the product at add-time; later catalog edits
// do not touch items already in a cart.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity for this item.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart represents a session-scoped shopping cart. The zero value is
// an empty cart ready for use.
type Cart struct {
	Items []CartItem `json:"items"`
}

func init() {
	// The session cookie store serializes values with gob.
	gob.Register(Cart{})
	gob.Register(CartItem{})
}

// Add puts a product into the cart. If the product is already
// present its quantity goes up by one; otherwise a new item is
// appended with quantity 1.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
	})
}

// ChangeQuantity adjusts the quantity of the item with the given
// product id. Decrease never takes a quantity below 1. Unknown ids
// and unknown actions are no-ops.
func (c *Cart) ChangeQuantity(id int, action string) {
	for i := range c.Items {
		if c.Items[i].ID != id {
			continue
		}
		switch action {
		case ActionIncrease:
			c.Items[i].Quantity++
		case ActionDecrease:
			if c.Items[i].Quantity > 1 {
				c.Items[i].Quantity--
			}
		}
		return
	}
}

// Remove drops the item with the given product id, preserving the
// order of the remaining items. Unknown ids are a no-op.
func (c *Cart) Remove(id int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Total returns the sum of price times quantity over all items.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}
