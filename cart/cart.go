// Package cart implements the client-held shopping cart: a mapping of
// menu item to quantity, mutated locally and persisted as JSON (the
// web client keeps it in local storage).
package cart

import (
	"encoding/json"
	"errors"
)

// MaxQuantity caps how many of a single menu item one order may hold.
const MaxQuantity = 15

var ErrQuantityLimit = errors.New("cart: quantity limit reached")

// Line pairs a menu item snapshot with a quantity.
type Line struct {
	MenuID   uint    `json:"menuId"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart holds the lines for a single restaurant's order.
type Cart struct {
	RestaurantID uint   `json:"restaurantId"`
	Lines        []Line `json:"lines"`
}

func New(restaurantID uint) *Cart {
	return &Cart{RestaurantID: restaurantID}
}

func (c *Cart) find(menuID uint) *Line {
	for i := range c.Lines {
		if c.Lines[i].MenuID == menuID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Add puts one unit of the item in the cart, or increments an existing
// line. Adding past MaxQuantity fails.
func (c *Cart) Add(menuID uint, name, image string, price float64) error {
	if line := c.find(menuID); line != nil {
		if line.Quantity >= MaxQuantity {
			return ErrQuantityLimit
		}
		line.Quantity++
		return nil
	}
	c.Lines = append(c.Lines, Line{MenuID: menuID, Name: name, Image: image, Price: price, Quantity: 1})
	return nil
}

// Increment bumps the quantity of an existing line. Incrementing past
// MaxQuantity is rejected.
func (c *Cart) Increment(menuID uint) error {
	line := c.find(menuID)
	if line == nil {
		return errors.New("cart: item not in cart")
	}
	if line.Quantity >= MaxQuantity {
		return ErrQuantityLimit
	}
	line.Quantity++
	return nil
}

// Decrement lowers the quantity of an existing line. Below 1 it is a
// no-op; the item stays in the cart until removed explicitly.
func (c *Cart) Decrement(menuID uint) {
	line := c.find(menuID)
	if line == nil || line.Quantity <= 1 {
		return
	}
	line.Quantity--
}

// Remove drops a line entirely.
func (c *Cart) Remove(menuID uint) {
	for i := range c.Lines {
		if c.Lines[i].MenuID == menuID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is the client-side display total; the server recomputes the
// real charge from its own menu prices at checkout.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Marshal serializes the cart for local-storage persistence.
func (c *Cart) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// Load restores a cart persisted with Marshal.
func Load(data []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
