package domain

import "errors"

// ErrInvalidQuantity is returned when a caller tries to add a line with a
// quantity below one. This is a caller contract violation, not user input.
var ErrInvalidQuantity = errors.New("cart quantity must be at least 1")

// CartLine is one product entry in the cart with its quantity
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"cartQuantity"`
}

// Cart holds the products a session has selected. Identity of a line is the
// product id; a product appears at most once and never with quantity <= 0.
// The cart is owned by a single session and is not safe for concurrent
// mutation; callers serialize access through that session.
type Cart struct {
	lines map[string]*CartLine
	order []string // product ids in insertion order, for display
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// AddItem puts a product into the cart. If a line for the product already
// exists its quantity is incremented, otherwise a new line is appended.
func (c *Cart) AddItem(p Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if line, ok := c.lines[p.ID]; ok {
		line.Quantity += quantity
		return nil
	}
	c.lines[p.ID] = &CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
	c.order = append(c.order, p.ID)
	return nil
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// below removes the line; this is the deletion path the quantity stepper in
// the UI relies on.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if line, ok := c.lines[productID]; ok {
		line.Quantity = quantity
	}
}

// Total recomputes the cart total from the live lines on every call so it can
// never go stale.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
	c.order = nil
}

// Len returns the number of lines in the cart
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns copies of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.lines))
	for _, id := range c.order {
		if line, ok := c.lines[id]; ok {
			out = append(out, *line)
		}
	}
	return out
}

// Snapshot captures the lines and total at this instant. Remote payloads are
// built from the snapshot, not the live cart, so edits made while a checkout
// attempt is in flight cannot skew an already-submitted request.
func (c *Cart) Snapshot() CartSnapshot {
	return CartSnapshot{Lines: c.Lines(), Total: c.Total()}
}

// CartSnapshot is an immutable view of cart state taken at submission time
type CartSnapshot struct {
	Lines []CartLine
	Total float64
}

// ItemNames returns the display names of the snapshot lines, in order
func (s CartSnapshot) ItemNames() []string {
	names := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		names = append(names, line.Name)
	}
	return names
}
