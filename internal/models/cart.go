package models

import "encoding/json"

type CartLine struct {
	OrderLineID int      `json:"order_line_id" bson:"order_line_id"`
	Product     *Product `json:"product" bson:"product"`
	Quantity    int      `json:"quantity" bson:"quantity"`
}

// Cart holds at most one line per product ID. It is not safe for
// concurrent use; each request works on its own copy loaded from the
// session store.
type Cart struct {
	lines      []*CartLine
	nextLineID int
}

func NewCart() *Cart {
	return &Cart{}
}

// Lines returns the cart lines in insertion order. The slice is a copy,
// the lines are not.
func (c *Cart) Lines() []*CartLine {
	lines := make([]*CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds quantity of product to the cart, merging into the existing
// line for the same product ID. Zero is accepted, negative is not.
func (c *Cart) AddItem(product *Product, quantity int) error {
	if product == nil {
		return nilArgument("product")
	}
	if quantity < 0 {
		return outOfRange("quantity", "the quantity argument cannot be less than 0")
	}

	if line := c.findLine(product.ID); line != nil {
		line.Quantity += quantity
		return nil
	}

	c.nextLineID++
	c.lines = append(c.lines, &CartLine{
		OrderLineID: c.nextLineID,
		Product:     product,
		Quantity:    quantity,
	})
	return nil
}

// RemoveLine drops every line for the product's ID.
func (c *Cart) RemoveLine(product *Product) {
	if product == nil {
		return
	}

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != product.ID {
			kept = append(kept, line)
		}
	}
	for i := len(kept); i < len(c.lines); i++ {
		c.lines[i] = nil
	}
	c.lines = kept
}

func (c *Cart) TotalValue() float64 {
	var total float64
	for _, line := range c.lines {
		total += float64(line.Quantity) * line.Product.Price
	}
	return total
}

func (c *Cart) TotalQuantity() int {
	var quantity int
	for _, line := range c.lines {
		quantity += line.Quantity
	}
	return quantity
}

// AverageValue is the total value divided by the total quantity. It
// returns ErrEmptyCart when there is nothing to divide by.
func (c *Cart) AverageValue() (float64, error) {
	quantity := c.TotalQuantity()
	if quantity == 0 {
		return 0, ErrEmptyCart
	}
	return c.TotalValue() / float64(quantity), nil
}

func (c *Cart) FindProduct(productID int) (*Product, bool) {
	line := c.findLine(productID)
	if line == nil {
		return nil, false
	}
	return line.Product, true
}

func (c *Cart) LineByIndex(index int) (*CartLine, error) {
	if index < 0 || index >= len(c.lines) {
		return nil, outOfRange("index", "no cart line at that position")
	}
	return c.lines[index], nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) findLine(productID int) *CartLine {
	for _, line := range c.lines {
		if line.Product.ID == productID {
			return line
		}
	}
	return nil
}

type cartJSON struct {
	Lines []*CartLine `json:"lines"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []*CartLine{}
	}
	return json.Marshal(cartJSON{Lines: lines})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.lines = c.lines[:0]
	c.nextLineID = 0
	for _, line := range raw.Lines {
		if line == nil || line.Product == nil {
			continue
		}
		if line.OrderLineID > c.nextLineID {
			c.nextLineID = line.OrderLineID
		}
		c.lines = append(c.lines, line)
	}
	return nil
}

type AddToCartRequest struct {
	Quantity int `form:"quantity" json:"quantity" binding:"omitempty,gt=0"`
}
