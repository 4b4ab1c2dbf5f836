package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity bounds a single line, which keeps item counts and totals far
// from integer overflow.
const MaxQuantity = 9999

var (
	ErrInvalidQuantity = errors.New("quantity must be an integer between 1 and 9999")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrMissingProduct  = errors.New("product id is required")
)

// Item is the display data of a product at the moment it is added.
type Item struct {
	ProductID string
	Name      string
	ImageRef  string
}

// Line is one product in the cart. UnitPrice is frozen when the product is
// first added and never re-read from the catalog.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageRef  string          `json:"imageRef"`
	Quantity  int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an immutable, insertion-ordered set of lines keyed by product id.
// Every operation returns a new Cart and leaves the receiver untouched.
type Cart struct {
	lines []Line
}

// Add appends a line, or accumulates quantity into the existing line of the
// same product keeping that line's frozen price.
func (c Cart) Add(item Item, quantity int, unitPrice decimal.Decimal) (Cart, error) {
	if item.ProductID == "" {
		return c, ErrMissingProduct
	}
	if !validQuantity(quantity) {
		return c, ErrInvalidQuantity
	}

	lines := c.Lines()
	if i := c.index(item.ProductID); i >= 0 {
		if quantity > MaxQuantity-lines[i].Quantity {
			return c, ErrInvalidQuantity
		}
		lines[i].Quantity += quantity
		return Cart{lines: lines}, nil
	}

	lines = append(lines, Line{
		ProductID: item.ProductID,
		Name:      item.Name,
		UnitPrice: unitPrice,
		ImageRef:  item.ImageRef,
		Quantity:  quantity,
	})

	return Cart{lines: lines}, nil
}

// UpdateQuantity sets a line's quantity. Quantities outside [1, MaxQuantity]
// are rejected and leave the line as it was.
func (c Cart) UpdateQuantity(productID string, quantity int) (Cart, error) {
	if !validQuantity(quantity) {
		return c, ErrInvalidQuantity
	}

	i := c.index(productID)
	if i < 0 {
		return c, fmt.Errorf("%w: %s", ErrLineNotFound, productID)
	}

	lines := c.Lines()
	lines[i].Quantity = quantity

	return Cart{lines: lines}, nil
}

// Remove drops the product's line. Removing an absent product is a no-op.
func (c Cart) Remove(productID string) Cart {
	i := c.index(productID)
	if i < 0 {
		return c
	}

	lines := make([]Line, 0, len(c.lines)-1)
	lines = append(lines, c.lines[:i]...)
	lines = append(lines, c.lines[i+1:]...)

	return Cart{lines: lines}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

// Lines returns a copy of the lines in insertion order.
func (c Cart) Lines() []Line {
	return append([]Line{}, c.lines...)
}

func (c Cart) Line(productID string) (Line, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Summary renders "2 x Pan, 1 x Café".
func (c Cart) Summary() string {
	parts := make([]string, len(c.lines))
	for i, l := range c.lines {
		parts[i] = fmt.Sprintf("%d x %s", l.Quantity, l.Name)
	}
	return strings.Join(parts, ", ")
}

func validQuantity(quantity int) bool {
	return quantity >= 1 && quantity <= MaxQuantity
}

func (c Cart) index(productID string) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
