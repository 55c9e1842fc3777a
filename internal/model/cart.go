package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errCartQuantity = errors.New("quantity must be at least 1")
	errCartPrice    = errors.New("unit price must not be negative")
	errCartType     = errors.New("item type is required")
)

type CartLine struct {
	ItemType  string          `json:"itemType"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Color     string          `json:"color"`
	Pattern   string          `json:"pattern"`
	Note      string          `json:"note"`
}

func (l CartLine) Validate() error {
	if l.ItemType == "" {
		return errCartType
	}
	if l.Quantity < 1 {
		return errCartQuantity
	}
	if l.UnitPrice.IsNegative() {
		return errCartPrice
	}
	return nil
}

func (l CartLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the lines of one in-progress order until checkout. It is never persisted.
type Cart struct {
	CustomerID string
	lines      []CartLine
}

func NewCart(customerID string) *Cart {
	return &Cart{CustomerID: customerID}
}

func (c *Cart) Add(line CartLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

func (c *Cart) Remove(i int) {
	if i < 0 || i >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Pieces() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Total() decimal.Decimal {
	return CartTotal(c.lines)
}

func (c *Cart) Checkout(method PaymentMethod) CheckoutInput {
	return CheckoutInput{CustomerID: c.CustomerID, Method: method, Lines: c.Lines()}
}

func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}
