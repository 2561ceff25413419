package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// form field names, they match the JSON names of CreateOrderRequest
const (
	FieldProductName   = "productName"
	FieldQuantity      = "quantity"
	FieldPrice         = "price"
	FieldCustomerName  = "customerName"
	FieldCustomerEmail = "customerEmail"
)

// DraftFields lists editable fields of an order draft in display order
var DraftFields = []string{
	FieldProductName,
	FieldQuantity,
	FieldPrice,
	FieldCustomerName,
	FieldCustomerEmail,
}

// OrderDraft is an order being edited in the create-order form.
// Price keeps the raw input so that a failed submission redisplays it unchanged.
type OrderDraft struct {
	ProductName   string
	Quantity      int
	Price         string
	CustomerName  string
	CustomerEmail string
}

// NewOrderDraft returns draft with default values
func NewOrderDraft() OrderDraft {
	return OrderDraft{Quantity: 1}
}

// CoerceQuantity converts quantity input to an integer not less than 1.
// Input that is not an integer falls back to 1.
func CoerceQuantity(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Set updates draft field by name
func (d *OrderDraft) Set(name, value string) error {
	switch name {
	case FieldProductName:
		d.ProductName = value
	case FieldQuantity:
		d.Quantity = CoerceQuantity(value)
	case FieldPrice:
		d.Price = value
	case FieldCustomerName:
		d.CustomerName = value
	case FieldCustomerEmail:
		d.CustomerEmail = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Request validates draft and converts it to CreateOrderRequest
func (d OrderDraft) Request() (CreateOrderRequest, error) {
	required := map[string]string{
		FieldProductName:   d.ProductName,
		FieldPrice:         d.Price,
		FieldCustomerName:  d.CustomerName,
		FieldCustomerEmail: d.CustomerEmail,
	}
	for _, name := range DraftFields {
		if value, ok := required[name]; ok && strings.TrimSpace(value) == "" {
			return CreateOrderRequest{}, fmt.Errorf("%w: %s is required", ErrInvalidDraft, name)
		}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return CreateOrderRequest{}, fmt.Errorf("%w: price must be a number", ErrInvalidDraft)
	}
	if price <= 0 {
		return CreateOrderRequest{}, fmt.Errorf("%w: price must be greater than 0", ErrInvalidDraft)
	}

	quantity := d.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return CreateOrderRequest{
		ProductName:   strings.TrimSpace(d.ProductName),
		Quantity:      quantity,
		Price:         price,
		CustomerName:  strings.TrimSpace(d.CustomerName),
		CustomerEmail: strings.TrimSpace(d.CustomerEmail),
	}, nil
}
