package models

import "time"

// OrderItem is one line of an order. The API populates productId with
// the referenced product document.
type OrderItem struct {
	Product  Product `json:"productId"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Order as serialised by the inventory API. TotalPrice is assumed (not
// enforced here) to equal the sum of line totals.
type Order struct {
	ID         string      `json:"_id"`
	Customer   string      `json:"customer"`
	TotalPrice float64     `json:"totalPrice"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"products"`
}

// OrderItemInput references a product by id when placing an order.
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gte=1"`
}

// OrderInput is the add-order form.
type OrderInput struct {
	Customer string           `json:"customer" validate:"required"`
	Items    []OrderItemInput `json:"items"    validate:"required"`
}
