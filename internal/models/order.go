package models

import (
	"fmt"
	"strings"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseStatus normalizes and validates a status string
func ParseStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Valid reports whether the status is one of the known values
func (s OrderStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Order represents a customer purchase record. Orders are immutable once
// fetched; a refetch replaces them wholesale.
type Order struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	OrderDate    string      `json:"order_date"`
	Status       OrderStatus `json:"status"`
	TotalAmount  float64     `json:"total_amount"`
	Avatar       string      `json:"avatar"`
}

// ProductLine represents a single line item of an order
type ProductLine struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Image       string  `json:"image"`
}

// OrderDetail represents an order together with its line items. Details are
// fetched per order id and are not merged into the list cache.
type OrderDetail struct {
	Order
	Lines []ProductLine `json:"lines"`
}

// SearchFilters holds the active search criteria. CustomerID is matched as a
// substring/prefix against customer id and name; Status is an exact match.
// The zero value means no filtering.
type SearchFilters struct {
	CustomerID string      `json:"customer_id,omitempty"`
	Status     OrderStatus `json:"status,omitempty"`
}

// IsZero reports whether no filter field is set
func (f SearchFilters) IsZero() bool {
	return f.CustomerID == "" && f.Status == ""
}
