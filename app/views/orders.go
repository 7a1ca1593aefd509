package views

import (
	"fmt"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/collection"
)

// OrderSort is the orders table's sort option.
type OrderSort string

const (
	OrderNewest  OrderSort = "newest"
	OrderOldest  OrderSort = "oldest"
	OrderHighest OrderSort = "highest"
	OrderLowest  OrderSort = "lowest"
)

// ParseOrderSort validates a sort option from a flag or query string.
// Empty means newest.
func ParseOrderSort(s string) (OrderSort, error) {
	switch OrderSort(s) {
	case "":
		return OrderNewest, nil
	case OrderNewest, OrderOldest, OrderHighest, OrderLowest:
		return OrderSort(s), nil
	default:
		return "", fmt.Errorf("views: unknown order sort %q (newest, oldest, highest, lowest)", s)
	}
}

// SortOrders returns a sorted copy, stable under equal keys.
func SortOrders(orders []models.Order, opt OrderSort) []models.Order {
	switch opt {
	case OrderOldest:
		return collection.SortedBy(orders, func(a, b models.Order) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		})
	case OrderHighest:
		return collection.SortedBy(orders, func(a, b models.Order) bool {
			return a.TotalPrice > b.TotalPrice
		})
	case OrderLowest:
		return collection.SortedBy(orders, func(a, b models.Order) bool {
			return a.TotalPrice < b.TotalPrice
		})
	default: // newest
		return collection.SortedBy(orders, func(a, b models.Order) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	}
}

// OrderSummary is the header card above the orders table.
type OrderSummary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Summarize totals the order list.
func Summarize(orders []models.Order) OrderSummary {
	return OrderSummary{
		Count: len(orders),
		Revenue: collection.Sum(orders, func(o models.Order) float64 {
			return o.TotalPrice
		}),
	}
}
