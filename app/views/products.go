package views

import (
	"fmt"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/collection"
)

// ProductSort is the product table's sort option.
type ProductSort string

const (
	SortAlphabetical ProductSort = "alphabetical"
	SortNewest       ProductSort = "newest"
	SortOldest       ProductSort = "oldest"
	SortLowStock     ProductSort = "lowStock"
)

// ParseProductSort validates a sort option from a flag or query string.
// Empty means alphabetical.
func ParseProductSort(s string) (ProductSort, error) {
	switch ProductSort(s) {
	case "":
		return SortAlphabetical, nil
	case SortAlphabetical, SortNewest, SortOldest, SortLowStock:
		return ProductSort(s), nil
	default:
		return "", fmt.Errorf("views: unknown product sort %q (alphabetical, newest, oldest, lowStock)", s)
	}
}

// SortProducts returns a sorted copy. The underlying sort is stable, so
// products equal under the key keep their fetch order.
func SortProducts(products []models.Product, opt ProductSort) []models.Product {
	switch opt {
	case SortNewest:
		return collection.SortedBy(products, func(a, b models.Product) bool {
			return a.ExpiryDate.After(b.ExpiryDate)
		})
	case SortOldest:
		return collection.SortedBy(products, func(a, b models.Product) bool {
			return a.ExpiryDate.Before(b.ExpiryDate)
		})
	case SortLowStock:
		return collection.SortedBy(products, func(a, b models.Product) bool {
			return a.Quantity < b.Quantity
		})
	default: // alphabetical
		return collection.SortedBy(products, func(a, b models.Product) bool {
			return a.Name < b.Name
		})
	}
}

// InventoryTotals summarises the catalogue for the products screen.
type InventoryTotals struct {
	Units int     `json:"units"`
	Value float64 `json:"value"`
}

// Totals computes total units on hand and total inventory value
// (Σ quantity × price).
func Totals(products []models.Product) InventoryTotals {
	units := 0
	for _, p := range products {
		units += p.Quantity
	}
	value := collection.Sum(products, func(p models.Product) float64 {
		return float64(p.Quantity) * p.Price
	})
	return InventoryTotals{Units: units, Value: value}
}

// ReplaceByID swaps the element whose id matches in a fetched list:
// the reconcile step after an update, using the server's canonical
// record. Returns the list unchanged when the id is absent.
func ReplaceByID(products []models.Product, updated models.Product) []models.Product {
	return collection.Map(products, func(p models.Product) models.Product {
		if p.ID == updated.ID {
			return updated
		}
		return p
	})
}

// RemoveByID drops the element whose id matches: the reconcile step
// after a delete.
func RemoveByID(products []models.Product, id string) []models.Product {
	return collection.Filter(products, func(p models.Product) bool {
		return p.ID != id
	})
}
