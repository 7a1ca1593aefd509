package views

import (
	"time"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/collection"
)

// Metrics is the dashboard's headline card row. Counts and total sales
// are derived client-side from the fetched lists; the daily figures come
// from the server's aggregate endpoint untouched.
type Metrics struct {
	ProductCount int     `json:"productCount"`
	ExpiredCount int     `json:"expiredCount"`
	OrderCount   int     `json:"orderCount"`
	TotalSales   float64 `json:"totalSales"`
	DailySales   float64 `json:"dailySales"`
	DailyOrders  int     `json:"dailyOrders"`
}

// BuildMetrics assembles the dashboard summary.
func BuildMetrics(products []models.Product, orders []models.Order, daily models.DailySales, now time.Time) Metrics {
	expired := collection.Filter(products, func(p models.Product) bool {
		return !p.ExpiryDate.IsZero() && p.Expired(now)
	})
	return Metrics{
		ProductCount: len(products),
		ExpiredCount: len(expired),
		OrderCount:   len(orders),
		TotalSales: collection.Sum(orders, func(o models.Order) float64 {
			return o.TotalPrice
		}),
		DailySales:  daily.TotalSales,
		DailyOrders: daily.TotalOrders,
	}
}
