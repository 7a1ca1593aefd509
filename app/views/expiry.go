// Package views holds the pure derivation layer between a raw fetch and
// what a screen shows: date-window filters, stable sorts and the expiry
// notification buckets. Nothing here touches the network.
package views

import (
	"fmt"
	"math"
	"time"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/collection"
)

// ExpiringSoonWindow is how far ahead the expiring-soon screen looks.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Bucket classifies how close a product is to expiry.
type Bucket string

const (
	BucketExpired Bucket = "expired"
	Bucket3Days   Bucket = "3 days"
	Bucket7Days   Bucket = "7 days"
	Bucket1Month  Bucket = "1 month"
	BucketNone    Bucket = ""
)

// DaysUntil is the number of whole days until expiry, rounded up.
// 0 or negative means already expired.
func DaysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ExpiryBucket maps a day difference into exactly one bucket. Boundaries
// are exclusive below, inclusive above: d≤0 expired, (0,3], (3,7],
// (7,30], otherwise none.
func ExpiryBucket(d int) Bucket {
	switch {
	case d <= 0:
		return BucketExpired
	case d <= 3:
		return Bucket3Days
	case d <= 7:
		return Bucket7Days
	case d <= 30:
		return Bucket1Month
	default:
		return BucketNone
	}
}

// DaysLeftLabel renders a day difference the way the tables show it.
func DaysLeftLabel(d int) string {
	switch {
	case d <= 0:
		return "Expired"
	case d == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days left", d)
	}
}

// ExpiringSoon keeps products whose expiry falls in [now, now+30d],
// earliest expiry first.
func ExpiringSoon(products []models.Product, now time.Time) []models.Product {
	end := now.Add(ExpiringSoonWindow)
	in := collection.Filter(products, func(p models.Product) bool {
		if p.ExpiryDate.IsZero() {
			return false
		}
		return !p.ExpiryDate.Before(now) && !p.ExpiryDate.After(end)
	})
	return collection.SortedBy(in, func(a, b models.Product) bool {
		return a.ExpiryDate.Before(b.ExpiryDate)
	})
}

// Expired keeps products whose expiry is strictly before now, earliest
// expiry first.
func Expired(products []models.Product, now time.Time) []models.Product {
	out := collection.Filter(products, func(p models.Product) bool {
		return !p.ExpiryDate.IsZero() && p.ExpiryDate.Before(now)
	})
	return collection.SortedBy(out, func(a, b models.Product) bool {
		return a.ExpiryDate.Before(b.ExpiryDate)
	})
}

// Notification is one line of the expiry feed.
type Notification struct {
	Name       string    `json:"name"`
	ExpiryDate time.Time `json:"expiryDate"`
	Status     Bucket    `json:"status"`
}

// Notifications buckets every product with an expiry date fewer than a
// month out. Products outside every bucket are dropped.
func Notifications(products []models.Product, now time.Time) []Notification {
	var out []Notification
	for _, p := range products {
		if p.ExpiryDate.IsZero() {
			continue
		}
		status := ExpiryBucket(DaysUntil(p.ExpiryDate, now))
		if status == BucketNone {
			continue
		}
		out = append(out, Notification{
			Name:       p.Name,
			ExpiryDate: p.ExpiryDate,
			Status:     status,
		})
	}
	return out
}
