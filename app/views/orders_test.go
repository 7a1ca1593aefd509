package views_test

import (
	"testing"
	"time"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/app/views"
)

func TestParseOrderSort(t *testing.T) {
	opt, err := views.ParseOrderSort("")
	if err != nil || opt != views.OrderNewest {
		t.Errorf("empty sort: got %q, %v", opt, err)
	}
	if _, err := views.ParseOrderSort("biggest"); err == nil {
		t.Error("expected error for unknown sort option")
	}
}

func TestSortOrdersByTotal(t *testing.T) {
	orders := []models.Order{
		{ID: "a", TotalPrice: 100},
		{ID: "b", TotalPrice: 50},
		{ID: "c", TotalPrice: 200},
	}

	lowest := views.SortOrders(orders, views.OrderLowest)
	if lowest[0].TotalPrice != 50 || lowest[1].TotalPrice != 100 || lowest[2].TotalPrice != 200 {
		t.Errorf("lowest: got %v, %v, %v", lowest[0].TotalPrice, lowest[1].TotalPrice, lowest[2].TotalPrice)
	}

	highest := views.SortOrders(orders, views.OrderHighest)
	if highest[0].TotalPrice != 200 || highest[2].TotalPrice != 50 {
		t.Errorf("highest: got %v, %v, %v", highest[0].TotalPrice, highest[1].TotalPrice, highest[2].TotalPrice)
	}

	if orders[0].ID != "a" {
		t.Error("SortOrders mutated its input")
	}
}

func TestSortOrdersByDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "mid", CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "new", CreatedAt: now},
		{ID: "old", CreatedAt: now.AddDate(0, -1, 0)},
	}

	newest := views.SortOrders(orders, views.OrderNewest)
	if newest[0].ID != "new" || newest[2].ID != "old" {
		t.Errorf("newest: got %s, %s, %s", newest[0].ID, newest[1].ID, newest[2].ID)
	}

	oldest := views.SortOrders(orders, views.OrderOldest)
	if oldest[0].ID != "old" || oldest[2].ID != "new" {
		t.Errorf("oldest: got %s, %s, %s", oldest[0].ID, oldest[1].ID, oldest[2].ID)
	}
}

func TestSortOrdersStable(t *testing.T) {
	orders := []models.Order{
		{ID: "a", TotalPrice: 75},
		{ID: "b", TotalPrice: 75},
		{ID: "c", TotalPrice: 75},
	}
	got := views.SortOrders(orders, views.OrderHighest)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("equal totals lost fetch order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSummarize(t *testing.T) {
	got := views.Summarize([]models.Order{{TotalPrice: 120.5}, {TotalPrice: 79.5}})
	if got.Count != 2 || got.Revenue != 200 {
		t.Errorf("got %+v", got)
	}

	empty := views.Summarize(nil)
	if empty.Count != 0 || empty.Revenue != 0 {
		t.Errorf("empty list: got %+v", empty)
	}
}

func TestBuildMetrics(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "live", ExpiryDate: day(now, 40)},
		{Name: "gone", ExpiryDate: day(now, -1)},
		{Name: "no date"},
	}
	orders := []models.Order{{TotalPrice: 300}, {TotalPrice: 150}}
	daily := models.DailySales{TotalSales: 150, TotalOrders: 1}

	got := views.BuildMetrics(products, orders, daily, now)
	if got.ProductCount != 3 || got.ExpiredCount != 1 {
		t.Errorf("product counts: %+v", got)
	}
	if got.OrderCount != 2 || got.TotalSales != 450 {
		t.Errorf("order totals: %+v", got)
	}
	if got.DailySales != 150 || got.DailyOrders != 1 {
		t.Errorf("daily figures: %+v", got)
	}
}
