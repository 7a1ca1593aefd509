package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/app/views"
	"github.com/pharmadesk/pharmadesk/pkg/logger"
)

// api builds a fresh service client for this request. The request's
// context rides along on every upstream call, so a dashboard client
// that disconnects cancels the fetch.
func (s *Server) api() *services.Client {
	return services.NewClient(s.sessions.Restore())
}

// Dashboard answers the headline metrics plus the monthly sales series.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := s.api()

	products, err := services.NewProductService(api).List(ctx)
	if err != nil {
		fetchError(w, "products", err)
		return
	}
	orders, err := services.NewOrderService(api).List(ctx)
	if err != nil {
		fetchError(w, "orders", err)
		return
	}

	admin := services.NewAdminService(api)
	daily, err := admin.DailySales(ctx)
	if err != nil {
		fetchError(w, "daily sales", err)
		return
	}
	monthly, err := admin.MonthlySales(ctx)
	if err != nil {
		fetchError(w, "monthly sales", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metrics":      views.BuildMetrics(products, orders, daily, time.Now()),
		"monthlySales": monthly.Totals,
	})
}

// Products answers the catalogue under ?sort= plus inventory totals.
func (s *Server) Products(w http.ResponseWriter, r *http.Request) {
	opt, err := views.ParseProductSort(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := services.NewProductService(s.api()).List(r.Context())
	if err != nil {
		fetchError(w, "products", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"totals":   views.Totals(products),
		"products": views.SortProducts(products, opt),
	})
}

// ExpiringSoon answers products expiring inside the 30-day window.
func (s *Server) ExpiringSoon(w http.ResponseWriter, r *http.Request) {
	products, err := services.NewProductService(s.api()).List(r.Context())
	if err != nil {
		fetchError(w, "products", err)
		return
	}

	soon := views.ExpiringSoon(products, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(soon),
		"products": soon,
	})
}

// Expired answers products past their expiry date.
func (s *Server) Expired(w http.ResponseWriter, r *http.Request) {
	products, err := services.NewProductService(s.api()).List(r.Context())
	if err != nil {
		fetchError(w, "products", err)
		return
	}

	expired := views.Expired(products, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(expired),
		"products": expired,
	})
}

// Orders answers all orders under ?sort= plus the summary card.
func (s *Server) Orders(w http.ResponseWriter, r *http.Request) {
	opt, err := views.ParseOrderSort(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := services.NewOrderService(s.api()).List(r.Context())
	if err != nil {
		fetchError(w, "orders", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"summary": views.Summarize(orders),
		"orders":  views.SortOrders(orders, opt),
	})
}

// RecentOrders answers the latest orders for the dashboard table.
func (s *Server) RecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := services.NewOrderService(s.api()).Recent(r.Context())
	if err != nil {
		fetchError(w, "recent orders", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// Notifications answers the expiry-bucket feed once.
func (s *Server) Notifications(w http.ResponseWriter, r *http.Request) {
	products, err := services.NewProductService(s.api()).List(r.Context())
	if err != nil {
		fetchError(w, "products", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": views.Notifications(products, time.Now()),
	})
}

func fetchError(w http.ResponseWriter, what string, err error) {
	logger.Error("dashboard fetch failed", "what", what, "error", err)
	writeError(w, http.StatusBadGateway, "failed to fetch "+what)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
