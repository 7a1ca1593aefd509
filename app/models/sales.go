package models

// MonthlySales is the server-aggregated monthly revenue series,
// January through December. The client never recomputes it from orders.
type MonthlySales struct {
	Totals []float64 `json:"totals"`
}

// DailySales is the server-aggregated figure for the current day.
type DailySales struct {
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int     `json:"totalOrders"`
}

// SignInInput is the sign-in form.
type SignInInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput is the update-profile form. Password is only sent when
// the admin chose to change it.
type ProfileInput struct {
	ID       string `json:"id"                 validate:"required"`
	Name     string `json:"name"               validate:"required"`
	Email    string `json:"email"              validate:"required,email"`
	Password string `json:"password,omitempty" validate:"nullable,min=6"`
}
