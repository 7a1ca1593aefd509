package services

import (
	"context"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/httpx"
	"github.com/pharmadesk/pharmadesk/pkg/session"
	"github.com/pharmadesk/pharmadesk/pkg/validate"
)

// AdminService wraps the /api/admin endpoints: sign-in, profile and the
// server-aggregated sales figures.
type AdminService struct {
	api *Client
}

func NewAdminService(api *Client) *AdminService {
	return &AdminService{api: api}
}

// SignIn exchanges credentials for the admin record and a bearer token.
// Sign-in itself is unauthenticated.
func (s *AdminService) SignIn(ctx context.Context, in models.SignInInput) (session.User, string, error) {
	if msg := validate.FirstError(validate.Struct(in)); msg != "" {
		return session.User{}, "", &ValidationError{Msg: msg}
	}

	resp, err := httpx.Post(s.api.url("/api/admin/signin")).
		Body(in).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return session.User{}, "", err
	}
	if err := resp.Throw(); err != nil {
		return session.User{}, "", err
	}

	var body struct {
		Admin session.User `json:"admin"`
		Token string       `json:"token"`
	}
	if err := resp.JSON(&body); err != nil {
		return session.User{}, "", err
	}
	return body.Admin, body.Token, nil
}

// UpdateProfile changes the signed-in admin's name, email and
// (optionally) password.
func (s *AdminService) UpdateProfile(ctx context.Context, in models.ProfileInput) error {
	if msg := validate.FirstError(validate.Struct(in)); msg != "" {
		return &ValidationError{Msg: msg}
	}

	resp, err := httpx.Put(s.api.url("/api/admin/update-profile")).
		Body(in).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return err
	}
	return resp.Throw()
}

// MonthlySales fetches the server-aggregated 12-month revenue series.
func (s *AdminService) MonthlySales(ctx context.Context) (models.MonthlySales, error) {
	resp, err := httpx.Get(s.api.url("/api/admin/monthly-sales")).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return models.MonthlySales{}, err
	}
	if err := resp.Throw(); err != nil {
		return models.MonthlySales{}, err
	}

	var out models.MonthlySales
	if err := resp.JSON(&out); err != nil {
		return models.MonthlySales{}, err
	}
	return out, nil
}

// DailySales fetches today's server-aggregated totals.
func (s *AdminService) DailySales(ctx context.Context) (models.DailySales, error) {
	resp, err := httpx.Get(s.api.url("/api/admin/daily-sales")).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return models.DailySales{}, err
	}
	if err := resp.Throw(); err != nil {
		return models.DailySales{}, err
	}

	var out models.DailySales
	if err := resp.JSON(&out); err != nil {
		return models.DailySales{}, err
	}
	return out, nil
}
