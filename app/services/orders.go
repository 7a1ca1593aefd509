package services

import (
	"context"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/httpx"
	"github.com/pharmadesk/pharmadesk/pkg/validate"
)

// OrderService wraps the /api/orders endpoints.
type OrderService struct {
	api *Client
}

func NewOrderService(api *Client) *OrderService {
	return &OrderService{api: api}
}

// List fetches every order.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	resp, err := httpx.Get(s.api.url("/api/orders")).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, err
	}
	if err := resp.Throw(); err != nil {
		return nil, err
	}
	return decodeList[models.Order](resp.Raw, "orders")
}

// Recent fetches the latest orders for the dashboard.
func (s *OrderService) Recent(ctx context.Context) ([]models.Order, error) {
	resp, err := httpx.Get(s.api.url("/api/orders/recent")).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, err
	}
	if err := resp.Throw(); err != nil {
		return nil, err
	}
	return decodeList[models.Order](resp.Raw, "orders")
}

// Create places an order and returns the server's canonical record.
// Line totals and totalPrice are computed server-side.
func (s *OrderService) Create(ctx context.Context, in models.OrderInput) (models.Order, error) {
	if msg := validate.FirstError(validate.Struct(in)); msg != "" {
		return models.Order{}, &ValidationError{Msg: msg}
	}
	for _, item := range in.Items {
		if msg := validate.FirstError(validate.Struct(item)); msg != "" {
			return models.Order{}, &ValidationError{Msg: msg}
		}
	}

	resp, err := httpx.Post(s.api.url("/api/orders")).
		Body(in).
		Bearer(s.api.sess.Token).
		Timeout(s.api.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return models.Order{}, err
	}
	if err := resp.Throw(); err != nil {
		return models.Order{}, err
	}
	return decodeOne[models.Order](resp.Raw, "order")
}
