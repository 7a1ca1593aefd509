package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/pkg/httpx"
	"github.com/pharmadesk/pharmadesk/pkg/session"
)

// mockTransport intercepts outgoing requests on httpx.DefaultClient and
// answers them from a canned handler, recording each request seen.
type mockTransport struct {
	handler  func(req *http.Request) (status int, body string)
	requests []*http.Request
	bodies   [][]byte
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	var raw []byte
	if req.Body != nil {
		raw, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	m.requests = append(m.requests, req)
	m.bodies = append(m.bodies, raw)

	status, body := m.handler(req)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Request:    req,
	}, nil
}

func install(t *testing.T, handler func(req *http.Request) (int, string)) *mockTransport {
	t.Helper()
	mt := &mockTransport{handler: handler}
	httpx.DefaultClient.Transport = mt
	t.Cleanup(httpx.ResetTransport)
	return mt
}

func testClient() *Client {
	return &Client{
		base: "http://api.test",
		sess: session.Session{
			User:  &session.User{ID: "admin-1", Name: "Ada", Email: "ada@pharmadesk.test"},
			Token: "tok-123",
		},
		timeout: 5 * time.Second,
	}
}

func TestProductListSendsBearerToken(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"products":[{"_id":"1","name":"aspirin","price":10,"quantity":3}]}`
	})

	got, err := NewProductService(testClient()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "aspirin", got[0].Name)

	require.Len(t, mt.requests, 1)
	req := mt.requests[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "http://api.test/api/products", req.URL.String())
	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
}

func TestProductListSurfacesAPIError(t *testing.T) {
	install(t, func(req *http.Request) (int, string) {
		return http.StatusUnauthorized, `{"error":"token expired"}`
	})

	_, err := NewProductService(testClient()).List(context.Background())
	require.Error(t, err)
	assert.True(t, httpx.IsUnauthorized(err))

	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestProductCreateValidatesBeforeSending(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusCreated, `{}`
	})

	_, err := NewProductService(testClient()).Create(context.Background(), models.ProductInput{
		Name: "x", // too short
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, mt.requests, "invalid form must never reach the network")
}

func TestProductCreateSendsMultipart(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusCreated, `{"product":{"_id":"srv-9","name":"ibuprofen","price":12.5,"quantity":40}}`
	})

	got, err := NewProductService(testClient()).Create(context.Background(), models.ProductInput{
		Name:       "ibuprofen",
		Price:      12.5,
		Quantity:   40,
		ExpiryDate: "2027-01-31",
	})
	require.NoError(t, err)

	// The server's canonical record comes back, id included.
	assert.Equal(t, "srv-9", got.ID)

	require.Len(t, mt.requests, 1)
	req := mt.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.True(t, strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data"))
	body := string(mt.bodies[0])
	assert.Contains(t, body, `name="expiryDate"`)
	assert.Contains(t, body, "2027-01-31")
	assert.Contains(t, body, "12.5")
}

func TestProductUpdateReturnsCanonicalRecord(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		// Server normalises the name; the caller must see the server's copy.
		return http.StatusOK, `{"product":{"_id":"1","name":"Paracetamol 500mg","price":8,"quantity":12}}`
	})

	got, err := NewProductService(testClient()).Update(context.Background(), "1", models.ProductUpdate{
		Name:       "paracetamol",
		Price:      8,
		Quantity:   12,
		ExpiryDate: time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", got.Name)

	req := mt.requests[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/products/1", req.URL.Path)
}

func TestProductDelete(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"message":"deleted"}`
	})

	err := NewProductService(testClient()).Delete(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "/api/products/42", mt.requests[0].URL.Path)
	assert.Equal(t, http.MethodDelete, mt.requests[0].Method)
}

func TestOrderCreateValidatesItems(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusCreated, `{}`
	})

	svc := NewOrderService(testClient())

	_, err := svc.Create(context.Background(), models.OrderInput{Customer: "Bisi"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(context.Background(), models.OrderInput{
		Customer: "Bisi",
		Items:    []models.OrderItemInput{{ProductID: "p1", Quantity: 0}},
	})
	require.ErrorAs(t, err, &verr)

	assert.Empty(t, mt.requests)
}

func TestOrderCreateReconcilesServerTotals(t *testing.T) {
	install(t, func(req *http.Request) (int, string) {
		return http.StatusCreated, `{"order":{"_id":"o1","customer":"Bisi","totalPrice":250,
			"products":[{"productId":{"_id":"p1","name":"aspirin","price":125},"quantity":2,"total":250}]}}`
	})

	got, err := NewOrderService(testClient()).Create(context.Background(), models.OrderInput{
		Customer: "Bisi",
		Items:    []models.OrderItemInput{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.TotalPrice)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "aspirin", got.Items[0].Product.Name)
}

func TestOrderListAcceptsBareArray(t *testing.T) {
	install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `[{"_id":"o1","customer":"Bisi","totalPrice":99}]`
	})

	got, err := NewOrderService(testClient()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 99.0, got[0].TotalPrice)
}

func TestSignIn(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"admin":{"_id":"a1","name":"Ada","email":"ada@pharmadesk.test"},"token":"fresh-token"}`
	})

	user, token, err := NewAdminService(testClient()).SignIn(context.Background(), models.SignInInput{
		Email:    "ada@pharmadesk.test",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, "Ada", user.Name)

	// Sign-in is the one unauthenticated call.
	assert.Empty(t, mt.requests[0].Header.Get("Authorization"))
	assert.Contains(t, string(mt.bodies[0]), "ada@pharmadesk.test")
}

func TestSignInRejectsBadEmailLocally(t *testing.T) {
	mt := install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{}`
	})

	_, _, err := NewAdminService(testClient()).SignIn(context.Background(), models.SignInInput{
		Email:    "not-an-email",
		Password: "secret",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, mt.requests)
}

func TestMonthlySales(t *testing.T) {
	install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `{"totals":[0,0,150,0,0,0,0,0,320,0,0,80]}`
	})

	got, err := NewAdminService(testClient()).MonthlySales(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Totals, 12)
	assert.Equal(t, 320.0, got.Totals[8])
}

func TestRequestContextCancellation(t *testing.T) {
	install(t, func(req *http.Request) (int, string) {
		return http.StatusOK, `[]`
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProductService(testClient()).List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
