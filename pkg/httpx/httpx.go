// Package httpx provides the fluent HTTP client pharmadesk uses to talk
// to the remote inventory API.
//
// Usage:
//
//	resp, err := httpx.Get(base + "/api/products").
//	    Bearer(sess.Token).
//	    WithContext(ctx).
//	    Send()
//
//	var body map[string]any
//	err = resp.JSON(&body)
//
//	// POST JSON body
//	resp, err := httpx.Post(base+"/api/orders").
//	    Body(payload).
//	    Bearer(sess.Token).
//	    Send()
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/pharmadesk/pharmadesk/pkg/logger"
	"github.com/pharmadesk/pharmadesk/pkg/metrics"
)

// defaultTransport is the connection-pooled transport used in production.
// Tests can replace DefaultClient.Transport to inject mocks.
var defaultTransport = &http.Transport{
	MaxIdleConns:        50,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// DefaultClient is the shared HTTP client behind every outgoing request.
// Tests swap DefaultClient.Transport to intercept calls:
//
//	httpx.DefaultClient.Transport = myMockTransport
//	defer httpx.ResetTransport()
var DefaultClient = &http.Client{
	Transport: defaultTransport,
}

// ResetTransport restores the production transport on DefaultClient.
// Call via defer after injecting a test transport.
func ResetTransport() {
	DefaultClient.Transport = defaultTransport
}

// ------------------- Multipart -------------------

// MultipartForm is a multipart/form-data request body: plain fields plus
// at most one file part (the product image upload).
type MultipartForm struct {
	Fields    map[string]string
	FileField string
	FileName  string
	File      io.Reader
}

// ------------------- Request -------------------

// Request is a fluent HTTP request builder.
type Request struct {
	method    string
	url       string
	endpoint  string
	headers   map[string]string
	body      interface{}
	timeout   time.Duration
	retries   int
	retryWait time.Duration
	ctx       context.Context
}

// Get starts a GET request.
func Get(url string) *Request { return newRequest(http.MethodGet, url) }

// Post starts a POST request.
func Post(url string) *Request { return newRequest(http.MethodPost, url) }

// Put starts a PUT request.
func Put(url string) *Request { return newRequest(http.MethodPut, url) }

// Delete starts a DELETE request.
func Delete(url string) *Request { return newRequest(http.MethodDelete, url) }

func newRequest(method, rawurl string) *Request {
	return &Request{
		method:    method,
		url:       rawurl,
		endpoint:  endpointLabel(rawurl),
		headers:   map[string]string{"Accept": "application/json"},
		timeout:   30 * time.Second,
		retries:   1,
		retryWait: 500 * time.Millisecond,
		ctx:       context.Background(),
	}
}

// endpointLabel derives the metric label from the URL path. Falls back to
// the raw URL when it does not parse.
func endpointLabel(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil || u.Path == "" {
		return rawurl
	}
	return u.Path
}

// Header adds a single header to the request.
func (r *Request) Header(key, value string) *Request {
	r.headers[key] = value
	return r
}

// Bearer sets the Authorization: Bearer <token> header.
func (r *Request) Bearer(token string) *Request {
	return r.Header("Authorization", "Bearer "+token)
}

// Label overrides the endpoint label recorded in metrics. Use it for
// URLs carrying ids so the label stays low-cardinality:
//
//	httpx.Put(base+"/api/products/"+id).Label("/api/products/{id}")
func (r *Request) Label(endpoint string) *Request {
	r.endpoint = endpoint
	return r
}

// Body sets the request body. A *MultipartForm is encoded as
// multipart/form-data; strings and []byte are sent raw; anything else is
// marshalled to JSON.
func (r *Request) Body(v interface{}) *Request {
	r.body = v
	return r
}

// Timeout sets the per-attempt timeout.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// Retry configures automatic retries on transport failure.
// n is total attempts (1 = no retry), wait is the initial backoff
// (doubles each attempt).
func (r *Request) Retry(n int, wait time.Duration) *Request {
	r.retries = n
	r.retryWait = wait
	return r
}

// WithContext sets a custom context. Serve-mode handlers pass the
// incoming request's context so an aborted dashboard client cancels the
// upstream fetch.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// ------------------- Send -------------------

// Send executes the request and returns a Response.
func (r *Request) Send() (*Response, error) {
	var lastErr error

	for attempt := 1; attempt <= r.retries; attempt++ {
		resp, err := r.do()
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt < r.retries {
			backoff := time.Duration(float64(r.retryWait) * math.Pow(2, float64(attempt-1)))
			logger.Warn("httpx: request failed, retrying",
				"url", r.url, "attempt", attempt, "backoff", backoff, "error", err)
			time.Sleep(backoff)
		}
	}

	metrics.ObserveAPIError(r.method, r.endpoint)
	return nil, fmt.Errorf("httpx: %s %s: %w", r.method, r.url, lastErr)
}

func (r *Request) do() (*Response, error) {
	body, ct, err := r.buildBody()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return nil, fmt.Errorf("httpx: build request: %w", err)
	}

	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if ct != "" {
		req.Header.Set("Content-Type", ct)
	}

	start := time.Now()
	resp, err := DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpx: send: %w", err)
	}
	metrics.ObserveAPICall(r.method, r.endpoint, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("httpx: read body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Raw:        raw,
	}, nil
}

func (r *Request) buildBody() (io.Reader, string, error) {
	if r.body == nil {
		return nil, "", nil
	}
	switch v := r.body.(type) {
	case string:
		return bytes.NewBufferString(v), "text/plain", nil
	case []byte:
		return bytes.NewReader(v), "application/octet-stream", nil
	case *MultipartForm:
		return buildMultipart(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("httpx: marshal body: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	}
}

func buildMultipart(form *MultipartForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range form.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("httpx: write field %q: %w", k, err)
		}
	}

	if form.File != nil {
		part, err := w.CreateFormFile(form.FileField, form.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("httpx: create file part: %w", err)
		}
		if _, err := io.Copy(part, form.File); err != nil {
			return nil, "", fmt.Errorf("httpx: copy file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("httpx: close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// ------------------- Response -------------------

// Response wraps the HTTP response with convenience methods.
type Response struct {
	StatusCode int
	Headers    http.Header
	Raw        []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into dest.
func (r *Response) JSON(dest interface{}) error {
	if err := json.Unmarshal(r.Raw, dest); err != nil {
		return fmt.Errorf("httpx: decode JSON: %w", err)
	}
	return nil
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Raw)
}

// Header returns a single response header value.
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// Throw returns an *APIError if the status is not 2xx, otherwise nil.
// The server's message is pulled from the {"error": ...} or
// {"message": ...} envelope when present.
func (r *Response) Throw() error {
	if r.OK() {
		return nil
	}
	return &APIError{
		StatusCode: r.StatusCode,
		Message:    r.errorMessage(),
	}
}

func (r *Response) errorMessage() string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Raw, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return http.StatusText(r.StatusCode)
}

// ------------------- APIError -------------------

// APIError is a non-2xx response from the inventory API, carrying the
// message field from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an APIError with status 401.
// Token expiry is only ever discovered this way; there is no local check.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
