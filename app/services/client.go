// Package services is the boundary to the remote inventory API. Each
// service wraps one resource's endpoints, validates form input before
// any write, and normalises the API's inconsistent response envelopes
// in exactly one place (normalize.go).
package services

import (
	"time"

	"github.com/pharmadesk/pharmadesk/config"
	"github.com/pharmadesk/pharmadesk/pkg/session"
)

// Client carries what every API call needs: the base URL, the session
// snapshot whose token authenticates the call, and the per-call timeout.
// It is built fresh per command (or per serve-mode request); there is
// no ambient global session.
type Client struct {
	base    string
	sess    session.Session
	timeout time.Duration
}

// NewClient builds a client around a session snapshot, reading base URL
// and timeout from config.
func NewClient(sess session.Session) *Client {
	return &Client{
		base:    config.APIBaseURL(),
		sess:    sess,
		timeout: config.HTTPTimeout(),
	}
}

func (c *Client) url(path string) string {
	return c.base + path
}

// ValidationError is a client-side form rejection: the write was never
// sent. The message is shown to the user verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
