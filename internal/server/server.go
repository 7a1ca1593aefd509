// Package server hosts the local dashboard in serve mode: the derived
// views as read-only JSON, Prometheus metrics, and a websocket feed of
// expiry notifications. Every request fetches fresh from the upstream
// API; there is no cross-request cache, matching the screen-mount
// semantics of the CLI commands.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pharmadesk/pharmadesk/config"
	"github.com/pharmadesk/pharmadesk/pkg/logger"
	"github.com/pharmadesk/pharmadesk/pkg/metrics"
	"github.com/pharmadesk/pharmadesk/pkg/session"
)

// Server wires the dashboard routes over a session store. The session is
// re-read per request so a signin/signout from another terminal takes
// effect without a restart.
type Server struct {
	sessions *session.Store
}

// Start blocks serving the dashboard on the configured port.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	s := &Server{sessions: session.NewStore(config.SessionFile())}

	addr := ":" + config.AppPort()
	logger.Info("dashboard listening", "addr", addr, "api", config.APIBaseURL())

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler builds the chi router. Exposed separately so tests can drive
// it with httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/dashboard", s.Dashboard)
		r.Get("/products", s.Products)
		r.Get("/products/expiring", s.ExpiringSoon)
		r.Get("/products/expired", s.Expired)
		r.Get("/orders", s.Orders)
		r.Get("/orders/recent", s.RecentOrders)
		r.Get("/notifications", s.Notifications)
		r.Get("/ws/notifications", s.NotificationsFeed)
	})

	return r
}

// requireSession is the route guard: without a persisted session every
// view answers 401 and points at the signin command.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Restore()
		if !sess.Authenticated() {
			writeError(w, http.StatusUnauthorized, session.ErrSignedOut.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
