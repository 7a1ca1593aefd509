package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/app/views"
	"github.com/pharmadesk/pharmadesk/pkg/logger"
	"github.com/pharmadesk/pharmadesk/pkg/metrics"
)

const (
	writeWait    = 10 * time.Second
	pushInterval = time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local dashboard only; the listener binds loopback-style usage.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NotificationsFeed upgrades to a websocket and pushes the expiry-bucket
// feed immediately and then on an interval, so the dashboard bell stays
// current without polling. The connection closes on the first failed
// write or when the client goes away.
func (s *Server) NotificationsFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Swallow client frames so pings/closes are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pushInterval)
	defer ticker.Stop()

	for {
		if err := s.pushNotifications(conn, r); err != nil {
			logger.Debug("ws client gone", "error", err)
			return
		}
		select {
		case <-ticker.C:
		case <-r.Context().Done():
			return
		}
	}
}

func (s *Server) pushNotifications(conn *websocket.Conn, r *http.Request) error {
	products, err := services.NewProductService(s.api()).List(r.Context())
	if err != nil {
		// Fetch failures keep the connection: the next tick retries the
		// way a re-mounted screen would.
		logger.Error("notification fetch failed", "error", err)
		return nil
	}

	feed := views.Notifications(products, time.Now())
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(map[string]any{"notifications": feed}); err != nil {
		return err
	}
	metrics.NotificationPushes.Inc()
	return nil
}
