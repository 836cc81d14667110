package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	dashboardPushInterval = 5 * time.Second
	wsWriteTimeout        = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The REST API is already open cross-origin; the live feed carries the
	// same aggregate data.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleDashboardLive streams the risk distribution over a websocket. The
// current distribution is sent on connect and then on every push interval
// until the client disconnects.
func (s *Server) handleDashboardLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Reader goroutine: drains control frames and signals close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		dist, err := s.buildDistribution(c)
		if err != nil {
			s.logger.WithError(err).Warn("Live dashboard aggregation failed")
			return true
		}
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(dist); err != nil {
			return false
		}
		return true
	}

	if !send() {
		return
	}

	ticker := time.NewTicker(dashboardPushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}
