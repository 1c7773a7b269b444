package orderControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/devshahzaibali/FSH-Traders/feed"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /orders/ws
// Streams order-created and status-changed events to back-office clients.
func OrderWebSocketHandler(hub *feed.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var mu sync.Mutex
		unsubscribe := hub.Subscribe(func(e feed.Event) {
			mu.Lock()
			defer mu.Unlock()
			_ = conn.WriteJSON(e)
		})
		defer unsubscribe()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
