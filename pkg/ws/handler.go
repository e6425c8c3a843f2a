package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"portfolio-cms/pkg/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; the session gate runs before the upgrade.
		return true
	},
}

// Handler upgrades a watcher connection. The current snapshot is delivered
// immediately, then every republished snapshot until the client goes away.
func Handler(hub *Hub, service *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := newClient(hub, conn)
		hub.register <- client

		if data, err := marshalSnapshot(service.Snapshot()); err == nil {
			client.send <- data
		}

		go client.writePump()
		client.readPump()
	}
}
