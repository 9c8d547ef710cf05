package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Poopyy17/Wings/events"
	"github.com/Poopyy17/Wings/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// EventsHandler upgrades a staff dashboard connection and keeps it in the
// broadcast set until it drops.
func EventsHandler(c *gin.Context) {
	role := c.DefaultQuery("role", "staff")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	events.RegisterClient(conn, role)
	utils.InfoLogger.Printf("Events client connected (role=%s)", role)

	defer events.UnregisterClient(conn)
	for {
		// Clients only listen; drain control frames until the peer leaves.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
