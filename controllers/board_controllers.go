package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/aldifirmansyah/burgerin-app/orderboard"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

var boardUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderBoardHandler -> websocket papan antrean; client hanya menerima event.
func OrderBoardHandler(c *gin.Context) {
	conn, err := boardUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("orderboard upgrade gagal: %v", err)
		return
	}

	orderboard.RegisterClient(conn)

	go func() {
		defer orderboard.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
