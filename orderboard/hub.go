// Package orderboard menyiarkan perubahan order ke papan antrean dapur
// dan kasir lewat websocket, supaya klien tidak perlu polling.
package orderboard

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/aldifirmansyah/burgerin-app/models"
)

const (
	EventOrderCreated = "order_created"
	EventOrderUpdate  = "order_update"
	EventStockUpdate  = "stock_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var boardHub = hub{
	clients: make(map[*websocket.Conn]struct{}),
}

func RegisterClient(conn *websocket.Conn) {
	boardHub.mutex.Lock()
	defer boardHub.mutex.Unlock()
	boardHub.clients[conn] = struct{}{}
}

func UnregisterClient(conn *websocket.Conn) {
	boardHub.mutex.Lock()
	defer boardHub.mutex.Unlock()
	delete(boardHub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated -> order baru masuk antrean
func BroadcastOrderCreated(order *models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdate -> status order berubah
func BroadcastOrderUpdate(order *models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastStockUpdate -> stok menu berubah (restock / koreksi manual)
func BroadcastStockUpdate(menu *models.Menu) {
	broadcast(Message{Event: EventStockUpdate, Data: menu})
}

func broadcast(msg Message) {
	boardHub.mutex.Lock()
	defer boardHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("orderboard: gagal marshal pesan: %v", err)
		return
	}

	for conn := range boardHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("orderboard: gagal kirim ke client: %v", err)
		}
	}
}
