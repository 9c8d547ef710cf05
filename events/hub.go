package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/utils"
)

// Event types pushed to staff dashboards.
const (
	EventTicketUpdate  = "ticket_update"
	EventTableUpdate   = "table_update"
	EventSessionUpdate = "session_update"
	EventPaymentUpdate = "payment_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks every connected staff client (cashier, chef, admin) for
// broadcast delivery.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection to the broadcast set with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastTicketUpdate(ticket models.OrderTicket) {
	broadcast(Message{Event: EventTicketUpdate, Data: ticket})
}

func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

func BroadcastSessionUpdate(session models.TableSession) {
	broadcast(Message{Event: EventSessionUpdate, Data: session})
}

func BroadcastPaymentUpdate(payment models.Payment) {
	broadcast(Message{Event: EventPaymentUpdate, Data: payment})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn := range hub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("websocket write failed, dropping client: %v", err)
			}
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
