package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeed pushes every completed order to connected websocket clients.
type OrderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{clients: make(map[*websocket.Conn]bool)}
}

// GET /orders/ws
func (f *OrderFeed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.mu.Lock()
				delete(f.clients, conn)
				f.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast sends v as JSON to every connected client. Clients that fail
// to receive are dropped.
func (f *OrderFeed) Broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
