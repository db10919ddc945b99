package ws

// Hub bertanggung jawab untuk:
// - menyimpan koneksi client tampilan jadwal,
// - menerima event dari controller penjadwalan,
// - melakukan broadcast event ke seluruh client yang terhubung.

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client mewakili satu koneksi WebSocket tampilan jadwal.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// BroadcastEvent mengirim event bernama beserta payload ke semua client.
func (h *Hub) BroadcastEvent(event string, data interface{}) {
	pesan, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  data,
	})
	if err != nil {
		log.Printf("Gagal marshal event %s: %v", event, err)
		return
	}
	h.Broadcast <- pesan
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}
