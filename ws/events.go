package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/cecepns/nature-coffee/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is one frame pushed to connected admin dashboards.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// EventHub fans server-side events out to every connected admin client.
// The stream is write-only: frames sent by clients are read and dropped.
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *EventHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishReservation implements services.ReservationPublisher. The send
// never blocks the request path; with no hub goroutine draining the
// channel the event is dropped.
func (h *EventHub) PublishReservation(res *entity.Reservation) {
	select {
	case h.broadcast <- Event{Type: "reservation.created", Data: res}:
	default:
		log.Println("ws event dropped: broadcast buffer full")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/events
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	if name := utils.CurrentUsername(c); name != "" {
		log.Printf("admin %s connected to event stream", name)
	}
	h.register <- conn
	go h.drain(conn)
}

// drain keeps the connection's read side alive and unregisters on error.
func (h *EventHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
