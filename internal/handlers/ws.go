package handlers

import (
	"database/sql"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/IM-Mukesh/community-forum/internal/middleware"
)

// Message is the wire format pushed to connected browsers. A
// "revalidate" message tells the client the data behind a path changed
// and its view of it is stale.
type Message struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// Client represents one websocket connection.
type Client struct {
	userID string
	conn   *websocket.Conn
	send   chan Message
}

// Hub maintains active clients and fans out revalidation signals. It
// satisfies forum.Revalidator so the mutation layer can notify browsers
// without knowing about websockets.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*Client]struct{}
	broadcast chan Message
	log       *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan Message, 64),
		log:       log,
	}
}

// Revalidate queues a stale-path notice for every connected client.
func (h *Hub) Revalidate(path string) {
	select {
	case h.broadcast <- Message{Type: "revalidate", Path: path}:
	default:
		// drop if broadcast channel is full to avoid blocking mutations
	}
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// Run listens on the broadcast channel and dispatches messages to
// clients safely.
func (h *Hub) Run() {
	for msg := range h.broadcast {
		h.mu.RLock()
		clients := make([]*Client, 0, len(h.clients))
		for c := range h.clients {
			clients = append(clients, c)
		}
		h.mu.RUnlock()

		for _, c := range clients {
			select {
			case c.send <- msg:
			default:
				// drop if client's send buffer is full
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS handles websocket connections.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, db *sql.DB) {
	userID, err := middleware.GetUserIDFromSession(r, db)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	client := &Client{userID: userID, conn: conn, send: make(chan Message, 16)}
	h.addClient(client)
	h.log.Debug("ws client connected", zap.String("user_id", userID))

	go h.writerLoop(client)
	h.readerLoop(client)
}

func (h *Hub) writerLoop(c *Client) {
	ticker := time.NewTicker(25 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readerLoop drains the connection so pongs and close frames are
// processed. Clients never send application messages.
func (h *Hub) readerLoop(c *Client) {
	defer func() {
		h.removeClient(c)
		h.log.Debug("ws client disconnected", zap.String("user_id", c.userID))
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
