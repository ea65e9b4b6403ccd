package services

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"timeline/models"
)

// Hub fans committed room snapshots out to every websocket subscribed to a
// room code. Clients are read-only observers: the server is the sole writer,
// and every broadcast carries the full client-safe state so a late or
// reconnecting client converges on the next message.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

type Client struct {
	hub      *Hub
	id       string
	socket   *websocket.Conn
	send     chan []byte
	roomCode string
	playerID string
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("client %s registered for room %s (player %s)", client.id, client.roomCode, client.playerID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("client %s unregistered from room %s", client.id, client.roomCode)
			}
			h.mutex.Unlock()
		}
	}
}

// BroadcastRoomState pushes the client-safe projection of a room to every
// socket watching its code. Wired as a store listener, so every committed
// write reaches subscribers.
func (h *Hub) BroadcastRoomState(room *models.Room) {
	h.BroadcastToRoom(room.Code, "room_update", ProjectGameState(room))
}

func (h *Hub) BroadcastToRoom(roomCode, messageType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		log.Printf("marshaling %s message: %v", messageType, err)
		return
	}

	h.mutex.Lock()
	for client := range h.clients {
		if !strings.EqualFold(client.roomCode, roomCode) {
			continue
		}
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
	h.mutex.Unlock()
}

// RegisterClient attaches a websocket connection to a room code and starts
// its pumps.
func (h *Hub) RegisterClient(conn *websocket.Conn, roomCode, playerID string) *Client {
	client := &Client{
		hub:      h,
		id:       uuid.NewString(),
		socket:   conn,
		send:     make(chan []byte, 256),
		roomCode: strings.ToUpper(roomCode),
		playerID: playerID,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// ConnectedPlayers lists the player ids currently watching a room.
func (h *Hub) ConnectedPlayers(roomCode string) []string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	var ids []string
	for client := range h.clients {
		if strings.EqualFold(client.roomCode, roomCode) {
			ids = append(ids, client.playerID)
		}
	}
	return ids
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		c.socket.Close()
	}()

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("unmarshaling client message: %v", err)
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	defer c.socket.Close()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "ping":
		data, _ := json.Marshal(Message{Type: "pong", Payload: "pong"})
		c.send <- data
	default:
		// Clients are observers; state requests are served over HTTP and
		// every commit is pushed, so there is nothing else to handle.
		log.Printf("unknown message type %q from player %s in room %s", msg.Type, c.playerID, c.roomCode)
	}
}
