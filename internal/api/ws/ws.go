package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"kiosk_backend/internal/events"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Таймаут записи в соединение
	writeWait = 10 * time.Second

	// Таймаут ожидания pong от клиента
	pongWait = 60 * time.Second

	// Период отправки ping
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Киоск работает в доверенной сети, origin не проверяем
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientMessage - входящее сообщение подписчика канала.
// Единственное поддерживаемое действие - button_pressed от GPIO-демона
type clientMessage struct {
	Action string `json:"action"`
}

const actionButtonPressed = "button_pressed"

type HandlerDeps struct {
	Hub *events.Hub
}

type Handler struct {
	hub *events.Hub
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{hub: deps.Hub}
}

// Serve апгрейдит соединение и подключает экран к каналу game_updates
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	id := uuid.New().String()
	eventsCh := h.hub.Subscribe(id)

	log.Printf("display %s connected", id)

	go h.readPump(conn, id)
	go h.writePump(conn, eventsCh)
}

// readPump читает входящие сообщения подписчика.
// Действие button_pressed транслируется всем экранам как событие spin_started
func (h *Handler) readPump(conn *websocket.Conn, id string) {
	defer func() {
		h.hub.Unsubscribe(id)
		conn.Close()
		log.Printf("display %s disconnected", id)
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}

		if msg.Action == actionButtonPressed {
			h.hub.PublishSpinStarted()
		}
	}
}

// writePump пишет события канала и пинги в соединение.
// Закрытие канала подписки завершает соединение
func (h *Handler) writePump(conn *websocket.Conn, eventsCh <-chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case data, ok := <-eventsCh:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
