package events

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Типы событий канала game_updates
const (
	EventStateChanged = "state_changed"
	EventSpinStarted  = "spin_started"
)

// StateChangedEvent - смена фазы игровой сессии
type StateChangedEvent struct {
	Event      string  `json:"event"`
	State      string  `json:"state"`
	PlayerID   *int    `json:"player_id"`
	PlayerName *string `json:"player_name"`
	SpinID     *int    `json:"spin_id"`
	Timestamp  int64   `json:"timestamp"`
}

// SpinStartedEvent - сигнал нажатия физической кнопки
type SpinStartedEvent struct {
	Event     string `json:"event"`
	Timestamp int64  `json:"timestamp"`
}

// Publisher - широковещательная рассылка событий игровой сессии экранам киоска
type Publisher interface {
	PublishStateChanged(state string, playerID *int, playerName *string, spinID *int)
	PublishSpinStarted()
}

const subscriberBuffer = 16

// Hub - реализация Publisher поверх множества подписчиков в памяти.
// Доставка best-effort: без подтверждений и без повтора прошлых событий,
// опоздавший подписчик должен сам запросить текущее состояние по HTTP
type Hub struct {
	mtx         sync.RWMutex
	subscribers map[string]chan []byte
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan []byte),
	}
}

// Subscribe регистрирует подписчика и возвращает канал его событий.
// Повторная подписка с тем же id закрывает прежний канал
func (h *Hub) Subscribe(id string) <-chan []byte {
	ch := make(chan []byte, subscriberBuffer)

	h.mtx.Lock()
	if old, ok := h.subscribers[id]; ok {
		close(old)
	}
	h.subscribers[id] = ch
	h.mtx.Unlock()

	return ch
}

// Unsubscribe снимает подписку и закрывает канал подписчика
func (h *Hub) Unsubscribe(id string) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	ch, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// SubscriberCount - текущее число подписанных экранов
func (h *Hub) SubscriberCount() int {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) PublishStateChanged(state string, playerID *int, playerName *string, spinID *int) {
	h.broadcast(StateChangedEvent{
		Event:      EventStateChanged,
		State:      state,
		PlayerID:   playerID,
		PlayerName: playerName,
		SpinID:     spinID,
		Timestamp:  time.Now().Unix(),
	})
}

func (h *Hub) PublishSpinStarted() {
	h.broadcast(SpinStartedEvent{
		Event:     EventSpinStarted,
		Timestamp: time.Now().Unix(),
	})
}

// broadcast рассылает событие всем текущим подписчикам, не блокируясь:
// подписчик с переполненным буфером это событие теряет
func (h *Hub) broadcast(event any) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal event: %v", err)
		return
	}

	h.mtx.RLock()
	defer h.mtx.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- data:
		default:
		}
	}
}
