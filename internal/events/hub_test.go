package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHub_PublishStateChanged_DeliveredToSubscriber(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("tv")

	playerID := 42
	playerName := "Alice"
	hub.PublishStateChanged("ready", &playerID, &playerName, nil)

	select {
	case data := <-ch:
		var event StateChangedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("failed to unmarshal event: %v", err)
		}
		if event.Event != EventStateChanged {
			t.Errorf("event = %q, want %q", event.Event, EventStateChanged)
		}
		if event.State != "ready" {
			t.Errorf("state = %q, want %q", event.State, "ready")
		}
		if event.PlayerID == nil || *event.PlayerID != 42 {
			t.Errorf("player id = %v, want 42", event.PlayerID)
		}
		if event.SpinID != nil {
			t.Errorf("spin id = %v, want nil", event.SpinID)
		}
		if event.Timestamp == 0 {
			t.Error("timestamp must be set")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the event")
	}
}

func TestHub_PublishSpinStarted_AllSubscribers(t *testing.T) {
	hub := NewHub()
	ch1 := hub.Subscribe("tv")
	ch2 := hub.Subscribe("tablet")

	hub.PublishSpinStarted()

	for _, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case data := <-ch:
			var event SpinStartedEvent
			if err := json.Unmarshal(data, &event); err != nil {
				t.Fatalf("failed to unmarshal event: %v", err)
			}
			if event.Event != EventSpinStarted {
				t.Errorf("event = %q, want %q", event.Event, EventSpinStarted)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	// Не должно паниковать и блокироваться
	hub.PublishSpinStarted()
	hub.PublishStateChanged("idle", nil, nil, nil)
}

func TestHub_Unsubscribe_ClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("tv")

	hub.Unsubscribe("tv")

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("channel must be closed after unsubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}

	if hub.SubscriberCount() != 0 {
		t.Errorf("subscriber count = %d, want 0", hub.SubscriberCount())
	}

	// Повторная отписка безопасна
	hub.Unsubscribe("tv")
}

func TestHub_ResubscribeClosesOldChannel(t *testing.T) {
	hub := NewHub()
	old := hub.Subscribe("tv")
	fresh := hub.Subscribe("tv")

	select {
	case _, ok := <-old:
		if ok {
			t.Error("old channel must be closed after resubscribe")
		}
	case <-time.After(time.Second):
		t.Fatal("old channel was not closed")
	}

	if hub.SubscriberCount() != 1 {
		t.Errorf("subscriber count = %d, want 1", hub.SubscriberCount())
	}

	// События идут только в новый канал
	hub.PublishSpinStarted()
	select {
	case data := <-fresh:
		if len(data) == 0 {
			t.Error("empty payload on fresh channel")
		}
	case <-time.After(time.Second):
		t.Fatal("fresh channel did not receive the event")
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Subscribe("slow") // никто не читает

	// Переполняем буфер подписчика - публикация не должна блокироваться
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.PublishSpinStarted()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestHub_LateSubscriberGetsNoBacklog(t *testing.T) {
	hub := NewHub()

	hub.PublishStateChanged("ready", nil, nil, nil)

	// Опоздавший подписчик прошлых событий не получает
	ch := hub.Subscribe("late-tv")
	select {
	case <-ch:
		t.Error("late subscriber must not receive past events")
	case <-time.After(50 * time.Millisecond):
	}
}
