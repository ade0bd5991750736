package player

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kiosk_backend/internal/model"
)

// mockPlayerRepo - мок-реализация PlayerRepository для тестов
type mockPlayerRepo struct {
	created []*model.Player
	err     error
}

func (m *mockPlayerRepo) CreatePlayer(ctx context.Context, player *model.Player) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	player.ID = len(m.created) + 1
	m.created = append(m.created, player)
	return player.ID, nil
}

func (m *mockPlayerRepo) GetPlayerByID(ctx context.Context, id int) (*model.Player, error) {
	for _, p := range m.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func TestRegister_Success(t *testing.T) {
	repo := &mockPlayerRepo{}
	s := NewPlayerService(repo)

	player, err := s.Register(context.Background(), &model.Player{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+1 555 0100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player.ID == 0 {
		t.Error("player id must be assigned")
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d players, want 1", len(repo.created))
	}
}

func TestRegister_MultibyteNameCountedInRunes(t *testing.T) {
	// Лимит имени - 100 символов, а не байт:
	// 60 кириллических букв занимают 120 байт, но это валидное имя
	repo := &mockPlayerRepo{}
	s := NewPlayerService(repo)

	_, err := s.Register(context.Background(), &model.Player{
		Name:  strings.Repeat("я", 60),
		Email: "ya@example.com",
		Phone: "+7 900 000 0000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d players, want 1", len(repo.created))
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name        string
		player      model.Player
		wantMessage string
	}{
		{
			name:        "пустое имя",
			player:      model.Player{Email: "a@b.com", Phone: "1"},
			wantMessage: "Name can't be blank",
		},
		{
			name: "слишком длинное имя",
			player: model.Player{
				Name:  strings.Repeat("a", 101),
				Email: "a@b.com",
				Phone: "1",
			},
			wantMessage: "Name is too long",
		},
		{
			name: "слишком длинное имя в кириллице",
			player: model.Player{
				Name:  strings.Repeat("я", 101),
				Email: "a@b.com",
				Phone: "1",
			},
			wantMessage: "Name is too long",
		},
		{
			name:        "пустой email",
			player:      model.Player{Name: "Alice", Phone: "1"},
			wantMessage: "Email can't be blank",
		},
		{
			name:        "невалидный email",
			player:      model.Player{Name: "Alice", Email: "not-an-email", Phone: "1"},
			wantMessage: "Email is invalid",
		},
		{
			name:        "пустой телефон",
			player:      model.Player{Name: "Alice", Email: "a@b.com"},
			wantMessage: "Phone can't be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPlayerRepo{}
			s := NewPlayerService(repo)

			_, err := s.Register(context.Background(), &tt.player)

			var validationErr *model.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			found := false
			for _, msg := range validationErr.Messages {
				if strings.Contains(msg, tt.wantMessage) {
					found = true
				}
			}
			if !found {
				t.Errorf("messages %v do not contain %q", validationErr.Messages, tt.wantMessage)
			}
			if len(repo.created) != 0 {
				t.Errorf("created %d players on invalid input, want 0", len(repo.created))
			}
		})
	}
}

func TestRegister_CollectsAllMessages(t *testing.T) {
	repo := &mockPlayerRepo{}
	s := NewPlayerService(repo)

	_, err := s.Register(context.Background(), &model.Player{})

	var validationErr *model.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Messages) != 3 {
		t.Errorf("got %d messages, want 3 (name, email, phone): %v",
			len(validationErr.Messages), validationErr.Messages)
	}
}
