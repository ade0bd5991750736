package gamestate

import (
	"kiosk_backend/internal/events"
	"kiosk_backend/internal/repository"
	"kiosk_backend/internal/service"
)

type serv struct {
	repo      repository.GameStateRepository
	publisher events.Publisher
}

// NewGameStateService создает сервис состояния игровой сессии
func NewGameStateService(
	repo repository.GameStateRepository,
	publisher events.Publisher,
) service.GameStateService {
	return &serv{
		repo:      repo,
		publisher: publisher,
	}
}
