package player

import (
	"kiosk_backend/internal/repository"
	"kiosk_backend/internal/service"
)

type serv struct {
	repo repository.PlayerRepository
}

// NewPlayerService создает сервис регистрации игроков
func NewPlayerService(repo repository.PlayerRepository) service.PlayerService {
	return &serv{
		repo: repo,
	}
}
