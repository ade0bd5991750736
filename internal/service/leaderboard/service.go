package leaderboard

import (
	"kiosk_backend/internal/repository"
	"kiosk_backend/internal/service"
)

type serv struct {
	spinRepo repository.SpinRepository
	size     int
}

// NewLeaderboardService создает сервис дневного лидерборда.
// size - максимальное число строк в выдаче
func NewLeaderboardService(spinRepo repository.SpinRepository, size int) service.LeaderboardService {
	return &serv{
		spinRepo: spinRepo,
		size:     size,
	}
}
