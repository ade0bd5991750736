package spin

import (
	"kiosk_backend/internal/repository"
	"kiosk_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo       repository.SpinRepository
	playerRepo repository.PlayerRepository
	generator  *Generator
	txManager  trm.Manager
}

// NewSpinService создает сервис спинов
func NewSpinService(
	repo repository.SpinRepository,
	playerRepo repository.PlayerRepository,
	generator *Generator,
	txManager trm.Manager,
) service.SpinService {
	return &serv{
		repo:       repo,
		playerRepo: playerRepo,
		generator:  generator,
		txManager:  txManager,
	}
}
