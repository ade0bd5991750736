package player

import (
	"context"

	"kiosk_backend/internal/model"
)

// GetByID возвращает игрока по ID
func (s *serv) GetByID(ctx context.Context, id int) (*model.Player, error) {
	player, err := s.repo.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, model.NewNotFoundError("Player")
	}
	return player, nil
}
