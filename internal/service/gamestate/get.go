package gamestate

import (
	"context"

	"kiosk_backend/internal/model"
)

// Current возвращает текущее состояние сессии,
// лениво создавая его в фазе idle при первом обращении
func (s *serv) Current(ctx context.Context) (*model.GameState, error) {
	return s.repo.GetCurrent(ctx)
}
