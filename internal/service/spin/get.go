package spin

import (
	"context"

	"kiosk_backend/internal/model"
)

// GetByID возвращает спин по ID
func (s *serv) GetByID(ctx context.Context, id int) (*model.Spin, error) {
	spin, err := s.repo.GetSpinByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if spin == nil {
		return nil, model.NewNotFoundError("Spin")
	}
	return spin, nil
}
