package spin

import (
	"context"

	"kiosk_backend/internal/model"
)

// ApplyBonusMultiplier записывает множитель бонус-колеса и атомарно
// пересчитывает total_score. Допустим любой неотрицательный множитель,
// включая 0 (обнуляет счет). Повторный вызов просто перезаписывает
// множитель заново
func (s *serv) ApplyBonusMultiplier(ctx context.Context, id int, multiplier float64) (*model.Spin, error) {
	if multiplier < 0 {
		return nil, model.NewValidationError("multiplier must be greater than or equal to 0")
	}

	spin, err := s.repo.UpdateBonusMultiplier(ctx, id, multiplier)
	if err != nil {
		return nil, err
	}
	if spin == nil {
		return nil, model.NewNotFoundError("Spin")
	}

	return spin, nil
}
