package spin

import (
	"context"
	"fmt"
	"math"

	"kiosk_backend/internal/model"
)

// Имена полей барабанов для сообщений валидации (в порядке model.ReelValues.Values)
var reelFieldNames = [5]string{
	"zillow_value", "realtor_value", "homes_value", "google_value", "smart_sign_value",
}

// Create создает спин для игрока. Если значения барабанов не переданы,
// они разыгрываются генератором. Проверка игрока и вставка идут в одной
// транзакции - частично сохраненных спинов не бывает
func (s *serv) Create(ctx context.Context, req model.SpinCreate) (*model.Spin, error) {
	spin := &model.Spin{PlayerID: req.PlayerID}

	if req.Reels != nil {
		spin.Reels = *req.Reels
	} else {
		spin.Reels = s.generator.GenerateAll()
	}

	err := validateReels(spin.Reels)
	if err != nil {
		return nil, err
	}

	calculateScores(spin)

	// Начало транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Убеждаемся, что игрок существует
		player, err := s.playerRepo.GetPlayerByID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if player == nil {
			return model.NewNotFoundError("Player")
		}

		// 2. Сохраняем спин
		_, err = s.repo.CreateSpin(txCtx, spin)
		return err
	})
	if err != nil {
		return nil, err
	}

	return spin, nil
}

// validateReels проверяет, что все пять значений барабанов строго положительны
func validateReels(reels model.ReelValues) error {
	var messages []string
	for i, v := range reels.Values() {
		if v <= 0 {
			messages = append(messages, fmt.Sprintf("%s must be greater than 0", reelFieldNames[i]))
		}
	}
	if len(messages) > 0 {
		return model.NewValidationError(messages...)
	}
	return nil
}

// calculateScores заполняет производные поля спина:
// banana_count, base_score и total_score = floor(base_score * множитель),
// множитель по умолчанию 1.0
func calculateScores(spin *model.Spin) {
	spin.BananaCount = 0
	spin.BaseScore = 0
	for _, v := range spin.Reels.Values() {
		if v == model.BananaValue {
			spin.BananaCount++
		}
		spin.BaseScore += v
	}

	multiplier := 1.0
	if spin.BonusMultiplier != nil {
		multiplier = *spin.BonusMultiplier
	}
	spin.TotalScore = int(math.Floor(float64(spin.BaseScore) * multiplier))
}
