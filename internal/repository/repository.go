package repository

import (
	"context"
	"time"

	"kiosk_backend/internal/model"
)

type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *model.Player) (id int, err error)
	GetPlayerByID(ctx context.Context, id int) (*model.Player, error)
}

type SpinRepository interface {
	CreateSpin(ctx context.Context, spin *model.Spin) (id int, err error)
	GetSpinByID(ctx context.Context, id int) (*model.Spin, error)
	UpdateBonusMultiplier(ctx context.Context, id int, multiplier float64) (*model.Spin, error)

	// DailyScores - агрегат по игрокам за окно [from, to):
	// сумма total_score, число спинов, максимальный id спина.
	// Отсортировано по убыванию суммы, при равенстве - по возрастанию id игрока
	DailyScores(ctx context.Context, from, to time.Time) ([]model.PlayerDailyScore, error)
}

type GameStateRepository interface {
	GetCurrent(ctx context.Context) (*model.GameState, error)
	UpdateState(ctx context.Context, state *model.GameState) (*model.GameState, error)
}
