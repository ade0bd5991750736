package service

import (
	"context"
	"time"

	"kiosk_backend/internal/model"
)

type PlayerService interface {
	Register(ctx context.Context, player *model.Player) (*model.Player, error)
	GetByID(ctx context.Context, id int) (*model.Player, error)
}

type SpinService interface {
	Create(ctx context.Context, req model.SpinCreate) (*model.Spin, error)
	GetByID(ctx context.Context, id int) (*model.Spin, error)
	ApplyBonusMultiplier(ctx context.Context, id int, multiplier float64) (*model.Spin, error)
}

type GameStateService interface {
	Current(ctx context.Context) (*model.GameState, error)
	UpdateState(ctx context.Context, upd model.GameStateUpdate) (*model.GameState, error)
}

type LeaderboardService interface {
	Daily(ctx context.Context, date time.Time) (*model.Leaderboard, error)
}
