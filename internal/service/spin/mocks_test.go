package spin

import (
	"context"
	"time"

	"kiosk_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// mockPlayerRepo - мок-реализация PlayerRepository для тестов
type mockPlayerRepo struct {
	player *model.Player
	err    error
}

func (m *mockPlayerRepo) CreatePlayer(ctx context.Context, player *model.Player) (int, error) {
	return 0, nil // Не используется в этих тестах
}

func (m *mockPlayerRepo) GetPlayerByID(ctx context.Context, id int) (*model.Player, error) {
	return m.player, m.err
}

// mockSpinRepo - мок-реализация SpinRepository для тестов
type mockSpinRepo struct {
	created     []*model.Spin
	getResult   *model.Spin
	amendResult *model.Spin
	err         error
}

func (m *mockSpinRepo) CreateSpin(ctx context.Context, spin *model.Spin) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	spin.ID = len(m.created) + 1
	spin.CreatedAt = time.Now()
	m.created = append(m.created, spin)
	return spin.ID, nil
}

func (m *mockSpinRepo) GetSpinByID(ctx context.Context, id int) (*model.Spin, error) {
	return m.getResult, m.err
}

func (m *mockSpinRepo) UpdateBonusMultiplier(ctx context.Context, id int, multiplier float64) (*model.Spin, error) {
	return m.amendResult, m.err
}

func (m *mockSpinRepo) DailyScores(ctx context.Context, from, to time.Time) ([]model.PlayerDailyScore, error) {
	return nil, nil // Не используется в этих тестах
}

// mockTxManager просто выполняет функцию без настоящей транзакции
type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
