package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kiosk_backend/internal/model"
)

// mockSpinRepo - мок-реализация SpinRepository для тестов лидерборда.
// Возвращает заранее заданные агрегаты и запоминает границы окна
type mockSpinRepo struct {
	scores   []model.PlayerDailyScore
	err      error
	lastFrom time.Time
	lastTo   time.Time
}

func (m *mockSpinRepo) CreateSpin(ctx context.Context, spin *model.Spin) (int, error) {
	return 0, nil // Не используется в этих тестах
}

func (m *mockSpinRepo) GetSpinByID(ctx context.Context, id int) (*model.Spin, error) {
	return nil, nil // Не используется в этих тестах
}

func (m *mockSpinRepo) UpdateBonusMultiplier(ctx context.Context, id int, multiplier float64) (*model.Spin, error) {
	return nil, nil // Не используется в этих тестах
}

func (m *mockSpinRepo) DailyScores(ctx context.Context, from, to time.Time) ([]model.PlayerDailyScore, error) {
	m.lastFrom = from
	m.lastTo = to
	return m.scores, m.err
}

func TestDaily_RanksByScore(t *testing.T) {
	// Репозиторий уже отдает строки по убыванию суммы - как настоящий SQL-агрегат
	repo := &mockSpinRepo{scores: []model.PlayerDailyScore{
		{PlayerID: 2, Name: "Bob", TotalScore: 10_000_000, SpinCount: 1, BestSpinID: 5},
		{PlayerID: 1, Name: "Alice", TotalScore: 5_000_000, SpinCount: 1, BestSpinID: 3},
	}}
	s := NewLeaderboardService(repo, 10)

	board, err := s.Daily(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Players) != 2 {
		t.Fatalf("got %d entries, want 2", len(board.Players))
	}
	if board.Players[0].Rank != 1 || board.Players[0].Name != "Bob" || board.Players[0].TotalScore != 10_000_000 {
		t.Errorf("entry 0 = %+v, want rank 1 Bob 10000000", board.Players[0])
	}
	if board.Players[1].Rank != 2 || board.Players[1].Name != "Alice" || board.Players[1].TotalScore != 5_000_000 {
		t.Errorf("entry 1 = %+v, want rank 2 Alice 5000000", board.Players[1])
	}
}

func TestDaily_TruncatesToSize(t *testing.T) {
	var scores []model.PlayerDailyScore
	for i := 1; i <= 11; i++ {
		scores = append(scores, model.PlayerDailyScore{
			PlayerID:   i,
			Name:       fmt.Sprintf("Player %d", i),
			TotalScore: 12_000_000 - i*1_000_000,
			SpinCount:  1,
			BestSpinID: i,
		})
	}
	repo := &mockSpinRepo{scores: scores}
	s := NewLeaderboardService(repo, 10)

	board, err := s.Daily(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(board.Players) != 10 {
		t.Errorf("got %d entries, want 10", len(board.Players))
	}
	if board.Players[9].Rank != 10 {
		t.Errorf("last rank = %d, want 10", board.Players[9].Rank)
	}
}

func TestDaily_WindowIsCalendarDay(t *testing.T) {
	repo := &mockSpinRepo{}
	s := NewLeaderboardService(repo, 10)

	date := time.Date(2025, 11, 7, 15, 42, 11, 0, time.Local)
	board, err := s.Daily(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2025, 11, 7, 0, 0, 0, 0, time.Local)
	wantTo := time.Date(2025, 11, 8, 0, 0, 0, 0, time.Local)
	if !repo.lastFrom.Equal(wantFrom) {
		t.Errorf("window start = %v, want %v", repo.lastFrom, wantFrom)
	}
	if !repo.lastTo.Equal(wantTo) {
		t.Errorf("window end = %v, want %v", repo.lastTo, wantTo)
	}
	if !board.Date.Equal(wantFrom) {
		t.Errorf("board date = %v, want %v", board.Date, wantFrom)
	}
}

func TestDaily_EmptyDay(t *testing.T) {
	repo := &mockSpinRepo{}
	s := NewLeaderboardService(repo, 10)

	board, err := s.Daily(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Players) != 0 {
		t.Errorf("got %d entries, want 0", len(board.Players))
	}
}
