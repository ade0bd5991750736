package leaderboard

import (
	"context"
	"time"

	"kiosk_backend/internal/model"
)

// Daily строит лидерборд за календарный день даты date:
// спины с локальной полуночи до следующей, суммарный total_score по игрокам,
// плотные ранги с единицы, не более size строк.
// Игроки без спинов за день в выдачу не попадают.
// При равенстве очков порядок детерминирован - по возрастанию id игрока
func (s *serv) Daily(ctx context.Context, date time.Time) (*model.Leaderboard, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)

	scores, err := s.spinRepo.DailyScores(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if len(scores) > s.size {
		scores = scores[:s.size]
	}

	entries := make([]model.LeaderboardEntry, len(scores))
	for i, score := range scores {
		entries[i] = model.LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   score.PlayerID,
			Name:       score.Name,
			TotalScore: score.TotalScore,
			SpinCount:  score.SpinCount,
			BestSpinID: score.BestSpinID,
		}
	}

	return &model.Leaderboard{
		Date:    from,
		Players: entries,
	}, nil
}
