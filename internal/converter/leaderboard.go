package converter

import (
	dto "kiosk_backend/internal/api/dto/leaderboard"
	"kiosk_backend/internal/model"
)

func ToLeaderboardResponse(board *model.Leaderboard) dto.LeaderboardResponse {
	players := make([]dto.Entry, len(board.Players))
	for i, entry := range board.Players {
		players[i] = dto.Entry{
			Rank:       entry.Rank,
			PlayerID:   entry.PlayerID,
			Name:       entry.Name,
			TotalScore: entry.TotalScore,
			SpinCount:  entry.SpinCount,
			BestSpinID: entry.BestSpinID,
		}
	}

	return dto.LeaderboardResponse{
		Date:    board.Date.Format("2006-01-02"),
		Players: players,
	}
}
