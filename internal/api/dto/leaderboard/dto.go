package leaderboard

type LeaderboardResponse struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Players []Entry `json:"players"`
}

type Entry struct {
	Rank       int    `json:"rank"`
	PlayerID   int    `json:"player_id"`
	Name       string `json:"name"`
	TotalScore int    `json:"total_score"`
	SpinCount  int    `json:"spin_count"`
	BestSpinID int    `json:"best_spin_id"`
}
