package model

import "time"

// PlayerDailyScore - агрегированная строка по игроку за дневное окно
type PlayerDailyScore struct {
	PlayerID   int
	Name       string
	TotalScore int
	SpinCount  int
	BestSpinID int
}

// LeaderboardEntry - строка дневного лидерборда (вычисляется, не хранится)
type LeaderboardEntry struct {
	Rank       int
	PlayerID   int
	Name       string
	TotalScore int
	SpinCount  int
	BestSpinID int
}

// Leaderboard - дневной лидерборд для экрана ожидания
type Leaderboard struct {
	Date    time.Time
	Players []LeaderboardEntry
}
