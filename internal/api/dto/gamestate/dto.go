package gamestate

import "time"

type UpdateRequest struct {
	State      string  `json:"state"`       // Одна из пяти фаз
	PlayerID   *int    `json:"player_id"`   // Активный игрок (отсутствие очищает поле)
	PlayerName *string `json:"player_name"` // Имя активного игрока
	SpinID     *int    `json:"spin_id"`     // Активный спин
}

type StateResponse struct {
	State             string    `json:"state"`
	CurrentPlayerID   *int      `json:"current_player_id"`
	CurrentPlayerName *string   `json:"current_player_name"`
	CurrentSpinID     *int      `json:"current_spin_id"`
	UpdatedAt         time.Time `json:"updated_at"`
}
