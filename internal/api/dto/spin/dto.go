package spin

import "time"

type CreateRequest struct {
	PlayerID int `json:"player_id"` // Владелец спина

	// Необязательные явные значения барабанов (отладочная панель QA).
	// Если не заданы, значения разыгрываются генератором
	ZillowValue    *int `json:"zillow_value,omitempty"`
	RealtorValue   *int `json:"realtor_value,omitempty"`
	HomesValue     *int `json:"homes_value,omitempty"`
	GoogleValue    *int `json:"google_value,omitempty"`
	SmartSignValue *int `json:"smart_sign_value,omitempty"`
}

type ApplyBonusRequest struct {
	Multiplier float64 `json:"multiplier"` // Неотрицательный множитель бонус-колеса
}

type SpinResponse struct {
	ID              int       `json:"id"`
	PlayerID        int       `json:"player_id"`
	ZillowValue     int       `json:"zillow_value"`
	RealtorValue    int       `json:"realtor_value"`
	HomesValue      int       `json:"homes_value"`
	GoogleValue     int       `json:"google_value"`
	SmartSignValue  int       `json:"smart_sign_value"`
	BananaCount     int       `json:"banana_count"`
	BaseScore       int       `json:"base_score"`
	BonusMultiplier *float64  `json:"bonus_multiplier"`
	TotalScore      int       `json:"total_score"`
	BonusTriggered  bool      `json:"bonus_triggered"`
	CreatedAt       time.Time `json:"created_at"`
}
