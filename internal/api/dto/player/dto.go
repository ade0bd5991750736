package player

import "time"

type RegisterRequest struct {
	Name  string `json:"name"`  // Имя игрока (1-100 символов)
	Email string `json:"email"` // Email (обязателен, проверяется формат)
	Phone string `json:"phone"` // Телефон (обязателен, свободный формат)
}

type PlayerResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
