package model

import "time"

// Player - зарегистрированный на планшете игрок.
// После регистрации запись не изменяется, редактирования нет
type Player struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
