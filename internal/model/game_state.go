package model

import "time"

// Фазы игровой сессии киоска
const (
	StateIdle       = "idle"
	StateReady      = "ready"
	StateSpinning   = "spinning"
	StateBonusWheel = "bonus_wheel" // зарезервирована, переходов в нее пока нет
	StateResults    = "results"
)

// GameStateSingletonID - фиксированный идентификатор singleton-записи состояния
const GameStateSingletonID = 1

var validStates = map[string]struct{}{
	StateIdle:       {},
	StateReady:      {},
	StateSpinning:   {},
	StateBonusWheel: {},
	StateResults:    {},
}

// IsValidState проверяет принадлежность фазы enum'у из пяти значений
func IsValidState(state string) bool {
	_, ok := validStates[state]
	return ok
}

// GameState - единственная на весь киоск запись текущей фазы игры.
// Создается лениво при первом обращении в фазе idle и никогда не удаляется
type GameState struct {
	ID                int
	State             string
	CurrentPlayerID   *int
	CurrentPlayerName *string
	CurrentSpinID     *int
	UpdatedAt         time.Time
}

// GameStateUpdate - запрос на смену фазы.
// Поля активного игрока и спина перезаписываются ровно тем, что пришло
type GameStateUpdate struct {
	State      string
	PlayerID   *int
	PlayerName *string
	SpinID     *int
}
