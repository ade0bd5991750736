package gamestate

import (
	"context"
	"fmt"

	"kiosk_backend/internal/model"
)

// UpdateState перезаписывает singleton-состояние и рассылает событие экранам.
// Сервер проверяет только принадлежность фазы enum'у - последовательность
// переходов контролируют клиенты киоска (планшет, кнопка, телевизор),
// любой переход между фазами здесь допустим.
// Поля активного игрока и спина перезаписываются ровно тем, что пришло:
// отсутствующие значения их очищают
func (s *serv) UpdateState(ctx context.Context, upd model.GameStateUpdate) (*model.GameState, error) {
	if !model.IsValidState(upd.State) {
		return nil, model.NewValidationError(
			fmt.Sprintf("State is not included in the list: %s", upd.State),
		)
	}

	state := &model.GameState{
		ID:                model.GameStateSingletonID,
		State:             upd.State,
		CurrentPlayerID:   upd.PlayerID,
		CurrentPlayerName: upd.PlayerName,
		CurrentSpinID:     upd.SpinID,
	}

	// Возврат в idle всегда очищает активного игрока и спин
	if upd.State == model.StateIdle {
		state.CurrentPlayerID = nil
		state.CurrentPlayerName = nil
		state.CurrentSpinID = nil
	}

	updated, err := s.repo.UpdateState(ctx, state)
	if err != nil {
		return nil, err
	}

	// Рассылка идет строго после записи; ее неудача не откатывает
	// сохраненное состояние - доставка best-effort
	s.publisher.PublishStateChanged(
		updated.State,
		updated.CurrentPlayerID,
		updated.CurrentPlayerName,
		updated.CurrentSpinID,
	)

	return updated, nil
}
