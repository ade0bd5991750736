package converter

import (
	dto "kiosk_backend/internal/api/dto/gamestate"
	"kiosk_backend/internal/model"
)

func UpdateRequestToGameStateUpdate(req dto.UpdateRequest) model.GameStateUpdate {
	return model.GameStateUpdate{
		State:      req.State,
		PlayerID:   req.PlayerID,
		PlayerName: req.PlayerName,
		SpinID:     req.SpinID,
	}
}

func ToStateResponse(state *model.GameState) dto.StateResponse {
	return dto.StateResponse{
		State:             state.State,
		CurrentPlayerID:   state.CurrentPlayerID,
		CurrentPlayerName: state.CurrentPlayerName,
		CurrentSpinID:     state.CurrentSpinID,
		UpdatedAt:         state.UpdatedAt,
	}
}
