package converter

import (
	dto "kiosk_backend/internal/api/dto/player"
	"kiosk_backend/internal/model"
)

func RegisterRequestToPlayer(req dto.RegisterRequest) *model.Player {
	return &model.Player{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
}

func ToPlayerResponse(player *model.Player) dto.PlayerResponse {
	return dto.PlayerResponse{
		ID:        player.ID,
		Name:      player.Name,
		Email:     player.Email,
		Phone:     player.Phone,
		CreatedAt: player.CreatedAt,
	}
}
