package converter

import (
	dto "kiosk_backend/internal/api/dto/spin"
	"kiosk_backend/internal/model"
)

func CreateRequestToSpinCreate(req dto.CreateRequest) model.SpinCreate {
	create := model.SpinCreate{
		PlayerID: req.PlayerID,
	}

	// Если хотя бы одно значение барабана задано явно, генератор не используется:
	// незаданные барабаны останутся нулевыми и не пройдут валидацию
	if req.ZillowValue != nil || req.RealtorValue != nil || req.HomesValue != nil ||
		req.GoogleValue != nil || req.SmartSignValue != nil {
		reels := model.ReelValues{}
		if req.ZillowValue != nil {
			reels.Zillow = *req.ZillowValue
		}
		if req.RealtorValue != nil {
			reels.Realtor = *req.RealtorValue
		}
		if req.HomesValue != nil {
			reels.Homes = *req.HomesValue
		}
		if req.GoogleValue != nil {
			reels.Google = *req.GoogleValue
		}
		if req.SmartSignValue != nil {
			reels.SmartSign = *req.SmartSignValue
		}
		create.Reels = &reels
	}

	return create
}

func ToSpinResponse(spin *model.Spin) dto.SpinResponse {
	return dto.SpinResponse{
		ID:              spin.ID,
		PlayerID:        spin.PlayerID,
		ZillowValue:     spin.Reels.Zillow,
		RealtorValue:    spin.Reels.Realtor,
		HomesValue:      spin.Reels.Homes,
		GoogleValue:     spin.Reels.Google,
		SmartSignValue:  spin.Reels.SmartSign,
		BananaCount:     spin.BananaCount,
		BaseScore:       spin.BaseScore,
		BonusMultiplier: spin.BonusMultiplier,
		TotalScore:      spin.TotalScore,
		BonusTriggered:  spin.BonusTriggered(),
		CreatedAt:       spin.CreatedAt,
	}
}
