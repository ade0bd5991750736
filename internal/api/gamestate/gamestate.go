package gamestate

import (
	"net/http"

	dto "kiosk_backend/internal/api/dto/gamestate"
	"kiosk_backend/internal/api/httperr"
	"kiosk_backend/internal/converter"
	"kiosk_backend/internal/service"
	"kiosk_backend/pkg/req"
	"kiosk_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameStateService
}

type Handler struct {
	serv service.GameStateService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Show возвращает текущее состояние сессии.
// Опоздавший к событиям экран получает актуальную фазу отсюда
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.Current(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}

// Update переводит сессию в новую фазу и рассылает событие экранам
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	state, err := h.serv.UpdateState(r.Context(), converter.UpdateRequestToGameStateUpdate(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}
