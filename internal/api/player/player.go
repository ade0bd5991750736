package player

import (
	"net/http"
	"strconv"

	dto "kiosk_backend/internal/api/dto/player"
	"kiosk_backend/internal/api/httperr"
	"kiosk_backend/internal/converter"
	"kiosk_backend/internal/service"
	"kiosk_backend/pkg/req"
	"kiosk_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.PlayerService
}

type Handler struct {
	serv service.PlayerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register регистрирует игрока с планшета
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	player, err := h.serv.Register(r.Context(), converter.RegisterRequestToPlayer(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPlayerResponse(player))
}

// Get возвращает зарегистрированного игрока по ID
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	player, err := h.serv.GetByID(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(player))
}
