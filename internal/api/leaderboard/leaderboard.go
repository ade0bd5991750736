package leaderboard

import (
	"net/http"
	"time"

	"kiosk_backend/internal/api/httperr"
	"kiosk_backend/internal/converter"
	"kiosk_backend/internal/service"
	"kiosk_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
}

type Handler struct {
	serv service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Index возвращает дневной лидерборд для экрана ожидания
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	board, err := h.serv.Daily(r.Context(), time.Now())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(board))
}
