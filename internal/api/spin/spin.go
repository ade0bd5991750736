package spin

import (
	"net/http"
	"strconv"

	dto "kiosk_backend/internal/api/dto/spin"
	"kiosk_backend/internal/api/httperr"
	"kiosk_backend/internal/converter"
	"kiosk_backend/internal/service"
	"kiosk_backend/pkg/req"
	"kiosk_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.SpinService
}

type Handler struct {
	serv service.SpinService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create создает спин для игрока (вызывается по нажатию физической кнопки)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	spin, err := h.serv.Create(r.Context(), converter.CreateRequestToSpinCreate(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSpinResponse(spin))
}

// Show возвращает спин по ID
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	spin, err := h.serv.GetByID(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(spin))
}

// ApplyBonus записывает множитель бонус-колеса и возвращает обновленный спин.
// Отрицательный множитель отклоняется с 422: колесо выдает только
// неотрицательные значения, отрицательный итоговый счет не имеет смысла
func (h *Handler) ApplyBonus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[dto.ApplyBonusRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	spin, err := h.serv.ApplyBonusMultiplier(r.Context(), id, payload.Multiplier)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(spin))
}
