package httperr

import (
	"errors"
	"log"
	"net/http"

	"kiosk_backend/internal/model"
	"kiosk_backend/pkg/resp"
)

// Write отображает ошибку сервиса на HTTP-ответ:
// ValidationError - 422 со списком сообщений,
// NotFoundError - 404 с короткой строкой,
// все остальное - 500 без деталей
func Write(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		resp.WriteJSONResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": validationErr.Messages,
		})
		return
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		resp.WriteJSONResponse(w, http.StatusNotFound, map[string]any{
			"error": notFoundErr.Error(),
		})
		return
	}

	log.Printf("internal error: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
