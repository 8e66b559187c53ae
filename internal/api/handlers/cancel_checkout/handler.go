package cancel_checkout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMP-BookingGateway/internal/api/handlers"
	"github.com/m04kA/CMP-BookingGateway/internal/api/middleware"
	"github.com/m04kA/CMP-BookingGateway/internal/service/checkout"
)

const (
	msgSessionNotFound = "sesión de pago no encontrada"
	msgAccessDenied    = "la sesión pertenece a otro usuario"
	msgInProgress      = "el pago está en curso, no se puede descartar la sesión"
)

type Handler struct {
	service CheckoutService
	logger  Logger
}

func NewHandler(service CheckoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/checkout/{sessionId}
// Удаляет только терминальные сессии; пока идет опрос платежа,
// сессию удалить нельзя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Cancel(sessionID, userID); err != nil {
		switch {
		case errors.Is(err, checkout.ErrSessionNotFound):
			h.logger.Warn("DELETE /checkout/{id} - Session not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, checkout.ErrAccessDenied):
			h.logger.Warn("DELETE /checkout/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, checkout.ErrCheckoutInProgress):
			h.logger.Warn("DELETE /checkout/{id} - Session still in progress: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondConflict(w, msgInProgress)

		default:
			h.logger.Error("DELETE /checkout/{id} - Failed to cancel: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /checkout/{id} - Session discarded: session_id=%s, user_id=%d", sessionID, userID)
	w.WriteHeader(http.StatusNoContent)
}
