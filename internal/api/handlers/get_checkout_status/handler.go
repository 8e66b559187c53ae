package get_checkout_status

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

// Handle GET /api/v1/checkout/{sessionId}
// Фронт опрашивает эту ручку, пока State не станет терминальным
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	sess, err := h.service.Status(sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrSessionNotFound):
			h.logger.Warn("GET /checkout/{id} - Session not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, checkout.ErrAccessDenied):
			h.logger.Warn("GET /checkout/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /checkout/{id} - Failed to get status: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(sess))
}
