package start_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMP-BookingGateway/internal/api/handlers"
	"github.com/m04kA/CMP-BookingGateway/internal/api/middleware"
	startCheckout "github.com/m04kA/CMP-BookingGateway/internal/usecase/start_checkout"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgCabinNotFound      = "cabaña no encontrada"
	msgInvalidRange       = "la fecha de salida no puede ser anterior a la de llegada"
	msgPastDate           = "no se pueden reservar fechas pasadas"
	msgMinimumStay        = "la estadía es más corta que el mínimo de noches"
	msgDateConflict       = "las fechas seleccionadas ya están reservadas"
)

type Handler struct {
	useCase StartCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase StartCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ValidationErrorResponse тело ответа с ошибками полей формы
type ValidationErrorResponse struct {
	Error  string                     `json:"error"`
	Fields []startCheckout.FieldError `json:"fields"`
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req StartCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /checkout - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verr *startCheckout.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /checkout - Guest validation failed: user_id=%d, fields=%d", userID, len(verr.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  "datos del huésped inválidos",
				Fields: verr.Fields,
			})

		case errors.Is(err, startCheckout.ErrCabinNotFound):
			h.logger.Warn("POST /checkout - Cabin not found: user_id=%d, cabin_id=%d", userID, req.CabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, startCheckout.ErrInvalidDateRange):
			h.logger.Warn("POST /checkout - Invalid range: user_id=%d, cabin_id=%d", userID, req.CabinID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, startCheckout.ErrPastDate):
			h.logger.Warn("POST /checkout - Past date: user_id=%d, cabin_id=%d", userID, req.CabinID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, startCheckout.ErrMinimumStay):
			h.logger.Warn("POST /checkout - Below minimum stay: user_id=%d, cabin_id=%d", userID, req.CabinID)
			handlers.RespondBadRequest(w, msgMinimumStay)

		case errors.Is(err, startCheckout.ErrDateConflict):
			h.logger.Info("POST /checkout - Date conflict: user_id=%d, cabin_id=%d", userID, req.CabinID)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, startCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid input: user_id=%d, cabin_id=%d, error=%v", userID, req.CabinID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /checkout - Failed to start checkout: user_id=%d, cabin_id=%d, error=%v",
				userID, req.CabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	// Сессия в состоянии failed тоже отдается с 201: checkout стартовал,
	// его исход фронт читает из state/reason
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /checkout - Checkout started: session_id=%s, state=%s, user_id=%d, cabin_id=%d",
		result.SessionID, result.State, userID, req.CabinID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
