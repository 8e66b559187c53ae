package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMP-BookingGateway/internal/api/handlers"
	"github.com/m04kA/CMP-BookingGateway/internal/api/middleware"
	checkAvailability "github.com/m04kA/CMP-BookingGateway/internal/usecase/check_availability"
)

const (
	msgInvalidCabinID = "ID de cabaña inválido"
	msgMissingCheckIn = "la fecha de llegada es obligatoria"
	msgInvalidDate    = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgCabinNotFound  = "cabaña no encontrada"
	msgInvalidRange   = "la fecha de salida no puede ser anterior a la de llegada"
	msgPastDate       = "no se pueden seleccionar fechas pasadas"
	msgMinimumStay    = "la estadía es más corta que el mínimo de noches"
	msgDateConflict   = "las fechas seleccionadas ya están reservadas"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/availability
// Query params: checkIn (required, YYYY-MM-DD), checkOut (optional, YYYY-MM-DD)
// Без checkOut проверяется одиночная дата: так календарь валидирует
// первый клик до того, как пользователь выберет дату выезда
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем cabinId из URL
	cabinIDStr := vars["cabinId"]
	cabinID, err := strconv.ParseInt(cabinIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/availability - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	// Извлекаем даты из query параметров
	checkInStr := r.URL.Query().Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /cabins/{id}/availability - Missing checkIn")
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}
	checkOutStr := r.URL.Query().Get("checkOut")

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(middleware.OptionalUserID(r), cabinID, checkInStr, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrCabinNotFound):
			h.logger.Warn("GET /cabins/{id}/availability - Cabin not found: cabin_id=%d", cabinID)
			handlers.RespondNotFound(w, msgCabinNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /cabins/{id}/availability - Invalid range: cabin_id=%d", cabinID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrPastDate):
			h.logger.Warn("GET /cabins/{id}/availability - Past date: cabin_id=%d", cabinID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, checkAvailability.ErrMinimumStay):
			h.logger.Warn("GET /cabins/{id}/availability - Below minimum stay: cabin_id=%d", cabinID)
			handlers.RespondBadRequest(w, msgMinimumStay)

		case errors.Is(err, checkAvailability.ErrDateConflict):
			h.logger.Info("GET /cabins/{id}/availability - Date conflict: cabin_id=%d", cabinID)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cabins/{id}/availability - Invalid input: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondBadRequest(w, msgInvalidCabinID)

		default:
			h.logger.Error("GET /cabins/{id}/availability - Failed to check availability: cabin_id=%d, error=%v", cabinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /cabins/{id}/availability - Range available: cabin_id=%d, nights=%d, total=%.2f",
		cabinID, result.PricedNights, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
