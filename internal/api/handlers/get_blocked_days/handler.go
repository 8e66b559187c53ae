package get_blocked_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMP-BookingGateway/internal/api/handlers"
	getBlockedDays "github.com/m04kA/CMP-BookingGateway/internal/usecase/get_blocked_days"
)

const (
	msgInvalidCabinID = "ID de cabaña inválido"
)

type Handler struct {
	useCase GetBlockedDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetBlockedDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cabins/{cabinId}/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем cabinId из URL
	cabinIDStr := vars["cabinId"]
	cabinID, err := strconv.ParseInt(cabinIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /cabins/{id}/blocked-days - Invalid cabin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getBlockedDays.Request{CabinID: cabinID})
	if err != nil {
		if errors.Is(err, getBlockedDays.ErrInvalidInput) {
			h.logger.Warn("GET /cabins/{id}/blocked-days - Invalid input: cabin_id=%d", cabinID)
			handlers.RespondBadRequest(w, msgInvalidCabinID)
			return
		}
		h.logger.Error("GET /cabins/{id}/blocked-days - Failed to get blocked days: cabin_id=%d, error=%v", cabinID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /cabins/{id}/blocked-days - Retrieved %d blocked days: cabin_id=%d",
		len(response.BlockedDays), cabinID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
