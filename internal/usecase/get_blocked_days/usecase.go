package get_blocked_days

import (
	"context"
	"fmt"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
)

// UseCase use case для получения заблокированных дней кабинки
type UseCase struct {
	reservations ReservationsProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservations ReservationsProvider, logger Logger) *UseCase {
	return &UseCase{
		reservations: reservations,
		logger:       logger,
	}
}

// Execute выполняет use case получения заблокированных дней
//
// Набор дней всегда пересчитывается из полного списка броней,
// инкрементальных правок набора нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBlockedDays: cabin=%d", req.CabinID)

	// 1. Валидация входных данных
	if req.CabinID <= 0 {
		uc.logger.Warn("GetBlockedDays: invalid cabin id=%d", req.CabinID)
		return nil, fmt.Errorf("%w: cabinID must be positive", ErrInvalidInput)
	}

	// 2. Получаем список броней кабинки
	booked, err := uc.reservations.GetReservations(ctx, req.CabinID)
	if err != nil {
		uc.logger.Error("GetBlockedDays: failed to get reservations for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Преобразуем брони в интервалы, некорректные записи пропускаем
	reserved := make([]domain.ReservedInterval, 0, len(booked))
	for _, r := range booked {
		rng, err := domain.NewDateRange(r.StartDate, r.EndDate)
		if err != nil {
			uc.logger.Warn("GetBlockedDays: skipping reservation id=%d with invalid range: %v", r.ID, err)
			continue
		}
		reserved = append(reserved, domain.ReservedInterval{
			Range:         rng,
			ReservationID: r.ID,
		})
	}

	// 4. Разворачиваем интервалы в отсортированное множество дней
	days := domain.DisabledDays(reserved)

	uc.logger.Info("GetBlockedDays: cabin=%d has %d blocked days across %d reservations",
		req.CabinID, len(days), len(reserved))

	return &Response{
		CabinID:     req.CabinID,
		BlockedDays: days,
	}, nil
}
