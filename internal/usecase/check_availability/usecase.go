package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
)

// UseCase use case для проверки доступности диапазона дат в кабинке
type UseCase struct {
	cabins        CabinProvider
	reservations  ReservationsProvider
	timeProvider  TimeProvider
	defaultNights int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
//
// defaultNights применяется, когда у кабинки не задана собственная
// политика минимального пребывания
func NewUseCase(
	cabins CabinProvider,
	reservations ReservationsProvider,
	defaultNights int,
	logger Logger,
) *UseCase {
	if defaultNights < 1 {
		defaultNights = 1
	}
	return &UseCase{
		cabins:        cabins,
		reservations:  reservations,
		timeProvider:  &RealTimeProvider{},
		defaultNights: defaultNights,
		logger:        logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: user=%d, cabin=%d, checkIn=%s, checkOut=%s",
		req.UserID, req.CabinID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим кандидатский диапазон, перепутанные даты не переставляем
	candidate, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid range for cabin=%d: %v", req.CabinID, err)
		return nil, ErrInvalidDateRange
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем метаданные кабинки
	cabin, err := uc.cabins.GetCabin(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrCabinNotFound) {
			uc.logger.Warn("CheckAvailability: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}

	// 5. Определяем политику минимального пребывания
	minimumNights := cabin.MinimoNoches
	if minimumNights < 1 {
		minimumNights = uc.defaultNights
	}

	// 6. Получаем список броней кабинки
	booked, err := uc.reservations.GetReservations(ctx, req.CabinID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Преобразуем брони в интервалы, некорректные записи пропускаем
	reserved := buildReservedIntervals(booked, uc.logger)

	// 8. Проверяем доступность с фиксированным порядком приоритетов
	pricedNights, err := domain.CheckAvailability(candidate, reserved, minimumNights, now)
	if err != nil {
		return nil, uc.translateDomainError(err, req.CabinID, candidate)
	}

	// 9. Считаем итоговую стоимость
	total := float64(pricedNights) * cabin.Precio

	uc.logger.Info("CheckAvailability: cabin=%d range=%s is available, nights=%d, total=%.2f",
		req.CabinID, candidate.String(), pricedNights, total)

	return &Response{
		CabinID:       req.CabinID,
		Range:         candidate,
		PricedNights:  pricedNights,
		NightlyPrice:  cabin.Precio,
		TotalPrice:    total,
		MinimumNights: minimumNights,
	}, nil
}

// translateDomainError переводит доменные ошибки в ошибки usecase
func (uc *UseCase) translateDomainError(err error, cabinID int64, candidate domain.DateRange) error {
	switch {
	case errors.Is(err, domain.ErrPastDate):
		uc.logger.Warn("CheckAvailability: cabin=%d range=%s starts in the past", cabinID, candidate.String())
		return ErrPastDate
	case errors.Is(err, domain.ErrMinimumStay):
		uc.logger.Warn("CheckAvailability: cabin=%d range=%s is below the minimum stay", cabinID, candidate.String())
		return ErrMinimumStay
	case errors.Is(err, domain.ErrDateConflict):
		uc.logger.Info("CheckAvailability: cabin=%d range=%s conflicts with an existing reservation", cabinID, candidate.String())
		return ErrDateConflict
	case errors.Is(err, domain.ErrInvalidRange):
		return ErrInvalidDateRange
	default:
		uc.logger.Error("CheckAvailability: unexpected availability error for cabin=%d: %v", cabinID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// buildReservedIntervals преобразует брони бэкенда в доменные интервалы
func buildReservedIntervals(booked []bookingClient.Reservation, log Logger) []domain.ReservedInterval {
	reserved := make([]domain.ReservedInterval, 0, len(booked))
	for _, r := range booked {
		rng, err := domain.NewDateRange(r.StartDate, r.EndDate)
		if err != nil {
			// Бронь с перепутанными датами не блокирует календарь
			log.Warn("CheckAvailability: skipping reservation id=%d with invalid range: %v", r.ID, err)
			continue
		}
		reserved = append(reserved, domain.ReservedInterval{
			Range:         rng,
			ReservationID: r.ID,
		})
	}
	return reserved
}
