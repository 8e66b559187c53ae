package start_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	bookingClient "github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
	checkoutModels "github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
)

// UseCase use case старта checkout: финальная проверка доступности,
// сборка драфта брони и запуск оркестрации оплаты
type UseCase struct {
	cabins        CabinProvider
	reservations  ReservationsProvider
	checkout      CheckoutService
	invalidator   CacheInvalidator
	timeProvider  TimeProvider
	defaultNights int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cabins CabinProvider,
	reservations ReservationsProvider,
	checkout CheckoutService,
	invalidator CacheInvalidator,
	defaultNights int,
	logger Logger,
) *UseCase {
	if defaultNights < 1 {
		defaultNights = 1
	}
	return &UseCase{
		cabins:        cabins,
		reservations:  reservations,
		checkout:      checkout,
		invalidator:   invalidator,
		timeProvider:  &RealTimeProvider{},
		defaultNights: defaultNights,
		logger:        logger,
	}
}

// Execute выполняет use case старта checkout
//
// Проверка доступности здесь повторяется даже после успешной проверки
// на форме: окно между ними достаточно велико, чтобы диапазон заняли.
// Исход гонки на самом холде разруливает бэкенд, шлюз лишь отражает
// отказ в состоянии сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartCheckout: user=%d, cabin=%d, checkIn=%s, checkOut=%s",
		req.UserID, req.CabinID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartCheckout: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация контактных данных гостя
	if err := validateGuest(req.Guest); err != nil {
		uc.logger.Warn("StartCheckout: guest validation failed: %v", err)
		return nil, err
	}

	// 3. Строим диапазон; здесь одиночная дата уже не placeholder,
	// а полноценный запрос на одну ночь
	candidate, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("StartCheckout: invalid range for cabin=%d: %v", req.CabinID, err)
		return nil, ErrInvalidDateRange
	}

	// 4. Получаем текущее время
	now := uc.timeProvider.Now()

	// 5. Получаем метаданные кабинки
	cabin, err := uc.cabins.GetCabin(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, bookingClient.ErrCabinNotFound) {
			uc.logger.Warn("StartCheckout: cabin id=%d not found", req.CabinID)
			return nil, ErrCabinNotFound
		}
		uc.logger.Error("StartCheckout: failed to get cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}

	// 6. Определяем политику минимального пребывания
	minimumNights := cabin.MinimoNoches
	if minimumNights < 1 {
		minimumNights = uc.defaultNights
	}

	// 7. Финальная проверка доступности перед холдом
	booked, err := uc.reservations.GetReservations(ctx, req.CabinID)
	if err != nil {
		uc.logger.Error("StartCheckout: failed to get reservations for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	reserved := make([]domain.ReservedInterval, 0, len(booked))
	for _, r := range booked {
		rng, err := domain.NewDateRange(r.StartDate, r.EndDate)
		if err != nil {
			uc.logger.Warn("StartCheckout: skipping reservation id=%d with invalid range: %v", r.ID, err)
			continue
		}
		reserved = append(reserved, domain.ReservedInterval{Range: rng, ReservationID: r.ID})
	}

	// На старте checkout исключения для одиночной даты нет: одна дата -
	// это бронь на одну ночь. Прошлое по-прежнему приоритетнее минимума
	if candidate.IsSingleDay() && minimumNights > 1 && !candidate.Start.Before(domain.Midnight(now)) {
		uc.logger.Warn("StartCheckout: cabin=%d single-night range=%s is below the minimum stay",
			req.CabinID, candidate.String())
		return nil, ErrMinimumStay
	}

	pricedNights, err := domain.CheckAvailability(candidate, reserved, minimumNights, now)
	if err != nil {
		return nil, uc.translateDomainError(err, req.CabinID, candidate)
	}

	// 8. Собираем драфт брони с итоговой стоимостью
	draft := domain.BookingDraft{
		UserID:     req.UserID,
		CabinID:    req.CabinID,
		CabinName:  cabin.Nombre,
		Range:      candidate,
		TotalPrice: float64(pricedNights) * cabin.Precio,
	}
	if req.Guest != nil {
		draft.Guest = &domain.GuestInfo{
			Name:  req.Guest.Name,
			Email: req.Guest.Email,
			Phone: req.Guest.Phone,
		}
	}

	// 9. Запускаем оркестрацию checkout
	sess, err := uc.checkout.Start(ctx, draft)
	if err != nil {
		uc.logger.Error("StartCheckout: orchestration failed for cabin=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: checkout failed: %v", ErrInternal, err)
	}

	// 10. После подтвержденного холда кэшированный список броней устарел
	if sess.TempID != "" {
		uc.invalidator.Invalidate(ctx, req.CabinID)
	}

	uc.logger.Info("StartCheckout: session=%s state=%s cabin=%d total=%.2f",
		sess.ID, sess.State, req.CabinID, draft.TotalPrice)

	return buildResponse(sess), nil
}

// translateDomainError переводит доменные ошибки в ошибки usecase
func (uc *UseCase) translateDomainError(err error, cabinID int64, candidate domain.DateRange) error {
	switch {
	case errors.Is(err, domain.ErrPastDate):
		uc.logger.Warn("StartCheckout: cabin=%d range=%s starts in the past", cabinID, candidate.String())
		return ErrPastDate
	case errors.Is(err, domain.ErrMinimumStay):
		uc.logger.Warn("StartCheckout: cabin=%d range=%s is below the minimum stay", cabinID, candidate.String())
		return ErrMinimumStay
	case errors.Is(err, domain.ErrDateConflict):
		uc.logger.Info("StartCheckout: cabin=%d range=%s conflicts with an existing reservation", cabinID, candidate.String())
		return ErrDateConflict
	case errors.Is(err, domain.ErrInvalidRange):
		return ErrInvalidDateRange
	default:
		uc.logger.Error("StartCheckout: unexpected availability error for cabin=%d: %v", cabinID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// buildResponse собирает ответ из снапшота сессии
func buildResponse(sess *checkoutModels.CheckoutSession) *Response {
	return &Response{
		SessionID:   sess.ID,
		State:       sess.State,
		Reason:      sess.Reason,
		CabinID:     sess.CabinID,
		Range:       sess.Range,
		TotalPrice:  sess.TotalPrice,
		RedirectURL: sess.RedirectURL,
	}
}
