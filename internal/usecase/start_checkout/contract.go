package start_checkout

import (
	"context"
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	"github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
	checkoutModels "github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
)

// CabinProvider интерфейс получения метаданных кабинки
type CabinProvider interface {
	GetCabin(ctx context.Context, cabinID int64) (*bookingservice.Cabin, error)
}

// ReservationsProvider интерфейс получения списка броней кабинки
type ReservationsProvider interface {
	GetReservations(ctx context.Context, cabinID int64) ([]bookingservice.Reservation, error)
}

// CheckoutService интерфейс оркестратора checkout-сессий
type CheckoutService interface {
	Start(ctx context.Context, draft domain.BookingDraft) (*checkoutModels.CheckoutSession, error)
}

// CacheInvalidator интерфейс сброса кэша броней после успешного холда
type CacheInvalidator interface {
	Invalidate(ctx context.Context, cabinID int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
