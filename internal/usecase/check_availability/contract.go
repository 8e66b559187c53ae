package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
)

// CabinProvider интерфейс получения метаданных кабинки
type CabinProvider interface {
	GetCabin(ctx context.Context, cabinID int64) (*bookingservice.Cabin, error)
}

// ReservationsProvider интерфейс получения списка броней кабинки
// (клиент бэкенда напрямую либо кэш поверх него)
type ReservationsProvider interface {
	GetReservations(ctx context.Context, cabinID int64) ([]bookingservice.Reservation, error)
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
