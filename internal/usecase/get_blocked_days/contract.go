package get_blocked_days

import (
	"context"

	"github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
)

// ReservationsProvider интерфейс получения списка броней кабинки
// (клиент бэкенда напрямую либо кэш поверх него)
type ReservationsProvider interface {
	GetReservations(ctx context.Context, cabinID int64) ([]bookingservice.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
