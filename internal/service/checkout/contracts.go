package checkout

import (
	"context"

	"github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
	"github.com/m04kA/CMP-BookingGateway/internal/integrations/paymentservice"
)

// BookingServiceClient интерфейс клиента бэкенда бронирования
type BookingServiceClient interface {
	CreateTempReservation(ctx context.Context, request *bookingservice.TempReservationRequest) (string, error)
	ConfirmReservation(ctx context.Context, tempID, paymentID string) error
}

// PaymentServiceClient интерфейс клиента платежного провайдера
type PaymentServiceClient interface {
	CreatePreference(ctx context.Context, request *paymentservice.PreferenceRequest) (string, error)
	GetPaymentStatus(ctx context.Context, tempID string) (*paymentservice.PaymentStatus, error)
}

// MetricsRecorder интерфейс для записи метрик checkout-сессий (опционально, может быть nil)
type MetricsRecorder interface {
	CheckoutStarted()
	CheckoutFinished(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
