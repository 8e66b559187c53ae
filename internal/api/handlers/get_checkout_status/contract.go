package get_checkout_status

import (
	"github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
)

type CheckoutService interface {
	Status(sessionID string, userID int64) (*models.CheckoutSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
