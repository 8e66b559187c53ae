package models

import (
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
)

// CheckoutSession снапшот состояния checkout-сессии для верхних слоев
// Снимается под мьютексом сессии; дальнейшие изменения сессии на него не влияют
type CheckoutSession struct {
	ID          string
	State       domain.CheckoutState
	Reason      domain.FailureReason // заполнено только для State == failed
	CabinID     int64
	Range       domain.DateRange
	TotalPrice  float64
	TempID      string // correlation reference временной брони
	RedirectURL string
	Attempts    int
	PaymentID   string
	CreatedAt   time.Time
}
