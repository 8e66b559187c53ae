package get_checkout_status

import (
	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	"github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
)

// CheckoutStatusResponse HTTP response model
type CheckoutStatusResponse struct {
	SessionID   string  `json:"sessionId"`
	State       string  `json:"state"`
	Reason      string  `json:"reason,omitempty"`
	CabinID     int64   `json:"cabinId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	TotalPrice  float64 `json:"totalPrice"`
	RedirectURL string  `json:"redirectUrl,omitempty"`
	Attempts    int     `json:"attempts"`
}

// FromSession конвертирует снапшот сессии в HTTP response
func FromSession(sess *models.CheckoutSession) *CheckoutStatusResponse {
	return &CheckoutStatusResponse{
		SessionID:   sess.ID,
		State:       string(sess.State),
		Reason:      string(sess.Reason),
		CabinID:     sess.CabinID,
		CheckIn:     sess.Range.Start.Format(domain.DateFormat),
		CheckOut:    sess.Range.End.Format(domain.DateFormat),
		TotalPrice:  sess.TotalPrice,
		RedirectURL: sess.RedirectURL,
		Attempts:    sess.Attempts,
	}
}
