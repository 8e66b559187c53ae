package start_checkout

import (
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	startCheckout "github.com/m04kA/CMP-BookingGateway/internal/usecase/start_checkout"
)

// GuestPayload контактные данные гостя в HTTP запросе
type GuestPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// StartCheckoutRequest HTTP request model
type StartCheckoutRequest struct {
	CabinID  int64         `json:"cabinId"`
	CheckIn  string        `json:"checkIn"`
	CheckOut string        `json:"checkOut"`
	Guest    *GuestPayload `json:"guest,omitempty"`
}

// CheckoutSessionResponse HTTP response model
type CheckoutSessionResponse struct {
	SessionID   string  `json:"sessionId"`
	State       string  `json:"state"`
	Reason      string  `json:"reason,omitempty"`
	CabinID     int64   `json:"cabinId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	TotalPrice  float64 `json:"totalPrice"`
	RedirectURL string  `json:"redirectUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartCheckoutRequest) ToUseCaseRequest(userID int64) (*startCheckout.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	req := &startCheckout.Request{
		UserID:   userID,
		CabinID:  r.CabinID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if r.Guest != nil {
		req.Guest = &startCheckout.GuestInput{
			Name:  r.Guest.Name,
			Email: r.Guest.Email,
			Phone: r.Guest.Phone,
		}
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startCheckout.Response) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		SessionID:   resp.SessionID,
		State:       string(resp.State),
		Reason:      string(resp.Reason),
		CabinID:     resp.CabinID,
		CheckIn:     resp.Range.Start.Format(domain.DateFormat),
		CheckOut:    resp.Range.End.Format(domain.DateFormat),
		TotalPrice:  resp.TotalPrice,
		RedirectURL: resp.RedirectURL,
	}
}
