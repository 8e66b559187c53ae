package check_availability

import (
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	checkAvailability "github.com/m04kA/CMP-BookingGateway/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CabinID       int64   `json:"cabinId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Available     bool    `json:"available"`
	Nights        int     `json:"nights"`
	NightlyPrice  float64 `json:"nightlyPrice"`
	TotalPrice    float64 `json:"totalPrice"`
	MinimumNights int     `json:"minimumNights"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CabinID:       resp.CabinID,
		CheckIn:       resp.Range.Start.Format(domain.DateFormat),
		CheckOut:      resp.Range.End.Format(domain.DateFormat),
		Available:     true,
		Nights:        resp.PricedNights,
		NightlyPrice:  resp.NightlyPrice,
		TotalPrice:    resp.TotalPrice,
		MinimumNights: resp.MinimumNights,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID, cabinID int64, checkInStr, checkOutStr string) (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	// Одиночный клик по календарю приходит без checkOut
	checkOut := checkIn
	if checkOutStr != "" {
		checkOut, err = time.Parse(domain.DateFormat, checkOutStr)
		if err != nil {
			return nil, err
		}
	}

	return &checkAvailability.Request{
		UserID:   userID,
		CabinID:  cabinID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}
