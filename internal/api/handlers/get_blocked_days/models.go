package get_blocked_days

import (
	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	getBlockedDays "github.com/m04kA/CMP-BookingGateway/internal/usecase/get_blocked_days"
)

// BlockedDaysResponse HTTP response model
type BlockedDaysResponse struct {
	CabinID     int64    `json:"cabinId"`
	BlockedDays []string `json:"blockedDays"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBlockedDays.Response) *BlockedDaysResponse {
	days := make([]string, len(resp.BlockedDays))
	for i, d := range resp.BlockedDays {
		days[i] = d.Format(domain.DateFormat)
	}

	return &BlockedDaysResponse{
		CabinID:     resp.CabinID,
		BlockedDays: days,
	}
}
