package get_blocked_days

import (
	"context"

	getBlockedDays "github.com/m04kA/CMP-BookingGateway/internal/usecase/get_blocked_days"
)

type GetBlockedDaysUseCase interface {
	Execute(ctx context.Context, req *getBlockedDays.Request) (*getBlockedDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
