package start_checkout

import (
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
)

// GuestInput контактные данные гостя из формы checkout
type GuestInput struct {
	Name  string
	Email string
	Phone string
}

// Request модель запроса старта checkout
//
// Guest может быть nil: для авторизованного пользователя контактные
// данные уже известны бэкенду по userID
type Request struct {
	UserID   int64
	CabinID  int64
	CheckIn  time.Time
	CheckOut time.Time
	Guest    *GuestInput
}

// Response модель ответа со стартовавшей checkout-сессией
//
// Сессия может прийти сразу в состоянии failed (холд отклонен или
// платежный провайдер не выдал redirect URL); это не ошибка вызова
type Response struct {
	SessionID   string
	State       domain.CheckoutState
	Reason      domain.FailureReason
	CabinID     int64
	Range       domain.DateRange
	TotalPrice  float64
	RedirectURL string
}
