package check_availability

import (
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
)

// Request модель запроса проверки доступности диапазона дат
type Request struct {
	UserID   int64     // ID пользователя (для логирования, на результат не влияет; 0 = аноним)
	CabinID  int64     // ID кабинки
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда (для одиночного клика по календарю равна заезду)
}

// Response модель ответа с результатом проверки
type Response struct {
	CabinID       int64
	Range         domain.DateRange
	PricedNights  int     // Тарифицируемые ночи = включительное число дней диапазона
	NightlyPrice  float64 // Цена за ночь из метаданных кабинки
	TotalPrice    float64 // PricedNights * NightlyPrice
	MinimumNights int     // Примененная политика минимального пребывания
}
