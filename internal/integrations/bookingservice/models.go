package bookingservice

import "time"

// Cabin модель кабинки из бэкенда бронирования
type Cabin struct {
	ID           int64   `json:"id"`
	Nombre       string  `json:"nombre"`
	Descripcion  string  `json:"descripcion,omitempty"`
	Precio       float64 `json:"precio"`       // цена за ночь
	Capacidad    int     `json:"capacidad"`    // максимум гостей
	MinimoNoches int     `json:"minimoNoches"` // 0 = использовать дефолт сервиса
}

// Reservation бронь кабинки с уже распарсенными датами
// Бэкенд отдает даты строками (fechaInicio/fechaFinal), клиент парсит их
// при декодировании ответа
type Reservation struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
}

// reservationDTO wire-модель брони из ответа бэкенда
type reservationDTO struct {
	ID          int64  `json:"id"`
	FechaInicio string `json:"fechaInicio"`
	FechaFinal  string `json:"fechaFinal"`
}

// GuestInfo контактные данные гостя для временной брони
type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// TempReservationRequest запрос на создание временной брони (hold)
type TempReservationRequest struct {
	CabinID     int64      `json:"cabinId"`
	FechaInicio string     `json:"fechaInicio"`
	FechaFinal  string     `json:"fechaFinal"`
	PrecioTotal float64    `json:"precioTotal"`
	GuestInfo   *GuestInfo `json:"guestInfo,omitempty"`
}

// tempReservationResponse ответ бэкенда на создание временной брони
type tempReservationResponse struct {
	Status string `json:"status"`
	TempID string `json:"tempId"`
}

// confirmReservationRequest запрос на финализацию брони после оплаты
type confirmReservationRequest struct {
	TempID    string `json:"tempId"`
	PaymentID string `json:"paymentId"`
}

// statusResponse общий конверт ответа со статусом
type statusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от бэкенда бронирования
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const statusSuccess = "success"
