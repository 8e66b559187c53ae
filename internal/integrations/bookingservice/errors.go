package bookingservice

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабинка не найдена
	ErrCabinNotFound = errors.New("bookingservice client: cabin not found")

	// ErrHoldRejected возвращается, когда бэкенд отказал во временной брони
	// Ожидаемый исход гонки: диапазон заняли между клиентской проверкой
	// доступности и серверным подтверждением
	ErrHoldRejected = errors.New("bookingservice client: temporary hold rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
