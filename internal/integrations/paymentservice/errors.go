package paymentservice

import "errors"

var (
	// ErrNoInitPoint возвращается, когда провайдер ответил без redirect URL
	// Без init_point платежный шаг начать невозможно
	ErrNoInitPoint = errors.New("paymentservice client: response has no init_point")

	// ErrStatusNotFound возвращается, когда статус по correlation reference не найден
	ErrStatusNotFound = errors.New("paymentservice client: payment status not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
