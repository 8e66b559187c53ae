package start_checkout

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабинка не найдена
	ErrCabinNotFound = errors.New("start_checkout: cabin not found")

	// ErrInvalidDateRange возвращается, когда конец диапазона раньше начала
	ErrInvalidDateRange = errors.New("start_checkout: invalid date range")

	// ErrPastDate возвращается при попытке забронировать даты в прошлом
	ErrPastDate = errors.New("start_checkout: check-in date is in the past")

	// ErrMinimumStay возвращается, когда диапазон короче минимального количества ночей
	ErrMinimumStay = errors.New("start_checkout: stay is shorter than the minimum")

	// ErrDateConflict возвращается, когда диапазон пересекается с существующей бронью
	ErrDateConflict = errors.New("start_checkout: dates conflict with an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_checkout: internal error")
)
