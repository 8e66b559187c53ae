package check_availability

import "errors"

var (
	// ErrCabinNotFound возвращается, когда кабинка не найдена
	ErrCabinNotFound = errors.New("check_availability: cabin not found")

	// ErrInvalidDateRange возвращается, когда конец диапазона раньше начала
	// Ошибка вызывающей стороны: перепутанные даты не нормализуются молча
	ErrInvalidDateRange = errors.New("check_availability: invalid date range")

	// ErrPastDate возвращается при попытке выбрать даты в прошлом
	ErrPastDate = errors.New("check_availability: check-in date is in the past")

	// ErrMinimumStay возвращается, когда выбранный диапазон короче минимального количества ночей
	ErrMinimumStay = errors.New("check_availability: stay is shorter than the minimum")

	// ErrDateConflict возвращается, когда диапазон пересекается с существующей бронью
	ErrDateConflict = errors.New("check_availability: dates conflict with an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
