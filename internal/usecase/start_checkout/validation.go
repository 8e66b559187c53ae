package start_checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
)

// Формат email проверяется без претензии на RFC: непустая локальная
// часть, @, домен с точкой. Окончательную проверку делает бэкенд
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError ошибка валидации формы checkout
// Собирает все проблемные поля за один проход, чтобы фронт подсветил
// их одновременно, а не по одному
type ValidationError struct {
	Fields []FieldError
}

// Error возвращает текстовое представление ошибки
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("start_checkout: invalid fields: %s", strings.Join(names, ", "))
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CabinID <= 0 {
		return fmt.Errorf("%w: cabinID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	return nil
}

// validateGuest валидирует контактные данные гостя
// Для nil гостя проверок нет: данные подтянет бэкенд по userID
func validateGuest(guest *GuestInput) error {
	if guest == nil {
		return nil
	}

	var fields []FieldError

	if len(strings.TrimSpace(guest.Name)) < domain.MinGuestNameLength {
		fields = append(fields, FieldError{
			Field:   "name",
			Message: fmt.Sprintf("El nombre debe tener al menos %d caracteres", domain.MinGuestNameLength),
		})
	}

	if !emailPattern.MatchString(strings.TrimSpace(guest.Email)) {
		fields = append(fields, FieldError{
			Field:   "email",
			Message: "El email no tiene un formato válido",
		})
	}

	if !validPhone(guest.Phone) {
		fields = append(fields, FieldError{
			Field:   "phone",
			Message: fmt.Sprintf("El teléfono debe tener entre %d y %d dígitos", domain.MinPhoneDigits, domain.MaxPhoneDigits),
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validPhone проверяет количество значащих цифр телефона
// Разделители и ведущий + не считаются
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			// разделители допустимы
		default:
			return false
		}
	}
	return digits >= domain.MinPhoneDigits && digits <= domain.MaxPhoneDigits
}
