package checkout

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже удалена
	ErrSessionNotFound = errors.New("checkout: session not found")

	// ErrAccessDenied возвращается при попытке доступа к чужой сессии
	ErrAccessDenied = errors.New("checkout: access denied")

	// ErrCheckoutInProgress возвращается при попытке отменить сессию после
	// редиректа на оплату: этим шагом владеет страница провайдера,
	// приложение может только дождаться терминального состояния
	ErrCheckoutInProgress = errors.New("checkout: session cannot be cancelled after payment redirect")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("checkout: internal error")
)
