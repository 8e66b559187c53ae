package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/CMP-BookingGateway/internal/api/handlers"
)

// HeaderUserID заголовок с ID авторизованного пользователя
// Заголовок проставляет внешний API gateway после проверки токена,
// до этого сервиса запрос без него не доходит
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw == "" {
				log.Warn("Auth: missing %s header for %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "autenticación requerida")
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				log.Warn("Auth: invalid %s header %q for %s %s", HeaderUserID, raw, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "autenticación requerida")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}

// UserID извлекает ID пользователя из контекста запроса
// Возвращает 0, если запрос прошел мимо Auth middleware
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// OptionalUserID извлекает ID пользователя, если заголовок присутствует
// Для публичных ручек, где ID нужен только для логирования
func OptionalUserID(r *http.Request) int64 {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
