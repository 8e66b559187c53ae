package reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
)

// Fetcher интерфейс источника списков броней (клиент бэкенда)
type Fetcher interface {
	GetReservations(ctx context.Context, cabinID int64) ([]bookingservice.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache кэш списков броней поверх Redis с коротким TTL
//
// Набор заблокированных дней пересчитывается из каждого полученного списка
// целиком, кэш хранит только сырой список броней и никогда не патчится
// по месту. После успешного холда запись кабинки сбрасывается.
//
// Недоступность Redis не валит запрос: применяется graceful degradation -
// список берется напрямую у бэкенда, ошибка логируется
type Cache struct {
	rdb     *redis.Client
	fetcher Fetcher
	ttl     time.Duration
	log     Logger
}

// New создает кэш списков броней
func New(rdb *redis.Client, fetcher Fetcher, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		rdb:     rdb,
		fetcher: fetcher,
		ttl:     ttl,
		log:     log,
	}
}

// GetReservations возвращает список броней кабинки, по возможности из кэша
func (c *Cache) GetReservations(ctx context.Context, cabinID int64) ([]bookingservice.Reservation, error) {
	key := cacheKey(cabinID)

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached []bookingservice.Reservation
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		// Битую запись выбрасываем и идем за свежим списком
		c.log.Warn("ReservationsCache: corrupted entry for cabin=%d, refetching", cabinID)
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		c.log.Warn("ReservationsCache: redis unavailable for cabin=%d, falling back to direct fetch: %v", cabinID, err)
	}

	fetched, err := c.fetcher.GetReservations(ctx, cabinID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(fetched); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("ReservationsCache: failed to store cabin=%d: %v", cabinID, err)
		}
	}

	return fetched, nil
}

// Invalidate сбрасывает кэш кабинки (вызывается после успешного холда)
func (c *Cache) Invalidate(ctx context.Context, cabinID int64) {
	if err := c.rdb.Del(ctx, cacheKey(cabinID)).Err(); err != nil {
		c.log.Warn("ReservationsCache: failed to invalidate cabin=%d: %v", cabinID, err)
	}
}

// NoopInvalidator заглушка инвалидации для конфигурации без кэша
type NoopInvalidator struct{}

// Invalidate ничего не делает
func (NoopInvalidator) Invalidate(ctx context.Context, cabinID int64) {}

func cacheKey(cabinID int64) string {
	return fmt.Sprintf("reservations:cabin:%d", cabinID)
}
