package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	"github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
)

// session состояние одной checkout-попытки
// Принадлежит ровно одному вызову Start; все изменения идут через мьютекс.
// Первый переход в терминальное состояние выигрывает, опоздавшие ответы
// статуса отбрасываются
type session struct {
	id     string
	userID int64
	draft  domain.BookingDraft

	mu          sync.Mutex
	state       domain.CheckoutState
	reason      domain.FailureReason
	tempID      string
	redirectURL string
	attempts    int
	paymentID   string

	cancel     context.CancelFunc
	createdAt  time.Time
	finishedAt time.Time
}

// setState переводит сессию в транзитное состояние
func (s *session) setState(state domain.CheckoutState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsTerminal() {
		return
	}
	s.state = state
}

// finish переводит сессию в терминальное состояние
// Возвращает false, если сессия уже терминальна - в этом случае вызывающий
// обязан отбросить свой результат (гонка "таймаут против ответа статуса")
func (s *session) finish(state domain.CheckoutState, reason domain.FailureReason, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsTerminal() {
		return false
	}
	s.state = state
	s.reason = reason
	s.finishedAt = now
	return true
}

// nextAttempt инкрементирует счетчик попыток опроса и возвращает его значение
// Вызывается строго перед выдачей запроса статуса, поэтому счетчик
// совпадает с числом реально отправленных запросов
func (s *session) nextAttempt() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	return s.attempts
}

func (s *session) setTempID(tempID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempID = tempID
}

func (s *session) setRedirectURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirectURL = url
}

func (s *session) setPaymentID(paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentID = paymentID
}

// snapshot снимает консистентную копию состояния сессии
func (s *session) snapshot() *models.CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.CheckoutSession{
		ID:          s.id,
		State:       s.state,
		Reason:      s.reason,
		CabinID:     s.draft.CabinID,
		Range:       s.draft.Range,
		TotalPrice:  s.draft.TotalPrice,
		TempID:      s.tempID,
		RedirectURL: s.redirectURL,
		Attempts:    s.attempts,
		PaymentID:   s.paymentID,
		CreatedAt:   s.createdAt,
	}
}

// isExpired возвращает true для терминальной сессии, которую пора убрать из реестра
func (s *session) isExpired(now time.Time, retention time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsTerminal() && now.Sub(s.finishedAt) > retention
}
