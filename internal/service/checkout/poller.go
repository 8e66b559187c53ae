package checkout

import (
	"context"
	"time"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
)

// poll опрашивает статус платежа до терминального состояния или лимита попыток
//
// Цикл однопоточный: следующий тик не выдается, пока не обработан
// предыдущий запрос, поэтому счетчик попыток совпадает с числом реально
// отправленных запросов. Таймаут транспорта у клиента короче интервала
// тика - зависший запрос не останавливает отсчет.
//
// Транспортные ошибки и pending-like статусы логируются и не прерывают
// сессию; только исчерпание лимита дает timed_out. После достижения
// лимита новые запросы не отправляются
func (s *Service) poll(ctx context.Context, sess *session) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Сервис останавливается либо сессию завершил другой путь;
			// состояние сессии больше не трогаем
			return

		case <-ticker.C:
			attempt := sess.nextAttempt()

			status, err := s.payments.GetPaymentStatus(ctx, sess.tempID)
			switch {
			case err != nil:
				// Одиночный сбой опроса не валит сессию
				s.logger.Warn("Checkout: session=%s poll attempt %d/%d failed: %v",
					sess.id, attempt, s.opts.MaxAttempts, err)

			case status.IsApproved():
				if s.finishSession(sess, domain.StateApproved, "") {
					sess.setPaymentID(status.PaymentID)
					s.confirmApproved(sess, status.PaymentID)
				}
				return

			case status.IsRejected():
				s.finishSession(sess, domain.StateRejected, "")
				return

			default:
				s.logger.Info("Checkout: session=%s still pending (estado=%s), attempt %d/%d",
					sess.id, status.Estado, attempt, s.opts.MaxAttempts)
			}

			if attempt >= s.opts.MaxAttempts {
				s.finishSession(sess, domain.StateTimedOut, "")
				return
			}
		}
	}
}

// confirmApproved финализирует бронь на бэкенде после подтвержденной оплаты
// Вызывается ровно один раз - только из пути, выигравшего терминальный переход
func (s *Service) confirmApproved(sess *session, paymentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), confirmCallTimeout)
	defer cancel()

	if err := s.bookings.ConfirmReservation(ctx, sess.tempID, paymentID); err != nil {
		// Платеж уже подтвержден провайдером; бэкенд дофиксирует бронь
		// при redirect-back пользователя, поэтому только логируем
		s.logger.Error("Checkout: session=%s failed to confirm reservation tempId=%s paymentId=%s: %v",
			sess.id, sess.tempID, paymentID, err)
		return
	}

	s.logger.Info("Checkout: session=%s reservation confirmed, tempId=%s paymentId=%s",
		sess.id, sess.tempID, paymentID)
}
