package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMP-BookingGateway/internal/domain"
	"github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
	"github.com/m04kA/CMP-BookingGateway/internal/integrations/paymentservice"
	"github.com/m04kA/CMP-BookingGateway/internal/service/checkout/models"
)

// Время хранения терминальной сессии в реестре, если фронт не удалил её сам
const (
	sessionRetention   = 15 * time.Minute
	janitorInterval    = time.Minute
	confirmCallTimeout = 5 * time.Second
)

// Options настройки оркестрации checkout
type Options struct {
	PollInterval time.Duration // интервал опроса статуса платежа
	MaxAttempts  int           // лимит попыток опроса
	BackURLBase  string        // база для back_urls платежного провайдера
}

// Service оркестратор checkout-сессий
//
// Ведет каждую сессию через цепочку
// hold -> preference -> redirect -> polling -> терминальное состояние.
// Сессии живут только в памяти: durable-состоянием владеет бэкенд
// бронирования, шлюзу достаточно пережить одну попытку оплаты
type Service struct {
	bookings BookingServiceClient
	payments PaymentServiceClient
	opts     Options
	metrics  MetricsRecorder // может быть nil
	logger   Logger

	mu       sync.RWMutex
	sessions map[string]*session

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup
}

// NewService создает новый оркестратор checkout-сессий
// Запускает фоновую уборку терминальных сессий; остановка через Close
func NewService(
	bookings BookingServiceClient,
	payments PaymentServiceClient,
	opts Options,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if opts.PollInterval <= 0 {
		opts.PollInterval = domain.DefaultPollIntervalSeconds * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = domain.DefaultMaxPollAttempts
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Service{
		bookings: bookings,
		payments: payments,
		opts:     opts,
		metrics:  metrics,
		logger:   logger,
		sessions: make(map[string]*session),
		baseCtx:  ctx,
		stop:     cancel,
	}

	s.wg.Add(1)
	go s.janitor()

	return s
}

// Start проводит валидационно готовый BookingDraft через создание холда и
// платежного намерения и запускает опрос статуса платежа
//
// Ожидаемые интеграционные отказы (холд отклонен, нет redirect URL) не
// являются ошибками вызова: возвращается сессия в состоянии failed с
// причиной, чтобы фронт показал сообщение и предложил повторить.
// Ошибкой возвращаются только транспортные/внутренние сбои
func (s *Service) Start(ctx context.Context, draft domain.BookingDraft) (*models.CheckoutSession, error) {
	sess := &session{
		id:        uuid.NewString(),
		userID:    draft.UserID,
		draft:     draft,
		state:     domain.StateHoldRequested,
		createdAt: time.Now(),
	}

	s.register(sess)
	if s.metrics != nil {
		s.metrics.CheckoutStarted()
	}

	s.logger.Info("Checkout: session=%s user=%d cabin=%d range=%s total=%.2f - requesting hold",
		sess.id, draft.UserID, draft.CabinID, draft.Range, draft.TotalPrice)

	// 1. Временная бронь (hold) на бэкенде
	tempID, err := s.bookings.CreateTempReservation(ctx, buildHoldRequest(draft))
	if err != nil {
		if errors.Is(err, bookingservice.ErrHoldRejected) {
			// Легитимный исход гонки: диапазон заняли между проверкой
			// доступности и подтверждением холда
			s.logger.Warn("Checkout: session=%s hold rejected by backend", sess.id)
			s.finishSession(sess, domain.StateFailed, domain.ReasonHoldRejected)
			return sess.snapshot(), nil
		}
		s.logger.Error("Checkout: session=%s failed to create hold: %v", sess.id, err)
		s.unregister(sess.id)
		if s.metrics != nil {
			s.metrics.CheckoutFinished("internal_error")
		}
		return nil, fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
	}

	sess.setTempID(tempID)
	sess.setState(domain.StateHoldConfirmed)
	s.logger.Info("Checkout: session=%s hold confirmed, tempId=%s", sess.id, tempID)

	// 2. Платежное намерение; tempID уходит как external_reference,
	// чтобы статус платежа можно было связать с холдом
	initPoint, err := s.payments.CreatePreference(ctx, s.buildPreferenceRequest(draft, tempID))
	if err != nil {
		if errors.Is(err, paymentservice.ErrNoInitPoint) {
			// Провайдер ответил, но без redirect URL - открывать оплату
			// нечем. Таймер опроса не запускается
			s.logger.Warn("Checkout: session=%s payment preference has no init_point", sess.id)
			s.finishSession(sess, domain.StateFailed, domain.ReasonNoRedirectURL)
			return sess.snapshot(), nil
		}
		// Транспортный сбой - это не ответ провайдера, причину
		// no_redirect_url пользователю не показываем
		s.logger.Error("Checkout: session=%s failed to create payment preference: %v", sess.id, err)
		s.unregister(sess.id)
		if s.metrics != nil {
			s.metrics.CheckoutFinished("internal_error")
		}
		return nil, fmt.Errorf("%w: failed to create payment preference: %v", ErrInternal, err)
	}

	sess.setRedirectURL(initPoint)
	sess.setState(domain.StatePaymentRedirected)

	// 3. Опрос статуса начинается сразу, не дожидаясь действий пользователя
	pollCtx, cancel := context.WithCancel(s.baseCtx)
	sess.cancel = cancel
	sess.setState(domain.StatePolling)

	s.wg.Add(1)
	go s.poll(pollCtx, sess)

	s.logger.Info("Checkout: session=%s redirect issued, polling every %s up to %d attempts",
		sess.id, s.opts.PollInterval, s.opts.MaxAttempts)

	return sess.snapshot(), nil
}

// Status возвращает снапшот сессии
func (s *Service) Status(sessionID string, userID int64) (*models.CheckoutSession, error) {
	sess, err := s.get(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return sess.snapshot(), nil
}

// Cancel удаляет сессию из реестра
// Разрешено только до редиректа на оплату либо после терминального
// состояния; во время опроса платежом владеет страница провайдера
func (s *Service) Cancel(sessionID string, userID int64) error {
	sess, err := s.get(sessionID, userID)
	if err != nil {
		return err
	}

	snap := sess.snapshot()
	if !snap.State.IsTerminal() {
		return ErrCheckoutInProgress
	}

	s.unregister(sessionID)
	s.logger.Info("Checkout: session=%s discarded by user=%d (state=%s)", sessionID, userID, snap.State)
	return nil
}

// Close останавливает все опросы и фоновую уборку
// Отмена контекста гарантирует, что ни одно отложенное продолжение не
// изменит состояние после остановки сервиса
func (s *Service) Close() {
	s.stop()
	s.wg.Wait()
}

// finishSession выполняет единственный терминальный переход сессии
// Возвращает false, если сессию уже завершил другой путь
func (s *Service) finishSession(sess *session, state domain.CheckoutState, reason domain.FailureReason) bool {
	if !sess.finish(state, reason, time.Now()) {
		return false
	}
	if sess.cancel != nil {
		sess.cancel()
	}
	if s.metrics != nil {
		s.metrics.CheckoutFinished(string(state))
	}
	if reason != "" {
		s.logger.Info("Checkout: session=%s finished, state=%s reason=%s", sess.id, state, reason)
	} else {
		s.logger.Info("Checkout: session=%s finished, state=%s", sess.id, state)
	}
	return true
}

func (s *Service) register(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
}

func (s *Service) unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Service) get(sessionID string, userID int64) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.userID != userID {
		return nil, ErrAccessDenied
	}
	return sess, nil
}

// janitor убирает из реестра терминальные сессии, которые фронт не удалил сам
func (s *Service) janitor() {
	defer s.wg.Done()

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.baseCtx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.isExpired(now, sessionRetention) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// buildHoldRequest собирает запрос временной брони из драфта
func buildHoldRequest(draft domain.BookingDraft) *bookingservice.TempReservationRequest {
	req := &bookingservice.TempReservationRequest{
		CabinID:     draft.CabinID,
		FechaInicio: draft.Range.Start.Format(domain.DateFormat),
		FechaFinal:  draft.Range.End.Format(domain.DateFormat),
		PrecioTotal: draft.TotalPrice,
	}
	if draft.Guest != nil {
		req.GuestInfo = &bookingservice.GuestInfo{
			Name:  draft.Guest.Name,
			Email: draft.Guest.Email,
			Phone: draft.Guest.Phone,
		}
	}
	return req
}

// buildPreferenceRequest собирает запрос платежного намерения из драфта
func (s *Service) buildPreferenceRequest(draft domain.BookingDraft, tempID string) *paymentservice.PreferenceRequest {
	base := strings.TrimRight(s.opts.BackURLBase, "/")

	req := &paymentservice.PreferenceRequest{
		Items: []paymentservice.PreferenceItem{
			{
				Title:     fmt.Sprintf("Reserva %s (%s)", draft.CabinName, draft.Range),
				Quantity:  1,
				UnitPrice: draft.TotalPrice,
			},
		},
		BackURLs: paymentservice.BackURLs{
			Success: base + "/checkout/success",
			Failure: base + "/checkout/failure",
			Pending: base + "/checkout/pending",
		},
		ExternalReference: tempID,
	}
	if draft.Guest != nil {
		req.Payer = &paymentservice.Payer{
			Name:  draft.Guest.Name,
			Email: draft.Guest.Email,
		}
	}
	return req
}
