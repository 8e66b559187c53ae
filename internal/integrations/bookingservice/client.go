package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с бэкендом бронирования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда бронирования
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCabin получает метаданные кабинки (цена за ночь, минимум ночей)
func (c *Client) GetCabin(ctx context.Context, cabinID int64) (*Cabin, error) {
	url := fmt.Sprintf("%s/cabin/getCabinById/%d", c.baseURL, cabinID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCabinNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var cabin Cabin
	if err := json.NewDecoder(resp.Body).Decode(&cabin); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &cabin, nil
}

// GetReservations получает список броней кабинки
// Даты парсятся сразу при декодировании, некорректная дата в ответе
// считается ошибкой контракта
func (c *Client) GetReservations(ctx context.Context, cabinID int64) ([]Reservation, error) {
	url := fmt.Sprintf("%s/reservation/getReservations/%d", c.baseURL, cabinID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCabinNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dtos []reservationDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	reservations := make([]Reservation, 0, len(dtos))
	for _, dto := range dtos {
		start, err := parseFecha(dto.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("%w: reservation id=%d has invalid fechaInicio %q", ErrInvalidResponse, dto.ID, dto.FechaInicio)
		}
		end, err := parseFecha(dto.FechaFinal)
		if err != nil {
			return nil, fmt.Errorf("%w: reservation id=%d has invalid fechaFinal %q", ErrInvalidResponse, dto.ID, dto.FechaFinal)
		}
		reservations = append(reservations, Reservation{
			ID:        dto.ID,
			StartDate: start,
			EndDate:   end,
		})
	}

	return reservations, nil
}

// CreateTempReservation создает временную бронь (hold) на диапазон дат
// Возвращает идентификатор холда, который служит correlation reference
// для платежа. Отказ бэкенда транслируется в ErrHoldRejected
func (c *Client) CreateTempReservation(ctx context.Context, request *TempReservationRequest) (string, error) {
	url := fmt.Sprintf("%s/reservation/tempReservation", c.baseURL)

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return "", ErrHoldRejected
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result tempReservationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Бэкенд может ответить 200 с неуспешным статусом в конверте
	if result.Status != statusSuccess || result.TempID == "" {
		c.log.Warn("CreateTempReservation: hold rejected by backend, status=%s", result.Status)
		return "", ErrHoldRejected
	}

	return result.TempID, nil
}

// ConfirmReservation финализирует бронь на бэкенде после успешной оплаты
func (c *Client) ConfirmReservation(ctx context.Context, tempID, paymentID string) error {
	url := fmt.Sprintf("%s/reservation/confirmReservation", c.baseURL)

	payload, err := json.Marshal(confirmReservationRequest{
		TempID:    tempID,
		PaymentID: paymentID,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Status != statusSuccess {
		return fmt.Errorf("%w: confirm returned status=%s", ErrInvalidResponse, result.Status)
	}

	return nil
}

// parseFecha парсит дату из ответа бэкенда
// Бэкенд отдает либо "2006-01-02", либо полный ISO timestamp
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
