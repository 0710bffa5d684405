package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

const (
	packagesPath = "/api/packages"
	bookingsPath = "/api/bookings"

	// ограничение на размер тела ответа, чтобы не читать мусор бесконечно
	maxResponseBytes = 4 << 20
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с booking API (каталог пакетов и бронирования)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента booking API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListPackages получает каталог пакетов.
// Ответ обязан быть JSON-массивом; отдельные записи, которые не удалось разобрать,
// пропускаются с предупреждением, отсутствующие поля остаются пустыми.
func (c *Client) ListPackages(ctx context.Context) ([]domain.PackageOption, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+packagesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, ErrNotAnArray)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	packages := make([]domain.PackageOption, 0, len(raw))
	for i, item := range raw {
		var pkg domain.PackageOption
		if err := json.Unmarshal(item, &pkg); err != nil {
			c.log.Warn("ListPackages: skipping malformed package at index %d: %v", i, err)
			continue
		}
		if pkg.ID == "" {
			c.log.Warn("ListPackages: skipping package without id at index %d", i)
			continue
		}
		if pkg.PricingConflict {
			c.log.Warn("ListPackages: package id=%s carries several pricing variants, using %s", pkg.ID, pkg.Pricing.Kind)
		}
		packages = append(packages, pkg)
	}

	c.log.Info("ListPackages: fetched %d packages", len(packages))
	return packages, nil
}

// SubmitBooking отправляет бронирование.
// Ответ 2xx без bookingId считается ошибкой.
func (c *Client) SubmitBooking(ctx context.Context, payload *domain.BookingPayload) (*SubmitResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bookingsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errorMessage(respBody))
	}

	var result SubmitResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if strings.TrimSpace(result.BookingID) == "" {
		return nil, ErrMissingBookingID
	}

	c.log.Info("SubmitBooking: booking accepted, booking_id=%s", result.BookingID)
	return &result, nil
}

// GetBooking получает сохраненное бронирование по bookingId
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*domain.BookingConfirmation, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, bookingsPath, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var confirmation domain.BookingConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if confirmation.BookingID == "" {
		return nil, ErrMissingBookingID
	}

	return &confirmation, nil
}

func errorMessage(body []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}
