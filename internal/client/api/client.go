// Package api implements the HTTP client for the remote measurement store.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bodylog/bodylog/pkg/api"
)

var _ ClientAPI = (*Client)(nil)

// StatusReporter получает наблюдаемую доступность сервера.
// Его реализует netmon.Monitor: клиент сообщает туда исход каждого
// запроса, и подписчики монитора видят переходы online/offline.
type StatusReporter interface {
	SetOnline(online bool)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	reporter   StatusReporter
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetStatusReporter подключает наблюдателя доступности сервера
func (c *Client) SetStatusReporter(r StatusReporter) {
	c.reporter = r
}

// reportOnline сообщает наблюдателю исход сетевого обращения
func (c *Client) reportOnline(online bool) {
	if c.reporter != nil {
		c.reporter.SetOnline(online)
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/refresh", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// FetchMeasurements возвращает все записи пользователя для датасета
func (c *Client) FetchMeasurements(ctx context.Context, token, mode string) ([]api.MeasurementRecord, error) {
	var resp api.MeasurementsResponse
	path := "/api/v1/measurements?mode=" + url.QueryEscape(mode)
	err := c.doRequest(ctx, "GET", path, token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch measurements failed: %w", err)
	}
	return resp.Records, nil
}

// UpsertMeasurement создает или обновляет одну запись
func (c *Client) UpsertMeasurement(ctx context.Context, token string, record api.MeasurementRecord) error {
	err := c.doRequest(ctx, "PUT", "/api/v1/measurements", token, record, nil)
	if err != nil {
		return fmt.Errorf("upsert measurement failed: %w", err)
	}
	return nil
}

// UpsertBatch создает или обновляет набор записей атомарно
func (c *Client) UpsertBatch(ctx context.Context, token string, records []api.MeasurementRecord) error {
	req := api.BatchUpsertRequest{Records: records}
	err := c.doRequest(ctx, "POST", "/api/v1/measurements/batch", token, req, nil)
	if err != nil {
		return fmt.Errorf("batch upsert failed: %w", err)
	}
	return nil
}

// DeleteMeasurement удаляет запись по id.
// Отсутствие записи на сервере - успех: удаление идемпотентно, запись
// могла уйти в предыдущем цикле синхронизации.
func (c *Client) DeleteMeasurement(ctx context.Context, token, id string) error {
	path := "/api/v1/measurements/" + url.PathEscape(id)
	err := c.doRequest(ctx, "DELETE", path, token, nil, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete measurement failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сервер недостижим: сеть, DNS, таймаут
		c.reportOnline(false)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Любой HTTP ответ, даже ошибочный, означает что сервер доступен
	c.reportOnline(true)
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := ErrRemote
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			kind = ErrUnauthorized
		case http.StatusNotFound:
			kind = ErrNotFound
		}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%w: server error (%d): %s", kind, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: request failed with status %d: %s", kind, resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
