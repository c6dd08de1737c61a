package platerecognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FallbackPlate демонстрационный номер, возвращаемый при недоступном распознавании
// Результат в любом случае попадает в vehicle_no как обычный непроверенный ввод
const FallbackPlate = "TEST1234"

// Client клиент внешнего сервиса распознавания номерных знаков (ANPR)
// Доступность разрешается один раз на старте (флаг enabled из конфигурации),
// а не динамическим пробированием в рантайме
type Client struct {
	enabled    bool
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент сервиса распознавания
func NewClient(enabled bool, baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		enabled: enabled,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Available сообщает, доступно ли распознавание номеров
func (c *Client) Available() bool {
	return c.enabled
}

// Recognize отправляет изображение во внешний сервис и возвращает распознанный номер
// Если распознавание выключено, сразу возвращает ErrNotAvailable
func (c *Client) Recognize(ctx context.Context, image []byte) (string, error) {
	if !c.enabled {
		return "", ErrNotAvailable
	}

	url := fmt.Sprintf("%s/v1/plates/recognize", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return "", ErrNotRecognized
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Plate == "" {
		return "", ErrNotRecognized
	}

	return result.Plate, nil
}

// RecognizeWithGracefulDegradation распознает номер с деградацией до демо-значения
// При любом сбое (сервис выключен, недоступен, не распознал) возвращает
// FallbackPlate и recognized=false — бронирование не должно зависеть от ANPR
func (c *Client) RecognizeWithGracefulDegradation(ctx context.Context, image []byte) (string, bool) {
	plate, err := c.Recognize(ctx, image)
	if err != nil {
		if err == ErrNotAvailable {
			c.log.Info("Plate recognition disabled, using fallback plate")
		} else {
			c.log.Error("Plate recognition failed, applying graceful degradation: %v", err)
		}
		return FallbackPlate, false
	}

	c.log.Info("Plate recognized: %s", plate)
	return plate, true
}
