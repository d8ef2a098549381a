// Package client реализует HTTP SDK для REST API mini-crm.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"mini-crm/api"
	"mini-crm/internal/domain"
)

const defaultTimeout = 30 * time.Second

// TransportError означает, что сервер недоступен или ответ не удалось прочитать.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError описывает ответ сервера с кодом, не известным домену.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// Client обращается к API от имени одного пользователя.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken задает токен сессии для последующих запросов; пустая строка сбрасывает его.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send выполняет запрос и превращает ответ с ошибкой в доменную ошибку.
func (c *Client) send(op string, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		apiErr := decodeError(op, resp)
		// 5xx считаются сбоем бэкенда
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, &TransportError{Op: op, Err: apiErr}
		}
		return nil, apiErr
	}
	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func decodeError(op string, resp *http.Response) error {
	var payload api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error.Code == "" {
		return &APIError{Status: resp.StatusCode, Code: domain.CodeInternal, Message: http.StatusText(resp.StatusCode)}
	}

	code := string(payload.Error.Code)
	if code == domain.CodeValidation {
		var fields []string
		if payload.Error.Fields != nil {
			fields = *payload.Error.Fields
		}
		return parseValidation(payload.Error.Message, fields)
	}
	if domainErr, ok := domain.FromErrorCode(code); ok {
		return domainErr
	}
	return &APIError{Status: resp.StatusCode, Code: code, Message: payload.Error.Message}
}

// parseValidation восстанавливает ValidationErrors из сообщения вида "field: message; ...".
func parseValidation(message string, fields []string) domain.ValidationErrors {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}

	var errs domain.ValidationErrors
	for _, part := range strings.Split(message, "; ") {
		if part == "" {
			continue
		}
		if field, msg, ok := strings.Cut(part, ": "); ok && known[field] {
			errs = append(errs, domain.ValidationError{Field: field, Message: msg})
			delete(known, field)
			continue
		}
		errs = append(errs, domain.ValidationError{Message: part})
	}
	for _, f := range fields {
		if known[f] {
			errs = append(errs, domain.ValidationError{Field: f, Message: "is invalid"})
		}
	}
	return errs
}

// IsTransport сообщает, что ошибка возникла на уровне сети или на стороне сервера (5xx).
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
