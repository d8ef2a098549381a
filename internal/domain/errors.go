package domain

import (
	"errors"
	"strings"
)

// Domain errors (для бизнес-логики)
var (
	// Lead errors
	ErrLeadNotFound = errors.New("lead not found")

	// User and auth errors
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrSessionInvalid         = errors.New("session is missing, expired or no longer valid")

	// Client state errors
	ErrOperationInProgress = errors.New("another operation is already in progress")
)

// ValidationError описывает ошибку в конкретном поле.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors собирает ошибки валидации; проверяется до любого обращения к хранилищу.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Fields возвращает имена полей с ошибками.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, e := range v {
		if e.Field != "" {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// IsValidation сообщает, что ошибка является ошибкой валидации.
func IsValidation(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}

// HTTPError для ответов API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Коды ошибок API
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternal       = "INTERNAL_ERROR"
)

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrLeadNotFound:           {Code: "LEAD_NOT_FOUND", Message: "lead not found"},
	ErrUserNotFound:           {Code: "USER_NOT_FOUND", Message: "user not found"},
	ErrInvalidCredentials:     {Code: "INVALID_CREDENTIALS", Message: "invalid email or password"},
	ErrEmailAlreadyRegistered: {Code: "EMAIL_ALREADY_REGISTERED", Message: "email already registered"},
	ErrSessionInvalid:         {Code: CodeUnauthorized, Message: "session is missing, expired or no longer valid"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}

// FromErrorCode восстанавливает domain ошибку по коду из ответа API
func FromErrorCode(code string) (error, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if httpErr.Code == code {
			return domainErr, true
		}
	}
	return nil, false
}
