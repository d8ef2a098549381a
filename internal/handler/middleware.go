package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// ErrorHandler отдает ошибки echo (404 маршрута, лимит тела, паника) в формате API.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		code := domain.CodeInternal
		message := "internal server error"

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
			switch {
			case status == http.StatusUnauthorized:
				code = domain.CodeUnauthorized
			case status < http.StatusInternalServerError:
				code = domain.CodeInvalidRequest
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, toErrorResponse(code, message, nil))
		}
		if writeErr != nil {
			logger.WithError(writeErr).Error("Failed to write error response")
		}
	}
}
