package handler

import (
	"mini-crm/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	fields := logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	}
	if user, ok := auth.UserFromContext(c); ok {
		fields["user_id"] = user.ID
	}
	return h.logger.WithFields(fields)
}

// currentUserID возвращает id пользователя, проверенного auth-мидлварью.
func currentUserID(c echo.Context) string {
	if user, ok := auth.UserFromContext(c); ok {
		return user.ID
	}
	return ""
}
