package auth

import (
	"errors"
	"net/http"
	"strings"

	"mini-crm/api"
	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const userContextKey = "auth.user"

// Middleware проверяет bearer-токен и кладет пользователя в контекст запроса.
// Маршруты из publicPaths пропускаются без проверки.
func Middleware(authUseCase domain.AuthUseCase, logger *logrus.Logger, publicPaths ...string) echo.MiddlewareFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if public[c.Path()] || c.Path() == "" {
				return next(c)
			}

			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return unauthorized(c, "missing bearer token")
			}

			user, err := authUseCase.CurrentUser(c.Request().Context(), token)
			if err != nil {
				entry := logger.WithFields(logrus.Fields{
					"path": c.Path(),
					"ip":   c.RealIP(),
				}).WithError(err)
				if errors.Is(err, domain.ErrSessionInvalid) {
					entry.Warn("Rejected request with invalid session")
					return unauthorized(c, domain.ErrSessionInvalid.Error())
				}
				entry.Error("Failed to verify session")
				return internalError(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext возвращает пользователя, установленный Middleware.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok && user != nil
}

// WithUser помещает пользователя в контекст; используется в тестах обработчиков.
func WithUser(c echo.Context, user *domain.User) {
	c.Set(userContextKey, user)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthorized(c echo.Context, message string) error {
	var resp api.ErrorResponse
	resp.Error.Code = api.UNAUTHORIZED
	resp.Error.Message = message
	return c.JSON(http.StatusUnauthorized, resp)
}

func internalError(c echo.Context) error {
	var resp api.ErrorResponse
	resp.Error.Code = api.INTERNALERROR
	resp.Error.Message = "internal server error"
	return c.JSON(http.StatusInternalServerError, resp)
}
