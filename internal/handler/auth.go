package handler

import (
	"net/http"

	"mini-crm/api"
	"mini-crm/internal/auth"
	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AuthHandler обрабатывает регистрацию, вход и сессию пользователя
type AuthHandler struct {
	*BaseHandler
	authUseCase domain.AuthUseCase
}

// NewAuthHandler создает новый экземпляр AuthHandler
func NewAuthHandler(authUseCase domain.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authUseCase: authUseCase,
	}
}

// PostAuthRegister обрабатывает регистрацию нового пользователя
func (h *AuthHandler) PostAuthRegister(c echo.Context) error {
	var req api.PostAuthRegisterJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind register request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeInvalidRequest, err.Error(), nil))
	}

	logEntry := h.logRequest(c, "register").WithField("email", req.Email)
	logEntry.Info("Registering user")

	session, err := h.authUseCase.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to register user")
		return respondError(c, err)
	}

	logEntry.WithField("user_id", session.User.ID).Info("User registered successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"session": toAPISession(session),
	})
}

// PostAuthLogin обрабатывает вход по email и паролю
func (h *AuthHandler) PostAuthLogin(c echo.Context) error {
	var req api.PostAuthLoginJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind login request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeInvalidRequest, err.Error(), nil))
	}

	logEntry := h.logRequest(c, "login").WithField("email", req.Email)
	logEntry.Info("Logging in")

	session, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		logEntry.WithError(err).Warn("Login failed")
		return respondError(c, err)
	}

	logEntry.WithField("user_id", session.User.ID).Info("User logged in")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"session": toAPISession(session),
	})
}

// PostAuthLogout подтверждает выход; токены не хранятся на сервере
func (h *AuthHandler) PostAuthLogout(c echo.Context) error {
	h.logRequest(c, "logout").Info("User logged out")
	return c.NoContent(http.StatusNoContent)
}

// GetAuthSession возвращает пользователя текущей сессии
func (h *AuthHandler) GetAuthSession(c echo.Context) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return respondError(c, domain.ErrSessionInvalid)
	}

	h.logRequest(c, "get_session").Debug("Session revalidated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}
