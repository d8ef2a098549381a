package store

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Backend объединяет вызовы API для обоих хранилищ; его реализует client.Client.
type Backend interface {
	AuthBackend
	LeadsBackend
}

// App связывает состояние аутентификации и лидов одного клиента.
type App struct {
	Auth  *AuthStore
	Leads *LeadsStore

	logger *logrus.Logger
}

func NewApp(backend Backend, storage SessionStorage, logger *logrus.Logger) *App {
	return &App{
		Auth:   NewAuthStore(backend, storage, logger),
		Leads:  NewLeadsStore(backend, logger),
		logger: logger,
	}
}

// Start перепроверяет сохраненную сессию и загружает лиды для активного пользователя.
func (a *App) Start(ctx context.Context) error {
	if err := a.Auth.Init(ctx); err != nil {
		return err
	}
	if !a.Auth.IsAuthenticated() {
		a.Leads.Reset()
		return nil
	}
	return a.Leads.Refresh(ctx)
}

func (a *App) Login(ctx context.Context, email, password string) error {
	if _, err := a.Auth.Login(ctx, email, password); err != nil {
		return err
	}
	return a.Leads.Refresh(ctx)
}

func (a *App) Register(ctx context.Context, name, email, password string) error {
	if _, err := a.Auth.Register(ctx, name, email, password); err != nil {
		return err
	}
	return a.Leads.Refresh(ctx)
}

// Logout завершает сессию и сбрасывает локальные данные.
func (a *App) Logout(ctx context.Context) {
	a.Auth.Logout(ctx)
	a.Leads.Reset()
	a.logger.Info("Session closed")
}
