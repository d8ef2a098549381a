package domain

import (
	"context"
	"io"
)

// AuthUseCase определяет бизнес-логику аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	CurrentUser(ctx context.Context, token string) (*User, error)
}

// LeadUseCase определяет бизнес-логику для работы с лидами.
type LeadUseCase interface {
	ListLeads(ctx context.Context, filters LeadFilters) ([]*Lead, error)
	GetLead(ctx context.Context, leadID string) (*Lead, error)
	CreateLead(ctx context.Context, input LeadInput, createdBy string) (*Lead, error)
	UpdateLead(ctx context.Context, leadID string, patch LeadPatch, actorID string) (*Lead, error)
	DeleteLead(ctx context.Context, leadID, actorID string) error
	AddInteraction(ctx context.Context, leadID, userID string, interactionType InteractionType, description string) (*Lead, error)
	MoveLead(ctx context.Context, leadID string, status LeadStatus, actorID string) (*Lead, error)
	GetPipeline(ctx context.Context, filters LeadFilters) ([]PipelineColumn, error)
}

// TransferUseCase определяет импорт и экспорт лидов.
type TransferUseCase interface {
	ImportLeads(ctx context.Context, r io.Reader, format FileFormat, createdBy string) (*ImportReport, error)
	ExportLeads(ctx context.Context, w io.Writer, format FileFormat, filters LeadFilters) error
}
