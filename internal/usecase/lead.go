package usecase

import (
	"context"
	"time"

	"mini-crm/internal/domain"
	"mini-crm/internal/metrics"
	"mini-crm/internal/pipeline"

	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// LeadUseCase реализует бизнес-логику для работы с лидами.
type LeadUseCase struct {
	leadRepo  domain.LeadRepository
	publisher domain.EventPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

// NewLeadUseCase создает новый экземпляр LeadUseCase.
func NewLeadUseCase(leadRepo domain.LeadRepository, publisher domain.EventPublisher, logger *logrus.Logger) domain.LeadUseCase {
	return &LeadUseCase{
		leadRepo:  leadRepo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListLeads возвращает лиды, прошедшие фильтры, новые первыми.
func (uc *LeadUseCase) ListLeads(ctx context.Context, filters domain.LeadFilters) ([]*domain.Lead, error) {
	leads, err := uc.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.Filter(leads, filters), nil
}

// GetPipeline возвращает отфильтрованные лиды, разложенные по этапам воронки.
func (uc *LeadUseCase) GetPipeline(ctx context.Context, filters domain.LeadFilters) ([]domain.PipelineColumn, error) {
	leads, err := uc.ListLeads(ctx, filters)
	if err != nil {
		return nil, err
	}
	return pipeline.Group(leads), nil
}

// GetLead возвращает лид по ID.
func (uc *LeadUseCase) GetLead(ctx context.Context, leadID string) (*domain.Lead, error) {
	return uc.leadRepo.GetByID(ctx, leadID)
}

// CreateLead создает лид от имени пользователя createdBy.
func (uc *LeadUseCase) CreateLead(ctx context.Context, input domain.LeadInput, createdBy string) (*domain.Lead, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	lead := domain.NewLead(input, createdBy, uc.now())
	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	metrics.RecordLeadCreated()
	uc.publish(ctx, domain.LeadEvent{Type: domain.LeadCreated, LeadID: lead.ID, ActorID: createdBy, ToStatus: lead.Status})

	return lead, nil
}

// UpdateLead применяет частичное обновление. Смена статуса через обновление
// записывает такое же системное взаимодействие, как и MoveLead.
func (uc *LeadUseCase) UpdateLead(ctx context.Context, leadID string, patch domain.LeadPatch, actorID string) (*domain.Lead, error) {
	lead, err := uc.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return lead, nil
	}

	previous := lead.Status
	lead.Apply(patch)

	// Проверяем итоговое состояние, а не только измененные поля
	if err := lead.Input().Validate(); err != nil {
		return nil, err
	}

	now := uc.now()
	lead.UpdatedAt = now

	var note *domain.Interaction
	if lead.Status != previous {
		note = domain.NewStatusChange(lead.ID, actorID, lead.Status, now)
	}

	if err := uc.leadRepo.Update(ctx, lead, note); err != nil {
		return nil, err
	}

	uc.publish(ctx, domain.LeadEvent{Type: domain.LeadUpdated, LeadID: lead.ID, ActorID: actorID})
	if note != nil {
		metrics.RecordStatusChange(string(previous), string(lead.Status))
		uc.publish(ctx, domain.LeadEvent{
			Type:       domain.LeadStatusChanged,
			LeadID:     lead.ID,
			ActorID:    actorID,
			FromStatus: previous,
			ToStatus:   lead.Status,
		})
	}

	return uc.leadRepo.GetByID(ctx, leadID)
}

// DeleteLead удаляет лид вместе с его взаимодействиями.
func (uc *LeadUseCase) DeleteLead(ctx context.Context, leadID, actorID string) error {
	if err := uc.leadRepo.Delete(ctx, leadID); err != nil {
		return err
	}

	uc.publish(ctx, domain.LeadEvent{Type: domain.LeadDeleted, LeadID: leadID, ActorID: actorID})
	return nil
}

// AddInteraction добавляет запись о контакте и возвращает обновленный лид.
func (uc *LeadUseCase) AddInteraction(
	ctx context.Context,
	leadID, userID string,
	interactionType domain.InteractionType,
	description string,
) (*domain.Lead, error) {
	interaction, err := domain.NewInteraction(leadID, userID, interactionType, description, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.leadRepo.AddInteraction(ctx, interaction); err != nil {
		return nil, err
	}

	uc.publish(ctx, domain.LeadEvent{Type: domain.LeadInteractionAdded, LeadID: leadID, ActorID: userID})

	return uc.leadRepo.GetByID(ctx, leadID)
}

// MoveLead переводит лид на другой этап воронки. Перевод на текущий этап ничего не пишет.
func (uc *LeadUseCase) MoveLead(ctx context.Context, leadID string, status domain.LeadStatus, actorID string) (*domain.Lead, error) {
	if !status.Valid() {
		return nil, domain.ValidationErrors{{Field: "status", Message: "is not a pipeline stage"}}
	}

	lead, err := uc.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.Status == status {
		return lead, nil
	}

	note := domain.NewStatusChange(leadID, actorID, status, uc.now())
	if err := uc.leadRepo.UpdateStatus(ctx, leadID, status, note); err != nil {
		return nil, err
	}

	metrics.RecordStatusChange(string(lead.Status), string(status))
	uc.publish(ctx, domain.LeadEvent{
		Type:       domain.LeadStatusChanged,
		LeadID:     leadID,
		ActorID:    actorID,
		FromStatus: lead.Status,
		ToStatus:   status,
	})

	return uc.leadRepo.GetByID(ctx, leadID)
}

// publish отправляет событие после фиксации изменений; ошибка только логируется.
func (uc *LeadUseCase) publish(ctx context.Context, event domain.LeadEvent) {
	event.OccurredAt = uc.now()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := uc.publisher.Publish(ctx, event); err != nil {
		metrics.RecordIntegrationError("rabbitmq")
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"event":   event.Type,
			"lead_id": event.LeadID,
		}).Warn("Failed to publish lead event")
	}
}
