package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mini-crm/internal/database"
	"mini-crm/internal/domain"
)

// LeadRepository реализует взаимодействие с данными лидов в PostgreSQL.
type LeadRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewLeadRepository создает новый экземпляр LeadRepository.
func NewLeadRepository(db *sql.DB, queries *database.Queries) domain.LeadRepository {
	return &LeadRepository{
		db:      db,
		queries: queries,
	}
}

// List возвращает все лиды, новые первыми, вместе с историей взаимодействий.
func (r *LeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	dbLeads, err := r.queries.ListLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	dbInteractions, err := r.queries.ListInteractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	byLead := make(map[string][]domain.Interaction, len(dbLeads))
	for _, i := range dbInteractions {
		byLead[i.LeadID] = append(byLead[i.LeadID], domain.Interaction{
			ID:          i.ID,
			LeadID:      i.LeadID,
			Type:        domain.InteractionType(i.Type),
			Description: i.Description,
			CreatedAt:   i.CreatedAt,
			UserID:      i.UserID,
			UserName:    i.UserName,
		})
	}

	leads := make([]*domain.Lead, 0, len(dbLeads))
	for _, dbLead := range dbLeads {
		lead := toDomainLead(dbLead)
		if interactions, ok := byLead[lead.ID]; ok {
			lead.Interactions = interactions
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

// GetByID возвращает лид по ID.
func (r *LeadRepository) GetByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	dbLead, err := r.queries.GetLead(ctx, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	rows, err := r.queries.ListInteractionsByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead interactions: %w", err)
	}

	lead := toDomainLead(dbLead)
	for _, i := range rows {
		lead.Interactions = append(lead.Interactions, domain.Interaction{
			ID:          i.ID,
			LeadID:      i.LeadID,
			Type:        domain.InteractionType(i.Type),
			Description: i.Description,
			CreatedAt:   i.CreatedAt,
			UserID:      i.UserID,
			UserName:    i.UserName,
		})
	}

	return lead, nil
}

// Create сохраняет новый лид.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	err := r.queries.CreateLead(ctx, database.CreateLeadParams{
		ID:           lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Company:      nullString(lead.Company),
		Position:     nullString(lead.Position),
		Status:       string(lead.Status),
		Source:       string(lead.Source),
		Value:        nullFloat(lead.Value),
		Observations: nullString(lead.Observations),
		Tags:         tagsOrEmpty(lead.Tags),
		AssignedTo:   nullString(lead.AssignedTo),
		CreatedBy:    lead.CreatedBy,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

// Update перезаписывает поля лида и, если передана note, добавляет ее в той же транзакции.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead, note *domain.Interaction) error {
	return inTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		affected, err := q.UpdateLead(ctx, database.UpdateLeadParams{
			ID:           lead.ID,
			Name:         lead.Name,
			Email:        lead.Email,
			Phone:        lead.Phone,
			Company:      nullString(lead.Company),
			Position:     nullString(lead.Position),
			Status:       string(lead.Status),
			Source:       string(lead.Source),
			Value:        nullFloat(lead.Value),
			Observations: nullString(lead.Observations),
			Tags:         tagsOrEmpty(lead.Tags),
			AssignedTo:   nullString(lead.AssignedTo),
			UpdatedAt:    lead.UpdatedAt,
		})
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to update lead: %w", err)
		}
		if affected == 0 {
			return domain.ErrLeadNotFound
		}

		return createNote(ctx, q, note)
	})
}

// UpdateStatus меняет только статус лида и записывает note в той же транзакции.
func (r *LeadRepository) UpdateStatus(ctx context.Context, leadID string, status domain.LeadStatus, note *domain.Interaction) error {
	updatedAt := time.Now().UTC()
	if note != nil {
		updatedAt = note.CreatedAt
	}

	return inTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		affected, err := q.UpdateLeadStatus(ctx, database.UpdateLeadStatusParams{
			ID:        leadID,
			Status:    string(status),
			UpdatedAt: updatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to update lead status: %w", err)
		}
		if affected == 0 {
			return domain.ErrLeadNotFound
		}

		return createNote(ctx, q, note)
	})
}

// Delete удаляет взаимодействия лида, затем сам лид.
func (r *LeadRepository) Delete(ctx context.Context, leadID string) error {
	return inTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		if err := q.DeleteInteractionsByLead(ctx, leadID); err != nil {
			if isInvalidText(err) {
				return domain.ErrLeadNotFound
			}
			return fmt.Errorf("failed to delete interactions: %w", err)
		}

		affected, err := q.DeleteLead(ctx, leadID)
		if err != nil {
			return fmt.Errorf("failed to delete lead: %w", err)
		}
		if affected == 0 {
			return domain.ErrLeadNotFound
		}

		return nil
	})
}

// AddInteraction сохраняет взаимодействие с лидом.
func (r *LeadRepository) AddInteraction(ctx context.Context, interaction *domain.Interaction) error {
	if err := createNote(ctx, r.queries, interaction); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrLeadNotFound
		}
		return err
	}
	return nil
}

func createNote(ctx context.Context, q *database.Queries, note *domain.Interaction) error {
	if note == nil {
		return nil
	}

	err := q.CreateInteraction(ctx, database.CreateInteractionParams{
		ID:          note.ID,
		LeadID:      note.LeadID,
		Type:        string(note.Type),
		Description: note.Description,
		UserID:      note.UserID,
		CreatedAt:   note.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	return nil
}

func toDomainLead(l database.Lead) *domain.Lead {
	lead := &domain.Lead{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      l.Company.String,
		Position:     l.Position.String,
		Status:       domain.LeadStatus(l.Status),
		Source:       domain.LeadSource(l.Source),
		Observations: l.Observations.String,
		Tags:         tagsOrEmpty(l.Tags),
		AssignedTo:   l.AssignedTo.String,
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		Interactions: []domain.Interaction{},
	}
	if l.Value.Valid {
		v := l.Value.Float64
		lead.Value = &v
	}
	return lead
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
