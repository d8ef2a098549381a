package store

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"mini-crm/internal/domain"
	"mini-crm/internal/pipeline"
	"mini-crm/internal/spreadsheet"

	"github.com/sirupsen/logrus"
)

// LeadsBackend описывает вызовы API, нужные LeadsStore.
type LeadsBackend interface {
	ListLeads(ctx context.Context, filters domain.LeadFilters) ([]*domain.Lead, error)
	CreateLead(ctx context.Context, input domain.LeadInput) (*domain.Lead, error)
	UpdateLead(ctx context.Context, leadID string, patch domain.LeadPatch) (*domain.Lead, error)
	DeleteLead(ctx context.Context, leadID string) error
	AddInteraction(ctx context.Context, leadID string, interactionType domain.InteractionType, description string) (*domain.Lead, error)
	MoveLead(ctx context.Context, leadID string, status domain.LeadStatus) (*domain.Lead, error)
	ImportLeads(ctx context.Context, r io.Reader, filename string) (*domain.ImportReport, error)
}

// LeadsStore держит локальную копию лидов и активные фильтры.
// Локальное состояние меняется только после подтверждения сервера.
type LeadsStore struct {
	backend LeadsBackend
	logger  *logrus.Logger

	mu      sync.RWMutex
	leads   []*domain.Lead
	filters domain.LeadFilters

	submitting atomic.Bool
	importing  atomic.Bool
}

func NewLeadsStore(backend LeadsBackend, logger *logrus.Logger) *LeadsStore {
	return &LeadsStore{
		backend: backend,
		logger:  logger,
	}
}

// Refresh загружает полный список лидов; фильтры применяются локально.
func (s *LeadsStore) Refresh(ctx context.Context) error {
	leads, err := s.backend.ListLeads(ctx, domain.LeadFilters{})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.leads = leads
	s.mu.Unlock()

	s.logger.WithField("leads_count", len(leads)).Debug("Leads refreshed")
	return nil
}

// Reset очищает состояние, например после выхода пользователя.
func (s *LeadsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = nil
	s.filters = domain.LeadFilters{}
}

func (s *LeadsStore) SetFilters(filters domain.LeadFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

func (s *LeadsStore) ClearFilters() {
	s.SetFilters(domain.LeadFilters{})
}

func (s *LeadsStore) Filters() domain.LeadFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Leads возвращает копию отфильтрованного списка.
func (s *LeadsStore) Leads() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := pipeline.Filter(s.leads, s.filters)
	out := make([]*domain.Lead, len(filtered))
	for i, lead := range filtered {
		out[i] = lead.Clone()
	}
	return out
}

// AllLeads возвращает копию списка без фильтров.
func (s *LeadsStore) AllLeads() []*domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Lead, len(s.leads))
	for i, lead := range s.leads {
		out[i] = lead.Clone()
	}
	return out
}

// Pipeline группирует отфильтрованные лиды по колонкам воронки.
func (s *LeadsStore) Pipeline() []domain.PipelineColumn {
	return pipeline.Group(s.Leads())
}

func (s *LeadsStore) Lead(leadID string) (*domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(leadID); i >= 0 {
		return s.leads[i].Clone(), true
	}
	return nil, false
}

// Create проверяет данные локально и только затем обращается к серверу.
func (s *LeadsStore) Create(ctx context.Context, input domain.LeadInput) (*domain.Lead, error) {
	checked := input
	checked.Normalize()
	if err := checked.Validate(); err != nil {
		return nil, err
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, domain.ErrOperationInProgress
	}
	defer s.submitting.Store(false)

	lead, err := s.backend.CreateLead(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.leads = append([]*domain.Lead{lead}, s.leads...)
	s.mu.Unlock()
	return lead.Clone(), nil
}

func (s *LeadsStore) Update(ctx context.Context, leadID string, patch domain.LeadPatch) (*domain.Lead, error) {
	if current, ok := s.Lead(leadID); ok {
		current.Apply(patch)
		if err := current.Input().Validate(); err != nil {
			return nil, err
		}
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, domain.ErrOperationInProgress
	}
	defer s.submitting.Store(false)

	lead, err := s.backend.UpdateLead(ctx, leadID, patch)
	if err != nil {
		return nil, err
	}
	s.replace(lead)
	return lead.Clone(), nil
}

func (s *LeadsStore) Delete(ctx context.Context, leadID string) error {
	if !s.submitting.CompareAndSwap(false, true) {
		return domain.ErrOperationInProgress
	}
	defer s.submitting.Store(false)

	if err := s.backend.DeleteLead(ctx, leadID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(leadID); i >= 0 {
		s.leads = append(s.leads[:i], s.leads[i+1:]...)
	}
	return nil
}

func (s *LeadsStore) AddInteraction(ctx context.Context, leadID string, interactionType domain.InteractionType, description string) (*domain.Lead, error) {
	if _, err := domain.NewInteraction(leadID, "", interactionType, description, time.Now()); err != nil {
		return nil, err
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, domain.ErrOperationInProgress
	}
	defer s.submitting.Store(false)

	lead, err := s.backend.AddInteraction(ctx, leadID, interactionType, description)
	if err != nil {
		return nil, err
	}
	s.replace(lead)
	return lead.Clone(), nil
}

// Move переводит лид на другой этап; перевод на текущий этап не вызывает сервер.
func (s *LeadsStore) Move(ctx context.Context, leadID string, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.Valid() {
		return nil, domain.ValidationErrors{{Field: "status", Message: "is not a pipeline stage"}}
	}
	current, ok := s.Lead(leadID)
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	if current.Status == status {
		return current, nil
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, domain.ErrOperationInProgress
	}
	defer s.submitting.Store(false)

	lead, err := s.backend.MoveLead(ctx, leadID, status)
	if err != nil {
		return nil, err
	}
	s.replace(lead)
	return lead.Clone(), nil
}

// Import загружает файл на сервер и перечитывает список лидов.
func (s *LeadsStore) Import(ctx context.Context, r io.Reader, filename string) (*domain.ImportReport, error) {
	if !s.importing.CompareAndSwap(false, true) {
		return nil, domain.ErrOperationInProgress
	}
	defer s.importing.Store(false)

	report, err := s.backend.ImportLeads(ctx, r, filename)
	if err != nil {
		return nil, err
	}

	if report.Created > 0 {
		if err := s.Refresh(ctx); err != nil {
			s.logger.WithError(err).Warn("Failed to refresh leads after import")
		}
	}
	return report, nil
}

// Export записывает текущий отфильтрованный список без обращения к серверу.
func (s *LeadsStore) Export(w io.Writer, format domain.FileFormat) error {
	return spreadsheet.Write(w, format, s.Leads())
}

func (s *LeadsStore) IsSubmitting() bool { return s.submitting.Load() }
func (s *LeadsStore) IsImporting() bool  { return s.importing.Load() }

func (s *LeadsStore) replace(lead *domain.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(lead.ID); i >= 0 {
		s.leads[i] = lead
		return
	}
	s.leads = append([]*domain.Lead{lead}, s.leads...)
}

// indexOf вызывается под s.mu.
func (s *LeadsStore) indexOf(leadID string) int {
	for i, lead := range s.leads {
		if lead.ID == leadID {
			return i
		}
	}
	return -1
}
