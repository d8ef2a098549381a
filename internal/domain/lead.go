package domain

import (
	"context"
	"strings"
	"time"

	"mini-crm/internal/format"

	"github.com/google/uuid"
)

// LeadStatus представляет этап воронки продаж.
type LeadStatus string

const (
	StatusNew         LeadStatus = "novo"
	StatusContacted   LeadStatus = "contato"
	StatusQualified   LeadStatus = "qualificado"
	StatusProposal    LeadStatus = "proposta"
	StatusNegotiation LeadStatus = "negociacao"
	StatusWon         LeadStatus = "ganho"
	StatusLost        LeadStatus = "perdido"
)

// PipelineStatuses задает порядок колонок воронки.
var PipelineStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusProposal,
	StatusNegotiation,
	StatusWon,
	StatusLost,
}

// Valid сообщает, входит ли статус в перечисление.
func (s LeadStatus) Valid() bool {
	for _, status := range PipelineStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s LeadStatus) Label() string { return format.StatusLabel(string(s)) }
func (s LeadStatus) Color() string { return format.StatusColor(string(s)) }

// LeadSource представляет канал, через который пришел лид.
type LeadSource string

const (
	SourceWebsite  LeadSource = "website"
	SourceReferral LeadSource = "indicacao"
	SourcePhone    LeadSource = "telefone"
	SourceEmail    LeadSource = "email"
	SourceEvent    LeadSource = "evento"
	SourceSocial   LeadSource = "midia-social"
	SourceOther    LeadSource = "outro"
)

// LeadSources перечисляет допустимые источники.
var LeadSources = []LeadSource{
	SourceWebsite,
	SourceReferral,
	SourcePhone,
	SourceEmail,
	SourceEvent,
	SourceSocial,
	SourceOther,
}

func (s LeadSource) Valid() bool {
	for _, source := range LeadSources {
		if s == source {
			return true
		}
	}
	return false
}

func (s LeadSource) Label() string { return format.SourceLabel(string(s)) }

// Lead представляет потенциального клиента в воронке продаж.
type Lead struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Company      string
	Position     string
	Status       LeadStatus
	Source       LeadSource
	Value        *float64
	Observations string
	Tags         []string
	AssignedTo   string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Interactions []Interaction
}

// LeadInput содержит данные для создания лида.
type LeadInput struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Position     string
	Status       LeadStatus
	Source       LeadSource
	Value        *float64
	Observations string
	Tags         []string
	AssignedTo   string
}

// Normalize обрезает пробелы, чистит теги и подставляет значения по умолчанию.
func (in *LeadInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Position = strings.TrimSpace(in.Position)
	in.Observations = strings.TrimSpace(in.Observations)
	in.AssignedTo = strings.TrimSpace(in.AssignedTo)
	in.Tags = NormalizeTags(in.Tags)
	if in.Status == "" {
		in.Status = StatusNew
	}
	if in.Source == "" {
		in.Source = SourceWebsite
	}
	if in.Value != nil && *in.Value == 0 {
		in.Value = nil
	}
}

// Validate проверяет обязательные поля и перечисления.
func (in LeadInput) Validate() error {
	var errs ValidationErrors

	if in.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "is required"})
	}
	if in.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	} else if !format.ValidateEmail(in.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: "is invalid"})
	}
	if in.Phone == "" {
		errs = append(errs, ValidationError{Field: "phone", Message: "is required"})
	}
	if !in.Status.Valid() {
		errs = append(errs, ValidationError{Field: "status", Message: "is not a pipeline stage"})
	}
	if !in.Source.Valid() {
		errs = append(errs, ValidationError{Field: "source", Message: "is not a known source"})
	}
	if in.Value != nil && *in.Value < 0 {
		errs = append(errs, ValidationError{Field: "value", Message: "must not be negative"})
	}
	if in.AssignedTo != "" {
		if _, err := uuid.Parse(in.AssignedTo); err != nil {
			errs = append(errs, ValidationError{Field: "assigned_to", Message: "must be a user id"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewLead создает лид из проверенных входных данных.
func NewLead(in LeadInput, createdBy string, now time.Time) *Lead {
	return &Lead{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Company:      in.Company,
		Position:     in.Position,
		Status:       in.Status,
		Source:       in.Source,
		Value:        in.Value,
		Observations: in.Observations,
		Tags:         in.Tags,
		AssignedTo:   in.AssignedTo,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
		Interactions: []Interaction{},
	}
}

// Input возвращает редактируемые поля лида.
func (l *Lead) Input() LeadInput {
	return LeadInput{
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      l.Company,
		Position:     l.Position,
		Status:       l.Status,
		Source:       l.Source,
		Value:        l.Value,
		Observations: l.Observations,
		Tags:         l.Tags,
		AssignedTo:   l.AssignedTo,
	}
}

// Clone возвращает глубокую копию лида.
func (l *Lead) Clone() *Lead {
	c := *l
	if l.Value != nil {
		v := *l.Value
		c.Value = &v
	}
	c.Tags = append([]string(nil), l.Tags...)
	c.Interactions = append([]Interaction(nil), l.Interactions...)
	return &c
}

// LeadPatch описывает частичное обновление: nil означает "не менять",
// пустая строка очищает необязательное поле, нулевое значение очищает сумму.
type LeadPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Company      *string
	Position     *string
	Status       *LeadStatus
	Source       *LeadSource
	Value        *float64
	Observations *string
	Tags         *[]string
	AssignedTo   *string
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p LeadPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Company == nil &&
		p.Position == nil && p.Status == nil && p.Source == nil && p.Value == nil &&
		p.Observations == nil && p.Tags == nil && p.AssignedTo == nil
}

// Apply применяет патч к лиду.
func (l *Lead) Apply(p LeadPatch) {
	setString(&l.Name, p.Name)
	setString(&l.Email, p.Email)
	setString(&l.Phone, p.Phone)
	setString(&l.Company, p.Company)
	setString(&l.Position, p.Position)
	setString(&l.Observations, p.Observations)
	setString(&l.AssignedTo, p.AssignedTo)
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Value != nil {
		if *p.Value == 0 {
			l.Value = nil
		} else {
			v := *p.Value
			l.Value = &v
		}
	}
	if p.Tags != nil {
		l.Tags = NormalizeTags(*p.Tags)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// NormalizeTags убирает пустые значения и дубликаты, сохраняя порядок.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// LeadRepository определяет контракт для работы с хранилищем лидов.
type LeadRepository interface {
	List(ctx context.Context) ([]*Lead, error)
	GetByID(ctx context.Context, leadID string) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, lead *Lead, note *Interaction) error
	UpdateStatus(ctx context.Context, leadID string, status LeadStatus, note *Interaction) error
	Delete(ctx context.Context, leadID string) error
	AddInteraction(ctx context.Context, interaction *Interaction) error
}
