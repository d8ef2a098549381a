package domain

import (
	"strings"
	"time"

	"mini-crm/internal/format"

	"github.com/google/uuid"
)

// InteractionType представляет вид контакта с лидом.
type InteractionType string

const (
	InteractionEmail    InteractionType = "email"
	InteractionPhone    InteractionType = "telefone"
	InteractionMeeting  InteractionType = "reuniao"
	InteractionNote     InteractionType = "nota"
	InteractionWhatsApp InteractionType = "whatsapp"
	InteractionOther    InteractionType = "outro"

	// InteractionStatusChange записывается системой при смене этапа.
	InteractionStatusChange InteractionType = "status"
)

// InteractionTypes перечисляет типы, доступные пользователю.
var InteractionTypes = []InteractionType{
	InteractionEmail,
	InteractionPhone,
	InteractionMeeting,
	InteractionNote,
	InteractionWhatsApp,
	InteractionOther,
}

// UserCreatable сообщает, может ли пользователь создать взаимодействие этого типа.
func (t InteractionType) UserCreatable() bool {
	for _, it := range InteractionTypes {
		if t == it {
			return true
		}
	}
	return false
}

func (t InteractionType) Label() string { return format.InteractionLabel(string(t)) }

// Interaction представляет запись о контакте с лидом.
type Interaction struct {
	ID          string
	LeadID      string
	Type        InteractionType
	Description string
	CreatedAt   time.Time
	UserID      string
	UserName    string
}

// NewInteraction создает взаимодействие, проверяя тип и описание.
func NewInteraction(leadID, userID string, t InteractionType, description string, now time.Time) (*Interaction, error) {
	var errs ValidationErrors
	if !t.UserCreatable() {
		errs = append(errs, ValidationError{Field: "type", Message: "is not a valid interaction type"})
	}
	description = strings.TrimSpace(description)
	if description == "" {
		errs = append(errs, ValidationError{Field: "description", Message: "is required"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &Interaction{
		ID:          uuid.NewString(),
		LeadID:      leadID,
		Type:        t,
		Description: description,
		CreatedAt:   now,
		UserID:      userID,
	}, nil
}

// NewStatusChange создает системную запись о смене этапа воронки.
func NewStatusChange(leadID, userID string, status LeadStatus, now time.Time) *Interaction {
	return &Interaction{
		ID:          uuid.NewString(),
		LeadID:      leadID,
		Type:        InteractionStatusChange,
		Description: "Status alterado para: " + status.Label(),
		CreatedAt:   now,
		UserID:      userID,
	}
}
