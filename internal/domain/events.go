package domain

import (
	"context"
	"time"
)

// LeadEventType задает ключ маршрутизации события.
type LeadEventType string

const (
	LeadCreated          LeadEventType = "lead.created"
	LeadUpdated          LeadEventType = "lead.updated"
	LeadStatusChanged    LeadEventType = "lead.status_changed"
	LeadDeleted          LeadEventType = "lead.deleted"
	LeadInteractionAdded LeadEventType = "lead.interaction_added"
)

// LeadEvent описывает изменение лида для внешних подписчиков.
type LeadEvent struct {
	Type       LeadEventType `json:"type"`
	LeadID     string        `json:"lead_id"`
	ActorID    string        `json:"actor_id,omitempty"`
	FromStatus LeadStatus    `json:"from_status,omitempty"`
	ToStatus   LeadStatus    `json:"to_status,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher публикует события жизненного цикла лидов.
type EventPublisher interface {
	Publish(ctx context.Context, event LeadEvent) error
}
