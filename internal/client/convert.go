package client

import (
	"encoding/json"
	"fmt"
	"io"

	"mini-crm/api"
	"mini-crm/internal/domain"
)

func decodeBody(r io.Reader, out interface{}) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func fromAPIUser(u api.User) *domain.User {
	return &domain.User{
		ID:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: value(u.AvatarUrl),
	}
}

func fromAPISession(s api.Session) *domain.Session {
	return &domain.Session{
		Token:     s.Token,
		User:      fromAPIUser(s.User),
		ExpiresAt: s.ExpiresAt,
	}
}

func fromAPILead(l api.Lead) *domain.Lead {
	interactions := make([]domain.Interaction, len(l.Interactions))
	for i, it := range l.Interactions {
		interactions[i] = domain.Interaction{
			ID:          it.Id,
			LeadID:      it.LeadId,
			Type:        domain.InteractionType(it.Type),
			Description: it.Description,
			CreatedAt:   it.CreatedAt,
			UserID:      it.UserId,
			UserName:    it.UserName,
		}
	}
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Lead{
		ID:           l.Id,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      value(l.Company),
		Position:     value(l.Position),
		Status:       domain.LeadStatus(l.Status),
		Source:       domain.LeadSource(l.Source),
		Value:        l.Value,
		Observations: value(l.Observations),
		Tags:         tags,
		AssignedTo:   value(l.AssignedTo),
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		Interactions: interactions,
	}
}

func fromAPIImportReport(r api.ImportReport) *domain.ImportReport {
	failures := make([]domain.ImportFailure, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = domain.ImportFailure{Row: f.Row, Name: f.Name, Fields: f.Fields, Reason: f.Reason}
	}
	return &domain.ImportReport{
		Total:    r.Total,
		Created:  r.Created,
		Failed:   r.Failed,
		Failures: failures,
	}
}

func toAPILeadCreate(in domain.LeadInput) api.LeadCreate {
	req := api.LeadCreate{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Company:      ptr(in.Company),
		Position:     ptr(in.Position),
		Value:        in.Value,
		Observations: ptr(in.Observations),
		AssignedTo:   ptr(in.AssignedTo),
	}
	if in.Status != "" {
		status := api.LeadStatus(in.Status)
		req.Status = &status
	}
	if in.Source != "" {
		source := api.LeadSource(in.Source)
		req.Source = &source
	}
	if len(in.Tags) > 0 {
		tags := in.Tags
		req.Tags = &tags
	}
	return req
}

func toAPILeadUpdate(p domain.LeadPatch) api.LeadUpdate {
	req := api.LeadUpdate{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Company:      p.Company,
		Position:     p.Position,
		Value:        p.Value,
		Observations: p.Observations,
		Tags:         p.Tags,
		AssignedTo:   p.AssignedTo,
	}
	if p.Status != nil {
		status := api.LeadStatus(*p.Status)
		req.Status = &status
	}
	if p.Source != nil {
		source := api.LeadSource(*p.Source)
		req.Source = &source
	}
	return req
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
