package handler

import (
	"errors"
	"net/http"
	"time"

	"mini-crm/api"
	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	return api.User{
		Id:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarUrl: optional(user.AvatarURL),
	}
}

func toAPISession(session *domain.Session) api.Session {
	return api.Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      toAPIUser(session.User),
	}
}

func toAPILead(lead *domain.Lead) api.Lead {
	interactions := make([]api.Interaction, len(lead.Interactions))
	for i, it := range lead.Interactions {
		interactions[i] = api.Interaction{
			Id:          it.ID,
			LeadId:      it.LeadID,
			Type:        api.InteractionType(it.Type),
			Description: it.Description,
			UserId:      it.UserID,
			UserName:    it.UserName,
			CreatedAt:   it.CreatedAt,
		}
	}

	tags := lead.Tags
	if tags == nil {
		tags = []string{}
	}

	return api.Lead{
		Id:           lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Company:      optional(lead.Company),
		Position:     optional(lead.Position),
		Status:       api.LeadStatus(lead.Status),
		Source:       api.LeadSource(lead.Source),
		Value:        lead.Value,
		Observations: optional(lead.Observations),
		Tags:         tags,
		AssignedTo:   optional(lead.AssignedTo),
		CreatedBy:    lead.CreatedBy,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
		Interactions: interactions,
	}
}

func toAPILeads(leads []*domain.Lead) []api.Lead {
	result := make([]api.Lead, len(leads))
	for i, lead := range leads {
		result[i] = toAPILead(lead)
	}
	return result
}

func toAPIPipeline(columns []domain.PipelineColumn) []api.PipelineColumn {
	result := make([]api.PipelineColumn, len(columns))
	for i, col := range columns {
		result[i] = api.PipelineColumn{
			Status: api.LeadStatus(col.Status),
			Label:  col.Label,
			Color:  col.Color,
			Count:  len(col.Leads),
			Total:  col.Total,
			Leads:  toAPILeads(col.Leads),
		}
	}
	return result
}

func toAPIImportReport(report *domain.ImportReport) api.ImportReport {
	failures := make([]api.ImportFailure, len(report.Failures))
	for i, f := range report.Failures {
		fields := f.Fields
		if fields == nil {
			fields = []string{}
		}
		failures[i] = api.ImportFailure{
			Row:    f.Row,
			Name:   f.Name,
			Fields: fields,
			Reason: f.Reason,
		}
	}
	return api.ImportReport{
		Total:    report.Total,
		Created:  report.Created,
		Failed:   report.Failed,
		Failures: failures,
	}
}

func toLeadInput(req api.LeadCreate) domain.LeadInput {
	in := domain.LeadInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      deref(req.Company),
		Position:     deref(req.Position),
		Value:        req.Value,
		Observations: deref(req.Observations),
		AssignedTo:   deref(req.AssignedTo),
	}
	if req.Status != nil {
		in.Status = domain.LeadStatus(*req.Status)
	}
	if req.Source != nil {
		in.Source = domain.LeadSource(*req.Source)
	}
	if req.Tags != nil {
		in.Tags = *req.Tags
	}
	return in
}

func toLeadPatch(req api.LeadUpdate) domain.LeadPatch {
	patch := domain.LeadPatch{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Position:     req.Position,
		Value:        req.Value,
		Observations: req.Observations,
		Tags:         req.Tags,
		AssignedTo:   req.AssignedTo,
	}
	if req.Status != nil {
		status := domain.LeadStatus(*req.Status)
		patch.Status = &status
	}
	if req.Source != nil {
		source := domain.LeadSource(*req.Source)
		patch.Source = &source
	}
	return patch
}

// toLeadFilters собирает фильтры из query-параметров; date_to включает весь день.
func toLeadFilters(search *string, statuses *[]api.LeadStatus, sources *[]api.LeadSource,
	dateFrom, dateTo *openapi_types.Date, assignedTo *string) domain.LeadFilters {
	filters := domain.LeadFilters{
		Search:     deref(search),
		AssignedTo: deref(assignedTo),
	}
	if statuses != nil {
		for _, s := range *statuses {
			filters.Status = append(filters.Status, domain.LeadStatus(s))
		}
	}
	if sources != nil {
		for _, s := range *sources {
			filters.Source = append(filters.Source, domain.LeadSource(s))
		}
	}
	if dateFrom != nil {
		from := dateFrom.Time
		filters.DateFrom = &from
	}
	if dateTo != nil {
		to := dateTo.Time.Add(24*time.Hour - time.Nanosecond)
		filters.DateTo = &to
	}
	return filters
}

func toErrorResponse(code, message string, fields []string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	if len(fields) > 0 {
		resp.Error.Fields = &fields
	}
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message, nil)
}

// respondError пишет ответ с ошибкой в едином формате.
func respondError(c echo.Context, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeValidation, verrs.Error(), verrs.Fields()))
	}
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse(domain.CodeInternal, "internal server error", nil))
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrLeadNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound

	// Unauthorized errors (401)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrSessionInvalid):
		return http.StatusUnauthorized

	// Bad Request errors (400) - валидация
	case domain.IsValidation(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
