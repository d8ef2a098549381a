package handler

import (
	"net/http"

	"mini-crm/api"
	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LeadHandler обрабатывает HTTP-запросы связанные с лидами
type LeadHandler struct {
	*BaseHandler
	leadUseCase domain.LeadUseCase
}

// NewLeadHandler создает новый экземпляр LeadHandler
func NewLeadHandler(leadUseCase domain.LeadUseCase, logger *logrus.Logger) *LeadHandler {
	return &LeadHandler{
		BaseHandler: NewBaseHandler(logger),
		leadUseCase: leadUseCase,
	}
}

// GetLeads возвращает отфильтрованный список лидов
func (h *LeadHandler) GetLeads(c echo.Context, params api.GetLeadsParams) error {
	filters := toLeadFilters(params.Search, params.Status, params.Source, params.DateFrom, params.DateTo, params.AssignedTo)
	logEntry := h.logRequest(c, "list_leads").WithField("filtered", !filters.IsEmpty())

	leads, err := h.leadUseCase.ListLeads(c.Request().Context(), filters)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list leads")
		return respondError(c, err)
	}

	logEntry.WithField("leads_count", len(leads)).Info("Leads listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"leads": toAPILeads(leads),
	})
}

// GetLeadsId возвращает лид с историей взаимодействий
func (h *LeadHandler) GetLeadsId(c echo.Context, id api.LeadId) error {
	logEntry := h.logRequest(c, "get_lead").WithField("lead_id", id.String())

	lead, err := h.leadUseCase.GetLead(c.Request().Context(), id.String())
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get lead")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"lead": toAPILead(lead),
	})
}

// PostLeads обрабатывает создание лида
func (h *LeadHandler) PostLeads(c echo.Context) error {
	var req api.PostLeadsJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create lead request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeInvalidRequest, err.Error(), nil))
	}

	logEntry := h.logRequest(c, "create_lead").WithField("email", req.Email)
	logEntry.Info("Creating lead")

	lead, err := h.leadUseCase.CreateLead(c.Request().Context(), toLeadInput(req), currentUserID(c))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to create lead")
		return respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"lead_id": lead.ID,
		"status":  lead.Status,
	}).Info("Lead created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"lead": toAPILead(lead),
	})
}

// PatchLeadsId обрабатывает частичное обновление лида
func (h *LeadHandler) PatchLeadsId(c echo.Context, id api.LeadId) error {
	var req api.PatchLeadsIdJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update lead request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeInvalidRequest, err.Error(), nil))
	}

	logEntry := h.logRequest(c, "update_lead").WithField("lead_id", id.String())
	logEntry.Info("Updating lead")

	lead, err := h.leadUseCase.UpdateLead(c.Request().Context(), id.String(), toLeadPatch(req), currentUserID(c))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to update lead")
		return respondError(c, err)
	}

	logEntry.Info("Lead updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"lead": toAPILead(lead),
	})
}

// DeleteLeadsId удаляет лид вместе с его взаимодействиями
func (h *LeadHandler) DeleteLeadsId(c echo.Context, id api.LeadId) error {
	logEntry := h.logRequest(c, "delete_lead").WithField("lead_id", id.String())
	logEntry.Info("Deleting lead")

	if err := h.leadUseCase.DeleteLead(c.Request().Context(), id.String(), currentUserID(c)); err != nil {
		logEntry.WithError(err).Warn("Failed to delete lead")
		return respondError(c, err)
	}

	logEntry.Info("Lead deleted successfully")
	return c.NoContent(http.StatusNoContent)
}

// PostLeadsIdInteractions добавляет взаимодействие к лиду
func (h *LeadHandler) PostLeadsIdInteractions(c echo.Context, id api.LeadId) error {
	var req api.PostLeadsIdInteractionsJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind add interaction request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeInvalidRequest, err.Error(), nil))
	}

	logEntry := h.logRequest(c, "add_interaction").WithFields(logrus.Fields{
		"lead_id": id.String(),
		"type":    req.Type,
	})

	lead, err := h.leadUseCase.AddInteraction(c.Request().Context(), id.String(), currentUserID(c),
		domain.InteractionType(req.Type), req.Description)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to add interaction")
		return respondError(c, err)
	}

	logEntry.WithField("interactions_count", len(lead.Interactions)).Info("Interaction added")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"lead": toAPILead(lead),
	})
}

// PutLeadsIdStatus переводит лид на другой этап воронки
func (h *LeadHandler) PutLeadsIdStatus(c echo.Context, id api.LeadId) error {
	var req api.PutLeadsIdStatusJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind move lead request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(domain.CodeInvalidRequest, err.Error(), nil))
	}

	logEntry := h.logRequest(c, "move_lead").WithFields(logrus.Fields{
		"lead_id": id.String(),
		"status":  req.Status,
	})

	lead, err := h.leadUseCase.MoveLead(c.Request().Context(), id.String(), domain.LeadStatus(req.Status), currentUserID(c))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to move lead")
		return respondError(c, err)
	}

	logEntry.Info("Lead moved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"lead": toAPILead(lead),
	})
}
