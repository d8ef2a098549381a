package handler

import (
	"net/http"

	"mini-crm/api"
	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PipelineHandler отдает канбан-доску воронки
type PipelineHandler struct {
	*BaseHandler
	leadUseCase domain.LeadUseCase
}

func NewPipelineHandler(leadUseCase domain.LeadUseCase, logger *logrus.Logger) *PipelineHandler {
	return &PipelineHandler{
		BaseHandler: NewBaseHandler(logger),
		leadUseCase: leadUseCase,
	}
}

// GetPipeline возвращает колонки воронки по отфильтрованным лидам
func (h *PipelineHandler) GetPipeline(c echo.Context, params api.GetPipelineParams) error {
	filters := toLeadFilters(params.Search, params.Status, params.Source, params.DateFrom, params.DateTo, params.AssignedTo)
	logEntry := h.logRequest(c, "get_pipeline")

	columns, err := h.leadUseCase.GetPipeline(c.Request().Context(), filters)
	if err != nil {
		logEntry.WithError(err).Error("Failed to build pipeline")
		return respondError(c, err)
	}

	logEntry.WithField("columns_count", len(columns)).Info("Pipeline built")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"columns": toAPIPipeline(columns),
	})
}
