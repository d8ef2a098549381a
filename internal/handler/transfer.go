package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"mini-crm/api"
	"mini-crm/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TransferHandler обрабатывает импорт и экспорт таблиц с лидами
type TransferHandler struct {
	*BaseHandler
	transferUseCase domain.TransferUseCase
	maxBytes        int64
}

// NewTransferHandler создает обработчик; maxBytes ограничивает размер загружаемого файла.
func NewTransferHandler(transferUseCase domain.TransferUseCase, maxBytes int64, logger *logrus.Logger) *TransferHandler {
	return &TransferHandler{
		BaseHandler:     NewBaseHandler(logger),
		transferUseCase: transferUseCase,
		maxBytes:        maxBytes,
	}
}

// PostLeadsImport принимает multipart-файл и создает лиды построчно
func (h *TransferHandler) PostLeadsImport(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.WithError(err).Warn("Import request without file")
		return respondError(c, domain.ValidationErrors{{Field: "file", Message: "is required"}})
	}

	logEntry := h.logRequest(c, "import_leads").WithFields(logrus.Fields{
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
	})

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		logEntry.Warn("Import file too large")
		return respondError(c, domain.ValidationErrors{{
			Field:   "file",
			Message: fmt.Sprintf("must not exceed %d bytes", h.maxBytes),
		}})
	}

	formatValue := c.FormValue("format")
	if formatValue == "" {
		formatValue = fileHeader.Filename
	}
	format, err := domain.ParseFileFormat(formatValue)
	if err != nil {
		logEntry.WithError(err).Warn("Unsupported import format")
		return respondError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logEntry.WithError(err).Error("Failed to open uploaded file")
		return respondError(c, domain.ValidationErrors{{Field: "file", Message: "could not be read"}})
	}
	defer file.Close()

	logEntry.WithField("format", format).Info("Importing leads")

	report, err := h.transferUseCase.ImportLeads(c.Request().Context(), file, format, currentUserID(c))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to import leads")
		return respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"total":   report.Total,
		"created": report.Created,
		"failed":  report.Failed,
	}).Info("Leads imported")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"report": toAPIImportReport(report),
	})
}

// GetLeadsExport выгружает отфильтрованные лиды в CSV или XLSX
func (h *TransferHandler) GetLeadsExport(c echo.Context, params api.GetLeadsExportParams) error {
	var formatValue string
	if params.Format != nil {
		formatValue = string(*params.Format)
	}
	format, err := domain.ParseFileFormat(formatValue)
	if err != nil {
		return respondError(c, err)
	}

	filters := toLeadFilters(params.Search, params.Status, params.Source, params.DateFrom, params.DateTo, params.AssignedTo)
	logEntry := h.logRequest(c, "export_leads").WithField("format", format)

	var buf bytes.Buffer
	if err := h.transferUseCase.ExportLeads(c.Request().Context(), &buf, format, filters); err != nil {
		logEntry.WithError(err).Error("Failed to export leads")
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="leads%s"`, format.Extension()))

	logEntry.WithField("bytes", buf.Len()).Info("Leads exported")
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}
