package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"mini-crm/internal/domain"
	"mini-crm/internal/metrics"
	"mini-crm/internal/spreadsheet"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// TransferUseCase реализует импорт и экспорт лидов.
type TransferUseCase struct {
	leadUseCase domain.LeadUseCase
	workers     int
	logger      *logrus.Logger
}

// NewTransferUseCase создает новый экземпляр TransferUseCase.
func NewTransferUseCase(leadUseCase domain.LeadUseCase, workers int, logger *logrus.Logger) domain.TransferUseCase {
	if workers < 1 {
		workers = 1
	}
	return &TransferUseCase{
		leadUseCase: leadUseCase,
		workers:     workers,
		logger:      logger,
	}
}

// ImportLeads создает лиды из строк файла. Ошибочные строки пропускаются
// и попадают в отчет, остальные продолжают импортироваться.
func (uc *TransferUseCase) ImportLeads(ctx context.Context, r io.Reader, f domain.FileFormat, createdBy string) (*domain.ImportReport, error) {
	rows, err := spreadsheet.Read(r, f)
	if err != nil {
		return nil, err
	}

	report := &domain.ImportReport{Total: len(rows), Failures: []domain.ImportFailure{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for _, row := range rows {
		row := row
		g.Go(func() error {
			failure := uc.importRow(gctx, row, createdBy)

			mu.Lock()
			defer mu.Unlock()
			if failure != nil {
				report.Failed++
				report.Failures = append(report.Failures, *failure)
				metrics.RecordImportRow("failed")
			} else {
				report.Created++
				metrics.RecordImportRow("created")
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Row < report.Failures[j].Row
	})

	uc.logger.WithFields(logrus.Fields{
		"total":   report.Total,
		"created": report.Created,
		"failed":  report.Failed,
	}).Info("Leads import finished")

	return report, nil
}

func (uc *TransferUseCase) importRow(ctx context.Context, row spreadsheet.Row, createdBy string) *domain.ImportFailure {
	input, err := row.Input()
	if err == nil {
		_, err = uc.leadUseCase.CreateLead(ctx, input, createdBy)
	}
	if err == nil {
		return nil
	}

	failure := &domain.ImportFailure{
		Row:    row.Line,
		Name:   strings.TrimSpace(row.Name),
		Reason: err.Error(),
	}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		failure.Fields = verrs.Fields()
	}
	return failure
}

// ExportLeads выгружает отфильтрованные лиды в выбранном формате.
func (uc *TransferUseCase) ExportLeads(ctx context.Context, w io.Writer, f domain.FileFormat, filters domain.LeadFilters) error {
	leads, err := uc.leadUseCase.ListLeads(ctx, filters)
	if err != nil {
		return err
	}
	return spreadsheet.Write(w, f, leads)
}
