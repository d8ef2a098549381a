// Package pipeline группирует и фильтрует лиды для канбан-доски.
// Все функции чистые и не меняют входные данные.
package pipeline

import (
	"strings"

	"mini-crm/internal/domain"

	"golang.org/x/text/cases"
)

// UnknownLabel подписывает колонку лидов с нераспознанным статусом.
const UnknownLabel = "Desconhecido"

// Group раскладывает лиды по колонкам в порядке этапов воронки,
// сохраняя исходный порядок внутри каждой колонки. Лиды с неизвестным
// статусом попадают в последнюю колонку, которая появляется только если не пуста.
func Group(leads []*domain.Lead) []domain.PipelineColumn {
	columns := make([]domain.PipelineColumn, len(domain.PipelineStatuses))
	index := make(map[domain.LeadStatus]int, len(domain.PipelineStatuses))
	for i, status := range domain.PipelineStatuses {
		columns[i] = domain.PipelineColumn{
			Status: status,
			Label:  status.Label(),
			Color:  status.Color(),
			Leads:  []*domain.Lead{},
		}
		index[status] = i
	}

	unknown := domain.PipelineColumn{Label: UnknownLabel, Color: domain.LeadStatus("").Color(), Leads: []*domain.Lead{}}
	for _, lead := range leads {
		col := &unknown
		if i, ok := index[lead.Status]; ok {
			col = &columns[i]
		}
		col.Leads = append(col.Leads, lead)
		if lead.Value != nil {
			col.Total += *lead.Value
		}
	}

	if len(unknown.Leads) > 0 {
		columns = append(columns, unknown)
	}
	return columns
}

// Filter возвращает лиды, удовлетворяющие всем активным условиям фильтра.
// Пустой фильтр возвращает копию исходного списка.
func Filter(leads []*domain.Lead, filters domain.LeadFilters) []*domain.Lead {
	out := make([]*domain.Lead, 0, len(leads))
	if filters.IsEmpty() {
		return append(out, leads...)
	}

	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(filters.Search))
	statuses := toSet(filters.Status)
	sources := toSet(filters.Source)

	for _, lead := range leads {
		if search != "" && !matchesSearch(fold, lead, search) {
			continue
		}
		if len(statuses) > 0 && !statuses[lead.Status] {
			continue
		}
		if len(sources) > 0 && !sources[lead.Source] {
			continue
		}
		if filters.DateFrom != nil && lead.CreatedAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && lead.CreatedAt.After(*filters.DateTo) {
			continue
		}
		if filters.AssignedTo != "" && lead.AssignedTo != filters.AssignedTo {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matchesSearch(fold cases.Caser, lead *domain.Lead, search string) bool {
	for _, field := range []string{lead.Name, lead.Email, lead.Company} {
		if strings.Contains(fold.String(field), search) {
			return true
		}
	}
	return false
}

func toSet[T comparable](values []T) map[T]bool {
	set := make(map[T]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
