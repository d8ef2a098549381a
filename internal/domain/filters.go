package domain

import "time"

// LeadFilters описывает временный запрос к списку лидов.
type LeadFilters struct {
	Search     string
	Status     []LeadStatus
	Source     []LeadSource
	DateFrom   *time.Time
	DateTo     *time.Time
	AssignedTo string
}

// IsEmpty сообщает, что ни один фильтр не активен.
func (f LeadFilters) IsEmpty() bool {
	return f.Search == "" && len(f.Status) == 0 && len(f.Source) == 0 &&
		f.DateFrom == nil && f.DateTo == nil && f.AssignedTo == ""
}

// PipelineColumn представляет колонку канбан-доски.
type PipelineColumn struct {
	Status LeadStatus
	Label  string
	Color  string
	Leads  []*Lead
	Total  float64
}
