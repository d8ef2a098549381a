package pipeline_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"mini-crm/internal/domain"
	"mini-crm/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func lead(id string, status domain.LeadStatus, opts ...func(*domain.Lead)) *domain.Lead {
	l := &domain.Lead{
		ID:        id,
		Name:      "Lead " + id,
		Email:     id + "@example.com",
		Phone:     "11999998888",
		Status:    status,
		Source:    domain.SourceWebsite,
		CreatedAt: base,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func value(v float64) func(*domain.Lead) { return func(l *domain.Lead) { l.Value = &v } }

func randomLeads(r *rand.Rand, n int) []*domain.Lead {
	leads := make([]*domain.Lead, n)
	for i := range leads {
		status := domain.PipelineStatuses[r.Intn(len(domain.PipelineStatuses))]
		if r.Intn(20) == 0 {
			status = "arquivado"
		}
		source := domain.LeadSources[r.Intn(len(domain.LeadSources))]
		leads[i] = lead(fmt.Sprintf("l%d", i), status, func(l *domain.Lead) {
			l.Source = source
			l.Company = []string{"Acme", "Globex", "Initech", ""}[r.Intn(4)]
			l.CreatedAt = base.Add(time.Duration(r.Intn(240)-120) * time.Hour)
		})
	}
	return leads
}

func TestGroup_EmptyCollection(t *testing.T) {
	columns := pipeline.Group(nil)

	require.Len(t, columns, len(domain.PipelineStatuses))
	for i, col := range columns {
		assert.Equal(t, domain.PipelineStatuses[i], col.Status)
		assert.Empty(t, col.Leads)
		assert.NotEmpty(t, col.Label)
	}
}

func TestGroup_PreservesOrderAndTotals(t *testing.T) {
	leads := []*domain.Lead{
		lead("a", domain.StatusProposal, value(1000)),
		lead("b", domain.StatusNew),
		lead("c", domain.StatusProposal, value(2500.5)),
		lead("d", domain.StatusWon, value(300)),
	}

	columns := pipeline.Group(leads)

	require.Len(t, columns, 7)
	proposal := columns[3]
	assert.Equal(t, domain.StatusProposal, proposal.Status)
	assert.Equal(t, "Proposta Enviada", proposal.Label)
	assert.Equal(t, []*domain.Lead{leads[0], leads[2]}, proposal.Leads)
	assert.InDelta(t, 3500.5, proposal.Total, 0.001)
	assert.Equal(t, []*domain.Lead{leads[1]}, columns[0].Leads)
	assert.Equal(t, []*domain.Lead{leads[3]}, columns[5].Leads)
}

func TestGroup_UnknownStatusGetsTrailingColumn(t *testing.T) {
	leads := []*domain.Lead{lead("a", "arquivado"), lead("b", domain.StatusLost)}

	columns := pipeline.Group(leads)

	require.Len(t, columns, 8)
	assert.Equal(t, pipeline.UnknownLabel, columns[7].Label)
	assert.Equal(t, []*domain.Lead{leads[0]}, columns[7].Leads)
}

func TestGroup_PartitionsEveryLeadExactlyOnce(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		leads := randomLeads(r, r.Intn(60))

		seen := make(map[string]int)
		for _, col := range pipeline.Group(leads) {
			for _, l := range col.Leads {
				seen[l.ID]++
				if col.Status != "" {
					assert.Equal(t, col.Status, l.Status)
				}
			}
		}

		assert.Len(t, seen, len(leads))
		for id, count := range seen {
			assert.Equal(t, 1, count, "lead %s", id)
		}
	}
}

func TestFilter_EmptyFilterReturnsEverything(t *testing.T) {
	leads := []*domain.Lead{lead("a", domain.StatusNew), lead("b", domain.StatusWon)}

	result := pipeline.Filter(leads, domain.LeadFilters{})

	assert.Equal(t, leads, result)
}

func TestFilter_SearchIsCaseInsensitiveOverNameEmailCompany(t *testing.T) {
	leads := []*domain.Lead{
		lead("a", domain.StatusNew, func(l *domain.Lead) { l.Name = "João Silva" }),
		lead("b", domain.StatusNew, func(l *domain.Lead) { l.Company = "ACME Ltda" }),
		lead("c", domain.StatusNew, func(l *domain.Lead) { l.Email = "contato@acme.com" }),
		lead("d", domain.StatusNew, func(l *domain.Lead) { l.Observations = "acme" }),
	}

	result := pipeline.Filter(leads, domain.LeadFilters{Search: "AcMe"})
	assert.Equal(t, []*domain.Lead{leads[1], leads[2]}, result)

	result = pipeline.Filter(leads, domain.LeadFilters{Search: "JOÃO"})
	assert.Equal(t, []*domain.Lead{leads[0]}, result)
}

func TestFilter_CombinesPredicatesWithAnd(t *testing.T) {
	leads := []*domain.Lead{
		lead("a", domain.StatusNew, func(l *domain.Lead) { l.Source = domain.SourceEvent }),
		lead("b", domain.StatusWon, func(l *domain.Lead) { l.Source = domain.SourceEvent }),
		lead("c", domain.StatusWon, func(l *domain.Lead) { l.Source = domain.SourceReferral }),
	}

	result := pipeline.Filter(leads, domain.LeadFilters{
		Status: []domain.LeadStatus{domain.StatusWon, domain.StatusLost},
		Source: []domain.LeadSource{domain.SourceEvent},
	})

	assert.Equal(t, []*domain.Lead{leads[1]}, result)
}

func TestFilter_DateBoundsAreInclusive(t *testing.T) {
	from := base.Add(-24 * time.Hour)
	to := base.Add(24 * time.Hour)
	leads := []*domain.Lead{
		lead("before", domain.StatusNew, func(l *domain.Lead) { l.CreatedAt = from.Add(-time.Second) }),
		lead("from", domain.StatusNew, func(l *domain.Lead) { l.CreatedAt = from }),
		lead("to", domain.StatusNew, func(l *domain.Lead) { l.CreatedAt = to }),
		lead("after", domain.StatusNew, func(l *domain.Lead) { l.CreatedAt = to.Add(time.Second) }),
	}

	result := pipeline.Filter(leads, domain.LeadFilters{DateFrom: &from, DateTo: &to})

	assert.Equal(t, []*domain.Lead{leads[1], leads[2]}, result)
}

func TestFilter_AssignedTo(t *testing.T) {
	leads := []*domain.Lead{
		lead("a", domain.StatusNew, func(l *domain.Lead) { l.AssignedTo = "u1" }),
		lead("b", domain.StatusNew),
	}

	result := pipeline.Filter(leads, domain.LeadFilters{AssignedTo: "u1"})

	assert.Equal(t, []*domain.Lead{leads[0]}, result)
}

func TestFilter_IsIdempotentAndDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	from := base.Add(-48 * time.Hour)

	for round := 0; round < 50; round++ {
		leads := randomLeads(r, 40)
		filters := domain.LeadFilters{
			Search:   []string{"", "acme", "L1", "globex"}[r.Intn(4)],
			Status:   domain.PipelineStatuses[:r.Intn(len(domain.PipelineStatuses))],
			DateFrom: &from,
		}

		once := pipeline.Filter(leads, filters)
		twice := pipeline.Filter(once, filters)

		assert.Equal(t, once, twice)
		assert.Equal(t, once, pipeline.Filter(leads, filters))
	}
}
