package store_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"mini-crm/internal/client"
	"mini-crm/internal/domain"
	"mini-crm/internal/mocks"
	"mini-crm/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUser = &domain.User{ID: "u1", Name: "Maria", Email: "maria@crm.com"}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func makeLead(id, name string, status domain.LeadStatus, createdAt time.Time) *domain.Lead {
	return &domain.Lead{
		ID:           id,
		Name:         name,
		Email:        strings.ToLower(name) + "@empresa.com",
		Phone:        "11987654321",
		Status:       status,
		Source:       domain.SourceWebsite,
		Tags:         []string{},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		Interactions: []domain.Interaction{},
	}
}

func seededLeads() []*domain.Lead {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []*domain.Lead{
		makeLead("l3", "Carla", domain.StatusWon, base.Add(2*time.Hour)),
		makeLead("l2", "Bruno", domain.StatusContacted, base.Add(time.Hour)),
		makeLead("l1", "Ana", domain.StatusNew, base),
	}
}

func TestFileSessionStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", store.SessionFileName)
	storage := store.NewFileSessionStorage(path)

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, storage.Save(&store.StoredSession{Token: "tok", User: *testUser, ExpiresAt: expires}))

	loaded, err = storage.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "Maria", loaded.User.Name)
	assert.True(t, expires.Equal(loaded.ExpiresAt))

	require.NoError(t, storage.Clear())
	require.NoError(t, storage.Clear())
	loaded, err = storage.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAuthStore_InitWithoutStoredSession(t *testing.T) {
	backend := &mocks.Backend{}
	s := store.NewAuthStore(backend, store.NewMemorySessionStorage(), testLogger())

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.IsAuthenticated())
	backend.AssertNotCalled(t, "CurrentUser", mock.Anything)
}

func TestAuthStore_InitRevalidatesStoredSession(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.Save(&store.StoredSession{Token: "tok", User: *testUser}))
	backend.On("SetToken", "tok").Once()
	backend.On("CurrentUser", mock.Anything).Return(testUser, nil).Once()
	s := store.NewAuthStore(backend, storage, testLogger())

	require.NoError(t, s.Init(context.Background()))

	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)
	backend.AssertExpectations(t)
}

func TestAuthStore_InitDropsInvalidSession(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.Save(&store.StoredSession{Token: "expired", User: *testUser}))
	backend.On("SetToken", "expired").Once()
	backend.On("SetToken", "").Once()
	backend.On("CurrentUser", mock.Anything).Return(nil, domain.ErrSessionInvalid).Once()
	s := store.NewAuthStore(backend, storage, testLogger())

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.IsAuthenticated())
	stored, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
	backend.AssertExpectations(t)
}

func TestAuthStore_InitKeepsSessionOnTransportError(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.Save(&store.StoredSession{Token: "tok", User: *testUser}))
	backend.On("SetToken", mock.Anything)
	backend.On("CurrentUser", mock.Anything).
		Return(nil, &client.TransportError{Op: "current_user", Err: errors.New("connection refused")}).Once()
	s := store.NewAuthStore(backend, storage, testLogger())

	err := s.Init(context.Background())

	assert.True(t, client.IsTransport(err))
	assert.False(t, s.IsAuthenticated())
	stored, loadErr := storage.Load()
	require.NoError(t, loadErr)
	assert.NotNil(t, stored)
}

func TestAuthStore_LoginWrongPasswordStaysAnonymous(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	backend.On("Login", mock.Anything, "maria@crm.com", "errada").Return(nil, domain.ErrInvalidCredentials).Once()
	s := store.NewAuthStore(backend, storage, testLogger())

	_, err := s.Login(context.Background(), "maria@crm.com", "errada")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsSubmitting())
	stored, _ := storage.Load()
	assert.Nil(t, stored)
	backend.AssertNotCalled(t, "SetToken", mock.Anything)
}

func TestAuthStore_LoginPersistsSession(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	backend.On("Login", mock.Anything, "maria@crm.com", "segredo123").
		Return(&domain.Session{Token: "tok", User: testUser, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
	backend.On("SetToken", "tok").Once()
	s := store.NewAuthStore(backend, storage, testLogger())

	user, err := s.Login(context.Background(), "maria@crm.com", "segredo123")

	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
	assert.True(t, s.IsAuthenticated())
	stored, _ := storage.Load()
	require.NotNil(t, stored)
	assert.Equal(t, "tok", stored.Token)
	backend.AssertExpectations(t)
}

func TestAuthStore_RejectsConcurrentSubmit(t *testing.T) {
	backend := &mocks.Backend{}
	release := make(chan struct{})
	started := make(chan struct{})
	backend.On("Login", mock.Anything, "maria@crm.com", "segredo123").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil, domain.ErrInvalidCredentials).Once()
	s := store.NewAuthStore(backend, store.NewMemorySessionStorage(), testLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.Login(context.Background(), "maria@crm.com", "segredo123")
	}()
	<-started

	_, err := s.Login(context.Background(), "maria@crm.com", "segredo123")
	assert.ErrorIs(t, err, domain.ErrOperationInProgress)
	assert.True(t, s.IsSubmitting())

	close(release)
	wg.Wait()
	assert.False(t, s.IsSubmitting())
}

func TestAuthStore_LogoutClearsEvenWhenServerFails(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	backend.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.Session{Token: "tok", User: testUser}, nil).Once()
	backend.On("SetToken", mock.Anything)
	backend.On("Logout", mock.Anything).Return(&client.TransportError{Op: "logout", Err: io.ErrUnexpectedEOF}).Once()
	s := store.NewAuthStore(backend, storage, testLogger())
	_, err := s.Login(context.Background(), "maria@crm.com", "segredo123")
	require.NoError(t, err)

	s.Logout(context.Background())

	assert.False(t, s.IsAuthenticated())
	stored, _ := storage.Load()
	assert.Nil(t, stored)
	backend.AssertCalled(t, "SetToken", "")
}

func TestAuthStore_RegisterValidatesLocally(t *testing.T) {
	backend := &mocks.Backend{}
	s := store.NewAuthStore(backend, store.NewMemorySessionStorage(), testLogger())

	_, err := s.Register(context.Background(), " ", "maria", "123")

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"name", "email", "password"}, verrs.Fields())
	backend.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.False(t, s.IsSubmitting())
}

func newLeadsStore(t *testing.T) (*store.LeadsStore, *mocks.Backend) {
	t.Helper()
	backend := &mocks.Backend{}
	backend.On("ListLeads", mock.Anything, domain.LeadFilters{}).Return(seededLeads(), nil).Once()
	s := store.NewLeadsStore(backend, testLogger())
	require.NoError(t, s.Refresh(context.Background()))
	return s, backend
}

func TestLeadsStore_FiltersApplyLocally(t *testing.T) {
	s, _ := newLeadsStore(t)

	s.SetFilters(domain.LeadFilters{Search: "BRU"})
	leads := s.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, "l2", leads[0].ID)

	s.ClearFilters()
	assert.Len(t, s.Leads(), 3)
	assert.Len(t, s.AllLeads(), 3)
}

func TestLeadsStore_MoveSameStatusIsNoop(t *testing.T) {
	s, backend := newLeadsStore(t)

	lead, err := s.Move(context.Background(), "l1", domain.StatusNew)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, lead.Status)
	backend.AssertNotCalled(t, "MoveLead", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeadsStore_MoveUpdatesPipeline(t *testing.T) {
	s, backend := newLeadsStore(t)
	backend.On("MoveLead", mock.Anything, "l1", domain.StatusLost).
		Return(func(_ context.Context, id string, status domain.LeadStatus) *domain.Lead {
			moved := makeLead(id, "Ana", status, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
			moved.Interactions = []domain.Interaction{{Type: domain.InteractionStatusChange, Description: "Status alterado para: Perdido"}}
			return moved
		}, nil).Once()

	lead, err := s.Move(context.Background(), "l1", domain.StatusLost)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusLost, lead.Status)
	columns := s.Pipeline()
	require.Len(t, columns, len(domain.PipelineStatuses))
	assert.Empty(t, columns[0].Leads)
	require.Len(t, columns[6].Leads, 1)
	assert.Equal(t, "l1", columns[6].Leads[0].ID)
}

func TestLeadsStore_MoveFailureKeepsState(t *testing.T) {
	s, backend := newLeadsStore(t)
	backend.On("MoveLead", mock.Anything, "l2", domain.StatusProposal).
		Return(nil, &client.TransportError{Op: "move_lead", Err: io.EOF}).Once()

	_, err := s.Move(context.Background(), "l2", domain.StatusProposal)

	require.Error(t, err)
	lead, ok := s.Lead("l2")
	require.True(t, ok)
	assert.Equal(t, domain.StatusContacted, lead.Status)
}

func TestLeadsStore_MoveUnknownLead(t *testing.T) {
	s, _ := newLeadsStore(t)

	_, err := s.Move(context.Background(), "missing", domain.StatusWon)

	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

func TestLeadsStore_DeleteRemovesFromBothViews(t *testing.T) {
	s, backend := newLeadsStore(t)
	backend.On("DeleteLead", mock.Anything, "l3").Return(nil).Once()

	require.NoError(t, s.Delete(context.Background(), "l3"))

	for _, lead := range s.Leads() {
		assert.NotEqual(t, "l3", lead.ID)
	}
	for _, col := range s.Pipeline() {
		for _, lead := range col.Leads {
			assert.NotEqual(t, "l3", lead.ID)
		}
	}
	_, ok := s.Lead("l3")
	assert.False(t, ok)
	backend.AssertExpectations(t)
}

func TestLeadsStore_CreatePrependsConfirmedLead(t *testing.T) {
	s, backend := newLeadsStore(t)
	created := makeLead("l4", "Diego", domain.StatusNew, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	backend.On("CreateLead", mock.Anything, mock.Anything).Return(created, nil).Once()

	_, err := s.Create(context.Background(), domain.LeadInput{Name: "Diego", Email: "diego@empresa.com", Phone: "11987654321"})

	require.NoError(t, err)
	assert.Equal(t, "l4", s.AllLeads()[0].ID)
}

func TestLeadsStore_CreateFailureLeavesStateUntouched(t *testing.T) {
	s, backend := newLeadsStore(t)
	backend.On("CreateLead", mock.Anything, mock.Anything).
		Return(nil, &client.APIError{Status: 503, Code: "UNAVAILABLE", Message: "try later"}).Once()

	_, err := s.Create(context.Background(), domain.LeadInput{Name: "Diego", Email: "diego@empresa.com", Phone: "11987654321"})

	require.Error(t, err)
	assert.Len(t, s.AllLeads(), 3)
	assert.False(t, s.IsSubmitting())
}

func TestLeadsStore_InvalidInputNeverReachesServer(t *testing.T) {
	s, backend := newLeadsStore(t)

	_, err := s.Create(context.Background(), domain.LeadInput{Name: "Sem Email", Phone: "11987654321"})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"email"}, verrs.Fields())

	bad := "sem-arroba"
	_, err = s.Update(context.Background(), "l1", domain.LeadPatch{Email: &bad})
	assert.True(t, domain.IsValidation(err))

	_, err = s.AddInteraction(context.Background(), "l1", domain.InteractionNote, "   ")
	assert.True(t, domain.IsValidation(err))

	_, err = s.Move(context.Background(), "l1", domain.LeadStatus("arquivado"))
	assert.True(t, domain.IsValidation(err))

	backend.AssertNotCalled(t, "CreateLead", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "UpdateLead", mock.Anything, mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "AddInteraction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "MoveLead", mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, s.AllLeads(), 3)
}

func TestLeadsStore_ExportUsesFilteredView(t *testing.T) {
	s, backend := newLeadsStore(t)
	s.SetFilters(domain.LeadFilters{Status: []domain.LeadStatus{domain.StatusWon}})

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf, domain.FormatCSV))

	out := buf.String()
	assert.Contains(t, out, "Carla")
	assert.NotContains(t, out, "Bruno")
	backend.AssertNotCalled(t, "ListLeads", mock.Anything, mock.Anything)
}

func TestLeadsStore_ImportRefreshesLeads(t *testing.T) {
	s, backend := newLeadsStore(t)
	backend.On("ImportLeads", mock.Anything, mock.Anything, "leads.csv").
		Return(&domain.ImportReport{Total: 2, Created: 1, Failed: 1}, nil).Once()
	refreshed := append(seededLeads(), makeLead("l5", "Elisa", domain.StatusNew, time.Now()))
	backend.On("ListLeads", mock.Anything, domain.LeadFilters{}).Return(refreshed, nil).Once()

	report, err := s.Import(context.Background(), strings.NewReader("csv"), "leads.csv")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Len(t, s.AllLeads(), 4)
	assert.False(t, s.IsImporting())
	backend.AssertExpectations(t)
}

func TestApp_StartLoadsLeadsForValidSession(t *testing.T) {
	backend := &mocks.Backend{}
	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.Save(&store.StoredSession{Token: "tok", User: *testUser}))
	backend.On("SetToken", "tok").Once()
	backend.On("CurrentUser", mock.Anything).Return(testUser, nil).Once()
	backend.On("ListLeads", mock.Anything, domain.LeadFilters{}).Return(seededLeads(), nil).Once()
	app := store.NewApp(backend, storage, testLogger())

	require.NoError(t, app.Start(context.Background()))

	assert.True(t, app.Auth.IsAuthenticated())
	assert.Len(t, app.Leads.AllLeads(), 3)
	backend.AssertExpectations(t)
}

func TestApp_LogoutResetsState(t *testing.T) {
	backend := &mocks.Backend{}
	backend.On("Login", mock.Anything, "maria@crm.com", "segredo123").
		Return(&domain.Session{Token: "tok", User: testUser}, nil).Once()
	backend.On("SetToken", mock.Anything)
	backend.On("ListLeads", mock.Anything, domain.LeadFilters{}).Return(seededLeads(), nil).Once()
	backend.On("Logout", mock.Anything).Return(nil).Once()
	app := store.NewApp(backend, store.NewMemorySessionStorage(), testLogger())
	require.NoError(t, app.Login(context.Background(), "maria@crm.com", "segredo123"))

	app.Logout(context.Background())

	assert.False(t, app.Auth.IsAuthenticated())
	assert.Empty(t, app.Leads.AllLeads())
	backend.AssertExpectations(t)
}
