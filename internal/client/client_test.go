package client_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mini-crm/api"
	"mini-crm/internal/auth"
	"mini-crm/internal/client"
	"mini-crm/internal/domain"
	"mini-crm/internal/handler"
	"mini-crm/internal/mocks"
	"mini-crm/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var user = &domain.User{ID: "7d9c3b1e-1111-4222-8333-944455556666", Name: "Maria", Email: "maria@crm.com"}

const leadID = "0b6f4a52-8c1e-4f77-9d3a-2f1f5a1c9e01"

type env struct {
	client   *client.Client
	auth     *mocks.AuthUseCase
	leads    *mocks.LeadUseCase
	transfer *mocks.TransferUseCase
	server   *httptest.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := &env{
		auth:     &mocks.AuthUseCase{},
		leads:    &mocks.LeadUseCase{},
		transfer: &mocks.TransferUseCase{},
	}
	router := echo.New()
	router.HTTPErrorHandler = handler.ErrorHandler(logger)
	router.Use(auth.Middleware(e.auth, logger, "/auth/login", "/auth/register"))
	api.RegisterHandlers(router, handler.NewAPIHandler(e.auth, e.leads, e.transfer, 1<<20, logger))

	e.server = httptest.NewServer(router)
	e.client = client.New(e.server.URL, client.WithToken("tok"))
	e.auth.On("CurrentUser", mock.Anything, "tok").Return(user, nil).Maybe()

	t.Cleanup(func() {
		e.server.Close()
		e.auth.AssertExpectations(t)
		e.leads.AssertExpectations(t)
		e.transfer.AssertExpectations(t)
	})
	return e
}

func TestClient_LoginReturnsSession(t *testing.T) {
	e := newEnv(t)
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	e.auth.On("Login", mock.Anything, "maria@crm.com", "segredo123").
		Return(&domain.Session{Token: "new-token", User: user, ExpiresAt: expires}, nil).Once()

	session, err := e.client.Login(context.Background(), "maria@crm.com", "segredo123")

	require.NoError(t, err)
	assert.Equal(t, "new-token", session.Token)
	assert.Equal(t, user.ID, session.User.ID)
	assert.True(t, expires.Equal(session.ExpiresAt))
}

func TestClient_MapsDomainErrors(t *testing.T) {
	e := newEnv(t)
	e.auth.On("Login", mock.Anything, "maria@crm.com", "errada").Return(nil, domain.ErrInvalidCredentials).Once()
	e.auth.On("Register", mock.Anything, "Maria", "maria@crm.com", "segredo123").Return(nil, domain.ErrEmailAlreadyRegistered).Once()
	e.leads.On("GetLead", mock.Anything, leadID).Return(nil, domain.ErrLeadNotFound).Once()

	_, err := e.client.Login(context.Background(), "maria@crm.com", "errada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = e.client.Register(context.Background(), "Maria", "maria@crm.com", "segredo123")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)

	_, err = e.client.GetLead(context.Background(), leadID)
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}

func TestClient_ExpiredSessionIsSessionInvalid(t *testing.T) {
	e := newEnv(t)
	e.auth.On("CurrentUser", mock.Anything, "old").Return(nil, domain.ErrSessionInvalid).Once()
	e.client.SetToken("old")

	_, err := e.client.CurrentUser(context.Background())

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestClient_ValidationErrorsKeepFields(t *testing.T) {
	e := newEnv(t)
	e.leads.On("CreateLead", mock.Anything, mock.Anything, user.ID).Return(nil, domain.ValidationErrors{
		{Field: "email", Message: "is invalid"},
		{Field: "phone", Message: "is required"},
	}).Once()

	_, err := e.client.CreateLead(context.Background(), domain.LeadInput{Name: "Ana", Email: "x"})

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"email", "phone"}, verrs.Fields())
	assert.Equal(t, "is invalid", verrs[0].Message)
	assert.Equal(t, "is required", verrs[1].Message)
}

func TestClient_TransportError(t *testing.T) {
	e := newEnv(t)
	e.server.Close()

	_, err := e.client.ListLeads(context.Background(), domain.LeadFilters{})

	var te *client.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "list_leads", te.Op)
	assert.True(t, client.IsTransport(err))
}

func TestClient_ServerFailureIsTransport(t *testing.T) {
	e := newEnv(t)
	e.leads.On("GetLead", mock.Anything, leadID).Return(nil, errors.New("pq: connection reset")).Once()

	_, err := e.client.GetLead(context.Background(), leadID)

	assert.True(t, client.IsTransport(err))
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, domain.CodeInternal, apiErr.Code)
}

func TestAuthStore_InitKeepsSessionWhenServerCannotLoadUser(t *testing.T) {
	e := newEnv(t)
	e.auth.On("CurrentUser", mock.Anything, "stored").
		Return(nil, errors.New("failed to get user: connection refused")).Once()
	storage := store.NewMemorySessionStorage()
	require.NoError(t, storage.Save(&store.StoredSession{Token: "stored", User: *user}))
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := store.NewAuthStore(e.client, storage, logger)

	err := s.Init(context.Background())

	assert.True(t, client.IsTransport(err))
	assert.False(t, s.IsAuthenticated())
	stored, loadErr := storage.Load()
	require.NoError(t, loadErr)
	require.NotNil(t, stored)
	assert.Equal(t, "stored", stored.Token)
}

func TestClient_FiltersRoundTrip(t *testing.T) {
	e := newEnv(t)
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC)
	filters := domain.LeadFilters{
		Search:   "Silva",
		Status:   []domain.LeadStatus{domain.StatusProposal},
		Source:   []domain.LeadSource{domain.SourceSocial, domain.SourceEvent},
		DateFrom: &from,
		DateTo:   &to,
	}
	e.leads.On("ListLeads", mock.Anything, mock.MatchedBy(func(f domain.LeadFilters) bool {
		return f.Search == "Silva" &&
			len(f.Status) == 1 && f.Status[0] == domain.StatusProposal &&
			len(f.Source) == 2 && f.Source[0] == domain.SourceSocial &&
			f.DateFrom.Equal(from) && f.DateTo.Equal(to)
	})).Return([]*domain.Lead{}, nil).Once()

	leads, err := e.client.ListLeads(context.Background(), filters)

	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestClient_PatchSendsOnlySetFields(t *testing.T) {
	e := newEnv(t)
	empty := ""
	status := domain.StatusLost
	e.leads.On("UpdateLead", mock.Anything, leadID, mock.MatchedBy(func(p domain.LeadPatch) bool {
		return p.Observations != nil && *p.Observations == "" && p.Status != nil && *p.Status == domain.StatusLost &&
			p.Name == nil && p.Tags == nil
	}), user.ID).Return(&domain.Lead{ID: leadID, Status: domain.StatusLost}, nil).Once()

	lead, err := e.client.UpdateLead(context.Background(), leadID, domain.LeadPatch{Observations: &empty, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusLost, lead.Status)
	assert.NotNil(t, lead.Tags)
}

func TestClient_ImportAndExport(t *testing.T) {
	e := newEnv(t)
	e.transfer.On("ImportLeads", mock.Anything, mock.Anything, domain.FormatCSV, user.ID).
		Return(&domain.ImportReport{Total: 1, Created: 1, Failures: []domain.ImportFailure{}}, nil).Once()
	e.transfer.On("ExportLeads", mock.Anything, mock.Anything, domain.FormatCSV, domain.LeadFilters{}).
		Return(func(_ context.Context, w io.Writer, _ domain.FileFormat, _ domain.LeadFilters) error {
			_, err := io.WriteString(w, "Nome,Email\n")
			return err
		}).Once()

	report, err := e.client.ImportLeads(context.Background(), strings.NewReader("Nome,Email\nAna,a@b.com\n"), "leads.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)

	var buf bytes.Buffer
	require.NoError(t, e.client.ExportLeads(context.Background(), &buf, domain.FormatCSV, domain.LeadFilters{}))
	assert.Equal(t, "Nome,Email\n", buf.String())
}
