package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"mini-crm/api"
	"mini-crm/internal/domain"
)

const dateLayout = "2006-01-02"

func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	var resp struct {
		Session api.Session `json:"session"`
	}
	req := api.PostAuthRegisterJSONRequestBody{Name: name, Email: email, Password: password}
	if err := c.doJSON(ctx, "register", http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return fromAPISession(resp.Session), nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp struct {
		Session api.Session `json:"session"`
	}
	req := api.PostAuthLoginJSONRequestBody{Email: email, Password: password}
	if err := c.doJSON(ctx, "login", http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return fromAPISession(resp.Session), nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, "logout", http.MethodPost, "/auth/logout", nil, nil, nil)
}

// CurrentUser проверяет текущий токен и возвращает пользователя сессии.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var resp struct {
		User api.User `json:"user"`
	}
	if err := c.doJSON(ctx, "current_user", http.MethodGet, "/auth/session", nil, nil, &resp); err != nil {
		return nil, err
	}
	return fromAPIUser(resp.User), nil
}

func (c *Client) ListLeads(ctx context.Context, filters domain.LeadFilters) ([]*domain.Lead, error) {
	var resp struct {
		Leads []api.Lead `json:"leads"`
	}
	if err := c.doJSON(ctx, "list_leads", http.MethodGet, "/leads", filterQuery(filters), nil, &resp); err != nil {
		return nil, err
	}
	leads := make([]*domain.Lead, len(resp.Leads))
	for i, l := range resp.Leads {
		leads[i] = fromAPILead(l)
	}
	return leads, nil
}

func (c *Client) GetLead(ctx context.Context, leadID string) (*domain.Lead, error) {
	return c.leadCall(ctx, "get_lead", http.MethodGet, leadPath(leadID), nil)
}

func (c *Client) CreateLead(ctx context.Context, input domain.LeadInput) (*domain.Lead, error) {
	return c.leadCall(ctx, "create_lead", http.MethodPost, "/leads", toAPILeadCreate(input))
}

func (c *Client) UpdateLead(ctx context.Context, leadID string, patch domain.LeadPatch) (*domain.Lead, error) {
	return c.leadCall(ctx, "update_lead", http.MethodPatch, leadPath(leadID), toAPILeadUpdate(patch))
}

func (c *Client) DeleteLead(ctx context.Context, leadID string) error {
	return c.doJSON(ctx, "delete_lead", http.MethodDelete, leadPath(leadID), nil, nil, nil)
}

func (c *Client) AddInteraction(ctx context.Context, leadID string, interactionType domain.InteractionType, description string) (*domain.Lead, error) {
	req := api.PostLeadsIdInteractionsJSONRequestBody{
		Type:        api.InteractionType(interactionType),
		Description: description,
	}
	return c.leadCall(ctx, "add_interaction", http.MethodPost, leadPath(leadID)+"/interactions", req)
}

func (c *Client) MoveLead(ctx context.Context, leadID string, status domain.LeadStatus) (*domain.Lead, error) {
	req := api.PutLeadsIdStatusJSONRequestBody{Status: api.LeadStatus(status)}
	return c.leadCall(ctx, "move_lead", http.MethodPut, leadPath(leadID)+"/status", req)
}

func (c *Client) GetPipeline(ctx context.Context, filters domain.LeadFilters) ([]domain.PipelineColumn, error) {
	var resp struct {
		Columns []api.PipelineColumn `json:"columns"`
	}
	if err := c.doJSON(ctx, "get_pipeline", http.MethodGet, "/pipeline", filterQuery(filters), nil, &resp); err != nil {
		return nil, err
	}
	columns := make([]domain.PipelineColumn, len(resp.Columns))
	for i, col := range resp.Columns {
		leads := make([]*domain.Lead, len(col.Leads))
		for j, l := range col.Leads {
			leads[j] = fromAPILead(l)
		}
		columns[i] = domain.PipelineColumn{
			Status: domain.LeadStatus(col.Status),
			Label:  col.Label,
			Color:  col.Color,
			Leads:  leads,
			Total:  col.Total,
		}
	}
	return columns, nil
}

// ImportLeads загружает файл; формат определяется сервером по имени файла.
func (c *Client) ImportLeads(ctx context.Context, r io.Reader, filename string) (*domain.ImportReport, error) {
	const op = "import_leads"

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("%s: read file: %w", op, err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/leads/import", nil, &body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.send(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Report api.ImportReport `json:"report"`
	}
	if err := decodeBody(resp.Body, &payload); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return fromAPIImportReport(payload.Report), nil
}

// ExportLeads скачивает выгрузку сервера в w.
func (c *Client) ExportLeads(ctx context.Context, w io.Writer, format domain.FileFormat, filters domain.LeadFilters) error {
	const op = "export_leads"

	query := filterQuery(filters)
	query.Set("format", string(format))
	req, err := c.newRequest(ctx, http.MethodGet, "/leads/export", query, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	resp, err := c.send(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) leadCall(ctx context.Context, op, method, path string, in interface{}) (*domain.Lead, error) {
	var resp struct {
		Lead api.Lead `json:"lead"`
	}
	if err := c.doJSON(ctx, op, method, path, nil, in, &resp); err != nil {
		return nil, err
	}
	return fromAPILead(resp.Lead), nil
}

func leadPath(leadID string) string {
	return "/leads/" + url.PathEscape(leadID)
}

func filterQuery(f domain.LeadFilters) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for _, s := range f.Status {
		q.Add("status", string(s))
	}
	for _, s := range f.Source {
		q.Add("source", string(s))
	}
	if f.DateFrom != nil {
		q.Set("date_from", f.DateFrom.Format(dateLayout))
	}
	if f.DateTo != nil {
		q.Set("date_to", f.DateTo.Format(dateLayout))
	}
	if f.AssignedTo != "" {
		q.Set("assigned_to", f.AssignedTo)
	}
	return q
}
