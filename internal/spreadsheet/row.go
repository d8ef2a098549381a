// Package spreadsheet читает и пишет лиды в CSV и XLSX с фиксированным заголовком.
package spreadsheet

import (
	"errors"
	"strconv"
	"strings"

	"mini-crm/internal/domain"
	"mini-crm/internal/format"
)

// Header задает порядок колонок файла.
var Header = []string{"Nome", "Email", "Telefone", "Empresa", "Status", "Origem", "Valor", "Data de Criação"}

// aliases сопоставляет альтернативные заголовки с каноническими.
var aliases = map[string]string{
	"name":            "Nome",
	"telefone":        "Telefone",
	"phone":           "Telefone",
	"company":         "Empresa",
	"source":          "Origem",
	"value":           "Valor",
	"valor (r$)":      "Valor",
	"created_at":      "Data de Criação",
	"data de criacao": "Data de Criação",
	"e-mail":          "Email",
}

// Row представляет одну строку файла.
type Row struct {
	Name      string `csv:"Nome"`
	Email     string `csv:"Email"`
	Phone     string `csv:"Telefone"`
	Company   string `csv:"Empresa"`
	Status    string `csv:"Status"`
	Source    string `csv:"Origem"`
	Value     string `csv:"Valor"`
	CreatedAt string `csv:"Data de Criação"`

	// Line номер строки в файле, заголовок находится на строке 1.
	Line int `csv:"-"`
}

// FromLead преобразует лид в строку экспорта.
func FromLead(l *domain.Lead) Row {
	row := Row{
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		Status:    l.Status.Label(),
		Source:    l.Source.Label(),
		CreatedAt: format.FormatDate(l.CreatedAt),
	}
	if l.Value != nil {
		row.Value = strconv.FormatFloat(*l.Value, 'f', 2, 64)
	}
	return row
}

func (r Row) values() []string {
	return []string{r.Name, r.Email, r.Phone, r.Company, r.Status, r.Source, r.Value, r.CreatedAt}
}

// Input преобразует строку во входные данные лида. Пустые статус и источник
// заменяются значениями по умолчанию, неизвестные значения считаются ошибкой.
func (r Row) Input() (domain.LeadInput, error) {
	in := domain.LeadInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
	}

	var errs domain.ValidationErrors
	if s := strings.TrimSpace(r.Status); s != "" {
		status, ok := format.ParseStatus(s)
		if !ok {
			errs = append(errs, domain.ValidationError{Field: "status", Message: "unknown status " + strconv.Quote(s)})
		}
		in.Status = domain.LeadStatus(status)
	}
	if s := strings.TrimSpace(r.Source); s != "" {
		source, ok := format.ParseSource(s)
		if !ok {
			errs = append(errs, domain.ValidationError{Field: "source", Message: "unknown source " + strconv.Quote(s)})
		}
		in.Source = domain.LeadSource(source)
	}
	if s := strings.TrimSpace(r.Value); s != "" {
		v, err := format.ParseCurrency(s)
		if err != nil {
			errs = append(errs, domain.ValidationError{Field: "value", Message: "is not a number"})
		} else {
			in.Value = &v
		}
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			errs = append(errs, verrs...)
		}
	}
	if len(errs) > 0 {
		return in, dedupe(errs)
	}
	return in, nil
}

// dedupe оставляет первую ошибку по каждому полю.
func dedupe(errs domain.ValidationErrors) domain.ValidationErrors {
	seen := make(map[string]struct{}, len(errs))
	out := errs[:0]
	for _, e := range errs {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		out = append(out, e)
	}
	return out
}

func canonicalHeader(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	for _, h := range Header {
		if strings.EqualFold(name, h) {
			return h
		}
	}
	if h, ok := aliases[strings.ToLower(name)]; ok {
		return h
	}
	return name
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
