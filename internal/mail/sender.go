package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"mini-crm/internal/domain"

	"gopkg.in/gomail.v2"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<p>Olá, {{.Name}}!</p>
<p>Sua conta no Mini CRM foi criada com o email <strong>{{.Email}}</strong>.</p>
<p>Agora você já pode cadastrar leads e acompanhar o funil de vendas.</p>`))

// EmailSender отправляет письма через SMTP.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailSender создает новый экземпляр EmailSender.
func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// SendWelcome отправляет приветственное письмо новому пользователю.
func (s *EmailSender) SendWelcome(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := welcomeMessage(s.from, user)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func welcomeMessage(from string, user *domain.User) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, user); err != nil {
		return nil, fmt.Errorf("failed to render welcome email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetAddressHeader("To", user.Email, user.Name)
	m.SetHeader("Subject", fmt.Sprintf("Bem-vindo ao Mini CRM, %s!", user.Name))
	m.SetBody("text/html", body.String())
	return m, nil
}

// NopSender используется, когда SMTP не настроен.
type NopSender struct{}

func (NopSender) SendWelcome(context.Context, *domain.User) error { return nil }
