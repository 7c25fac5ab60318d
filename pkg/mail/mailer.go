package mail

import (
	"fmt"
	"log"

	gomail "github.com/wneessen/go-mail"
)

// Mailer delivers outbound mail. Delivery is an external collaborator; the
// rest of the system only depends on this interface.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTP(host string, port int, user, pass, from string) Mailer {
	return &smtpMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.user),
		gomail.WithPassword(m.pass),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

type logMailer struct{}

// NewLog returns a mailer that only logs, for development without SMTP.
func NewLog() Mailer { return &logMailer{} }

func (logMailer) Send(to, subject, body string) error {
	log.Printf("[mail] (not sent) to=%s subject=%q body=%q", to, subject, body)
	return nil
}
