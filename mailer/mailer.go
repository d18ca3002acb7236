package mailer

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional emails the user flows depend on.
type Mailer interface {
	SendVerificationEmail(to, code string) error
	SendWelcomeEmail(to, name string) error
	SendPasswordResetEmail(to, resetURL string) error
	SendResetSuccessEmail(to string) error
}

// SMTPMailer delivers mail over SMTP (Mailtrap in development).
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (m *SMTPMailer) send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendVerificationEmail(to, code string) error {
	return m.send(to, "Verify your email", verificationEmailHTML(code))
}

func (m *SMTPMailer) SendWelcomeEmail(to, name string) error {
	return m.send(to, "Welcome to FastBites", welcomeEmailHTML(name))
}

func (m *SMTPMailer) SendPasswordResetEmail(to, resetURL string) error {
	return m.send(to, "Reset your password", passwordResetEmailHTML(resetURL))
}

func (m *SMTPMailer) SendResetSuccessEmail(to string) error {
	return m.send(to, "Password Reset Successfully", resetSuccessEmailHTML())
}
