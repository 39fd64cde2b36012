package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/mpradela/managme/internal/models"
)

type MailConfig struct {
	Enabled bool
	Host    string
	Port    string
	User    string
	Pass    string
	From    string
}

// Mailer delivers password-reset links. Sending is fire-and-await: no
// retries, no queue, a failure becomes the caller's error.
type Mailer interface {
	SendPasswordReset(to string, language string, resetLink string) error
}

type MailService struct {
	config MailConfig
}

func NewMailService(config MailConfig) *MailService {
	return &MailService{config: config}
}

func (service *MailService) SendPasswordReset(to string, language string, resetLink string) error {
	subject, body := passwordResetMessage(language, resetLink)

	if !service.config.Enabled {
		log.Printf("mail disabled, password reset link for %s: %s", to, resetLink)
		return nil
	}

	addr := service.config.Host + ":" + service.config.Port
	message := "From: " + service.config.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body

	var auth smtp.Auth
	if service.config.User != "" {
		auth = smtp.PlainAuth("", service.config.User, service.config.Pass, service.config.Host)
	}

	if err := smtp.SendMail(addr, auth, service.config.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func passwordResetMessage(language string, resetLink string) (string, string) {
	if language == models.LanguageEN {
		subject := "ManagMe - Password reset"
		body := fmt.Sprintf("To reset your password, open the link below (valid for 1 hour):\n\n%s\n", resetLink)
		return subject, body
	}

	subject := "ManagMe - Resetowanie hasła"
	body := fmt.Sprintf("Aby zresetować hasło, kliknij w poniższy link (ważny 1 godzinę):\n\n%s\n", resetLink)
	return subject, body
}
