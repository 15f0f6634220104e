package mail

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailService struct {
	dialer *gomail.Dialer
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	return &MailService{
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

// Configured reports whether SMTP settings are present; when they are
// not, mail sending is skipped instead of failing registration.
func (m *MailService) Configured() bool {
	return os.Getenv("SMTP_HOST") != ""
}

func (m *MailService) SendActivationMail(to, activationLink string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", os.Getenv("SMTP_USER"))
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Activate your meal planner account")
	message.SetBody("text/html", `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f5f5f5;">
			<h2 style="color: #333; text-align: center;">Welcome to your meal planner</h2>
			<p>Hello,</p>
			<p>To finish setting up your account, follow the link below:</p>
			<p style="text-align: center;"><a href="`+activationLink+`" style="display: inline-block; padding: 10px 20px; background-color: #007bff; color: #fff; text-decoration: none; border-radius: 5px;">Activate account</a></p>
			<p>If you did not register, you can ignore this mail.</p>
		</div>
	`)
	return m.dialer.DialAndSend(message)
}
