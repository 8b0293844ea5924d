package utils

import (
	"fmt"
	"log"

	"entropy/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail greets a new user. Failures are logged only; signup
// never depends on email delivery.
func SendWelcomeEmail(email, name string) {
	if config.AppConfig.SendGridKey == "" {
		return
	}

	from := mail.NewEmail("Entropy Productions", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	subject := "Welcome to Entropy Productions!"

	plainText := fmt.Sprintf("Hi %s, your account is ready. Browse the catalog and enroll in your first module!", name)
	htmlBody := getEmailTemplate("Welcome aboard!", fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account is ready. Browse the catalog and enroll in your first module in Design, Filmmaking or Music.</p>
		<a class="btn" href="https://entropyproductions.site">Start Learning</a>
	`, name))

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)

	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
		return
	}
	if response.StatusCode >= 400 {
		log.Printf("Welcome email to %s rejected: %d %s", email, response.StatusCode, response.Body)
	}
}

// getEmailTemplate wraps body content in the platform mail layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #0D0D0D; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #1A1A1A; border-radius: 8px; overflow: hidden; }
			.header { background-color: #111111; padding: 30px; text-align: center; }
			.header h1 { color: #F2F2F2; margin: 0; font-size: 24px; letter-spacing: 2px; }
			.content { padding: 40px 30px; color: #E0E0E0; line-height: 1.6; }
			.content h2 { color: #FFFFFF; margin-top: 0; }
			.footer { background-color: #111111; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #7C4DFF; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ENTROPY PRODUCTIONS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Entropy Productions. Learning for teens, by teens.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
