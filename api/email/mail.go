package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
)

type Email struct {
	ToAddr   string `json:"to_addr"`
	Subject  string `json:"subject"`
	Template string `json:"template"`
	Vars     any    `json:"vars"`
}

func SendHTMLEmail(to []string, subject, htmlBody string) error {
	from := os.Getenv("FROM_EMAIL")
	password := os.Getenv("FROM_EMAIL_PASSWORD")
	smtpAddr := os.Getenv("SMTP_ADDR")
	smtpPort := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, smtpAddr)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	return smtp.SendMail(
		smtpAddr+":"+smtpPort,
		auth,
		from,
		to,
		[]byte(msg.String()),
	)
}

func parseTemplate(data Email) (bytes.Buffer, error) {

	tmplDir := os.Getenv("TEMPLATES_DIR")
	if tmplDir == "" {
		tmplDir = "./api/email/templates"
	}

	templatePath := filepath.Join(tmplDir, data.Template+".html")

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("error parsing template: %v", err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data.Vars); err != nil {
		return bytes.Buffer{}, fmt.Errorf("error executing template: %v", err)
	}

	return rendered, nil
}

func (e Email) SendTemplateEmail() error {

	to := strings.Split(e.ToAddr, ",")

	rendered, err := parseTemplate(e)
	if err != nil {
		return err
	}

	return SendHTMLEmail(to, e.Subject, rendered.String())
}
