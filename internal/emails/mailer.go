package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const relayAPI = "https://api.brevo.com/v3/smtp/email"

// Sender delivers the account emails (verification code). Nil = no-op,
// which is what tests and local dev without mail credentials use.
type Sender interface {
	SendVerificationCode(ctx context.Context, toEmail, name, code string) error
}

// sendRequest matches the relay API v3 transactional email body.
type sendRequest struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

type party struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// RelayClient sends emails through the HTTP relay. Replaces the Express
// nodemailer/Gmail transporter; same EMAIL_USER / EMAIL_PASS env contract.
type RelayClient struct {
	APIKey string // EMAIL_PASS
	From   string // MAIL_FROM, falling back to EMAIL_USER
	Client *http.Client
}

func (c *RelayClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (c *RelayClient) send(ctx context.Context, toEmail, subject, html string) error {
	if c.APIKey == "" {
		return nil
	}
	body := sendRequest{
		Sender:      party{Email: c.From, Name: "法拍案件管理"},
		To:          []party{{Email: toEmail}},
		Subject:     subject,
		HTMLContent: html,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, relayAPI, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("email relay returned %d", resp.StatusCode)
	}
	return nil
}

// SendVerificationCode emails the 6-digit code used by verify-email.
func (c *RelayClient) SendVerificationCode(ctx context.Context, toEmail, name, code string) error {
	html := fmt.Sprintf(`<p>%s 您好，</p><p>您的驗證碼是：<b>%s</b></p><p>驗證碼將於 30 分鐘後失效。</p>`, name, code)
	return c.send(ctx, toEmail, "電子郵件驗證碼", html)
}
