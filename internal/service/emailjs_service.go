package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const EmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

type EmailServiceInterface interface {
	Send(ctx context.Context, req EmailRequest, privateKey string) error
}

type EmailJSService struct {
	Endpoint string
	client   *resty.Client
}

// NewEmailJSService targets endpoint, or the public EmailJS API when empty.
func NewEmailJSService(endpoint string) *EmailJSService {
	if endpoint == "" {
		endpoint = EmailJSEndpoint
	}
	return &EmailJSService{
		Endpoint: endpoint,
		client:   resty.New(),
	}
}

// Send makes a single POST; anything outside 2xx is an error carrying the
// status and body.
func (s *EmailJSService) Send(ctx context.Context, req EmailRequest, privateKey string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(privateKey).
		SetBody(req).
		Post(s.Endpoint)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body := resp.String()
		if body == "" {
			body = "Unknown error"
		}
		return fmt.Errorf("EmailJS responded with %d: %s", resp.StatusCode(), body)
	}
	return nil
}
