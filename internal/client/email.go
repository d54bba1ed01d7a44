package client

import (
	"context"
	"fmt"

	"github.com/mylinked/backend/pkg/api"
)

// EmailCaller talks to the transactional mail provider.
type EmailCaller interface {
	Send(ctx context.Context, sender, recipient, subject, htmlBody string) error
}

type emailCaller struct {
	generator api.Generator
	apiKey    string
}

func NewEmailCaller(generator api.Generator, apiKey string) *emailCaller {
	return &emailCaller{generator: generator, apiKey: apiKey}
}

func (c *emailCaller) Send(ctx context.Context, sender, recipient, subject, htmlBody string) error {
	resp, err := c.generator.New("/v3/mail/send").
		Header("Authorization", "Bearer "+c.apiKey).
		Body(api.JSON{
			"from":    api.JSON{"email": sender},
			"subject": subject,
			"personalizations": []api.JSON{
				{"to": []api.JSON{{"email": recipient}}},
			},
			"content": []api.JSON{
				{"type": "text/html", "value": htmlBody},
			},
		}).
		POST(ctx)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return fmt.Errorf("mail provider responded with status %d", resp.Code)
	}

	return nil
}
