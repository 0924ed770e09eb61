package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer struct {
	client *ses.Client
	sender string
}

func NewMailer(region, sender string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SES: %w", err)
	}
	return &Mailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

func (m *Mailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func (m *Mailer) SendWelcomeEmail(to, name, uniqueCode string) error {
	subject := "Welcome to FoodKcalCheck"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Your personal code is %s.\n\nStart logging meals to track your daily calories.", name, uniqueCode)
	return m.send(to, subject, body)
}
