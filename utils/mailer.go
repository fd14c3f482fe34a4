package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var mailClient *ses.Client

func sesClient() (*ses.Client, error) {
	if mailClient != nil {
		return mailClient, nil
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	mailClient = ses.NewFromConfig(cfg)
	return mailClient, nil
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := sesClient()
	if err != nil {
		return err
	}

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
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendResetEmail delivers a password reset code to a nutritionist account.
func SendResetEmail(to string, token string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", token)
	return sendEmail(to, subject, body)
}

// SendShareEmail delivers a diet's public view link to the client.
func SendShareEmail(to, clientName, dietName, link string) error {
	subject := fmt.Sprintf("Your diet plan: %s", dietName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour nutritionist shared the plan %q with you.\nView it here: %s\n\nNo account is needed.",
		clientName, dietName, link,
	)
	return sendEmail(to, subject, body)
}
