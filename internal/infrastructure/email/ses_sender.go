package email

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"requisicoes/internal/usecase/interfaces"
)

var ErrMissingSender = errors.New("email sender address not configured")

// SendEmailAPI is the subset of *sesv2.Client used by the sender.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender delivers status emails through Amazon SES.
type SESSender struct {
	client SendEmailAPI
	from   string
}

var _ interfaces.IEmailSender = (*SESSender)(nil)

func NewSESSender(client SendEmailAPI, from string) *SESSender {
	return &SESSender{client: client, from: strings.TrimSpace(from)}
}

func (s *SESSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if s.from == "" {
		return ErrMissingSender
	}
	body := &types.Body{
		Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
	}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	})
	return err
}
