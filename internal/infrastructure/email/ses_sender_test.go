package email

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"requisicoes/internal/usecase/interfaces"
)

type fakeSES struct {
	in *sesv2.SendEmailInput
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	return &sesv2.SendEmailOutput{}, nil
}

func TestSESSender_Send(t *testing.T) {
	t.Run("missing from", func(t *testing.T) {
		s := NewSESSender(&fakeSES{}, " ")
		if err := s.Send(context.Background(), interfaces.EmailMessage{To: "a@b.com"}); !errors.Is(err, ErrMissingSender) {
			t.Fatalf("expected ErrMissingSender, got %v", err)
		}
	})

	t.Run("builds message", func(t *testing.T) {
		f := &fakeSES{}
		s := NewSESSender(f, "compras@empresa.com")
		err := s.Send(context.Background(), interfaces.EmailMessage{To: "ana@empresa.com", Subject: "S", HTML: "<p>h</p>", Text: "h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(f.in.FromEmailAddress) != "compras@empresa.com" || f.in.Destination.ToAddresses[0] != "ana@empresa.com" {
			t.Fatalf("unexpected input %+v", f.in)
		}
		if aws.ToString(f.in.Content.Simple.Subject.Data) != "S" || aws.ToString(f.in.Content.Simple.Body.Text.Data) != "h" {
			t.Fatalf("unexpected content")
		}
	})
}
