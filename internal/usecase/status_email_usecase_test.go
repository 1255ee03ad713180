package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
	mock_interfaces "requisicoes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatusEmailUseCase_Send(t *testing.T) {
	catalog := entities.DefaultStatusCatalog()
	delivery := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	email := StatusEmail{
		To:               "ana@empresa.com",
		RequesterName:    "Ana",
		ItemName:         "Notebook",
		Protocol:         "REQ-2025-ABC123",
		Status:           entities.StatusEmEntrega,
		BuyerName:        "Carlos",
		ExpectedDelivery: &delivery,
	}

	t.Run("invalid recipient", func(t *testing.T) {
		uc := NewStatusEmailUseCase(nil, catalog, "", nil, quietLogger())
		e := email
		e.To = "ana"
		if _, err := uc.Send(context.Background(), e); !errors.Is(err, ErrInvalidEmailRecipient) {
			t.Fatalf("expected ErrInvalidEmailRecipient, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewStatusEmailUseCase(nil, catalog, "", nil, quietLogger())
		e := email
		e.Status = "x"
		if _, err := uc.Send(context.Background(), e); !errors.Is(err, ErrInvalidEmailStatus) {
			t.Fatalf("expected ErrInvalidEmailStatus, got %v", err)
		}
	})

	t.Run("not configured is a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		metrics.EXPECT().EmailResult(EmailResultSkipped)

		uc := NewStatusEmailUseCase(nil, catalog, "", metrics, quietLogger())
		out, err := uc.Send(context.Background(), email)
		if err != nil || out.Sent || out.Warning == "" {
			t.Fatalf("unexpected outcome %+v err=%v", out, err)
		}
	})

	t.Run("send failure is a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("MessageRejected: Email address is not verified"))

		uc := NewStatusEmailUseCase(sender, catalog, "", nil, quietLogger())
		out, err := uc.Send(context.Background(), email)
		if err != nil || out.Sent || out.Warning == "" {
			t.Fatalf("unexpected outcome %+v err=%v", out, err)
		}
	})

	t.Run("renders content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.EmailMessage) error {
			if msg.To != "ana@empresa.com" {
				t.Fatalf("unexpected recipient %s", msg.To)
			}
			if msg.Subject != "Requisição REQ-2025-ABC123: Em Entrega" {
				t.Fatalf("unexpected subject %q", msg.Subject)
			}
			for _, want := range []string{"Ana", "Notebook", "Em Entrega", "Carlos", "02/04/2025", "https://app.test/requisicoes"} {
				if !strings.Contains(msg.HTML, want) {
					t.Fatalf("html missing %q:\n%s", want, msg.HTML)
				}
			}
			if !strings.Contains(msg.Text, "Em Entrega") {
				t.Fatalf("unexpected text %q", msg.Text)
			}
			return nil
		})

		uc := NewStatusEmailUseCase(sender, catalog, "https://app.test/", nil, quietLogger())
		out, err := uc.Send(context.Background(), email)
		if err != nil || !out.Sent || out.Warning != "" {
			t.Fatalf("unexpected outcome %+v err=%v", out, err)
		}
	})

	t.Run("rejection reason included", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.EmailMessage) error {
			if !strings.Contains(msg.HTML, "Motivo: fora do escopo") || !strings.Contains(msg.Text, "fora do escopo") {
				t.Fatalf("rejection reason missing")
			}
			return nil
		})

		e := EmailFromRequisition(entities.Requisition{
			Protocol:        "REQ-2025-000001",
			ItemName:        "Cadeira",
			Status:          entities.StatusRejeitado,
			RejectionReason: "fora do escopo",
			Requester:       entities.Requester{Email: "ana@empresa.com"},
		})
		uc := NewStatusEmailUseCase(sender, catalog, "", nil, quietLogger())
		if out, err := uc.Send(context.Background(), e); err != nil || !out.Sent {
			t.Fatalf("unexpected outcome %+v err=%v", out, err)
		}
	})
}
