package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/domain/lifecycle"
	"requisicoes/internal/domain/wizard"
	"requisicoes/internal/usecase/interfaces"
	mock_interfaces "requisicoes/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type requisitionMocks struct {
	repo    *mock_interfaces.MockIRequisitionRepository
	history *mock_interfaces.MockIValueHistoryRepository
	storage *mock_interfaces.MockIAttachmentStorage
	feed    *mock_interfaces.MockIChangeFeed
	metrics *mock_interfaces.MockIMetricsRecorder
	sender  *mock_interfaces.MockIEmailSender
}

func newRequisitionUseCase(t *testing.T) (*RequisitionUseCase, requisitionMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := requisitionMocks{
		repo:    mock_interfaces.NewMockIRequisitionRepository(ctrl),
		history: mock_interfaces.NewMockIValueHistoryRepository(ctrl),
		storage: mock_interfaces.NewMockIAttachmentStorage(ctrl),
		feed:    mock_interfaces.NewMockIChangeFeed(ctrl),
		metrics: mock_interfaces.NewMockIMetricsRecorder(ctrl),
		sender:  mock_interfaces.NewMockIEmailSender(ctrl),
	}
	catalog := entities.DefaultStatusCatalog()
	uc := NewRequisitionUseCase(RequisitionDeps{
		Repo:    m.repo,
		History: m.history,
		Storage: m.storage,
		Feed:    m.feed,
		Email:   NewStatusEmailUseCase(m.sender, catalog, "https://app.test", nil, quietLogger()),
		Catalog: catalog,
		Metrics: m.metrics,
		Logger:  quietLogger(),
	})
	uc.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func validPayload() wizard.Payload {
	return wizard.Payload{Draft: wizard.Draft{
		RequesterName:  "Ana Souza",
		RequesterEmail: "Ana@Empresa.com",
		Department:     "TI",
		ItemName:       "Notebook",
		Quantity:       1,
		Unit:           "un",
		Priority:       entities.PriorityAlta,
		Justification:  "Equipamento atual sem garantia",
	}}
}

func returnArg(_ context.Context, r entities.Requisition) (entities.Requisition, error) {
	return r, nil
}

func TestRequisitionUseCase_Create(t *testing.T) {
	t.Run("validation errors are reported per field", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		p := validPayload()
		p.Draft.Priority = entities.PriorityUrgente

		_, err := uc.Create(context.Background(), p)
		var verr *DraftValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrDraftInvalid) {
			t.Fatalf("expected DraftValidationError, got %v", err)
		}
		if verr.Fields["justification"] == "" {
			t.Fatalf("expected justification error, got %v", verr.Fields)
		}
	})

	t.Run("assigns identity and uploads attachments", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		p := validPayload()
		p.Files = []wizard.File{{Name: "orçamento 1.pdf", ContentType: "application/pdf", Size: 3, Body: bytes.NewBufferString("pdf")}}

		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
				if !strings.HasPrefix(key, "requisitions/") || !strings.HasSuffix(key, "-orçamento_1.pdf") {
					t.Fatalf("unexpected key %s", key)
				}
				b, _ := io.ReadAll(body)
				if string(b) != "pdf" {
					t.Fatalf("unexpected body %q", b)
				}
				return "https://cdn.test/" + key, nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.feed.EXPECT().Publish(gomock.Any()).Do(func(evt entities.ChangeEvent) {
			if evt.Type != entities.ChangeInsert || evt.Old != nil {
				t.Fatalf("unexpected event %+v", evt)
			}
		})

		r, err := uc.Create(context.Background(), p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID == "" || r.Status != entities.StatusPendente {
			t.Fatalf("unexpected record %+v", r)
		}
		if !regexp.MustCompile(`^REQ-2025-[0-9A-F]{6}$`).MatchString(r.Protocol) {
			t.Fatalf("unexpected protocol %s", r.Protocol)
		}
		if r.Requester.Email != "ana@empresa.com" {
			t.Fatalf("email must be normalized, got %s", r.Requester.Email)
		}
		if len(r.Attachments) != 1 || !strings.HasPrefix(r.Attachments[0].Key, "requisitions/"+r.ID+"/") {
			t.Fatalf("unexpected attachments %+v", r.Attachments)
		}
		if r.CreatedAt.IsZero() || r.ApprovedAt != nil {
			t.Fatalf("unexpected milestones %+v", r)
		}
	})

	t.Run("upload failure aborts", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		p := validPayload()
		p.Files = []wizard.File{{Name: "a.png", Body: bytes.NewBufferString("x")}}
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3"))

		if _, err := uc.Create(context.Background(), p); err == nil || !strings.Contains(err.Error(), "s3") {
			t.Fatalf("expected s3 error, got %v", err)
		}
	})
}

func TestRequisitionUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		if _, err := uc.UpdateStatus(context.Background(), "req-1", "perdido", StatusMeta{}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("rejection requires reason", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		if _, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusRejeitado, StatusMeta{RejectionReason: "  "}); !errors.Is(err, ErrRejectionReasonRequired) {
			t.Fatalf("expected ErrRejectionReasonRequired, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{}, nil)
		if _, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusAprovado, StatusMeta{}); !errors.Is(err, ErrRequisitionNotFound) {
			t.Fatalf("expected ErrRequisitionNotFound, got %v", err)
		}
	})

	t.Run("stamps milestone, publishes and counts", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusEmAnalise}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.metrics.EXPECT().StatusTransition(entities.StatusEmAnalise, entities.StatusAprovado)
		m.feed.EXPECT().Publish(gomock.Any()).Do(func(evt entities.ChangeEvent) {
			if evt.Old == nil || evt.Old.Status != entities.StatusEmAnalise || evt.New.Status != entities.StatusAprovado {
				t.Fatalf("unexpected event %+v", evt)
			}
		})

		res, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusAprovado, StatusMeta{BuyerName: "Carlos"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Requisition.ApprovedAt == nil || res.Requisition.BuyerName != "Carlos" {
			t.Fatalf("unexpected record %+v", res.Requisition)
		}
		if res.Warning != "" {
			t.Fatalf("no warning expected, got %q", res.Warning)
		}
	})

	t.Run("email failure becomes warning", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{
			ID: "req-1", Protocol: "REQ-2025-ABC123", Status: entities.StatusCotando,
			Requester: entities.Requester{Email: "ana@empresa.com", Name: "Ana"},
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.metrics.EXPECT().StatusTransition(gomock.Any(), gomock.Any())
		m.feed.EXPECT().Publish(gomock.Any())
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("domain not verified"))

		res, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusComprado, StatusMeta{Notify: true})
		if err != nil {
			t.Fatalf("email failure must not fail the update: %v", err)
		}
		if res.Warning == "" {
			t.Fatalf("expected warning")
		}
		if res.Requisition.PurchasedAt == nil {
			t.Fatalf("expected purchased milestone")
		}
	})

	t.Run("rejection stores reason", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusPendente}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.metrics.EXPECT().StatusTransition(gomock.Any(), gomock.Any())
		m.feed.EXPECT().Publish(gomock.Any())

		res, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusRejeitado, StatusMeta{RejectionReason: "sem orçamento"})
		if err != nil || res.Requisition.RejectionReason != "sem orçamento" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("halted requisition only goes back to pendente", func(t *testing.T) {
		for _, from := range []entities.RequisitionStatus{entities.StatusRejeitado, entities.StatusCancelado} {
			for _, to := range []entities.RequisitionStatus{entities.StatusRecebido, entities.StatusAprovado, entities.StatusCancelado, entities.StatusRejeitado} {
				if to == from {
					continue
				}
				uc, m := newRequisitionUseCase(t)
				m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: from}, nil)

				_, err := uc.UpdateStatus(context.Background(), "req-1", to, StatusMeta{RejectionReason: "motivo"})
				if !errors.Is(err, ErrTerminalStatus) {
					t.Fatalf("%s -> %s: expected ErrTerminalStatus, got %v", from, to, err)
				}
			}
		}
	})

	t.Run("halted requisition keeps its status on metadata updates", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusRejeitado, RejectionReason: "antigo"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.feed.EXPECT().Publish(gomock.Any())

		res, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusRejeitado, StatusMeta{RejectionReason: "sem orçamento"})
		if err != nil || res.Requisition.RejectionReason != "sem orçamento" {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("same status keeps the milestone", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		approved := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusAprovado, ApprovedAt: &approved}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.feed.EXPECT().Publish(gomock.Any())

		res, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusAprovado, StatusMeta{BuyerName: "Carlos"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Requisition.ApprovedAt == nil || !res.Requisition.ApprovedAt.Equal(approved) {
			t.Fatalf("approval milestone must be kept, got %v", res.Requisition.ApprovedAt)
		}
		if res.Requisition.BuyerName != "Carlos" {
			t.Fatalf("buyer must be updated, got %q", res.Requisition.BuyerName)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusPendente}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Requisition{}, errors.New("db"))

		if _, err := uc.UpdateStatus(context.Background(), "req-1", entities.StatusEmAnalise, StatusMeta{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRequisitionUseCase_RevertAndReopen(t *testing.T) {
	t.Run("revert to later stage is a no-op", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusAprovado}, nil).Times(2)

		for _, target := range []lifecycle.StageKey{lifecycle.StageAprovado, lifecycle.StageRecebido} {
			_, err := uc.Revert(context.Background(), "req-1", target, "admin")
			if !errors.Is(err, ErrRevertNotAllowed) {
				t.Fatalf("expected ErrRevertNotAllowed for %s, got %v", target, err)
			}
		}
	})

	t.Run("revert keeps later milestones", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		purchased := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		current := entities.Requisition{ID: "req-1", Status: entities.StatusComprado, PurchasedAt: &purchased}
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(current, nil).Times(2)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.metrics.EXPECT().StatusTransition(entities.StatusComprado, entities.StatusAprovado)
		m.feed.EXPECT().Publish(gomock.Any())

		res, err := uc.Revert(context.Background(), "req-1", lifecycle.StageAprovado, "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Requisition.Status != entities.StatusAprovado {
			t.Fatalf("expected aprovado, got %s", res.Requisition.Status)
		}
		if res.Requisition.PurchasedAt == nil || !res.Requisition.PurchasedAt.Equal(purchased) {
			t.Fatalf("purchased milestone must be preserved")
		}
	})

	t.Run("reopen only from halted", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusCotando}, nil)
		if _, err := uc.Reopen(context.Background(), "req-1", "admin"); !errors.Is(err, ErrReopenNotAllowed) {
			t.Fatalf("expected ErrReopenNotAllowed, got %v", err)
		}
	})

	t.Run("reopen moves to pendente", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusCancelado}, nil).Times(2)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.metrics.EXPECT().StatusTransition(entities.StatusCancelado, entities.StatusPendente)
		m.feed.EXPECT().Publish(gomock.Any())

		res, err := uc.Reopen(context.Background(), "req-1", "admin")
		if err != nil || res.Requisition.Status != entities.StatusPendente {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})
}

func TestRequisitionUseCase_Values(t *testing.T) {
	t.Run("invalid field", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		if _, err := uc.UpdateValue(context.Background(), "req-1", "x", decimal.NewFromInt(1), "a"); !errors.Is(err, ErrInvalidValueField) {
			t.Fatalf("expected ErrInvalidValueField, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		if _, err := uc.UpdateValue(context.Background(), "req-1", entities.ValueFieldFinal, decimal.NewFromInt(-1), "a"); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("appends history entry", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{
			ID: "req-1", BudgetedValue: decimal.NewNullDecimal(decimal.RequireFromString("100.00")),
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.feed.EXPECT().Publish(gomock.Any())
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ValueHistoryEntry) (entities.ValueHistoryEntry, error) {
				if !e.PreviousValue.Valid || !e.PreviousValue.Decimal.Equal(decimal.NewFromInt(100)) {
					t.Fatalf("unexpected previous value %+v", e.PreviousValue)
				}
				if !e.NewValue.Equal(decimal.RequireFromString("120.50")) || e.Actor != "comprador@empresa.com" || e.Field != entities.ValueFieldBudgeted {
					t.Fatalf("unexpected entry %+v", e)
				}
				return e, nil
			})

		r, err := uc.UpdateValue(context.Background(), "req-1", entities.ValueFieldBudgeted, decimal.RequireFromString("120.50"), " comprador@empresa.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.BudgetedValue.Decimal.Equal(decimal.RequireFromString("120.5")) {
			t.Fatalf("unexpected value %s", r.BudgetedValue.Decimal)
		}
	})

	t.Run("same value is not recorded", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{
			ID: "req-1", FinalValue: decimal.NewNullDecimal(decimal.NewFromInt(5)),
		}, nil)
		if _, err := uc.UpdateValue(context.Background(), "req-1", entities.ValueFieldFinal, decimal.NewFromInt(5), "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("history sorted oldest first", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1"}, nil)
		m.history.EXPECT().ListByRequisitionID(gomock.Any(), "req-1").Return([]entities.ValueHistoryEntry{
			{ID: "b", CreatedAt: t1.Add(time.Hour)},
			{ID: "a", CreatedAt: t1},
		}, nil)

		entries, err := uc.History(context.Background(), "req-1")
		if err != nil || len(entries) != 2 || entries[0].ID != "a" {
			t.Fatalf("unexpected history %+v err=%v", entries, err)
		}
	})
}

func TestRequisitionUseCase_Queries(t *testing.T) {
	t.Run("list newest first", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		m.repo.EXPECT().List(gomock.Any(), interfaces.RequisitionFilter{RequesterEmail: "ana@empresa.com"}).Return([]entities.Requisition{
			{ID: "old", CreatedAt: t1},
			{ID: "new", CreatedAt: t1.Add(time.Hour)},
		}, nil)

		items, err := uc.List(context.Background(), interfaces.RequisitionFilter{RequesterEmail: " ANA@empresa.com"})
		if err != nil || items[0].ID != "new" {
			t.Fatalf("unexpected list %+v err=%v", items, err)
		}
	})

	t.Run("list invalid status", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		if _, err := uc.List(context.Background(), interfaces.RequisitionFilter{Status: "x"}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("stats count every status", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Requisition{
			{ID: "1", Status: entities.StatusPendente},
			{ID: "2", Status: entities.StatusPendente},
			{ID: "3", Status: entities.StatusRecebido},
		}, nil)

		stats, err := uc.Stats(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats) != 9 || stats[entities.StatusPendente] != 2 || stats[entities.StatusRecebido] != 1 || stats[entities.StatusCancelado] != 0 {
			t.Fatalf("unexpected stats %v", stats)
		}
	})

	t.Run("timeline", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", Status: entities.StatusRejeitado, RejectionReason: "duplicada"}, nil)
		tl, err := uc.Timeline(context.Background(), "req-1")
		if err != nil || !tl.Halted || tl.HaltReason != "duplicada" {
			t.Fatalf("unexpected timeline %+v err=%v", tl, err)
		}
	})

	t.Run("supplier name unchanged skips write", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1", SupplierName: "ACME"}, nil)
		if _, err := uc.UpdateSupplierName(context.Background(), "req-1", " ACME "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supplier name saved", func(t *testing.T) {
		uc, m := newRequisitionUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisition{ID: "req-1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)
		m.feed.EXPECT().Publish(gomock.Any())
		r, err := uc.UpdateSupplierName(context.Background(), "req-1", "ACME Ltda")
		if err != nil || r.SupplierName != "ACME Ltda" {
			t.Fatalf("unexpected result %+v err=%v", r, err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc, _ := newRequisitionUseCase(t)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidRequisitionID) {
			t.Fatalf("expected ErrInvalidRequisitionID, got %v", err)
		}
	})
}
