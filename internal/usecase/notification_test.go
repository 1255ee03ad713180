package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"requisicoes/internal/domain/entities"
	mock_interfaces "requisicoes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationLog_AddAndCap(t *testing.T) {
	ctx := context.Background()
	l := NewNotificationLog(newMemStore(), quietLogger())

	for i := 0; i < entities.MaxNotifications+5; i++ {
		if _, err := l.Add(ctx, "ana@empresa.com", entities.Notification{Title: fmt.Sprintf("n%d", i)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := l.List(ctx, "ANA@empresa.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != entities.MaxNotifications {
		t.Fatalf("expected %d entries, got %d", entities.MaxNotifications, len(list))
	}
	if list[0].Title != fmt.Sprintf("n%d", entities.MaxNotifications+4) {
		t.Fatalf("newest entry must be first, got %s", list[0].Title)
	}
	if list[len(list)-1].Title != "n5" {
		t.Fatalf("oldest entries must be dropped, last is %s", list[len(list)-1].Title)
	}
	if list[0].ID == "" || list[0].CreatedAt.IsZero() || list[0].Category != entities.NotificationInfo {
		t.Fatalf("defaults not applied: %+v", list[0])
	}
}

func TestNotificationLog_ReadState(t *testing.T) {
	ctx := context.Background()
	l := NewNotificationLog(newMemStore(), quietLogger())
	owner := "ana@empresa.com"

	a, _ := l.Add(ctx, owner, entities.Notification{Title: "a"})
	_, _ = l.Add(ctx, owner, entities.Notification{Title: "b"})

	if n, _ := l.UnreadCount(ctx, owner); n != 2 {
		t.Fatalf("expected 2 unread, got %d", n)
	}
	if err := l.MarkRead(ctx, owner, a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := l.UnreadCount(ctx, owner); n != 1 {
		t.Fatalf("expected 1 unread, got %d", n)
	}
	if err := l.MarkRead(ctx, owner, "missing"); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
	if err := l.MarkAllRead(ctx, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := l.UnreadCount(ctx, owner); n != 0 {
		t.Fatalf("expected 0 unread, got %d", n)
	}
	if err := l.Clear(ctx, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list, _ := l.List(ctx, owner); len(list) != 0 {
		t.Fatalf("expected empty log, got %d", len(list))
	}
}

func TestNotificationLog_Errors(t *testing.T) {
	t.Run("empty owner", func(t *testing.T) {
		l := NewNotificationLog(newMemStore(), quietLogger())
		if _, err := l.List(context.Background(), " "); !errors.Is(err, ErrInvalidOwner) {
			t.Fatalf("expected ErrInvalidOwner, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "notifications:ana@empresa.com").Return(nil, false, errors.New("redis down"))

		l := NewNotificationLog(store, quietLogger())
		if _, err := l.Add(context.Background(), "ana@empresa.com", entities.Notification{}); err == nil || err.Error() != "redis down" {
			t.Fatalf("expected redis down, got %v", err)
		}
	})

	t.Run("unreadable payload starts over", func(t *testing.T) {
		store := newMemStore()
		_ = store.Set(context.Background(), "notifications:ana@empresa.com", []byte("{"))
		l := NewNotificationLog(store, quietLogger())
		list, err := l.List(context.Background(), "ana@empresa.com")
		if err != nil || len(list) != 0 {
			t.Fatalf("expected empty list, got %v err=%v", list, err)
		}
	})

	t.Run("concurrent producers", func(t *testing.T) {
		l := NewNotificationLog(newMemStore(), quietLogger())
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = l.Add(context.Background(), "ana@empresa.com", entities.Notification{Title: "x"})
			}()
		}
		wg.Wait()
		list, _ := l.List(context.Background(), "ana@empresa.com")
		if len(list) != 20 {
			t.Fatalf("expected 20 entries, got %d", len(list))
		}
	})
}

func statusEvent(owner string, from, to entities.RequisitionStatus) entities.ChangeEvent {
	old := entities.Requisition{ID: "req-1", ItemName: "Notebook", Status: from, Requester: entities.Requester{Email: owner}}
	next := old
	next.Status = to
	evt := entities.ChangeEvent{Table: entities.TableRequisitions, Type: entities.ChangeUpdate, New: next}
	if from != "" {
		evt.Old = &old
	}
	return evt
}

func TestNotificationPipeline_Handle(t *testing.T) {
	ctx := context.Background()
	catalog := entities.DefaultStatusCatalog()

	t.Run("status change produces alert and refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		metrics.EXPECT().NotificationDelivered(entities.NotificationStatusChange)

		var alerts []entities.Notification
		var refreshed []string
		p := NewNotificationPipeline("ana@empresa.com", catalog, PipelineHooks{
			Alert:       func(n entities.Notification) { alerts = append(alerts, n) },
			DataChanged: func(r entities.Requisition) { refreshed = append(refreshed, r.ID) },
		}, metrics, quietLogger())

		n, ok := p.Handle(ctx, statusEvent("ana@empresa.com", entities.StatusPendente, entities.StatusAprovado))
		if !ok {
			t.Fatalf("expected event to be handled")
		}
		if n.Title != "Notebook" || n.Category != entities.NotificationStatusChange || n.RequisitionID != "req-1" {
			t.Fatalf("unexpected notification %+v", n)
		}
		if n.Description != `Status alterado de "Pendente" para "Aprovado"` {
			t.Fatalf("unexpected description %q", n.Description)
		}
		if len(alerts) != 1 || alerts[0].Description != n.Description {
			t.Fatalf("expected one alert with same text, got %+v", alerts)
		}
		if len(refreshed) != 1 || refreshed[0] != "req-1" {
			t.Fatalf("expected data-changed callback, got %v", refreshed)
		}
	})

	ignored := []struct {
		name string
		evt  entities.ChangeEvent
	}{
		{name: "unknown previous status", evt: statusEvent("ana@empresa.com", "", entities.StatusAprovado)},
		{name: "same status", evt: statusEvent("ana@empresa.com", entities.StatusCotando, entities.StatusCotando)},
		{name: "other requester", evt: statusEvent("bruno@empresa.com", entities.StatusPendente, entities.StatusAprovado)},
	}
	for _, tc := range ignored {
		t.Run(tc.name, func(t *testing.T) {
			alerted := false
			p := NewNotificationPipeline("ana@empresa.com", catalog, PipelineHooks{
				Alert: func(entities.Notification) { alerted = true },
			}, nil, quietLogger())

			if _, ok := p.Handle(ctx, tc.evt); ok {
				t.Fatalf("event must be ignored")
			}
			if alerted {
				t.Fatalf("no alert expected")
			}
		})
	}
}

func TestNotificationRecorder_Handle(t *testing.T) {
	ctx := context.Background()
	catalog := entities.DefaultStatusCatalog()

	t.Run("stores one entry in the requester log", func(t *testing.T) {
		store := NewNotificationLog(newMemStore(), quietLogger())
		r := NewNotificationRecorder(store, catalog, quietLogger())

		n, ok := r.Handle(ctx, statusEvent("Ana@Empresa.com", entities.StatusPendente, entities.StatusAprovado))
		if !ok || n.ID == "" {
			t.Fatalf("expected stored notification, got %+v ok=%v", n, ok)
		}
		list, _ := store.List(ctx, "ana@empresa.com")
		if len(list) != 1 || list[0].ID != n.ID || list[0].Description != `Status alterado de "Pendente" para "Aprovado"` {
			t.Fatalf("unexpected log %+v", list)
		}
	})

	t.Run("ignores events without a status change", func(t *testing.T) {
		store := NewNotificationLog(newMemStore(), quietLogger())
		r := NewNotificationRecorder(store, catalog, quietLogger())

		r.Handle(ctx, statusEvent("ana@empresa.com", "", entities.StatusAprovado))
		r.Handle(ctx, statusEvent("ana@empresa.com", entities.StatusCotando, entities.StatusCotando))
		r.Handle(ctx, statusEvent("", entities.StatusPendente, entities.StatusAprovado))
		if list, _ := store.List(ctx, "ana@empresa.com"); len(list) != 0 {
			t.Fatalf("log must stay empty, got %+v", list)
		}
	})

	t.Run("sequence keeps newest first", func(t *testing.T) {
		store := NewNotificationLog(newMemStore(), quietLogger())
		r := NewNotificationRecorder(store, catalog, quietLogger())

		steps := []entities.RequisitionStatus{entities.StatusPendente, entities.StatusEmAnalise, entities.StatusAprovado, entities.StatusAprovado, entities.StatusCotando}
		for i := 1; i < len(steps); i++ {
			r.Handle(ctx, statusEvent("ana@empresa.com", steps[i-1], steps[i]))
		}
		list, _ := store.List(ctx, "ana@empresa.com")
		if len(list) != 3 {
			t.Fatalf("expected 3 notifications, got %d", len(list))
		}
		if list[0].Description != `Status alterado de "Aprovado" para "Cotando"` {
			t.Fatalf("newest must be first, got %q", list[0].Description)
		}
	})

	t.Run("store failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
		kv.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("down"))

		r := NewNotificationRecorder(NewNotificationLog(kv, quietLogger()), catalog, quietLogger())
		if _, ok := r.Handle(ctx, statusEvent("ana@empresa.com", entities.StatusPendente, entities.StatusCancelado)); ok {
			t.Fatalf("expected failure to be reported")
		}
	})
}
