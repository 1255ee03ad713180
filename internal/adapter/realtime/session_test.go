package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"requisicoes/internal/adapter/kv"
	"requisicoes/internal/domain/entities"
	"requisicoes/internal/infrastructure/changefeed"
	"requisicoes/internal/usecase"
)

var errConnClosed = errors.New("connection closed")

type fakeConn struct {
	in        chan Inbound
	out       chan Outbound
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:     make(chan Inbound, 16),
		out:    make(chan Outbound, 16),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) ReadJSON(v any) error {
	select {
	case <-c.closed:
		return errConnClosed
	case msg := <-c.in:
		*(v.(*Inbound)) = msg
		return nil
	}
}

func (c *fakeConn) WriteJSON(v any) error {
	select {
	case <-c.closed:
		return errConnClosed
	case c.out <- v.(Outbound):
		return nil
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) next(t *testing.T) Outbound {
	t.Helper()
	select {
	case msg := <-c.out:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a message")
		return Outbound{}
	}
}

type fakeSaver struct {
	mu    sync.Mutex
	calls []string
}

func (s *fakeSaver) UpdateSupplierName(_ context.Context, id string, name string) (entities.Requisition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	return entities.Requisition{ID: id, SupplierName: name}, nil
}

func (s *fakeSaver) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

type harness struct {
	conn   *fakeConn
	feed   *changefeed.Broker
	log    *usecase.NotificationLog
	saver  *fakeSaver
	claims entities.Claims
	logger logrus.FieldLogger
	done   chan struct{}

	// subscribers attached to feed before any session
	base int
}

// newHarness wires the feed to a notification log the way the server does, without
// opening a session.
func newHarness(t *testing.T, role string) *harness {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	h := &harness{
		feed:   changefeed.NewBroker(logger),
		log:    usecase.NewNotificationLog(kv.NewMemoryStore(), logger),
		saver:  &fakeSaver{},
		claims: entities.Claims{UserID: "u-1", Email: "ana@empresa.com", Role: role},
		logger: logger,
	}
	t.Cleanup(usecase.NewNotificationRecorder(h.log, entities.DefaultStatusCatalog(), logger).Subscribe(h.feed))
	h.base = h.feed.SubscribersCount()
	return h
}

func (h *harness) open(t *testing.T, id string, cfg SessionConfig) (*fakeConn, chan struct{}) {
	t.Helper()
	conn := newFakeConn()
	done := make(chan struct{})
	before := h.feed.SubscribersCount()
	s := NewSession(id, h.claims, conn, SessionDeps{
		Feed:    h.feed,
		Catalog: entities.DefaultStatusCatalog(),
		Saver:   h.saver,
		Config:  cfg,
		Logger:  h.logger,
	})
	go func() {
		s.Run(context.Background())
		close(done)
	}()
	t.Cleanup(func() {
		s.Close()
		<-done
	})

	deadline := time.Now().Add(2 * time.Second)
	for h.feed.SubscribersCount() == before {
		if time.Now().After(deadline) {
			t.Fatalf("session never subscribed")
		}
		time.Sleep(time.Millisecond)
	}
	return conn, done
}

func startSession(t *testing.T, role string, cfg SessionConfig) *harness {
	t.Helper()
	h := newHarness(t, role)
	h.conn, h.done = h.open(t, "s-1", cfg)
	return h
}

func statusEvent(email string, from, to entities.RequisitionStatus) entities.ChangeEvent {
	old := entities.Requisition{ID: "req-1", ItemName: "Notebook", Status: from, Requester: entities.Requester{Email: email}}
	cur := old
	cur.Status = to
	return entities.ChangeEvent{Table: entities.TableRequisitions, Type: entities.ChangeUpdate, Old: &old, New: cur, At: time.Now()}
}

func TestSession_StatusChangeNotification(t *testing.T) {
	h := startSession(t, entities.RoleSolicitante, SessionConfig{AlertCooldown: time.Minute})

	h.feed.Publish(statusEvent("ANA@empresa.com", entities.StatusPendente, entities.StatusEmAnalise))

	msg := h.conn.next(t)
	if msg.Type != MsgNotification || msg.Notification == nil {
		t.Fatalf("expected notification, got %+v", msg)
	}
	if !msg.Sound {
		t.Fatalf("first alert must play a sound")
	}
	if msg.Notification.Description != `Status alterado de "Pendente" para "Em Análise"` {
		t.Fatalf("unexpected description %q", msg.Notification.Description)
	}
	if msg := h.conn.next(t); msg.Type != MsgRequisitionUpdated || msg.Requisition.Status != entities.StatusEmAnalise {
		t.Fatalf("expected requisition_updated, got %+v", msg)
	}

	h.feed.Publish(statusEvent("ana@empresa.com", entities.StatusEmAnalise, entities.StatusAprovado))
	msg = h.conn.next(t)
	if msg.Type != MsgNotification || msg.Sound {
		t.Fatalf("second alert within the cooldown must be silent, got %+v", msg)
	}
	_ = h.conn.next(t)

	list, err := h.log.List(context.Background(), h.claims.Email)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 stored notifications, got %d err=%v", len(list), err)
	}
}

func TestSession_OneLogEntryPerEventAcrossSessions(t *testing.T) {
	h := newHarness(t, entities.RoleSolicitante)
	first, _ := h.open(t, "s-1", SessionConfig{})
	second, _ := h.open(t, "s-2", SessionConfig{})

	h.feed.Publish(statusEvent("ana@empresa.com", entities.StatusPendente, entities.StatusEmAnalise))

	for _, conn := range []*fakeConn{first, second} {
		if msg := conn.next(t); msg.Type != MsgNotification {
			t.Fatalf("every open session must be alerted, got %+v", msg)
		}
	}
	list, err := h.log.List(context.Background(), h.claims.Email)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 stored notification, got %d err=%v", len(list), err)
	}
}

func TestSession_StatusChangeLoggedWithoutSession(t *testing.T) {
	h := newHarness(t, entities.RoleSolicitante)

	h.feed.Publish(statusEvent("ana@empresa.com", entities.StatusAprovado, entities.StatusCotando))

	list, err := h.log.List(context.Background(), h.claims.Email)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 stored notification, got %d err=%v", len(list), err)
	}
}

func TestSession_IgnoresForeignAndUnchangedEvents(t *testing.T) {
	h := startSession(t, entities.RoleSolicitante, SessionConfig{})

	h.feed.Publish(statusEvent("bruno@empresa.com", entities.StatusPendente, entities.StatusAprovado))
	h.feed.Publish(statusEvent("ana@empresa.com", entities.StatusAprovado, entities.StatusAprovado))
	h.conn.in <- Inbound{Type: MsgPing}

	if msg := h.conn.next(t); msg.Type != MsgPong {
		t.Fatalf("expected only a pong, got %+v", msg)
	}
}

func TestSession_SupplierNameAutosave(t *testing.T) {
	t.Run("debounces to the last value", func(t *testing.T) {
		h := startSession(t, entities.RoleComprador, SessionConfig{AutosaveDelay: 50 * time.Millisecond})

		for _, v := range []string{"A", "Ac", "Acme"} {
			h.conn.in <- Inbound{Type: MsgSupplierName, RequisitionID: "req-1", Value: v}
		}

		msg := h.conn.next(t)
		if msg.Type != MsgSaved || msg.Requisition == nil || msg.Requisition.SupplierName != "Acme" {
			t.Fatalf("expected saved Acme, got %+v", msg)
		}
		if calls := h.saver.Calls(); len(calls) != 1 {
			t.Fatalf("expected a single save, got %v", calls)
		}
	})

	t.Run("requester is not allowed", func(t *testing.T) {
		h := startSession(t, entities.RoleSolicitante, SessionConfig{AutosaveDelay: 10 * time.Millisecond})

		h.conn.in <- Inbound{Type: MsgSupplierName, RequisitionID: "req-1", Value: "Acme"}

		if msg := h.conn.next(t); msg.Type != MsgError {
			t.Fatalf("expected error, got %+v", msg)
		}
		if calls := h.saver.Calls(); len(calls) != 0 {
			t.Fatalf("unexpected saves %v", calls)
		}
	})
}

func TestSession_UnknownMessage(t *testing.T) {
	h := startSession(t, entities.RoleAdmin, SessionConfig{})
	h.conn.in <- Inbound{Type: "bogus"}
	if msg := h.conn.next(t); msg.Type != MsgError {
		t.Fatalf("expected error, got %+v", msg)
	}
}

func TestSession_IdleTimeoutSignsOut(t *testing.T) {
	h := startSession(t, entities.RoleSolicitante, SessionConfig{IdleTimeout: 30 * time.Millisecond})

	if msg := h.conn.next(t); msg.Type != MsgSignedOut {
		t.Fatalf("expected signed_out, got %+v", msg)
	}
	select {
	case <-h.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("session did not end after idle timeout")
	}
	if n := h.feed.SubscribersCount(); n != h.base {
		t.Fatalf("expected subscription released, got %d", n)
	}
}

func TestHub_ServeTracksSessions(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	feed := changefeed.NewBroker(logger)
	hub := NewHub(SessionDeps{Feed: feed, Catalog: entities.DefaultStatusCatalog(), Logger: logger})
	conn := newFakeConn()

	done := make(chan struct{})
	go func() {
		hub.Serve(context.Background(), conn, entities.Claims{UserID: "u-1", Email: "ana@empresa.com"})
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() == 0 || feed.SubscribersCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("session never registered")
		}
		time.Sleep(time.Millisecond)
	}

	hub.CloseAll()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("serve did not return")
	}
	if hub.Count() != 0 || feed.SubscribersCount() != 0 {
		t.Fatalf("expected no sessions left, got %d/%d", hub.Count(), feed.SubscribersCount())
	}
}
