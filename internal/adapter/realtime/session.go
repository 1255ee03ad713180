package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase"
	"requisicoes/internal/usecase/interfaces"
	"requisicoes/pkg/timer"
)

const (
	DefaultIdleTimeout   = 60 * time.Minute
	DefaultAutosaveDelay = 800 * time.Millisecond
	DefaultAlertCooldown = 2 * time.Second

	sendBuffer  = 32
	eventBuffer = 64
)

// Conn is the part of *websocket.Conn a session needs.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// SupplierNameSaver persists the autosaved supplier name.
type SupplierNameSaver interface {
	UpdateSupplierName(ctx context.Context, id string, name string) (entities.Requisition, error)
}

type SessionConfig struct {
	IdleTimeout   time.Duration
	AutosaveDelay time.Duration
	AlertCooldown time.Duration
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		IdleTimeout:   DefaultIdleTimeout,
		AutosaveDelay: DefaultAutosaveDelay,
		AlertCooldown: DefaultAlertCooldown,
	}
}

// SessionDeps are shared by every session of a hub.
type SessionDeps struct {
	Feed    interfaces.IChangeFeed
	Catalog entities.StatusCatalog
	Saver   SupplierNameSaver
	Metrics interfaces.IMetricsRecorder
	Config  SessionConfig
	Logger  logrus.FieldLogger
}

// Session is one authenticated websocket connection.
//
// It owns the requester's notification pipeline subscription, the inactivity timer,
// one autosave debouncer per requisition and the alert sound cooldown. Close releases
// all of them.
type Session struct {
	id       string
	claims   entities.Claims
	conn     Conn
	deps     SessionDeps
	pipeline *usecase.NotificationPipeline
	log      logrus.FieldLogger

	send     chan Outbound
	events   chan entities.ChangeEvent
	done     chan struct{}
	idle     *timer.Idle
	cooldown *timer.Cooldown

	mu          sync.Mutex
	closed      bool
	autosave    map[string]*timer.Debouncer[string]
	unsubscribe func()

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func NewSession(id string, claims entities.Claims, conn Conn, deps SessionDeps) *Session {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	cfg := deps.Config
	def := DefaultSessionConfig()
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = def.IdleTimeout
	}
	if cfg.AutosaveDelay <= 0 {
		cfg.AutosaveDelay = def.AutosaveDelay
	}
	if cfg.AlertCooldown <= 0 {
		cfg.AlertCooldown = def.AlertCooldown
	}
	deps.Config = cfg

	s := &Session{
		id:       id,
		claims:   claims,
		conn:     conn,
		deps:     deps,
		log:      deps.Logger.WithFields(logrus.Fields{"session_id": id, "user_id": claims.UserID}),
		send:     make(chan Outbound, sendBuffer),
		events:   make(chan entities.ChangeEvent, eventBuffer),
		done:     make(chan struct{}),
		cooldown: timer.NewCooldown(cfg.AlertCooldown),
		autosave: map[string]*timer.Debouncer[string]{},
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.idle = timer.NewIdle(cfg.IdleTimeout, s.expire)
	s.pipeline = usecase.NewNotificationPipeline(claims.Email, deps.Catalog, usecase.PipelineHooks{
		Alert:       s.alert,
		DataChanged: s.dataChanged,
	}, deps.Metrics, s.log)
	return s
}

func (s *Session) ID() string { return s.id }

// Run serves the connection until the client leaves, the session idles out or ctx is
// done. It always closes the session before returning.
func (s *Session) Run(ctx context.Context) {
	defer s.Close()
	if !s.subscribe() {
		return
	}
	go s.writeLoop()
	go s.eventLoop()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()

	s.log.Info("[realtime][session] started")
	for {
		var in Inbound
		if err := s.conn.ReadJSON(&in); err != nil {
			s.log.WithError(err).Debug("[realtime][session] read ended")
			return
		}
		s.handle(in)
	}
}

func (s *Session) subscribe() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if s.deps.Feed != nil {
		s.unsubscribe = s.deps.Feed.Subscribe(entities.ChangeFilter{
			Table: entities.TableRequisitions,
			Types: []string{entities.ChangeUpdate},
		}, s.enqueue)
	}
	return true
}

// Close stops every timer, drops the feed subscription and closes the connection.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.cancel()
		s.idle.Stop()

		s.mu.Lock()
		s.closed = true
		for _, d := range s.autosave {
			d.Stop()
		}
		unsubscribe := s.unsubscribe
		s.mu.Unlock()
		if unsubscribe != nil {
			unsubscribe()
		}
		_ = s.conn.Close()
		s.log.Info("[realtime][session] closed")
	})
}

func (s *Session) handle(in Inbound) {
	s.idle.Reset()
	switch in.Type {
	case MsgActivity:
	case MsgPing:
		s.push(Outbound{Type: MsgPong})
	case MsgSupplierName:
		if s.claims.Role != entities.RoleAdmin && s.claims.Role != entities.RoleComprador {
			s.push(Outbound{Type: MsgError, Message: "sem permissão para editar o fornecedor"})
			return
		}
		if in.RequisitionID == "" || s.deps.Saver == nil {
			s.push(Outbound{Type: MsgError, Message: "requisição inválida"})
			return
		}
		if d := s.autosaveFor(in.RequisitionID); d != nil {
			d.Submit(in.Value)
		}
	default:
		s.push(Outbound{Type: MsgError, Message: "mensagem desconhecida"})
	}
}

func (s *Session) autosaveFor(requisitionID string) *timer.Debouncer[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if d, ok := s.autosave[requisitionID]; ok {
		return d
	}
	d := timer.NewDebouncer(s.deps.Config.AutosaveDelay, func(name string) {
		s.saveSupplierName(requisitionID, name)
	})
	s.autosave[requisitionID] = d
	return d
}

func (s *Session) saveSupplierName(requisitionID, name string) {
	r, err := s.deps.Saver.UpdateSupplierName(s.ctx, requisitionID, name)
	if err != nil {
		s.log.WithError(err).WithField("requisition_id", requisitionID).Warn("[realtime][session] supplier autosave failed")
		s.push(Outbound{Type: MsgError, Message: "não foi possível salvar o fornecedor"})
		return
	}
	s.push(Outbound{Type: MsgSaved, Requisition: &r})
}

func (s *Session) expire() {
	s.log.Info("[realtime][session] idle timeout")
	s.push(Outbound{Type: MsgSignedOut, Message: "sessão encerrada por inatividade", final: true})
}

// enqueue runs on the publisher goroutine and must not block.
func (s *Session) enqueue(evt entities.ChangeEvent) {
	select {
	case <-s.done:
	case s.events <- evt:
	default:
		s.log.WithField("record_id", evt.New.ID).Warn("[realtime][session] event buffer full; dropping event")
	}
}

func (s *Session) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case evt := <-s.events:
			s.pipeline.Handle(s.ctx, evt)
		}
	}
}

func (s *Session) alert(n entities.Notification) {
	s.push(Outbound{Type: MsgNotification, Notification: &n, Sound: s.cooldown.Allow()})
}

func (s *Session) dataChanged(r entities.Requisition) {
	s.push(Outbound{Type: MsgRequisitionUpdated, Requisition: &r})
}

func (s *Session) push(msg Outbound) {
	select {
	case <-s.done:
	case s.send <- msg:
	default:
		s.log.WithField("type", msg.Type).Warn("[realtime][session] send buffer full; dropping message")
	}
}

// writeLoop is the only writer of the connection.
func (s *Session) writeLoop() {
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.send:
			if err := s.conn.WriteJSON(msg); err != nil {
				s.log.WithError(err).Debug("[realtime][session] write failed")
				s.Close()
				return
			}
			if msg.final {
				s.Close()
				return
			}
		}
	}
}
