package changefeed

import (
	"sync"

	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

type subscriber struct {
	id      uint64
	filter  entities.ChangeFilter
	handler func(entities.ChangeEvent)
}

// Broker is the in-process change feed. Handlers run synchronously on the publishing
// goroutine, in subscription order; a panicking handler is logged and skipped.
type Broker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber
	log    logrus.FieldLogger
}

var _ interfaces.IChangeFeed = (*Broker)(nil)

func NewBroker(logger logrus.FieldLogger) *Broker {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Broker{log: logger}
}

func (b *Broker) Publish(evt entities.ChangeEvent) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		if !s.filter.Match(evt) {
			continue
		}
		b.deliver(s, evt)
	}
}

func (b *Broker) deliver(s subscriber, evt entities.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithFields(logrus.Fields{
				"subscriber": s.id,
				"table":      evt.Table,
				"type":       evt.Type,
				"record_id":  evt.New.ID,
			}).Errorf("[changefeed] handler panicked: %v", r)
		}
	}()
	s.handler(evt)
}

// Subscribe registers handler for events matching filter. The returned func removes
// the subscription and is safe to call more than once.
func (b *Broker) Subscribe(filter entities.ChangeFilter, handler func(entities.ChangeEvent)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, filter: filter, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Broker) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

func (b *Broker) SubscribersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
