package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidOwner         = errors.New("invalid notification owner")
)

const notificationKeyPrefix = "notifications:"

// INotificationLog is the bounded per-requester notification store.
//
// Entries are kept newest first and capped at entities.MaxNotifications.

type INotificationLog interface {
	List(ctx context.Context, owner string) ([]entities.Notification, error)
	Add(ctx context.Context, owner string, n entities.Notification) (entities.Notification, error)
	MarkRead(ctx context.Context, owner string, id string) error
	MarkAllRead(ctx context.Context, owner string) error
	Clear(ctx context.Context, owner string) error
	UnreadCount(ctx context.Context, owner string) (int, error)
}

type NotificationLog struct {
	store interfaces.IKeyValueStore
	log   logrus.FieldLogger
	now   func() time.Time

	// serialises read-modify-write cycles on the store
	mu sync.Mutex
}

var _ INotificationLog = (*NotificationLog)(nil)

func NewNotificationLog(store interfaces.IKeyValueStore, logger logrus.FieldLogger) *NotificationLog {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &NotificationLog{store: store, log: logger, now: time.Now}
}

func (l *NotificationLog) List(ctx context.Context, owner string) ([]entities.Notification, error) {
	key, err := notificationKey(owner)
	if err != nil {
		return nil, err
	}
	return l.load(ctx, key)
}

func (l *NotificationLog) Add(ctx context.Context, owner string, n entities.Notification) (entities.Notification, error) {
	key, err := notificationKey(owner)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = l.now().UTC()
	}
	if n.Category == "" {
		n.Category = entities.NotificationInfo
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx, key)
	if err != nil {
		return entities.Notification{}, err
	}
	if err := l.save(ctx, key, entities.PrependNotification(current, n)); err != nil {
		return entities.Notification{}, err
	}
	l.log.WithFields(logrus.Fields{"owner": owner, "notification_id": n.ID, "category": n.Category}).Debug("[notification][log] added")
	return n, nil
}

func (l *NotificationLog) MarkRead(ctx context.Context, owner string, id string) error {
	key, err := notificationKey(owner)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx, key)
	if err != nil {
		return err
	}
	for i := range current {
		if current[i].ID == id {
			if current[i].Read {
				return nil
			}
			current[i].Read = true
			return l.save(ctx, key, current)
		}
	}
	return ErrNotificationNotFound
}

func (l *NotificationLog) MarkAllRead(ctx context.Context, owner string) error {
	key, err := notificationKey(owner)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx, key)
	if err != nil {
		return err
	}
	for i := range current {
		current[i].Read = true
	}
	return l.save(ctx, key, current)
}

func (l *NotificationLog) Clear(ctx context.Context, owner string) error {
	key, err := notificationKey(owner)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Delete(ctx, key)
}

func (l *NotificationLog) UnreadCount(ctx context.Context, owner string) (int, error) {
	list, err := l.List(ctx, owner)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (l *NotificationLog) load(ctx context.Context, key string) ([]entities.Notification, error) {
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []entities.Notification{}, nil
	}
	var list []entities.Notification
	if err := json.Unmarshal(raw, &list); err != nil {
		// unreadable logs start over empty
		l.log.WithError(err).WithField("key", key).Warn("[notification][log] discarding unreadable log")
		return []entities.Notification{}, nil
	}
	return list, nil
}

func (l *NotificationLog) save(ctx context.Context, key string, list []entities.Notification) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return l.store.Set(ctx, key, raw)
}

func notificationKey(owner string) (string, error) {
	owner = strings.ToLower(strings.TrimSpace(owner))
	if owner == "" {
		return "", ErrInvalidOwner
	}
	return notificationKeyPrefix + owner, nil
}
