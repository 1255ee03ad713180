package interfaces

import (
	"context"
	"io"

	"requisicoes/internal/domain/entities"
)

// IKeyValueStore persists small opaque values (Redis or in-memory).
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// IAttachmentStorage uploads requisition attachments and returns their public URL.
type IAttachmentStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error)
}

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// IEmailSender delivers one email.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// IChangeFeed publishes record mutations and fans them out to subscribers.
type IChangeFeed interface {
	Publish(evt entities.ChangeEvent)
	Subscribe(filter entities.ChangeFilter, handler func(entities.ChangeEvent)) (unsubscribe func())
}

// IMetricsRecorder counts lifecycle events.
type IMetricsRecorder interface {
	StatusTransition(from, to entities.RequisitionStatus)
	NotificationDelivered(category entities.NotificationCategory)
	EmailResult(result string)
}
