package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

// statusChangeNotification builds the notification of a status change. It reports false
// when the previous status is unknown or unchanged.
func statusChangeNotification(catalog entities.StatusCatalog, evt entities.ChangeEvent) (entities.Notification, bool) {
	if evt.Old == nil || evt.Old.Status == "" || evt.Old.Status == evt.New.Status {
		return entities.Notification{}, false
	}
	return entities.Notification{
		Title:         evt.New.ItemName,
		Description:   StatusChangeDescription(catalog, evt.Old.Status, evt.New.Status),
		Category:      entities.NotificationStatusChange,
		RequisitionID: evt.New.ID,
	}, true
}

// NotificationRecorder keeps the requester's notification log. There is one per process,
// so every status change is stored once whether the requester has zero or many open
// sessions.
type NotificationRecorder struct {
	store   INotificationLog
	catalog entities.StatusCatalog
	log     logrus.FieldLogger
}

func NewNotificationRecorder(store INotificationLog, catalog entities.StatusCatalog, logger logrus.FieldLogger) *NotificationRecorder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &NotificationRecorder{store: store, catalog: catalog, log: logger}
}

// Subscribe attaches the recorder to feed. The returned func detaches it.
func (r *NotificationRecorder) Subscribe(feed interfaces.IChangeFeed) func() {
	return feed.Subscribe(entities.ChangeFilter{
		Table: entities.TableRequisitions,
		Types: []string{entities.ChangeUpdate},
	}, func(evt entities.ChangeEvent) {
		r.Handle(context.Background(), evt)
	})
}

// Handle stores the notification of a status change in the log of the requisition's
// requester.
func (r *NotificationRecorder) Handle(ctx context.Context, evt entities.ChangeEvent) (entities.Notification, bool) {
	n, ok := statusChangeNotification(r.catalog, evt)
	if !ok {
		return entities.Notification{}, false
	}
	owner := strings.TrimSpace(evt.New.Requester.Email)
	if owner == "" || r.store == nil {
		return entities.Notification{}, false
	}
	fields := logrus.Fields{"requisition_id": evt.New.ID, "from": evt.Old.Status, "to": evt.New.Status}

	stored, err := r.store.Add(ctx, owner, n)
	if err != nil {
		r.log.WithFields(fields).WithError(err).Warn("[notification][recorder] failed to persist notification")
		return entities.Notification{}, false
	}
	r.log.WithFields(fields).Debug("[notification][recorder] notification stored")
	return stored, true
}

// PipelineHooks are the UI-side collaborators of the notification pipeline.
// Alert shows an ephemeral, non persisted message; DataChanged asks the view to
// refresh the requisition from the authoritative store.
type PipelineHooks struct {
	Alert       func(entities.Notification)
	DataChanged func(entities.Requisition)
}

// NotificationPipeline delivers status changes of one requester's requisitions to an
// open session. Persisting them is left to NotificationRecorder.
type NotificationPipeline struct {
	owner   string
	catalog entities.StatusCatalog
	hooks   PipelineHooks
	metrics interfaces.IMetricsRecorder
	log     logrus.FieldLogger
}

func NewNotificationPipeline(owner string, catalog entities.StatusCatalog, hooks PipelineHooks, metrics interfaces.IMetricsRecorder, logger logrus.FieldLogger) *NotificationPipeline {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &NotificationPipeline{
		owner:   strings.TrimSpace(owner),
		catalog: catalog,
		hooks:   hooks,
		metrics: metrics,
		log:     logger,
	}
}

// Handle processes one change event. It returns the notification and true when the
// event was a status change of a requisition owned by the pipeline's requester with a
// known previous status.
func (p *NotificationPipeline) Handle(_ context.Context, evt entities.ChangeEvent) (entities.Notification, bool) {
	if !evt.New.BelongsTo(p.owner) {
		return entities.Notification{}, false
	}
	n, ok := statusChangeNotification(p.catalog, evt)
	if !ok {
		return entities.Notification{}, false
	}

	if p.hooks.Alert != nil {
		p.hooks.Alert(n)
	}
	if p.hooks.DataChanged != nil {
		p.hooks.DataChanged(evt.New)
	}
	p.metrics.NotificationDelivered(n.Category)
	p.log.WithFields(logrus.Fields{
		"requisition_id": evt.New.ID,
		"from":           evt.Old.Status,
		"to":             evt.New.Status,
	}).Info("[notification][pipeline] status change delivered")
	return n, true
}

// StatusChangeDescription is the pt-BR sentence naming both status labels.
func StatusChangeDescription(catalog entities.StatusCatalog, from, to entities.RequisitionStatus) string {
	return fmt.Sprintf("Status alterado de \"%s\" para \"%s\"", catalog.StatusLabel(from), catalog.StatusLabel(to))
}

type noopMetrics struct{}

func (noopMetrics) StatusTransition(_, _ entities.RequisitionStatus)      {}
func (noopMetrics) NotificationDelivered(_ entities.NotificationCategory) {}
func (noopMetrics) EmailResult(_ string)                                  {}
