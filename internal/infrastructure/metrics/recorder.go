package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

const namespace = "requisicoes"

// Recorder counts lifecycle events for the /metrics endpoint.
type Recorder struct {
	transitions   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	emails        *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the counters on reg; nil means the default registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Total number of requisition status transitions.",
		}, []string{"from", "to"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_delivered_total",
			Help:      "Total number of notifications delivered to requesters.",
		}, []string{"category"}),
		emails: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_emails_total",
			Help:      "Total number of status email attempts by result.",
		}, []string{"result"}),
	}
}

func (r *Recorder) StatusTransition(from, to entities.RequisitionStatus) {
	r.transitions.WithLabelValues(string(from), string(to)).Inc()
}

func (r *Recorder) NotificationDelivered(category entities.NotificationCategory) {
	r.notifications.WithLabelValues(string(category)).Inc()
}

func (r *Recorder) EmailResult(result string) {
	r.emails.WithLabelValues(result).Inc()
}
