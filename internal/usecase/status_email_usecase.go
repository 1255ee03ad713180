package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/mail"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"requisicoes/internal/domain/entities"
	"requisicoes/internal/usecase/interfaces"
)

var (
	ErrInvalidEmailRecipient = errors.New("invalid email recipient")
	ErrInvalidEmailStatus    = errors.New("invalid email status")
)

const (
	EmailResultSent    = "sent"
	EmailResultSkipped = "skipped"
	EmailResultFailed  = "failed"

	warningEmailNotConfigured = "Envio de e-mail não configurado; notificação não enviada"
	warningEmailFailed        = "Não foi possível enviar o e-mail de notificação"
)

// StatusEmail is the content of a status change email.
type StatusEmail struct {
	To               string                     `json:"to"`
	RequesterName    string                     `json:"requester_name"`
	ItemName         string                     `json:"item_name"`
	Protocol         string                     `json:"protocol"`
	Status           entities.RequisitionStatus `json:"status"`
	BuyerName        string                     `json:"buyer_name,omitempty"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery,omitempty"`
	RejectionReason  string                     `json:"rejection_reason,omitempty"`
}

// EmailOutcome reports a delivery. Delivery problems never become errors: they are
// returned as Warning.
type EmailOutcome struct {
	Sent    bool   `json:"sent"`
	Warning string `json:"warning,omitempty"`
}

type IStatusEmailUseCase interface {
	Send(ctx context.Context, e StatusEmail) (EmailOutcome, error)
}

type StatusEmailUseCase struct {
	sender  interfaces.IEmailSender
	catalog entities.StatusCatalog
	appURL  string
	metrics interfaces.IMetricsRecorder
	log     logrus.FieldLogger
}

var _ IStatusEmailUseCase = (*StatusEmailUseCase)(nil)

// NewStatusEmailUseCase accepts a nil sender: every Send then returns a warning.
func NewStatusEmailUseCase(sender interfaces.IEmailSender, catalog entities.StatusCatalog, appURL string, metrics interfaces.IMetricsRecorder, logger logrus.FieldLogger) *StatusEmailUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &StatusEmailUseCase{
		sender:  sender,
		catalog: catalog,
		appURL:  strings.TrimRight(strings.TrimSpace(appURL), "/"),
		metrics: metrics,
		log:     logger,
	}
}

func (u *StatusEmailUseCase) Send(ctx context.Context, e StatusEmail) (EmailOutcome, error) {
	e.To = strings.TrimSpace(e.To)
	if _, err := mail.ParseAddress(e.To); err != nil || e.To == "" {
		return EmailOutcome{}, ErrInvalidEmailRecipient
	}
	if !e.Status.Valid() {
		return EmailOutcome{}, ErrInvalidEmailStatus
	}
	fields := logrus.Fields{"to": e.To, "protocol": e.Protocol, "status": e.Status}

	if u.sender == nil {
		u.log.WithFields(fields).Warn("[email][usecase] sender not configured; skipping")
		u.metrics.EmailResult(EmailResultSkipped)
		return EmailOutcome{Warning: warningEmailNotConfigured}, nil
	}

	msg, err := u.render(e)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Error("[email][usecase] render failed")
		u.metrics.EmailResult(EmailResultFailed)
		return EmailOutcome{Warning: warningEmailFailed}, nil
	}

	if err := u.sender.Send(ctx, msg); err != nil {
		u.log.WithFields(fields).WithError(err).Warn("[email][usecase] send failed")
		u.metrics.EmailResult(EmailResultFailed)
		return EmailOutcome{Warning: warningEmailFailed}, nil
	}

	u.log.WithFields(fields).Info("[email][usecase] sent")
	u.metrics.EmailResult(EmailResultSent)
	return EmailOutcome{Sent: true}, nil
}

// EmailFromRequisition fills the email content from the requisition record.
func EmailFromRequisition(r entities.Requisition) StatusEmail {
	return StatusEmail{
		To:               r.Requester.Email,
		RequesterName:    r.Requester.Name,
		ItemName:         r.ItemName,
		Protocol:         r.Protocol,
		Status:           r.Status,
		BuyerName:        r.BuyerName,
		ExpectedDelivery: r.ExpectedDelivery,
		RejectionReason:  r.RejectionReason,
	}
}

var statusEmailTemplate = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Atualização da sua requisição</h2>
  <p>Olá{{if .RequesterName}}, {{.RequesterName}}{{end}}.</p>
  <p>A requisição <strong>{{.Protocol}}</strong> ({{.ItemName}}) mudou para
    <span style="color: {{.Color}}; font-weight: bold;">{{.Label}}</span>.</p>
  {{- if .BuyerName}}
  <p>Comprador responsável: {{.BuyerName}}</p>
  {{- end}}
  {{- if .Delivery}}
  <p>Previsão de entrega: {{.Delivery}}</p>
  {{- end}}
  {{- if .RejectionReason}}
  <p>Motivo: {{.RejectionReason}}</p>
  {{- end}}
  {{- if .Link}}
  <p><a href="{{.Link}}">Acompanhar requisição</a></p>
  {{- end}}
</body>
</html>`))

func (u *StatusEmailUseCase) render(e StatusEmail) (interfaces.EmailMessage, error) {
	meta, _ := u.catalog.StatusMeta(e.Status)
	label := u.catalog.StatusLabel(e.Status)

	delivery := ""
	if e.ExpectedDelivery != nil {
		delivery = e.ExpectedDelivery.Format("02/01/2006")
	}
	link := ""
	if u.appURL != "" {
		link = u.appURL + "/requisicoes"
	}

	data := struct {
		StatusEmail
		Label    string
		Color    template.CSS
		Delivery string
		Link     string
	}{StatusEmail: e, Label: label, Color: template.CSS(meta.Color), Delivery: delivery, Link: link}

	var buf bytes.Buffer
	if err := statusEmailTemplate.Execute(&buf, data); err != nil {
		return interfaces.EmailMessage{}, err
	}

	text := fmt.Sprintf("A requisição %s (%s) mudou para %s.", e.Protocol, e.ItemName, label)
	if e.RejectionReason != "" {
		text += " Motivo: " + e.RejectionReason
	}

	return interfaces.EmailMessage{
		To:      e.To,
		Subject: fmt.Sprintf("Requisição %s: %s", e.Protocol, label),
		HTML:    buf.String(),
		Text:    text,
	}, nil
}
