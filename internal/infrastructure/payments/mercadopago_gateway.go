package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"

	"requisicoes/internal/usecase/interfaces"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway creates supplier payments through the Mercado Pago SDK.
type MercadoPagoGateway struct {
	client payment.Client
	log    logrus.FieldLogger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger logrus.FieldLogger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if accessToken == "" {
		logger.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")
	return NewMercadoPagoGatewayWithClient(payment.NewClient(cfg), logger), nil
}

func NewMercadoPagoGatewayWithClient(client payment.Client, logger logrus.FieldLogger) *MercadoPagoGateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &MercadoPagoGateway{client: client, log: logger}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log := g.log.WithField("payload_len", len(requestPayload))
	log.Info("[payment][gateway] create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.WithError(err).Warn("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] response marshal failed")
		return "", "", nil, err
	}
	log.WithFields(logrus.Fields{
		"provider_payment_id": resp.ID,
		"provider_status":     resp.Status,
	}).Info("[payment][gateway] create success")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}
