package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	logger, hook := test.NewNullLogger()
	g, err := NewMercadoPagoGateway("", logger)
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) || g != nil {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	if hook.LastEntry() == nil {
		t.Fatalf("missing token should be logged")
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
