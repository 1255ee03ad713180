package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"requisicoes/internal/domain/entities"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", " Production ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("AWS_REGION", "sa-east-1")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", c.Port)
	require.True(t, c.IsProduction())
	require.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins)
	require.True(t, c.Payment.Mock)
	require.Equal(t, "sa-east-1", c.AWS.Region)
}

func TestParseStatusCatalog(t *testing.T) {
	data := []byte(`
statuses:
  em_entrega:
    label: Em Trânsito
  desconhecido:
    label: X
priorities:
  urgente:
    color: "#000000"
`)
	c, err := ParseStatusCatalog(data, entities.DefaultStatusCatalog())
	require.NoError(t, err)
	require.Equal(t, "Em Trânsito", c.StatusLabel(entities.StatusEmEntrega))
	require.Equal(t, "Pendente", c.StatusLabel(entities.StatusPendente))
	require.Equal(t, "Urgente", c.PriorityLabel(entities.PriorityUrgente))

	_, err = ParseStatusCatalog([]byte("statuses: ["), entities.DefaultStatusCatalog())
	require.Error(t, err)
}

func TestLoadStatusCatalog_EmptyPath(t *testing.T) {
	base := entities.DefaultStatusCatalog()
	c, err := LoadStatusCatalog("", base)
	require.NoError(t, err)
	require.Equal(t, base.StatusLabel(entities.StatusAprovado), c.StatusLabel(entities.StatusAprovado))
}
