package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"requisicoes/internal/domain/entities"
)

const Production = "production"

type AWSOptions struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type StorageOptions struct {
	Bucket       string `env:"S3_BUCKET"`
	PublicDomain string `env:"S3_PUBLIC_DOMAIN"`
	Endpoint     string `env:"S3_ENDPOINT"`
}

type EmailOptions struct {
	From   string `env:"EMAIL_FROM"`
	AppURL string `env:"APP_URL" envDefault:"http://localhost:5173"`
}

type PaymentOptions struct {
	AccessToken     string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock            bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	TestPayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

// Config is the whole service configuration, read from the environment.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`

	JWTSecret   string   `env:"JWT_SECRET"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RedisURL    string   `env:"REDIS_URL"`

	StatusLabelsFile string `env:"STATUS_LABELS_FILE"`

	// Table names (REQUISITIONS_TABLE, VALUE_HISTORY_TABLE, PAYMENTS_TABLE, USERS_TABLE)
	// are read by the repositories themselves.
	AWS     AWSOptions
	Storage StorageOptions
	Email   EmailOptions
	Payment PaymentOptions
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	return c, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == Production
}

type catalogFile struct {
	Statuses   map[entities.RequisitionStatus]entities.StatusMeta `yaml:"statuses"`
	Priorities map[entities.Priority]entities.StatusMeta          `yaml:"priorities"`
}

// LoadStatusCatalog applies the label overrides found in path on top of base.
// An empty path returns base unchanged.
func LoadStatusCatalog(path string, base entities.StatusCatalog) (entities.StatusCatalog, error) {
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read status labels: %w", err)
	}
	return ParseStatusCatalog(data, base)
}

func ParseStatusCatalog(data []byte, base entities.StatusCatalog) (entities.StatusCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse status labels: %w", err)
	}
	return base.WithOverrides(f.Statuses, f.Priorities), nil
}
