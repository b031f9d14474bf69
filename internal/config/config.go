package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported object copy backends.
const (
	ObjectBackendS3    = "s3"
	ObjectBackendMinIO = "minio"
)

// Supported record store backends.
const (
	RecordBackendDynamoDB = "dynamodb"
	RecordBackendPostgres = "postgres"
)

// DefaultChecklist is the phrase list matched against object names.
var DefaultChecklist = []string{"captain tsubasa", "star wars"}

// Config aggregates runtime configuration for the copier.
type Config struct {
	Copier   CopierConfig
	Log      LogConfig
	Server   ServerConfig
	Postgres PostgresConfig
	MinIO    MinIOConfig
	AWS      AWSConfig
	Webhook  WebhookConfig
	Metrics  MetricsConfig
}

// CopierConfig carries the copy-and-record settings.
type CopierConfig struct {
	TargetBucket  string
	TableName     string
	Checklist     []string
	ObjectBackend string
	RecordBackend string
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string
	Debug bool
}

// EffectiveLevel returns the level to configure, honouring the debug flag.
func (l LogConfig) EffectiveLevel() string {
	if l.Debug {
		return "debug"
	}
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// ServerConfig parameterizes the webhook HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PostgresConfig contains PostgreSQL connection details.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the PostgreSQL DSN string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// MinIOConfig carries MinIO connection information.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string
}

// AWSConfig carries optional overrides for the AWS SDK. Credentials always come
// from the ambient environment.
type AWSConfig struct {
	Region   string
	Endpoint string
}

// WebhookConfig guards the notification webhook. An empty secret disables auth.
type WebhookConfig struct {
	JWTSecret string
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
// The result is validated; a configuration that cannot run is an error.
func Load() (Config, error) {
	cfg := Config{
		Copier: CopierConfig{
			TargetBucket:  strings.TrimSpace(getString("COPIER_TARGET_BUCKET", "")),
			TableName:     strings.TrimSpace(getString("COPIER_TABLE_NAME", "")),
			Checklist:     getList("COPIER_CHECKLIST", DefaultChecklist),
			ObjectBackend: strings.ToLower(getString("COPIER_OBJECT_BACKEND", ObjectBackendS3)),
			RecordBackend: strings.ToLower(getString("COPIER_RECORD_BACKEND", RecordBackendDynamoDB)),
		},
		Log: LogConfig{
			Level: strings.ToLower(getString("LOG_LEVEL", "info")),
			Debug: getBool("COPIER_DEBUG", false),
		},
		Server: ServerConfig{
			Host:         getString("COPIER_HTTP_HOST", "0.0.0.0"),
			Port:         getInt("COPIER_HTTP_PORT", 8080),
			ReadTimeout:  getDuration("COPIER_HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("COPIER_HTTP_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:  getDuration("COPIER_HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Postgres: PostgresConfig{
			Host:     getString("POSTGRES_HOST", "localhost"),
			Port:     getInt("POSTGRES_PORT", 5432),
			User:     getString("POSTGRES_USER", "objcopy"),
			Password: getString("POSTGRES_PASSWORD", "change-me"),
			Database: getString("POSTGRES_DB", "objcopy"),
			SSLMode:  strings.ToLower(getString("POSTGRES_SSL_MODE", "disable")),
		},
		MinIO: MinIOConfig{
			Endpoint:        getString("MINIO_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getString("MINIO_ROOT_USER", ""),
			SecretAccessKey: getString("MINIO_ROOT_PASSWORD", ""),
			UseSSL:          getBool("MINIO_USE_SSL", false),
			Region:          getString("MINIO_REGION", ""),
		},
		AWS: AWSConfig{
			Region:   getString("AWS_REGION", ""),
			Endpoint: getString("COPIER_AWS_ENDPOINT", ""),
		},
		Webhook: LoadWebhook(),
		Metrics: MetricsConfig{
			PrometheusPath: getString("COPIER_METRICS_PATH", "/metrics"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadWebhook reads only the webhook settings. It needs none of the copier settings.
func LoadWebhook() WebhookConfig {
	return WebhookConfig{JWTSecret: getString("COPIER_WEBHOOK_JWT_SECRET", "")}
}

// Validate reports every setting that prevents the copier from running.
func (c Config) Validate() error {
	var errs []error
	if c.Copier.TargetBucket == "" {
		errs = append(errs, errors.New("COPIER_TARGET_BUCKET is required"))
	}
	if c.Copier.TableName == "" {
		errs = append(errs, errors.New("COPIER_TABLE_NAME is required"))
	}
	switch c.Copier.ObjectBackend {
	case ObjectBackendS3, ObjectBackendMinIO:
	default:
		errs = append(errs, fmt.Errorf("unknown object backend %q", c.Copier.ObjectBackend))
	}
	switch c.Copier.RecordBackend {
	case RecordBackendDynamoDB, RecordBackendPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown record backend %q", c.Copier.RecordBackend))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

// getList splits a comma separated value, trimming surrounding whitespace of each entry.
func getList(key string, fallback []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
