package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Elasticsearch ElasticsearchConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Mail          MailConfig
	Monitor       MonitorConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type MonitorConfig struct {
	CheckTimeout      time.Duration `envconfig:"CHECK_TIMEOUT" default:"30s"`
	SSLTimeout        time.Duration `envconfig:"SSL_TIMEOUT" default:"10s"`
	SSLExpiryWarnDays int           `envconfig:"SSL_EXPIRY_WARN_DAYS" default:"30"`
	AlertCooldown     time.Duration `envconfig:"ALERT_COOLDOWN" default:"15m"`
	FlushInterval     time.Duration `envconfig:"LOG_FLUSH_INTERVAL" default:"5m"`
	MaxBufferedLogs   int           `envconfig:"MAX_BUFFERED_LOGS" default:"10000"`
	LogRetention      time.Duration `envconfig:"LOG_RETENTION" default:"720h"`
	UserAgent         string        `envconfig:"CHECK_USER_AGENT" default:"SiteWatch-Monitor/1.0"`
	SiteCacheTTL      time.Duration `envconfig:"SITE_CACHE_TTL" default:"30s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" required:"true"`
	Port int    `envconfig:"REDIS_PORT" required:"true"`
}

type KafkaConfig struct {
	Enabled     bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	StatusTopic string   `envconfig:"KAFKA_STATUS_TOPIC" default:"site_status_events"`
}

type MailConfig struct {
	Email    string `envconfig:"MAIL_EMAIL" required:"true"`
	Password string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host     string `envconfig:"MAIL_HOST" required:"true"`
	Port     int    `envconfig:"MAIL_PORT" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
