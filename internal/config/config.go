package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Logger     Logger
	Platform   Platform
	Centrifuge Centrifuge
	Kafka      Kafka
	Metrics    Metrics
	Chat       Chat
}

type Service struct {
	Port string `env:"CHAT_SERVICE_PORT"`
	Name string `env:"CHAT_SERVICE_NAME" env-default:"vet-chat-service"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	ProfileTopic string `env:"PROFILE_KAFKA_TOPIC" env-default:"vet-profiles"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

// Chat holds the access-window rules.
type Chat struct {
	WindowDuration time.Duration `env:"CHAT_WINDOW_DURATION" env-default:"72h"`
}

func MustLoad() *Config {
	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
