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
	Service   Service
	Platform  Platform
	Logger    Logger
	Metrics   Metrics
	Postgres  ReadEnvDB
	Redis     Redis
	Kafka     Kafka
	Batch     Batch
	Responder Responder
}

type Service struct {
	Port string `env:"CHAT_TREE_SERVICE_PORT" env-default:"8080"`
	Name string `env:"CHAT_TREE_SERVICE_NAME" env-default:"chat-tree-service"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type ReadEnvDB struct {
	User     string `env:"CHAT_TREE_SERVICE_POSTGRES_USER"`
	Password string `env:"CHAT_TREE_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_TREE_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHAT_TREE_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHAT_TREE_SERVICE_POSTGRES_PORT"`
}

type Redis struct {
	Host     string        `env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `env:"REDIS_PORT" env-default:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	TTL      time.Duration `env:"CHAT_TREE_CACHE_TTL" env-default:"24h"`
}

type Kafka struct {
	Host            string `env:"KAFKA_HOST"`
	Port            string `env:"KAFKA_PORT"`
	ResponderTopic  string `env:"CHAT_TREE_RESPONDER_TOPIC" env-default:"chat-responder-triggers"`
	ModerationTopic string `env:"CHAT_TREE_MODERATION_TOPIC" env-default:"chat-moderation-deletions"`
}

// Batch controls how the tree engine treats client-supplied parents.
type Batch struct {
	StrictTree bool `env:"BATCH_STRICT_PARENTS" env-default:"false"`
}

type Responder struct {
	Timeout time.Duration `env:"RESPONDER_WRITE_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
