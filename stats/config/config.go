package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/pkg/logger"
	"github.com/Astemirdum/book-lending/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

const defaultMigrationsTable = "stats_goose_db_version"

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"STATS_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"STATS_HTTP_PORT" default:"8090"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server HTTPServer `yaml:"server"`

	// STATS_DB_* variables override the shared DB_* ones.
	Database postgres.DB  `yaml:"db" envconfig:"STATS"`
	Kafka    kafka.Config `yaml:"kafka"`
	Auth     auth.Config  `yaml:"auth"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Database.MigrationsTable == "" {
			config.Database.MigrationsTable = defaultMigrationsTable
		}
		cfg = &config
	})

	return cfg
}
