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

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Reset struct {
	CodeTTL time.Duration `yaml:"codeTTL" envconfig:"RESET_CODE_TTL" default:"15m"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Auth     auth.Config  `yaml:"auth"`
	Reset    Reset        `yaml:"reset"`
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
		cfg = &config
	})

	return cfg
}
