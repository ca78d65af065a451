package app

import (
	"context"
	stdlog "log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-lending/lending/config"
	"github.com/Astemirdum/book-lending/lending/internal/events"
	"github.com/Astemirdum/book-lending/lending/internal/handler"
	"github.com/Astemirdum/book-lending/lending/internal/repository"
	"github.com/Astemirdum/book-lending/lending/internal/server"
	"github.com/Astemirdum/book-lending/lending/internal/service"
	"github.com/Astemirdum/book-lending/lending/migrations"
	"github.com/Astemirdum/book-lending/pkg/circuit_breaker"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/pkg/logger"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	"github.com/Astemirdum/book-lending/pkg/postgres"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const serviceName = "lending"

func Run(cfg *config.Config) {
	log, err := logger.NewLogger(cfg.Log, serviceName)
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	m := metrics.New(serviceName)
	publisher, producer := newPublisher(cfg.Kafka, m, log)
	svc := newService(cfg, repo, publisher, m, log)

	h := handler.New(svc, log, handler.WithMetrics(m), handler.WithCookieName(cfg.Auth.CookieName))
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// Remind creates due-date reminders once and exits. It is meant to be
// driven by an external scheduler.
func Remind(ctx context.Context, cfg *config.Config) (int, error) {
	log, err := logger.NewLogger(cfg.Log, serviceName)
	if err != nil {
		return 0, err
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return 0, errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return 0, err
	}
	m := metrics.New(serviceName)
	publisher, producer := newPublisher(cfg.Kafka, m, log)
	if producer != nil {
		defer producer.Close()
	}
	n, err := newService(cfg, repo, publisher, m, log).SendDueReminders(ctx)
	if err != nil {
		return n, err
	}
	log.Info("due reminders sent", zap.Int("count", n))
	return n, nil
}

// Migrate applies (up) or rolls back one step (down) of the schema.
func Migrate(ctx context.Context, cfg *config.Config, up bool) error {
	db, err := postgres.Connect(ctx, cfg.Database.DSN(), cfg.Database.MaxConns)
	if err != nil {
		return err
	}
	defer db.Close()
	if up {
		return postgres.MigrateUp(db, migrations.MigrationFiles, cfg.Database.MigrationsTable)
	}
	return postgres.MigrateDown(db, migrations.MigrationFiles, cfg.Database.MigrationsTable)
}

func newService(cfg *config.Config, repo repository.Repository, publisher events.Publisher, m *metrics.Metrics, log *zap.Logger) *service.Service {
	return service.NewService(repo, publisher, log,
		service.WithMetrics(m),
		service.WithAuth(cfg.Auth),
		service.WithResetTTL(cfg.Reset.CodeTTL),
	)
}

// newPublisher returns a no-op publisher when kafka is disabled or
// unreachable.
func newPublisher(cfg kafka.Config, m *metrics.Metrics, log *zap.Logger) (events.Publisher, sarama.SyncProducer) {
	if !cfg.Enable {
		return events.Nop(), nil
	}
	if err := kafka.CreateTopics(cfg); err != nil {
		log.Warn("kafka.CreateTopics", zap.Error(err))
	}
	producer, err := kafka.NewSyncProducer(cfg)
	if err != nil {
		log.Warn("kafka.NewSyncProducer", zap.Error(err))
		return events.Nop(), nil
	}
	cb := circuit_breaker.New(circuit_breaker.Settings{
		Window:        20,
		Cooldown:      30 * time.Second,
		FailureRatio:  0.5,
		RecoveryCalls: 3,
	})
	return events.NewPublisher(producer, cb, m, log), producer
}
