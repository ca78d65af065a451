package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-lending/pkg/auth"
	"github.com/Astemirdum/book-lending/pkg/kafka"
	"github.com/Astemirdum/book-lending/pkg/logger"
	"github.com/Astemirdum/book-lending/pkg/metrics"
	"github.com/Astemirdum/book-lending/pkg/postgres"
	"github.com/Astemirdum/book-lending/stats/config"
	"github.com/Astemirdum/book-lending/stats/internal/handler"
	"github.com/Astemirdum/book-lending/stats/internal/repository"
	"github.com/Astemirdum/book-lending/stats/internal/server"
	"github.com/Astemirdum/book-lending/stats/internal/service"
	"github.com/Astemirdum/book-lending/stats/migrations"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const serviceName = "stats"

func Run(cfg *config.Config) error {
	log, err := logger.NewLogger(cfg.Log, serviceName)
	if err != nil {
		return err
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	svc := service.NewService(repo, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.Kafka.Enable {
		if err := kafka.CreateTopics(cfg.Kafka); err != nil {
			log.Warn("kafka.CreateTopics", zap.Error(err))
		}
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %w", err)
		}
		g.Go(func() error {
			kafka.Consume(ctx, consumer, handler.NewConsumer(svc.Record, log), log, kafka.ActivityTopic)
			return consumer.Close()
		})
	} else {
		log.Warn("kafka disabled, no events will be consumed")
	}

	h := handler.New(svc, auth.NewTokens(cfg.Auth), metrics.New(serviceName), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(srv.Run)
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
