package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/config"
	"github.com/farm2home/farm2home-backend/internal/application"
	pginfra "github.com/farm2home/farm2home-backend/internal/infrastructure/postgres"
	"github.com/farm2home/farm2home-backend/internal/worker"
	"github.com/farm2home/farm2home-backend/pkg/helpers"
	"github.com/farm2home/farm2home-backend/pkg/mailer"
)

// cleanupHourUTC is when the daily retention sweep fires.
const cleanupHourUTC = 2

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-worker", cfg.Env)

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	for _, q := range []string{cfg.RabbitMQUserQueue, cfg.RabbitMQOrderQueue} {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			log.Fatalf("queue declare %s: %v", q, err)
		}
	}

	userMsgs, err := ch.Consume(cfg.RabbitMQUserQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume %s: %v", cfg.RabbitMQUserQueue, err)
	}
	orderMsgs, err := ch.Consume(cfg.RabbitMQOrderQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume %s: %v", cfg.RabbitMQOrderQueue, err)
	}

	es := buildES(cfg, logger)
	var mg *mailer.Mailgun
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		mg = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}

	notifRepo := pginfra.NewNotificationRepository(pool)
	notifSvc := application.NewNotificationService(notifRepo, mg, cfg.MailSendEnabled, logger)
	bootstrap := application.NewBootstrapService(
		pginfra.NewUserSetupRepository(pool),
		pginfra.NewAnalyticsRepository(pool),
		es, cfg.ESAnalyticsIndex, logger,
	)
	fulfillment := application.NewFulfillmentService(pginfra.NewProductRepository(pool), notifSvc, logger)
	cleanup := application.NewCleanupService(notifRepo, logger)

	dispatcher := worker.NewDispatcher(bootstrap, fulfillment, logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	quit := make(chan struct{})
	done := make(chan struct{})

	// Event handlers never fail a delivery: results are logged and the
	// message is acked either way, so the broker does not redeliver on
	// handler errors.
	go func() {
		defer close(done)
		for {
			select {
			case msg, okCh := <-userMsgs:
				if !okCh {
					return
				}
				res := dispatcher.HandleUserCreated(ctx, msg.Body)
				logger.WithFields(logrus.Fields{"queue": cfg.RabbitMQUserQueue, "success": res.Success}).Debug("event handled")
				_ = msg.Ack(false)
			case msg, okCh := <-orderMsgs:
				if !okCh {
					return
				}
				res := dispatcher.HandleOrderCreated(ctx, msg.Body)
				logger.WithFields(logrus.Fields{"queue": cfg.RabbitMQOrderQueue, "success": res.Success}).Debug("event handled")
				_ = msg.Ack(false)
			}
		}
	}()

	// Daily retention sweep at the fixed hour. A failed run is logged and
	// the schedule keeps going.
	go func() {
		for {
			timer := time.NewTimer(time.Until(nextRun(time.Now().UTC())))
			select {
			case <-timer.C:
				res := worker.RunCleanup(ctx, cleanup, logger)
				logger.WithFields(logrus.Fields{
					"success":       res.Success,
					"deleted_count": res.DeletedCount,
				}).Info("scheduled cleanup finished")
			case <-quit:
				timer.Stop()
				return
			}
		}
	}()

	logger.Infof("worker listening on queues %s, %s", cfg.RabbitMQUserQueue, cfg.RabbitMQOrderQueue)
	<-stop
	logger.Info("shutting down...")
	close(quit)
	_ = ch.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// buildES creates the analytics ES client. Indexing is best effort, so a
// connection failure only disables it.
func buildES(cfg *config.Config, logger *logrus.Logger) *elasticsearch.Client {
	addrs := strings.Split(cfg.ElasticsearchAddrs, ",")
	for i := range addrs {
		addrs[i] = strings.TrimSpace(addrs[i])
	}
	es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch unavailable; analytics indexing disabled")
		return nil
	}
	return es
}

// nextRun returns the next occurrence of the cleanup hour after now.
func nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), cleanupHourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
