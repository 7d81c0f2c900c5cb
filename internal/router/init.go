package router

import (
	"github.com/farm2home/farm2home-backend/internal/application"
	"github.com/farm2home/farm2home-backend/internal/container"
	pginfra "github.com/farm2home/farm2home-backend/internal/infrastructure/postgres"
	handlers "github.com/farm2home/farm2home-backend/internal/interface/http"
	"github.com/farm2home/farm2home-backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	notifRepo := pginfra.NewNotificationRepository(container.GetPGPool())
	notifSvc := application.NewNotificationService(notifRepo, container.GetMailgun(), cfg.MailSendEnabled, logger)

	functionHandler := handlers.NewFunctionHandler(logger)
	notificationHandler := handlers.NewNotificationHandler(notifSvc, logger)
	triggerHandler := handlers.NewTriggerHandler(container.GetRabbitPub(), cfg.RabbitMQUserQueue, cfg.RabbitMQOrderQueue, logger)

	r.Add(modules.NewFunctionModule(functionHandler, notificationHandler))
	r.Add(modules.NewTriggerModule(triggerHandler))
}
