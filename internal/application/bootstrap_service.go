package application

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/internal/domain/entity"
	"github.com/farm2home/farm2home-backend/internal/domain/repository"
)

// BootstrapService initializes per-user records when a user document is
// created. The three writes are independent: a failure stops the sequence
// and leaves whatever already succeeded in place. The trigger is delivered
// at-least-once and no idempotency guard exists, so a redelivery can fail on
// the primary key; that error is absorbed by the caller's swallow-and-log
// policy.
type BootstrapService struct {
	Setup     repository.UserSetupRepository
	Analytics repository.AnalyticsRepository
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewBootstrapService(setup repository.UserSetupRepository, analytics repository.AnalyticsRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *BootstrapService {
	return &BootstrapService{Setup: setup, Analytics: analytics, ES: es, ESIndex: esIndex, Logger: logger}
}

func (s *BootstrapService) Run(ctx context.Context, userID string, user entity.UserSnapshot) error {
	prefs := entity.DefaultPreferences(userID)
	if err := s.Setup.CreatePreferences(ctx, prefs); err != nil {
		return err
	}

	cart := &entity.CartMetadata{UserID: userID, ItemCount: 0, TotalPrice: 0}
	if err := s.Setup.CreateCartMetadata(ctx, cart); err != nil {
		return err
	}

	ev := &entity.AnalyticsEvent{
		Event:  "user_created",
		UserID: userID,
		Email:  user.Email,
	}
	if err := s.Analytics.Append(ctx, ev); err != nil {
		return err
	}
	s.indexAnalyticsEvent(ctx, ev)

	s.Logger.WithFields(logrus.Fields{
		"user_id": userID,
		"email":   user.Email,
	}).Info("user initialization completed")
	return nil
}

// indexAnalyticsEvent mirrors the event into Elasticsearch. Best effort: an
// indexing failure is logged and never fails the bootstrap.
func (s *BootstrapService) indexAnalyticsEvent(ctx context.Context, ev *entity.AnalyticsEvent) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"event":      ev.Event,
		"user_id":    ev.UserID,
		"email":      ev.Email,
		"created_at": ev.CreatedAt,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		s.Logger.WithError(err).Warn("marshal analytics event for ES failed")
		return
	}
	res, err := s.ES.Index(s.ESIndex, bytes.NewReader(b),
		s.ES.Index.WithContext(ctx),
		s.ES.Index.WithDocumentID(ev.ID),
	)
	if err != nil {
		s.Logger.WithError(err).Warn("index analytics event failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.StatusCode).Warn("index analytics event rejected")
	}
}
