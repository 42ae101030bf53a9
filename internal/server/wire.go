package server

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qa-forum/backend/internal/ai"
	"github.com/emilythestrangee/qa-forum/backend/internal/auth"
	"github.com/emilythestrangee/qa-forum/backend/internal/config"
	"github.com/emilythestrangee/qa-forum/backend/internal/metrics"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

// NewServices builds the store and service graph on db. m may be nil.
func NewServices(cfg config.Config, p profile.Profile, db *gorm.DB, m *metrics.Metrics) (*service.Services, error) {
	tokens, err := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	var rec ai.Recorder
	var votes service.VoteRecorder
	if m != nil {
		rec, votes = m, m
	}

	var remote ai.Assistant
	if cfg.AI.Enabled() {
		client, err := ai.NewOpenAI(ai.OpenAIConfig{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
		}, p)
		if err != nil {
			return nil, fmt.Errorf("assistant client: %w", err)
		}
		remote = client
	} else {
		slog.Info("no assistant api key configured, serving assistant locally")
	}
	assistant := ai.NewFailover(remote, ai.NewLocal(p), ai.FailoverConfig{
		Timeout:         cfg.AI.Timeout,
		MaxFailures:     cfg.AI.BreakerFailures,
		BreakerCooldown: cfg.AI.BreakerCooldown,
	}, rec)

	stores := store.NewStores(db)
	return &service.Services{
		Auth:      service.NewAuthService(stores.Users(), tokens, p),
		Questions: service.NewQuestionService(stores.Questions(), stores.Answers(), p),
		Votes:     service.NewVoteLedger(stores.Votes(), votes),
		Search:    service.NewSearchService(stores.Questions()),
		Assistant: service.NewAssistantService(assistant, stores.Chats(), stores.Answers(), p),
	}, nil
}
