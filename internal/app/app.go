package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"quest/internal/auth"
	"quest/internal/config"
	"quest/internal/profanity"
	"quest/internal/services"
	"quest/internal/store"
	"quest/internal/store/primary"
)

type App struct {
	Config *config.Config

	QuestionStore store.QuestionStore
	AnswerStore   store.AnswerStore
	AccountStore  store.AccountStore

	Tokens *auth.TokenManager
	Filter *profanity.Client

	QuestionService *services.QuestionService
	AnswerService   *services.AnswerService
	AccountService  *services.AccountService

	primary *primary.StoreImpl
}

// NewApp wires the application: connection pool, stores, filter client,
// token manager and services. Failure here aborts startup; nothing in it
// is part of per-request error classification.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	primaryStore, err := primary.NewPrimaryStore(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize primary store: %w", err)
	}
	app.primary = primaryStore
	app.QuestionStore = primaryStore
	app.AnswerStore = primaryStore
	app.AccountStore = primaryStore

	tokens, err := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		primaryStore.Close()
		return nil, fmt.Errorf("failed to initialize token manager: %w", err)
	}
	app.Tokens = tokens

	app.Filter = profanity.NewClient(cfg.Filter.URL, cfg.Filter.APIKey)

	app.QuestionService = services.NewQuestionService(services.QuestionServiceDeps{
		QuestionStore: app.QuestionStore,
		Filter:        app.Filter,
	})
	app.AnswerService = services.NewAnswerService(services.AnswerServiceDeps{
		AnswerStore: app.AnswerStore,
		Filter:      app.Filter,
	})
	app.AccountService = services.NewAccountService(services.AccountServiceDeps{
		AccountStore: app.AccountStore,
		Tokens:       app.Tokens,
	})

	log.Info("application initialization complete")
	return app, nil
}

// Close releases the connection pool.
func (a *App) Close() {
	if a.primary != nil {
		a.primary.Close()
	}
}
