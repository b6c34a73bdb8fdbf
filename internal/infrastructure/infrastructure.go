// Package infrastructure provides core service initialization for application startup.
// It assembles the lifecycle, logging, database, and session dependencies that
// domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/migrations"
	"github.com/JaimeStill/taxi-service/internal/session"
	"github.com/JaimeStill/taxi-service/pkg/database"
	"github.com/JaimeStill/taxi-service/pkg/lifecycle"
	"github.com/JaimeStill/taxi-service/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Sessions  *session.Manager

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	sessions := session.NewManager(session.Config{
		Secret:     []byte(cfg.Auth.Secret),
		CookieName: cfg.Auth.CookieName,
		TTL:        cfg.Auth.SessionTTLDuration(),
		Secure:     cfg.Auth.SecureCookie,
		LoginURL:   cfg.Auth.LoginURL,
	})

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Sessions:  sessions,
		dbConfig:  &cfg.Database,
	}, nil
}

// Start connects the database, applying migrations first when auto_migrate
// is enabled.
func (i *Infrastructure) Start() error {
	if i.dbConfig != nil && i.dbConfig.AutoMigrate {
		if err := migrations.Up(i.dbConfig.URL(), i.Logger.With("system", "migrations")); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}

// WithLogger returns a shallow copy whose logger carries the given attributes.
func (i *Infrastructure) WithLogger(args ...any) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With(args...),
		Database:  i.Database,
		Sessions:  i.Sessions,
		dbConfig:  i.dbConfig,
	}
}
