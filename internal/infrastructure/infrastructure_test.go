package infrastructure_test

import (
	"testing"

	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/infrastructure"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Name = "taxi"
	cfg.Database.User = "taxi"
	cfg.Auth.Secret = "0123456789abcdef0123456789abcdef"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(testConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Database == nil || infra.Database.Connection() == nil {
		t.Error("Database is not initialized")
	}
	if infra.Sessions == nil || infra.Sessions.LoginURL() != "/accounts/login/" {
		t.Error("Sessions is not initialized from auth config")
	}
}

func TestWithLogger(t *testing.T) {
	infra, err := infrastructure.New(testConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	scoped := infra.WithLogger("module", "cars")

	if scoped.Logger == infra.Logger {
		t.Error("WithLogger() should derive a new logger")
	}
	if scoped.Database != infra.Database || scoped.Lifecycle != infra.Lifecycle || scoped.Sessions != infra.Sessions {
		t.Error("WithLogger() should share systems")
	}
}
