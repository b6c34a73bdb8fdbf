// Command migrate applies or reverts the embedded database schema.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/migrations"
	"github.com/JaimeStill/taxi-service/pkg/logging"
	"github.com/joho/godotenv"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection URL (defaults to config.toml)")
		down    = flag.Bool("down", false, "Revert every applied migration")
		version = flag.Bool("version", false, "Print the current schema version")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("env file load failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config finalize failed: %v", err)
	}

	target := resolveDSN(*dsn, os.Getenv(EnvDatabaseDSN), cfg.Database.URL())
	logger := logging.New(&cfg.Logging).With("system", "migrations")

	switch {
	case *version:
		v, dirty, err := migrations.Version(target)
		if err != nil {
			log.Fatalf("read version failed: %v", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)

	case *down:
		if err := migrations.Down(target, logger); err != nil {
			log.Fatalf("migrate down failed: %v", err)
		}

	default:
		if err := migrations.Up(target, logger); err != nil {
			log.Fatalf("migrate up failed: %v", err)
		}
	}
}

// resolveDSN returns the first non-empty connection string in precedence
// order: flag, environment, configuration.
func resolveDSN(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
