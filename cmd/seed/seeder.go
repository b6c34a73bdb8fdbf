// Package main provides the seed command for populating the database with
// demo manufacturers, drivers and cars. Seeders run in dependency order,
// individually or together within a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// Seeder populates one table group from SeedData.
type Seeder interface {
	Name() string
	Description() string

	// Seed executes within tx so several seeders commit or roll back together.
	Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error
}

// seeders is ordered: cars reference manufacturers and drivers by name.
var seeders = []Seeder{
	&ManufacturerSeeder{},
	&DriverSeeder{},
	&CarSeeder{},
}

func getSeeder(name string) (Seeder, bool) {
	for _, s := range seeders {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// runSeeder executes a single seeder by name within a transaction.
func runSeeder(ctx context.Context, db *sql.DB, name string, data *SeedData) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}
	return inTx(ctx, db, func(tx *sql.Tx) error {
		if err := seeder.Seed(ctx, tx, data); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		return nil
	})
}

// runAllSeeders executes every seeder in order within a single transaction.
// If any seeder fails, the entire transaction is rolled back.
func runAllSeeders(ctx context.Context, db *sql.DB, data *SeedData) error {
	return inTx(ctx, db, func(tx *sql.Tx) error {
		for _, s := range seeders {
			if err := s.Seed(ctx, tx, data); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}
		return nil
	})
}

func inTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
