package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/google/uuid"
)

// ManufacturerSeeder saves manufacturers keyed by name.
type ManufacturerSeeder struct{}

func (s *ManufacturerSeeder) Name() string { return "manufacturers" }

func (s *ManufacturerSeeder) Description() string {
	return "Seeds car manufacturers"
}

func (s *ManufacturerSeeder) Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error {
	const q = `
		INSERT INTO manufacturers (id, name, country)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			country = EXCLUDED.country,
			updated_at = NOW()`

	for _, m := range data.Manufacturers {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, id, m.Name, m.Country); err != nil {
			return fmt.Errorf("save manufacturer %s: %w", m.Name, err)
		}
	}
	return nil
}

// DriverSeeder saves drivers keyed by username. Passwords are hashed on
// every run so a changed seed password takes effect.
type DriverSeeder struct{}

func (s *DriverSeeder) Name() string { return "drivers" }

func (s *DriverSeeder) Description() string {
	return "Seeds drivers with login credentials"
}

func (s *DriverSeeder) Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error {
	const q = `
		INSERT INTO drivers (id, username, password, first_name, last_name, email, license_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO UPDATE SET
			password = EXCLUDED.password,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			license_number = EXCLUDED.license_number,
			updated_at = NOW()`

	for _, d := range data.Drivers {
		hash, err := drivers.HashPassword(d.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", d.Username, err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, id, d.Username, hash, d.FirstName, d.LastName, d.Email, d.LicenseNumber)
		if err != nil {
			return fmt.Errorf("save driver %s: %w", d.Username, err)
		}
	}
	return nil
}

// CarSeeder saves cars keyed by model and manufacturer, then adds the listed
// driver assignments. Existing assignments are kept.
type CarSeeder struct{}

func (s *CarSeeder) Name() string { return "cars" }

func (s *CarSeeder) Description() string {
	return "Seeds cars and their driver assignments"
}

func (s *CarSeeder) Seed(ctx context.Context, tx *sql.Tx, data *SeedData) error {
	for _, c := range data.Cars {
		carID, err := s.saveCar(ctx, tx, c)
		if err != nil {
			return fmt.Errorf("save car %s: %w", c.Model, err)
		}
		for _, username := range c.Drivers {
			if err := s.assign(ctx, tx, carID, username); err != nil {
				return fmt.Errorf("assign %s to %s: %w", username, c.Model, err)
			}
		}
	}
	return nil
}

func (s *CarSeeder) saveCar(ctx context.Context, tx *sql.Tx, c CarSeed) (uuid.UUID, error) {
	var mfrID uuid.UUID
	err := tx.QueryRowContext(ctx, `SELECT id FROM manufacturers WHERE name = $1`, c.Manufacturer).Scan(&mfrID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("manufacturer %s: %w", c.Manufacturer, err)
	}

	var id uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM cars WHERE model = $1 AND manufacturer_id = $2`,
		c.Model, mfrID,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}

	id, err = uuid.NewV7()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO cars (id, model, manufacturer_id) VALUES ($1, $2, $3)`,
		id, c.Model, mfrID,
	)
	return id, err
}

func (s *CarSeeder) assign(ctx context.Context, tx *sql.Tx, carID uuid.UUID, username string) error {
	const q = `
		INSERT INTO car_drivers (car_id, driver_id)
		SELECT $1, id FROM drivers WHERE username = $2
		ON CONFLICT DO NOTHING`

	res, err := tx.ExecContext(ctx, q, carID, username)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM drivers WHERE username = $1)`, username).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("driver %s not found", username)
		}
	}
	return nil
}
