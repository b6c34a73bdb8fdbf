package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/JaimeStill/taxi-service/internal/cars"
	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/manufacturers"
	"github.com/pelletier/go-toml/v2"
)

//go:embed seeds/*.toml
var seedFiles embed.FS

const embeddedSeed = "seeds/taxi.toml"

// SeedData is the TOML layout of a seed file. Cars reference their
// manufacturer by name and their drivers by username.
type SeedData struct {
	Manufacturers []ManufacturerSeed `toml:"manufacturers"`
	Drivers       []DriverSeed       `toml:"drivers"`
	Cars          []CarSeed          `toml:"cars"`
}

type ManufacturerSeed struct {
	Name    string `toml:"name"`
	Country string `toml:"country"`
}

type DriverSeed struct {
	Username      string `toml:"username"`
	Password      string `toml:"password"`
	FirstName     string `toml:"first_name"`
	LastName      string `toml:"last_name"`
	Email         string `toml:"email"`
	LicenseNumber string `toml:"license_number"`
}

type CarSeed struct {
	Model        string   `toml:"model"`
	Manufacturer string   `toml:"manufacturer"`
	Drivers      []string `toml:"drivers"`
}

// loadSeedData reads path, or the embedded seed when path is empty, and
// validates every record against the domain rules.
func loadSeedData(path string) (*SeedData, error) {
	var (
		content []byte
		err     error
	)
	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile(embeddedSeed)
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data SeedData
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *SeedData) validate() error {
	mfrs := make(map[string]bool, len(d.Manufacturers))
	for _, m := range d.Manufacturers {
		cmd := manufacturers.Command{Name: m.Name, Country: m.Country}
		if errs := cmd.Validate(); len(errs) > 0 {
			return fmt.Errorf("manufacturer %q: %w", m.Name, errs)
		}
		mfrs[m.Name] = true
	}

	usernames := make(map[string]bool, len(d.Drivers))
	for _, dr := range d.Drivers {
		cmd := dr.command()
		if errs := cmd.Validate(); len(errs) > 0 {
			return fmt.Errorf("driver %q: %w", dr.Username, errs)
		}
		usernames[dr.Username] = true
	}

	for _, c := range d.Cars {
		if !mfrs[c.Manufacturer] {
			return fmt.Errorf("car %q: unknown manufacturer %q", c.Model, c.Manufacturer)
		}
		for _, u := range c.Drivers {
			if !usernames[u] {
				return fmt.Errorf("car %q: unknown driver %q", c.Model, u)
			}
		}
		if c.Model == "" {
			return fmt.Errorf("car for %q: %w", c.Manufacturer, cars.ErrInvalid)
		}
	}
	return nil
}

func (d DriverSeed) command() drivers.CreateCommand {
	return drivers.CreateCommand{
		Username:        d.Username,
		Password:        d.Password,
		PasswordConfirm: d.Password,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		LicenseNumber:   d.LicenseNumber,
	}
}
