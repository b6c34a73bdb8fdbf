package cars

import (
	"time"

	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/google/uuid"
)

// Car is a vehicle of one manufacturer, driven by any number of drivers.
type Car struct {
	ID             uuid.UUID `json:"id"`
	Model          string    `json:"model"`
	ManufacturerID uuid.UUID `json:"manufacturer_id"`
	Manufacturer   string    `json:"manufacturer"`
	Drivers        []Driver  `json:"drivers,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasDriver reports whether the driver is assigned to the car. Drivers
// must be loaded.
func (c Car) HasDriver(id uuid.UUID) bool {
	for _, d := range c.Drivers {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Driver is a driver assigned to a car.
type Driver struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	LicenseNumber string    `json:"license_number"`
}

// Command carries the editable fields for create and update.
type Command struct {
	Model          string      `json:"model"`
	ManufacturerID uuid.UUID   `json:"manufacturer_id"`
	DriverIDs      []uuid.UUID `json:"driver_ids"`
}

// CommandFromForm reads a Command from submitted form values. Unparseable
// ids become uuid.Nil and fail validation.
func CommandFromForm(v form.Values) Command {
	cmd := Command{Model: v.Get("model")}

	if s := v.Get("manufacturer"); s != "" {
		cmd.ManufacturerID, _ = uuid.Parse(s)
	}

	seen := make(map[uuid.UUID]bool)
	for _, s := range v.All("drivers") {
		id, _ := uuid.Parse(s)
		if seen[id] {
			continue
		}
		seen[id] = true
		cmd.DriverIDs = append(cmd.DriverIDs, id)
	}
	return cmd
}

// Selected reports whether the driver is part of the command.
func (c Command) Selected(id uuid.UUID) bool {
	for _, d := range c.DriverIDs {
		if d == id {
			return true
		}
	}
	return false
}

// Validate returns field errors, or nil when the command is valid.
func (c Command) Validate() form.Errors {
	errs := form.Errors{}

	errs.Required("model", c.Model)
	errs.MaxLength("model", c.Model, 255)

	if c.ManufacturerID == uuid.Nil {
		errs.Add("manufacturer", "Select a valid choice.")
	}
	for _, id := range c.DriverIDs {
		if id == uuid.Nil {
			errs.Add("drivers", "Select a valid choice.")
			break
		}
	}

	if errs.Any() {
		return errs
	}
	return nil
}
