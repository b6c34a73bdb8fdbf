package manufacturers

import (
	"time"

	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/google/uuid"
)

// Manufacturer is a car maker. Names are unique.
type Manufacturer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Command carries the editable fields for create and update.
type Command struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// CommandFromForm reads a Command from submitted form values.
func CommandFromForm(v form.Values) Command {
	return Command{
		Name:    v.Get("name"),
		Country: v.Get("country"),
	}
}

// Validate returns field errors, or nil when the command is valid.
func (c Command) Validate() form.Errors {
	errs := form.Errors{}
	errs.Required("name", c.Name)
	errs.MaxLength("name", c.Name, 255)
	errs.Required("country", c.Country)
	errs.MaxLength("country", c.Country, 255)
	if errs.Any() {
		return errs
	}
	return nil
}
