package drivers

import (
	"net/mail"
	"time"

	"github.com/JaimeStill/taxi-service/pkg/form"
	"github.com/google/uuid"
)

// Driver is a registered driver and the account used to sign in.
type Driver struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	LicenseNumber string     `json:"license_number"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FullName joins first and last name, falling back to the username.
func (d Driver) FullName() string {
	switch {
	case d.FirstName != "" && d.LastName != "":
		return d.FirstName + " " + d.LastName
	case d.FirstName != "":
		return d.FirstName
	case d.LastName != "":
		return d.LastName
	}
	return d.Username
}

// Car is a car assigned to a driver, shown on the driver detail page.
type Car struct {
	ID           uuid.UUID `json:"id"`
	Model        string    `json:"model"`
	Manufacturer string    `json:"manufacturer"`
}

// CreateCommand registers a new driver.
type CreateCommand struct {
	Username        string `json:"username"`
	Password        string `json:"-"`
	PasswordConfirm string `json:"-"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	LicenseNumber   string `json:"license_number"`
}

// CreateCommandFromForm reads a CreateCommand from submitted form values.
// Passwords are taken verbatim.
func CreateCommandFromForm(v form.Values) CreateCommand {
	return CreateCommand{
		Username:        v.Get("username"),
		Password:        v.Raw("password1"),
		PasswordConfirm: v.Raw("password2"),
		FirstName:       v.Get("first_name"),
		LastName:        v.Get("last_name"),
		Email:           v.Get("email"),
		LicenseNumber:   v.Get("license_number"),
	}
}

// Validate returns field errors, or nil when the command is valid.
func (c CreateCommand) Validate() form.Errors {
	errs := form.Errors{}

	errs.Required("username", c.Username)
	errs.MaxLength("username", c.Username, 150)
	errs.Matches("username", c.Username, usernamePattern,
		"Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")

	errs.Required("password1", c.Password)
	if msg := checkPassword(c.Password); c.Password != "" && msg != "" {
		errs.Add("password1", msg)
	}
	errs.Required("password2", c.PasswordConfirm)
	if c.PasswordConfirm != "" && c.Password != c.PasswordConfirm {
		errs.Add("password2", "The two password fields didn't match.")
	}

	errs.MaxLength("first_name", c.FirstName, 150)
	errs.MaxLength("last_name", c.LastName, 150)
	errs.MaxLength("email", c.Email, 254)
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			errs.Add("email", "Enter a valid email address.")
		}
	}

	validateLicense(errs, c.LicenseNumber)

	if errs.Any() {
		return errs
	}
	return nil
}

// LicenseCommand changes a driver's license number.
type LicenseCommand struct {
	LicenseNumber string `json:"license_number"`
}

func LicenseCommandFromForm(v form.Values) LicenseCommand {
	return LicenseCommand{LicenseNumber: v.Get("license_number")}
}

// Validate returns field errors, or nil when the command is valid.
func (c LicenseCommand) Validate() form.Errors {
	errs := form.Errors{}
	validateLicense(errs, c.LicenseNumber)
	if errs.Any() {
		return errs
	}
	return nil
}

func validateLicense(errs form.Errors, license string) {
	errs.Required("license_number", license)
	if license == "" {
		return
	}
	if msg := checkLicense(license); msg != "" {
		errs.Add("license_number", msg)
	}
}
