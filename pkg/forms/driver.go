package forms

import (
	"strings"

	"taxipark/pkg/models"
)

type DriverCreationForm struct {
	Username      string `form:"username" validate:"required,max=150,username"`
	FirstName     string `form:"first_name" validate:"max=150"`
	LastName      string `form:"last_name" validate:"max=150"`
	Password1     string `form:"password1" validate:"required,min=8"`
	Password2     string `form:"password2" validate:"required,eqfield=Password1"`
	LicenseNumber string `form:"license_number" validate:"required,license_number"`

	Errors Errors `form:"-"`
}

func NewDriverCreationForm() *DriverCreationForm {
	return &DriverCreationForm{Errors: Errors{}}
}

func (f *DriverCreationForm) Fields() []string {
	return []string{"username", "first_name", "last_name", "password1", "password2", "license_number"}
}

func (f *DriverCreationForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.Username = strings.TrimSpace(f.Username)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.LicenseNumber = strings.TrimSpace(f.LicenseNumber)

	check(f, f.Errors)
	return len(f.Errors) == 0
}

// CleanedData mirrors the submitted values once the form is valid.
func (f *DriverCreationForm) CleanedData() map[string]string {
	return map[string]string{
		"username":       f.Username,
		"first_name":     f.FirstName,
		"last_name":      f.LastName,
		"password1":      f.Password1,
		"password2":      f.Password2,
		"license_number": f.LicenseNumber,
	}
}

// Driver builds the model; the password hash is filled in by the caller.
func (f *DriverCreationForm) Driver() *models.Driver {
	return &models.Driver{
		Username:      f.Username,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		LicenseNumber: f.LicenseNumber,
	}
}

type DriverLicenseUpdateForm struct {
	LicenseNumber string `form:"license_number" validate:"required,license_number"`

	Errors Errors `form:"-"`
}

func NewDriverLicenseUpdateForm(d *models.Driver) *DriverLicenseUpdateForm {
	f := &DriverLicenseUpdateForm{Errors: Errors{}}
	if d != nil {
		f.LicenseNumber = d.LicenseNumber
	}
	return f
}

func (f *DriverLicenseUpdateForm) Fields() []string {
	return []string{"license_number"}
}

func (f *DriverLicenseUpdateForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.LicenseNumber = strings.TrimSpace(f.LicenseNumber)

	check(f, f.Errors)
	return len(f.Errors) == 0
}
