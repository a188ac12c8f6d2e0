package forms

import (
	"strings"

	"taxipark/pkg/models"
)

type ManufacturerForm struct {
	Name    string `form:"name" validate:"required,max=255"`
	Country string `form:"country" validate:"required,max=255"`

	Errors Errors `form:"-"`
}

func NewManufacturerForm(m *models.Manufacturer) *ManufacturerForm {
	f := &ManufacturerForm{Errors: Errors{}}
	if m != nil {
		f.Name = m.Name
		f.Country = m.Country
	}
	return f
}

// Fields lists the editable manufacturer fields in display order.
func (f *ManufacturerForm) Fields() []string {
	return []string{"name", "country"}
}

func (f *ManufacturerForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.Name = strings.TrimSpace(f.Name)
	f.Country = strings.TrimSpace(f.Country)

	check(f, f.Errors)
	return len(f.Errors) == 0
}

func (f *ManufacturerForm) Apply(m *models.Manufacturer) {
	m.Name = f.Name
	m.Country = f.Country
}
