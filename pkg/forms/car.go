package forms

import (
	"strconv"
	"strings"

	"taxipark/pkg/models"
)

type CarForm struct {
	Model        string   `form:"model" validate:"required,max=255"`
	Manufacturer string   `form:"manufacturer" validate:"required,numeric"`
	Drivers      []string `form:"drivers" validate:"dive,numeric"`

	Errors Errors `form:"-"`

	manufacturerID int64
	driverIDs      []int64
}

func NewCarForm(c *models.Car) *CarForm {
	f := &CarForm{Errors: Errors{}}
	if c != nil {
		f.Model = c.Model
		f.Manufacturer = strconv.FormatInt(c.ManufacturerID, 10)
		for _, id := range c.DriverIDs {
			f.Drivers = append(f.Drivers, strconv.FormatInt(id, 10))
		}
	}
	return f
}

func (f *CarForm) Fields() []string {
	return []string{"model", "manufacturer", "drivers"}
}

func (f *CarForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.Model = strings.TrimSpace(f.Model)

	check(f, f.Errors)
	if len(f.Errors) > 0 {
		return false
	}

	id, err := strconv.ParseInt(f.Manufacturer, 10, 64)
	if err != nil {
		f.Errors.Add("manufacturer", msgChoice)
		return false
	}
	f.manufacturerID = id

	f.driverIDs = f.driverIDs[:0]
	seen := make(map[int64]bool, len(f.Drivers))
	for _, raw := range f.Drivers {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			f.Errors.Add("drivers", msgChoice)
			return false
		}
		if !seen[id] {
			seen[id] = true
			f.driverIDs = append(f.driverIDs, id)
		}
	}
	return true
}

func (f *CarForm) ManufacturerID() int64 {
	return f.manufacturerID
}

func (f *CarForm) DriverIDs() []int64 {
	return f.driverIDs
}

// Selected reports whether the driver id was submitted, for re-rendering.
func (f *CarForm) Selected(id int64) bool {
	s := strconv.FormatInt(id, 10)
	for _, d := range f.Drivers {
		if d == s {
			return true
		}
	}
	return false
}

// ChoiceError records that a referenced row no longer exists.
func (f *CarForm) ChoiceError(field string) {
	f.Errors.Add(field, msgChoice)
}

func (f *CarForm) Apply(c *models.Car) {
	c.Model = f.Model
	c.ManufacturerID = f.manufacturerID
	c.DriverIDs = append([]int64(nil), f.driverIDs...)
}
