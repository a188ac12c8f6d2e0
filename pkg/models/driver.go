package models

import (
	"fmt"
	"time"
)

// Driver is both a fleet member and the account that logs in.
type Driver struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	LicenseNumber string    `json:"license_number"`
	PasswordHash  string    `json:"-"`
	DateJoined    time.Time `json:"date_joined"`
	Cars          []*Car    `json:"cars,omitempty"`
}

func (d *Driver) String() string {
	return fmt.Sprintf("%s (%s %s)", d.Username, d.FirstName, d.LastName)
}

func (d *Driver) AbsoluteURL() string {
	return fmt.Sprintf("/drivers/%d/", d.ID)
}

type IndexStats struct {
	NumDrivers       int `json:"num_drivers"`
	NumCars          int `json:"num_cars"`
	NumManufacturers int `json:"num_manufacturers"`
}
