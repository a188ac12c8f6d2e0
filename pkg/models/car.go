package models

import "fmt"

type Car struct {
	ID             int64         `json:"id"`
	Model          string        `json:"model"`
	ManufacturerID int64         `json:"manufacturer_id"`
	Manufacturer   *Manufacturer `json:"manufacturer,omitempty"`
	DriverIDs      []int64       `json:"driver_ids"`
	Drivers        []*Driver     `json:"drivers,omitempty"`
}

func (c *Car) String() string {
	return c.Model
}

func (c *Car) AbsoluteURL() string {
	return fmt.Sprintf("/cars/%d/", c.ID)
}

// HasDriver reports whether the driver is assigned to the car.
func (c *Car) HasDriver(driverID int64) bool {
	for _, id := range c.DriverIDs {
		if id == driverID {
			return true
		}
	}
	for _, d := range c.Drivers {
		if d.ID == driverID {
			return true
		}
	}
	return false
}
