package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"taxipark/pkg/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type IStorage interface {
	Manufacturer() IManufacturerStorage
	Driver() IDriverStorage
	Car() ICarStorage
	Close()
	GetPool() *pgxpool.Pool
}

// Count and Search share the same filter: a case-insensitive substring match
// on the entity's search field; an empty text matches everything.

type IManufacturerStorage interface {
	Create(ctx context.Context, m *models.Manufacturer) (*models.Manufacturer, error)
	Update(ctx context.Context, m *models.Manufacturer) (*models.Manufacturer, error)
	GetByID(ctx context.Context, id int64) (*models.Manufacturer, error)
	GetAll(ctx context.Context) ([]*models.Manufacturer, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Count(ctx context.Context, text string) (int, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*models.Manufacturer, error)
	Delete(ctx context.Context, id int64) error
}

type IDriverStorage interface {
	Create(ctx context.Context, d *models.Driver) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	GetByUsername(ctx context.Context, username string) (*models.Driver, error)
	GetAll(ctx context.Context) ([]*models.Driver, error)
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	LicenseNumberExists(ctx context.Context, licenseNumber string, excludeID int64) (bool, error)
	UpdateLicenseNumber(ctx context.Context, id int64, licenseNumber string) error
	Count(ctx context.Context, text string) (int, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*models.Driver, error)
	Delete(ctx context.Context, id int64) error
}

type ICarStorage interface {
	Create(ctx context.Context, c *models.Car) (*models.Car, error)
	Update(ctx context.Context, c *models.Car) (*models.Car, error)
	GetByID(ctx context.Context, id int64) (*models.Car, error)
	GetByDriver(ctx context.Context, driverID int64) ([]*models.Car, error)
	ToggleDriver(ctx context.Context, carID, driverID int64) (bool, error)
	Count(ctx context.Context, text string) (int, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*models.Car, error)
	Delete(ctx context.Context, id int64) error
}
