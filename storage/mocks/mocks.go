// Package mocks provides testify mocks of the storage interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/mock"

	"taxipark/pkg/models"
	"taxipark/storage"
)

// Storage bundles one mock per repository.
type Storage struct {
	Manufacturers *ManufacturerStorage
	Drivers       *DriverStorage
	Cars          *CarStorage
}

var _ storage.IStorage = (*Storage)(nil)

// NewStorage creates the mocks and asserts their expectations on cleanup.
func NewStorage(t *testing.T) *Storage {
	t.Helper()

	s := &Storage{
		Manufacturers: &ManufacturerStorage{},
		Drivers:       &DriverStorage{},
		Cars:          &CarStorage{},
	}
	t.Cleanup(func() {
		s.Manufacturers.AssertExpectations(t)
		s.Drivers.AssertExpectations(t)
		s.Cars.AssertExpectations(t)
	})
	return s
}

func (s *Storage) Manufacturer() storage.IManufacturerStorage { return s.Manufacturers }
func (s *Storage) Driver() storage.IDriverStorage             { return s.Drivers }
func (s *Storage) Car() storage.ICarStorage                   { return s.Cars }
func (s *Storage) Close()                                     {}
func (s *Storage) GetPool() *pgxpool.Pool                     { return nil }

type ManufacturerStorage struct {
	mock.Mock
}

func (m *ManufacturerStorage) Create(ctx context.Context, in *models.Manufacturer) (*models.Manufacturer, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Manufacturer)
	return out, args.Error(1)
}

func (m *ManufacturerStorage) Update(ctx context.Context, in *models.Manufacturer) (*models.Manufacturer, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Manufacturer)
	return out, args.Error(1)
}

func (m *ManufacturerStorage) GetByID(ctx context.Context, id int64) (*models.Manufacturer, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Manufacturer)
	return out, args.Error(1)
}

func (m *ManufacturerStorage) GetAll(ctx context.Context) ([]*models.Manufacturer, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Manufacturer)
	return out, args.Error(1)
}

func (m *ManufacturerStorage) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *ManufacturerStorage) Count(ctx context.Context, text string) (int, error) {
	args := m.Called(ctx, text)
	return args.Int(0), args.Error(1)
}

func (m *ManufacturerStorage) Search(ctx context.Context, text string, limit, offset int) ([]*models.Manufacturer, error) {
	args := m.Called(ctx, text, limit, offset)
	out, _ := args.Get(0).([]*models.Manufacturer)
	return out, args.Error(1)
}

func (m *ManufacturerStorage) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type DriverStorage struct {
	mock.Mock
}

func (m *DriverStorage) Create(ctx context.Context, in *models.Driver) (*models.Driver, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Driver)
	return out, args.Error(1)
}

func (m *DriverStorage) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Driver)
	return out, args.Error(1)
}

func (m *DriverStorage) GetByUsername(ctx context.Context, username string) (*models.Driver, error) {
	args := m.Called(ctx, username)
	out, _ := args.Get(0).(*models.Driver)
	return out, args.Error(1)
}

func (m *DriverStorage) GetAll(ctx context.Context) ([]*models.Driver, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Driver)
	return out, args.Error(1)
}

func (m *DriverStorage) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).([]int64)
	return out, args.Error(1)
}

func (m *DriverStorage) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *DriverStorage) LicenseNumberExists(ctx context.Context, licenseNumber string, excludeID int64) (bool, error) {
	args := m.Called(ctx, licenseNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *DriverStorage) UpdateLicenseNumber(ctx context.Context, id int64, licenseNumber string) error {
	return m.Called(ctx, id, licenseNumber).Error(0)
}

func (m *DriverStorage) Count(ctx context.Context, text string) (int, error) {
	args := m.Called(ctx, text)
	return args.Int(0), args.Error(1)
}

func (m *DriverStorage) Search(ctx context.Context, text string, limit, offset int) ([]*models.Driver, error) {
	args := m.Called(ctx, text, limit, offset)
	out, _ := args.Get(0).([]*models.Driver)
	return out, args.Error(1)
}

func (m *DriverStorage) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type CarStorage struct {
	mock.Mock
}

func (m *CarStorage) Create(ctx context.Context, in *models.Car) (*models.Car, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Car)
	return out, args.Error(1)
}

func (m *CarStorage) Update(ctx context.Context, in *models.Car) (*models.Car, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.Car)
	return out, args.Error(1)
}

func (m *CarStorage) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Car)
	return out, args.Error(1)
}

func (m *CarStorage) GetByDriver(ctx context.Context, driverID int64) ([]*models.Car, error) {
	args := m.Called(ctx, driverID)
	out, _ := args.Get(0).([]*models.Car)
	return out, args.Error(1)
}

func (m *CarStorage) ToggleDriver(ctx context.Context, carID, driverID int64) (bool, error) {
	args := m.Called(ctx, carID, driverID)
	return args.Bool(0), args.Error(1)
}

func (m *CarStorage) Count(ctx context.Context, text string) (int, error) {
	args := m.Called(ctx, text)
	return args.Int(0), args.Error(1)
}

func (m *CarStorage) Search(ctx context.Context, text string, limit, offset int) ([]*models.Car, error) {
	args := m.Called(ctx, text, limit, offset)
	out, _ := args.Get(0).([]*models.Car)
	return out, args.Error(1)
}

func (m *CarStorage) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
