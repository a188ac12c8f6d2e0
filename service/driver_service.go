package service

import (
	"context"
	"errors"
	"fmt"

	"taxipark/pkg/forms"
	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/pkg/notify"
	"taxipark/storage"
)

const (
	msgUsernameExists = "A user with that username already exists."
	msgLicenseExists  = "Driver with this License number already exists."
)

type DriverService interface {
	List(ctx context.Context, q ListQuery) (*ListResult[models.Driver], error)
	Get(ctx context.Context, id int64) (*models.Driver, error)
	Detail(ctx context.Context, id int64) (*models.Driver, error)
	All(ctx context.Context) ([]*models.Driver, error)
	Create(ctx context.Context, f *forms.DriverCreationForm) (*models.Driver, error)
	CreateUser(ctx context.Context, d *models.Driver, password string) (*models.Driver, error)
	UpdateLicense(ctx context.Context, id int64, f *forms.DriverLicenseUpdateForm) (*models.Driver, error)
	Delete(ctx context.Context, id int64) error
}

type driverService struct {
	stg      storage.IStorage
	notifier notify.INotifier
	log      logger.ILogger
	pageSize int
}

func NewDriverService(stg storage.IStorage, notifier notify.INotifier, log logger.ILogger, pageSize int) DriverService {
	return &driverService{
		stg:      stg,
		notifier: notifier,
		log:      log,
		pageSize: pageSize,
	}
}

func (s *driverService) List(ctx context.Context, q ListQuery) (*ListResult[models.Driver], error) {
	return listPage[models.Driver](ctx, s.stg.Driver(), q, s.pageSize)
}

func (s *driverService) Get(ctx context.Context, id int64) (*models.Driver, error) {
	return s.stg.Driver().GetByID(ctx, id)
}

// Detail loads the driver together with the cars assigned to them.
func (s *driverService) Detail(ctx context.Context, id int64) (*models.Driver, error) {
	d, err := s.stg.Driver().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Cars, err = s.stg.Car().GetByDriver(ctx, id)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *driverService) All(ctx context.Context) ([]*models.Driver, error) {
	return s.stg.Driver().GetAll(ctx)
}

func (s *driverService) Create(ctx context.Context, f *forms.DriverCreationForm) (*models.Driver, error) {
	if !f.Validate() {
		return nil, forms.ErrInvalid
	}

	exists, err := s.stg.Driver().UsernameExists(ctx, f.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		f.Errors.Add("username", msgUsernameExists)
	}

	exists, err = s.stg.Driver().LicenseNumberExists(ctx, f.LicenseNumber, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		f.Errors.Add("license_number", msgLicenseExists)
	}
	if len(f.Errors) > 0 {
		return nil, forms.ErrInvalid
	}

	d, err := s.CreateUser(ctx, f.Driver(), f.Password1)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			f.Errors.Add(forms.NonField, msgUsernameExists)
			return nil, forms.ErrInvalid
		}
		return nil, err
	}
	return d, nil
}

// CreateUser hashes the password and stores the driver without form checks.
func (s *driverService) CreateUser(ctx context.Context, d *models.Driver, password string) (*models.Driver, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	d.PasswordHash = hash

	d, err = s.stg.Driver().Create(ctx, d)
	if err != nil {
		return nil, err
	}

	s.log.Info("driver created", logger.Int64("id", d.ID), logger.String("username", d.Username))
	s.notifier.Notify("driver created", d)
	return d, nil
}

func (s *driverService) UpdateLicense(ctx context.Context, id int64, f *forms.DriverLicenseUpdateForm) (*models.Driver, error) {
	d, err := s.stg.Driver().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !f.Validate() {
		return nil, forms.ErrInvalid
	}

	exists, err := s.stg.Driver().LicenseNumberExists(ctx, f.LicenseNumber, id)
	if err != nil {
		return nil, err
	}
	if exists {
		f.Errors.Add("license_number", msgLicenseExists)
		return nil, forms.ErrInvalid
	}

	if err := s.stg.Driver().UpdateLicenseNumber(ctx, id, f.LicenseNumber); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			f.Errors.Add("license_number", msgLicenseExists)
			return nil, forms.ErrInvalid
		}
		return nil, err
	}

	d.LicenseNumber = f.LicenseNumber
	return d, nil
}

func (s *driverService) Delete(ctx context.Context, id int64) error {
	d, err := s.stg.Driver().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.stg.Driver().Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("driver deleted", logger.Int64("id", id))
	s.notifier.Notify("driver deleted", d)
	return nil
}
