package service

import (
	"context"
	"errors"

	"taxipark/pkg/forms"
	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/pkg/notify"
	"taxipark/storage"
)

type CarService interface {
	List(ctx context.Context, q ListQuery) (*ListResult[models.Car], error)
	Get(ctx context.Context, id int64) (*models.Car, error)
	Create(ctx context.Context, f *forms.CarForm) (*models.Car, error)
	Update(ctx context.Context, id int64, f *forms.CarForm) (*models.Car, error)
	ToggleAssign(ctx context.Context, carID, driverID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type carService struct {
	stg      storage.IStorage
	notifier notify.INotifier
	log      logger.ILogger
	pageSize int
}

func NewCarService(stg storage.IStorage, notifier notify.INotifier, log logger.ILogger, pageSize int) CarService {
	return &carService{
		stg:      stg,
		notifier: notifier,
		log:      log,
		pageSize: pageSize,
	}
}

func (s *carService) List(ctx context.Context, q ListQuery) (*ListResult[models.Car], error) {
	return listPage[models.Car](ctx, s.stg.Car(), q, s.pageSize)
}

func (s *carService) Get(ctx context.Context, id int64) (*models.Car, error) {
	return s.stg.Car().GetByID(ctx, id)
}

func (s *carService) Create(ctx context.Context, f *forms.CarForm) (*models.Car, error) {
	if err := s.validate(ctx, f); err != nil {
		return nil, err
	}

	c := &models.Car{}
	f.Apply(c)

	c, err := s.stg.Car().Create(ctx, c)
	if err != nil {
		return nil, s.missingChoice(f, err)
	}

	s.log.Info("car created", logger.Int64("id", c.ID), logger.String("model", c.Model))
	s.notifier.Notify("car created", c)
	return c, nil
}

func (s *carService) Update(ctx context.Context, id int64, f *forms.CarForm) (*models.Car, error) {
	c, err := s.stg.Car().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, f); err != nil {
		return nil, err
	}

	f.Apply(c)
	c, err = s.stg.Car().Update(ctx, c)
	if err != nil {
		return nil, s.missingChoice(f, err)
	}
	return c, nil
}

// ToggleAssign adds the driver to the car or removes them from it.
func (s *carService) ToggleAssign(ctx context.Context, carID, driverID int64) (bool, error) {
	assigned, err := s.stg.Car().ToggleDriver(ctx, carID, driverID)
	if err != nil {
		return false, err
	}
	s.log.Info("car assignment toggled",
		logger.Int64("car_id", carID),
		logger.Int64("driver_id", driverID),
		logger.Bool("assigned", assigned),
	)
	return assigned, nil
}

func (s *carService) Delete(ctx context.Context, id int64) error {
	c, err := s.stg.Car().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.stg.Car().Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("car deleted", logger.Int64("id", id))
	s.notifier.Notify("car deleted", c)
	return nil
}

func (s *carService) validate(ctx context.Context, f *forms.CarForm) error {
	if !f.Validate() {
		return forms.ErrInvalid
	}

	if _, err := s.stg.Manufacturer().GetByID(ctx, f.ManufacturerID()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			f.ChoiceError("manufacturer")
			return forms.ErrInvalid
		}
		return err
	}

	if ids := f.DriverIDs(); len(ids) > 0 {
		existing, err := s.stg.Driver().ExistingIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(existing) != len(ids) {
			f.ChoiceError("drivers")
			return forms.ErrInvalid
		}
	}
	return nil
}

// missingChoice covers a manufacturer or driver deleted between validation
// and the insert.
func (s *carService) missingChoice(f *forms.CarForm, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		f.ChoiceError(forms.NonField)
		return forms.ErrInvalid
	}
	return err
}
