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

const msgManufacturerExists = "Manufacturer with this name already exists."

type ManufacturerService interface {
	List(ctx context.Context, q ListQuery) (*ListResult[models.Manufacturer], error)
	Get(ctx context.Context, id int64) (*models.Manufacturer, error)
	All(ctx context.Context) ([]*models.Manufacturer, error)
	Create(ctx context.Context, f *forms.ManufacturerForm) (*models.Manufacturer, error)
	Update(ctx context.Context, id int64, f *forms.ManufacturerForm) (*models.Manufacturer, error)
	Delete(ctx context.Context, id int64) error
}

type manufacturerService struct {
	stg      storage.IManufacturerStorage
	notifier notify.INotifier
	log      logger.ILogger
	pageSize int
}

func NewManufacturerService(stg storage.IStorage, notifier notify.INotifier, log logger.ILogger, pageSize int) ManufacturerService {
	return &manufacturerService{
		stg:      stg.Manufacturer(),
		notifier: notifier,
		log:      log,
		pageSize: pageSize,
	}
}

func (s *manufacturerService) List(ctx context.Context, q ListQuery) (*ListResult[models.Manufacturer], error) {
	return listPage[models.Manufacturer](ctx, s.stg, q, s.pageSize)
}

func (s *manufacturerService) Get(ctx context.Context, id int64) (*models.Manufacturer, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *manufacturerService) All(ctx context.Context) ([]*models.Manufacturer, error) {
	return s.stg.GetAll(ctx)
}

func (s *manufacturerService) Create(ctx context.Context, f *forms.ManufacturerForm) (*models.Manufacturer, error) {
	if err := s.validate(ctx, 0, f); err != nil {
		return nil, err
	}

	m := &models.Manufacturer{}
	f.Apply(m)

	m, err := s.stg.Create(ctx, m)
	if err != nil {
		return nil, s.conflict(f, err)
	}

	s.log.Info("manufacturer created", logger.Int64("id", m.ID), logger.String("name", m.Name))
	s.notifier.Notify("manufacturer created", m)
	return m, nil
}

func (s *manufacturerService) Update(ctx context.Context, id int64, f *forms.ManufacturerForm) (*models.Manufacturer, error) {
	m, err := s.stg.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, id, f); err != nil {
		return nil, err
	}

	f.Apply(m)
	m, err = s.stg.Update(ctx, m)
	if err != nil {
		return nil, s.conflict(f, err)
	}
	return m, nil
}

func (s *manufacturerService) Delete(ctx context.Context, id int64) error {
	m, err := s.stg.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.stg.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("manufacturer deleted", logger.Int64("id", id))
	s.notifier.Notify("manufacturer deleted", m)
	return nil
}

func (s *manufacturerService) validate(ctx context.Context, id int64, f *forms.ManufacturerForm) error {
	if !f.Validate() {
		return forms.ErrInvalid
	}

	exists, err := s.stg.NameExists(ctx, f.Name, id)
	if err != nil {
		return err
	}
	if exists {
		f.Errors.Add("name", msgManufacturerExists)
		return forms.ErrInvalid
	}
	return nil
}

// conflict turns a unique violation that raced past validate into a field error.
func (s *manufacturerService) conflict(f *forms.ManufacturerForm, err error) error {
	if errors.Is(err, storage.ErrConflict) {
		f.Errors.Add("name", msgManufacturerExists)
		return forms.ErrInvalid
	}
	return err
}
