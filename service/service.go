package service

import (
	"taxipark/pkg/logger"
	"taxipark/pkg/notify"
	"taxipark/storage"
)

type IServiceManager interface {
	Auth() AuthService
	Manufacturer() ManufacturerService
	Driver() DriverService
	Car() CarService
	Index() IndexService
}

type service struct {
	authService         AuthService
	manufacturerService ManufacturerService
	driverService       DriverService
	carService          CarService
	indexService        IndexService
}

func New(stg storage.IStorage, notifier notify.INotifier, log logger.ILogger, pageSize int) IServiceManager {
	return &service{
		authService:         NewAuthService(stg, log),
		manufacturerService: NewManufacturerService(stg, notifier, log, pageSize),
		driverService:       NewDriverService(stg, notifier, log, pageSize),
		carService:          NewCarService(stg, notifier, log, pageSize),
		indexService:        NewIndexService(stg, log),
	}
}

func (s *service) Auth() AuthService {
	return s.authService
}

func (s *service) Manufacturer() ManufacturerService {
	return s.manufacturerService
}

func (s *service) Driver() DriverService {
	return s.driverService
}

func (s *service) Car() CarService {
	return s.carService
}

func (s *service) Index() IndexService {
	return s.indexService
}
