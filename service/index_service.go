package service

import (
	"context"

	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/storage"
)

type IndexService interface {
	Stats(ctx context.Context) (*models.IndexStats, error)
}

type indexService struct {
	stg storage.IStorage
	log logger.ILogger
}

func NewIndexService(stg storage.IStorage, log logger.ILogger) IndexService {
	return &indexService{stg: stg, log: log}
}

func (s *indexService) Stats(ctx context.Context) (*models.IndexStats, error) {
	var stats models.IndexStats
	var err error

	if stats.NumDrivers, err = s.stg.Driver().Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.NumCars, err = s.stg.Car().Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.NumManufacturers, err = s.stg.Manufacturer().Count(ctx, ""); err != nil {
		return nil, err
	}
	return &stats, nil
}
