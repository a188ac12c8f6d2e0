package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"taxipark/config"
	"taxipark/pkg/logger"
	"taxipark/storage"
	"taxipark/storage/postgres/migrations"
)

type Store struct {
	pool *pgxpool.Pool
	log  logger.ILogger
}

var _ storage.IStorage = (*Store)(nil)

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	url := cfg.PostgresURL()

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing Postgres config", logger.Error(err))
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("failed to connect Postgres", logger.Error(err))
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		log.Error("failed to ping Postgres", logger.Error(err))
		pool.Close()
		return nil, err
	}

	if err := Migrate(url, true, log); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connected")

	return NewWithPool(pool, log), nil
}

func NewWithPool(pool *pgxpool.Pool, log logger.ILogger) *Store {
	return &Store{pool: pool, log: log}
}

// Migrate applies (up) or rolls back (down) every embedded migration.
func Migrate(url string, up bool, log logger.ILogger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Error("migration source error", logger.Error(err))
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		log.Error("migration init error", logger.Error(err))
		return err
	}
	defer m.Close()

	if up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		log.Error("migration error", logger.Bool("up", up), logger.Error(err))
		return fmt.Errorf("migrate: %w", err)
	}

	log.Info("migrations applied", logger.Bool("up", up))
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) GetPool() *pgxpool.Pool {
	return s.pool
}

// Truncate wipes every fleet table; used by the reset-db command and tests.
func (s *Store) Truncate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "TRUNCATE TABLE cars_drivers, cars, drivers, manufacturers RESTART IDENTITY CASCADE")
	if err != nil {
		s.log.Error("failed to truncate tables", logger.Error(err))
	}
	return err
}

func (s *Store) Manufacturer() storage.IManufacturerStorage {
	return NewManufacturerRepo(s.pool, s.log)
}

func (s *Store) Driver() storage.IDriverStorage {
	return NewDriverRepo(s.pool, s.log)
}

func (s *Store) Car() storage.ICarStorage {
	return NewCarRepo(s.pool, s.log)
}
