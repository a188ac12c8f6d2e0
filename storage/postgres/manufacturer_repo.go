package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/storage"
)

type manufacturerRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewManufacturerRepo(db *pgxpool.Pool, log logger.ILogger) storage.IManufacturerStorage {
	return &manufacturerRepo{db: db, log: log}
}

func (r *manufacturerRepo) Create(ctx context.Context, m *models.Manufacturer) (*models.Manufacturer, error) {
	query := `INSERT INTO manufacturers (name, country) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, query, m.Name, m.Country).Scan(&m.ID); err != nil {
		r.log.Error("failed to create manufacturer", logger.String("name", m.Name), logger.Error(err))
		return nil, mapError(err)
	}
	return m, nil
}

func (r *manufacturerRepo) Update(ctx context.Context, m *models.Manufacturer) (*models.Manufacturer, error) {
	query := `UPDATE manufacturers SET name = $1, country = $2 WHERE id = $3`
	res, err := r.db.Exec(ctx, query, m.Name, m.Country, m.ID)
	if err != nil {
		r.log.Error("failed to update manufacturer", logger.Int64("id", m.ID), logger.Error(err))
		return nil, mapError(err)
	}
	if res.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	return m, nil
}

func (r *manufacturerRepo) GetByID(ctx context.Context, id int64) (*models.Manufacturer, error) {
	var m models.Manufacturer
	query := `SELECT id, name, country FROM manufacturers WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Country)
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Error("failed to get manufacturer by id", logger.Int64("id", id), logger.Error(err))
		}
		return nil, err
	}
	return &m, nil
}

func (r *manufacturerRepo) GetAll(ctx context.Context) ([]*models.Manufacturer, error) {
	return r.scanManufacturers(ctx, `SELECT id, name, country FROM manufacturers ORDER BY name, id`)
}

func (r *manufacturerRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM manufacturers WHERE name = $1 AND id <> $2)`
	err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *manufacturerRepo) Count(ctx context.Context, text string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM manufacturers WHERE name ILIKE $1`, containsPattern(text)).Scan(&count)
	if err != nil {
		r.log.Error("failed to count manufacturers", logger.Error(err))
	}
	return count, err
}

func (r *manufacturerRepo) Search(ctx context.Context, text string, limit, offset int) ([]*models.Manufacturer, error) {
	query := `
		SELECT id, name, country
		FROM manufacturers
		WHERE name ILIKE $1
		ORDER BY name, id
		LIMIT $2 OFFSET $3
	`
	return r.scanManufacturers(ctx, query, containsPattern(text), limit, offset)
}

func (r *manufacturerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM manufacturers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete manufacturer", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *manufacturerRepo) scanManufacturers(ctx context.Context, query string, args ...interface{}) ([]*models.Manufacturer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list manufacturers", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	manufacturers := []*models.Manufacturer{}
	for rows.Next() {
		var m models.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.Country); err != nil {
			return nil, err
		}
		manufacturers = append(manufacturers, &m)
	}
	return manufacturers, rows.Err()
}
