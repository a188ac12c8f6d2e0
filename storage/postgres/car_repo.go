package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/storage"
)

const carColumns = `c.id, c.model, c.manufacturer_id, m.id, m.name, m.country`

type carRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewCarRepo(db *pgxpool.Pool, log logger.ILogger) storage.ICarStorage {
	return &carRepo{db: db, log: log}
}

func scanCar(row pgx.Row) (*models.Car, error) {
	var c models.Car
	var m models.Manufacturer
	if err := row.Scan(&c.ID, &c.Model, &c.ManufacturerID, &m.ID, &m.Name, &m.Country); err != nil {
		return nil, err
	}
	c.Manufacturer = &m
	c.DriverIDs = []int64{}
	c.Drivers = []*models.Driver{}
	return &c, nil
}

func (r *carRepo) Create(ctx context.Context, c *models.Car) (*models.Car, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO cars (model, manufacturer_id) VALUES ($1, $2) RETURNING id`
		if err := tx.QueryRow(ctx, query, c.Model, c.ManufacturerID).Scan(&c.ID); err != nil {
			return err
		}
		return setCarDrivers(ctx, tx, c.ID, c.DriverIDs)
	})
	if err != nil {
		r.log.Error("failed to create car", logger.String("model", c.Model), logger.Error(err))
		return nil, mapError(err)
	}
	return c, nil
}

func (r *carRepo) Update(ctx context.Context, c *models.Car) (*models.Car, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `UPDATE cars SET model = $1, manufacturer_id = $2 WHERE id = $3`
		res, err := tx.Exec(ctx, query, c.Model, c.ManufacturerID, c.ID)
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM cars_drivers WHERE car_id = $1`, c.ID); err != nil {
			return err
		}
		return setCarDrivers(ctx, tx, c.ID, c.DriverIDs)
	})
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Error("failed to update car", logger.Int64("id", c.ID), logger.Error(err))
		}
		return nil, mapError(err)
	}
	return c, nil
}

func setCarDrivers(ctx context.Context, tx pgx.Tx, carID int64, driverIDs []int64) error {
	if len(driverIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO cars_drivers (car_id, driver_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.Exec(ctx, query, carID, driverIDs); err != nil {
		return fmt.Errorf("set car drivers: %w", err)
	}
	return nil
}

func (r *carRepo) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	query := `SELECT ` + carColumns + `
		FROM cars c
		JOIN manufacturers m ON m.id = c.manufacturer_id
		WHERE c.id = $1
	`
	c, err := scanCar(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Error("failed to get car by id", logger.Int64("id", id), logger.Error(err))
		}
		return nil, err
	}

	if err := r.prefetchDrivers(ctx, []*models.Car{c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepo) GetByDriver(ctx context.Context, driverID int64) ([]*models.Car, error) {
	query := `SELECT ` + carColumns + `
		FROM cars c
		JOIN manufacturers m ON m.id = c.manufacturer_id
		JOIN cars_drivers cd ON cd.car_id = c.id
		WHERE cd.driver_id = $1
		ORDER BY c.id
	`
	return r.scanCars(ctx, query, driverID)
}

// ToggleDriver assigns the driver when absent and unassigns when present.
// The returned flag is the new assignment state.
func (r *carRepo) ToggleDriver(ctx context.Context, carID, driverID int64) (bool, error) {
	var assigned bool
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `DELETE FROM cars_drivers WHERE car_id = $1 AND driver_id = $2`, carID, driverID)
		if err != nil {
			return err
		}
		if res.RowsAffected() > 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, `INSERT INTO cars_drivers (car_id, driver_id) VALUES ($1, $2)`, carID, driverID); err != nil {
			return err
		}
		assigned = true
		return nil
	})
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Error("failed to toggle car driver", logger.Int64("car_id", carID), logger.Int64("driver_id", driverID), logger.Error(err))
		}
		return false, err
	}
	return assigned, nil
}

func (r *carRepo) Count(ctx context.Context, text string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM cars WHERE model ILIKE $1`, containsPattern(text)).Scan(&count)
	if err != nil {
		r.log.Error("failed to count cars", logger.Error(err))
	}
	return count, err
}

// Search loads the page with its manufacturer joined in and the drivers of
// the whole page fetched in one extra query.
func (r *carRepo) Search(ctx context.Context, text string, limit, offset int) ([]*models.Car, error) {
	query := `SELECT ` + carColumns + `
		FROM cars c
		JOIN manufacturers m ON m.id = c.manufacturer_id
		WHERE c.model ILIKE $1
		ORDER BY c.id
		LIMIT $2 OFFSET $3
	`
	return r.scanCars(ctx, query, containsPattern(text), limit, offset)
}

func (r *carRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete car", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *carRepo) scanCars(ctx context.Context, query string, args ...interface{}) ([]*models.Car, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list cars", logger.Error(err))
		return nil, err
	}

	cars := []*models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		cars = append(cars, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.prefetchDrivers(ctx, cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepo) prefetchDrivers(ctx context.Context, cars []*models.Car) error {
	if len(cars) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Car, len(cars))
	ids := make([]int64, 0, len(cars))
	for _, c := range cars {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	query := `SELECT cd.car_id, d.id, d.username, d.first_name, d.last_name, COALESCE(d.license_number, ''), d.password_hash, d.date_joined
		FROM cars_drivers cd
		JOIN drivers d ON d.id = cd.driver_id
		WHERE cd.car_id = ANY($1)
		ORDER BY d.id
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("failed to prefetch car drivers", logger.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var carID int64
		var d models.Driver
		if err := rows.Scan(&carID, &d.ID, &d.Username, &d.FirstName, &d.LastName, &d.LicenseNumber, &d.PasswordHash, &d.DateJoined); err != nil {
			return err
		}
		c := byID[carID]
		c.DriverIDs = append(c.DriverIDs, d.ID)
		c.Drivers = append(c.Drivers, &d)
	}
	return rows.Err()
}
