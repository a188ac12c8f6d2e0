package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/storage"
)

const driverColumns = `id, username, first_name, last_name, COALESCE(license_number, ''), password_hash, date_joined`

type driverRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDriverRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{db: db, log: log}
}

func scanDriver(row pgx.Row) (*models.Driver, error) {
	var d models.Driver
	err := row.Scan(&d.ID, &d.Username, &d.FirstName, &d.LastName, &d.LicenseNumber, &d.PasswordHash, &d.DateJoined)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create stores the driver as given; form validation happens upstream.
func (r *driverRepo) Create(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	query := `
		INSERT INTO drivers (username, first_name, last_name, license_number, password_hash)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, date_joined
	`
	err := r.db.QueryRow(ctx, query,
		d.Username,
		d.FirstName,
		d.LastName,
		d.LicenseNumber,
		d.PasswordHash,
	).Scan(&d.ID, &d.DateJoined)
	if err != nil {
		r.log.Error("failed to create driver", logger.String("username", d.Username), logger.Error(err))
		return nil, mapError(err)
	}
	return d, nil
}

func (r *driverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Error("failed to get driver by id", logger.Int64("id", id), logger.Error(err))
		}
		return nil, err
	}
	return d, nil
}

func (r *driverRepo) GetByUsername(ctx context.Context, username string) (*models.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE username = $1`, username))
	if err != nil {
		err = mapError(err)
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Error("failed to get driver by username", logger.Error(err))
		}
		return nil, err
	}
	return d, nil
}

func (r *driverRepo) GetAll(ctx context.Context) ([]*models.Driver, error) {
	return r.scanDrivers(ctx, `SELECT `+driverColumns+` FROM drivers ORDER BY username`)
}

func (r *driverRepo) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM drivers WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		r.log.Error("failed to check driver ids", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	existing := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing = append(existing, id)
	}
	return existing, rows.Err()
}

func (r *driverRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM drivers WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *driverRepo) LicenseNumberExists(ctx context.Context, licenseNumber string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM drivers WHERE license_number = $1 AND id <> $2)`
	err := r.db.QueryRow(ctx, query, licenseNumber, excludeID).Scan(&exists)
	return exists, err
}

// UpdateLicenseNumber touches only the license column.
func (r *driverRepo) UpdateLicenseNumber(ctx context.Context, id int64, licenseNumber string) error {
	res, err := r.db.Exec(ctx, `UPDATE drivers SET license_number = NULLIF($1, '') WHERE id = $2`, licenseNumber, id)
	if err != nil {
		r.log.Error("failed to update license number", logger.Int64("id", id), logger.Error(err))
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *driverRepo) Count(ctx context.Context, text string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM drivers WHERE username ILIKE $1`, containsPattern(text)).Scan(&count)
	if err != nil {
		r.log.Error("failed to count drivers", logger.Error(err))
	}
	return count, err
}

func (r *driverRepo) Search(ctx context.Context, text string, limit, offset int) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE username ILIKE $1
		ORDER BY username
		LIMIT $2 OFFSET $3
	`
	return r.scanDrivers(ctx, query, containsPattern(text), limit, offset)
}

func (r *driverRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete driver", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *driverRepo) scanDrivers(ctx context.Context, query string, args ...interface{}) ([]*models.Driver, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list drivers", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	drivers := []*models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}
