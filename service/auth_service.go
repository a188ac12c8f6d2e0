package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// passwordCost is lowered by tests.
var passwordCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(d *models.Driver, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)) == nil
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.Driver, error)
	CurrentDriver(ctx context.Context, id int64) (*models.Driver, error)
}

type authService struct {
	stg storage.IDriverStorage
	log logger.ILogger
}

func NewAuthService(stg storage.IStorage, log logger.ILogger) AuthService {
	return &authService{
		stg: stg.Driver(),
		log: log,
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.Driver, error) {
	d, err := s.stg.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(d, password) {
		s.log.Info("failed login attempt", logger.String("username", username))
		return nil, ErrInvalidCredentials
	}
	return d, nil
}

// CurrentDriver resolves the driver behind a session; a deleted account
// reports storage.ErrNotFound.
func (s *authService) CurrentDriver(ctx context.Context, id int64) (*models.Driver, error) {
	return s.stg.GetByID(ctx, id)
}
