package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admind/internal/models"
)

// Default credentials for the bootstrap superuser. The account is created
// once; operators are expected to change the password after first login.
const (
	defaultSuperuserName     = "admin"
	defaultSuperuserEmail    = "admin@example.com"
	defaultSuperuserPassword = "123456"
)

// UserService provides account operations backed by the registered database.
type UserService struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserService creates a new user service with the injected logger.
func NewUserService(db *gorm.DB, logger *slog.Logger) *UserService {
	return &UserService{
		db:     db,
		logger: logger.With(slog.String("service", "user")),
	}
}

// EnsureSuperuser creates the administrative account if no superuser exists.
// It is idempotent: a present superuser makes it a no-op.
func (s *UserService) EnsureSuperuser(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("is_superuser = ?", true).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count superusers: %w", err)
	}
	if count > 0 {
		s.logger.DebugContext(ctx, "superuser already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultSuperuserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}

	user := models.User{
		Username:     defaultSuperuserName,
		Email:        defaultSuperuserEmail,
		PasswordHash: string(hash),
		IsSuperuser:  true,
		IsActive:     true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	s.logger.InfoContext(ctx, "created bootstrap superuser",
		slog.String("username", user.Username))
	return nil
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
