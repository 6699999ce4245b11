package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence/models"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID uint) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.UserModel
	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{})

	if query.Verified != nil {
		dbQuery = dbQuery.Where("email_verified = ?", *query.Verified)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	// Save alone skips zero-valued columns on updates; cleared code fields
	// must reach the database as NULL/empty.
	updates := map[string]interface{}{
		"email":                  model.Email,
		"name":                   model.Name,
		"password_hash":          model.PasswordHash,
		"email_verified":         model.EmailVerified,
		"verification_code_hash": model.VerificationCodeHash,
		"verification_expires":   model.VerificationExpires,
		"reset_code_hash":        model.ResetCodeHash,
		"reset_code_expires":     model.ResetCodeExpires,
	}

	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&models.UserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrUserNotFound
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

func (r *gormUserRepository) ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	verification := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("verification_expires IS NOT NULL AND verification_expires < ?", now).
		Updates(map[string]interface{}{
			"verification_code_hash": "",
			"verification_expires":   nil,
		})
	if verification.Error != nil {
		return 0, fmt.Errorf("failed to clear expired verification codes: %w", verification.Error)
	}

	reset := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("reset_code_expires IS NOT NULL AND reset_code_expires < ?", now).
		Updates(map[string]interface{}{
			"reset_code_hash":    "",
			"reset_code_expires": nil,
		})
	if reset.Error != nil {
		return verification.RowsAffected, fmt.Errorf("failed to clear expired reset codes: %w", reset.Error)
	}

	return verification.RowsAffected + reset.RowsAffected, nil
}
