package store

import (
	"context"
	"errors"

	"entropy/apperr"
	"entropy/models"

	"gorm.io/gorm"
)

// casRetries bounds the optimistic-lock retry loop in UpdateUser.
const casRetries = 5

// Gorm is the durable Store. Per-user serialization uses a version column
// compare-and-swap instead of SELECT FOR UPDATE so the same code runs on
// sqlite, postgres and mysql.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	db := s.db.WithContext(ctx)

	if err := db.Where("email = ?", user.Email).First(&models.User{}).Error; err == nil {
		return apperr.Conflict("Email is already registered!")
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Email is already registered!")
		}
		return apperr.Internal("Failed to create user!", err)
	}
	return nil
}

func (s *Gorm) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found!")
		}
		return nil, apperr.Internal("Failed to fetch user!", err)
	}
	return &user, nil
}

func (s *Gorm) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found!")
		}
		return nil, apperr.Internal("Failed to fetch user!", err)
	}
	return &user, nil
}

func (s *Gorm) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, apperr.Internal("Failed to fetch users!", err)
	}
	return users, nil
}

func (s *Gorm) UpdateUser(ctx context.Context, id uint, fn func(*models.User) error) (*models.User, error) {
	db := s.db.WithContext(ctx)

	for attempt := 0; attempt < casRetries; attempt++ {
		user, err := s.UserByID(ctx, id)
		if err != nil {
			return nil, err
		}

		version := user.Version
		if err := fn(user); err != nil {
			return nil, err
		}
		user.Version = version + 1

		result := db.Model(&models.User{}).
			Where("id = ? AND version = ?", id, version).
			Updates(map[string]interface{}{
				"name":              user.Name,
				"email":             user.Email,
				"age":               user.Age,
				"password":          user.Password,
				"enrolled_modules":  user.EnrolledModules,
				"completed_modules": user.CompletedModules,
				"progress":          user.Progress,
				"version":           user.Version,
			})
		if result.Error != nil {
			return nil, apperr.Internal("Failed to update user!", result.Error)
		}
		if result.RowsAffected == 1 {
			return user, nil
		}
		// Version moved under us; reload and retry.
	}
	return nil, apperr.Internal("Failed to update user!", errors.New("version conflict retries exhausted"))
}

func (s *Gorm) SeedModules(ctx context.Context, modules []models.Module) error {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Module{}).Count(&count).Error; err != nil {
		return apperr.Internal("Failed to count modules!", err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&modules).Error; err != nil {
		return apperr.Internal("Failed to seed modules!", err)
	}
	return nil
}

func (s *Gorm) ModuleByID(ctx context.Context, id uint) (*models.Module, error) {
	var module models.Module
	if err := s.db.WithContext(ctx).First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Module not found!")
		}
		return nil, apperr.Internal("Failed to fetch module!", err)
	}
	return &module, nil
}

func (s *Gorm) Modules(ctx context.Context) ([]models.Module, error) {
	var modules []models.Module
	if err := s.db.WithContext(ctx).Order("id asc").Find(&modules).Error; err != nil {
		return nil, apperr.Internal("Failed to fetch modules!", err)
	}
	return modules, nil
}

func (s *Gorm) IncrementEnrolled(ctx context.Context, id uint) (*models.Module, error) {
	db := s.db.WithContext(ctx)

	result := db.Model(&models.Module{}).
		Where("id = ?", id).
		UpdateColumn("enrolled", gorm.Expr("enrolled + 1"))
	if result.Error != nil {
		return nil, apperr.Internal("Failed to update module!", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("Module not found!")
	}
	return s.ModuleByID(ctx, id)
}

func (s *Gorm) SetEnrolledCount(ctx context.Context, id uint, count int64) error {
	result := s.db.WithContext(ctx).Model(&models.Module{}).
		Where("id = ?", id).
		UpdateColumn("enrolled", count)
	if result.Error != nil {
		return apperr.Internal("Failed to update module!", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Module not found!")
	}
	return nil
}
