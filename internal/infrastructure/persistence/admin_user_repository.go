package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kalori/backend/internal/domain/identity"
	"github.com/kalori/backend/internal/domain/shared"
)

// GormAdminUserRepository implements identity.AdminUserRepository using GORM
type GormAdminUserRepository struct {
	db *gorm.DB
}

// NewGormAdminUserRepository creates a new GormAdminUserRepository
func NewGormAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

// FindActiveByUIDOrEmail finds an active admin whose uid or email matches.
// A row matching by uid wins over one matching by email only.
func (r *GormAdminUserRepository) FindActiveByUIDOrEmail(ctx context.Context, uid, email string) (*identity.AdminUser, error) {
	var admin identity.AdminUser

	if uid != "" {
		err := r.db.WithContext(ctx).
			Where("is_active = ? AND uid = ?", true, uid).
			First(&admin).Error
		if err == nil {
			return &admin, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if email == "" {
		return nil, shared.ErrNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND email = ?", true, strings.ToLower(email)).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// FindByEmail finds an admin row by email regardless of status
func (r *GormAdminUserRepository) FindByEmail(ctx context.Context, email string) (*identity.AdminUser, error) {
	var admin identity.AdminUser
	if err := r.db.WithContext(ctx).
		First(&admin, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Save creates or updates an admin row
func (r *GormAdminUserRepository) Save(ctx context.Context, admin *identity.AdminUser) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

// Ensure GormAdminUserRepository implements AdminUserRepository
var _ identity.AdminUserRepository = (*GormAdminUserRepository)(nil)
