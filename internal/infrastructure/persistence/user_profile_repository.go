package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kalori/backend/internal/domain/identity"
	"github.com/kalori/backend/internal/domain/shared"
)

// GormUserProfileRepository implements identity.UserProfileRepository using GORM
type GormUserProfileRepository struct {
	db *gorm.DB
}

// NewGormUserProfileRepository creates a new GormUserProfileRepository
func NewGormUserProfileRepository(db *gorm.DB) *GormUserProfileRepository {
	return &GormUserProfileRepository{db: db}
}

// FindByUID finds a profile by the identity provider uid
func (r *GormUserProfileRepository) FindByUID(ctx context.Context, uid string) (*identity.UserProfile, error) {
	var profile identity.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates a profile
func (r *GormUserProfileRepository) Save(ctx context.Context, profile *identity.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Ensure GormUserProfileRepository implements UserProfileRepository
var _ identity.UserProfileRepository = (*GormUserProfileRepository)(nil)
