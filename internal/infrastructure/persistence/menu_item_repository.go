package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kalori/backend/internal/domain/menu"
	"github.com/kalori/backend/internal/domain/shared"
)

// GormItemRepository implements menu.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*menu.Item, error) {
	var item menu.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCategories returns the items of the given categories, optionally
// including hidden ones
func (r *GormItemRepository) FindByCategories(ctx context.Context, categoryIDs []uuid.UUID, includeHidden bool) ([]menu.Item, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query := r.db.WithContext(ctx).Where("category_id IN ?", categoryIDs)
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	var items []menu.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsWithSignature reports whether the category already holds an item with
// the exact (name, calories, imagePath) triple
func (r *GormItemRepository) ExistsWithSignature(ctx context.Context, categoryID uuid.UUID, name string, calories int, imagePath string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&menu.Item{}).
		Where("category_id = ? AND name = ? AND calories = ? AND image_path = ?",
			categoryID, name, calories, imagePath).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *menu.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item. Deleting an unknown ID is a no-op.
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&menu.Item{}, "id = ?", id).Error
}

// Ensure GormItemRepository implements ItemRepository
var _ menu.ItemRepository = (*GormItemRepository)(nil)
