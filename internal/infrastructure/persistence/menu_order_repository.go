package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kalori/backend/internal/domain/menu"
)

// GormOrderRepository implements menu.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByCategories returns all order entries for the given categories
func (r *GormOrderRepository) FindByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]menu.OrderEntry, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	var entries []menu.OrderEntry
	if err := r.db.WithContext(ctx).
		Where("category_id IN ?", categoryIDs).
		Order("position ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceForCategory replaces the category's order set in a single transaction
func (r *GormOrderRepository) ReplaceForCategory(ctx context.Context, categoryID uuid.UUID, itemIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&menu.OrderEntry{}, "category_id = ?", categoryID).Error; err != nil {
			return err
		}

		if len(itemIDs) == 0 {
			return nil
		}

		entries := make([]menu.OrderEntry, len(itemIDs))
		for i, itemID := range itemIDs {
			entries[i] = menu.OrderEntry{
				CategoryID: categoryID,
				ItemID:     itemID,
				Position:   i,
			}
		}
		return tx.CreateInBatches(entries, 100).Error
	})
}

// Ensure GormOrderRepository implements OrderRepository
var _ menu.OrderRepository = (*GormOrderRepository)(nil)
