package menu

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	// FindByID finds a category by its internal ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// FindBySlug finds a category by its external slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	// FindAllSorted returns all categories ordered by label ascending
	FindAllSorted(ctx context.Context) ([]Category, error)
	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error
}

// ItemRepository defines persistence operations for menu items
type ItemRepository interface {
	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindByCategories returns the items of the given categories. Hidden
	// items are excluded unless includeHidden is set.
	FindByCategories(ctx context.Context, categoryIDs []uuid.UUID, includeHidden bool) ([]Item, error)
	// ExistsWithSignature reports whether the category already holds an item
	// with the exact (name, calories, imagePath) triple.
	ExistsWithSignature(ctx context.Context, categoryID uuid.UUID, name string, calories int, imagePath string) (bool, error)
	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error
	// Delete removes an item. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines persistence operations for per-category order sets
type OrderRepository interface {
	// FindByCategories returns all order entries for the given categories
	FindByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]OrderEntry, error)
	// ReplaceForCategory atomically replaces the category's order set with
	// one entry per item ID, positioned by index. An empty slice clears the
	// set. Readers observe either the previous set or the new one, never a
	// partial state.
	ReplaceForCategory(ctx context.Context, categoryID uuid.UUID, itemIDs []uuid.UUID) error
}
