package menu

import (
	"github.com/google/uuid"

	domain "github.com/kalori/backend/internal/domain/menu"
)

// ItemView is the wire shape of a menu item. Category carries the owning
// category's slug, never its internal id.
type ItemView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	ImagePath string    `json:"imagePath"`
	Hidden    bool      `json:"hidden"`
	Category  string    `json:"category"`
}

// CategoryView is one category of the assembled menu tree
type CategoryView struct {
	ID    uuid.UUID  `json:"id"`
	Slug  string     `json:"slug"`
	Label string     `json:"label"`
	Items []ItemView `json:"items"`
}

// CategorySummary is the shape of the admin category listing
type CategorySummary struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// CategoryDetail is the shape returned when a category is created
type CategoryDetail struct {
	ID    uuid.UUID `json:"id"`
	Slug  string    `json:"slug"`
	Label string    `json:"label"`
}

// CreateCategoryRequest carries the fields for category creation
type CreateCategoryRequest struct {
	Slug  string
	Label string
}

// CreateItemRequest carries the fields for item creation. CategorySlug is the
// external key of the owning category.
type CreateItemRequest struct {
	Name         string
	Calories     int
	ImagePath    string
	Hidden       bool
	CategorySlug string
}

// UpdateItemRequest is a sparse patch; nil fields are left untouched
type UpdateItemRequest struct {
	Name      *string
	Calories  *int
	ImagePath *string
	Hidden    *bool
}

// ReorderRequest replaces a category's explicit item order
type ReorderRequest struct {
	CategorySlug string
	Order        []string
}

// ToItemView maps a domain item and its category slug to the wire shape
func ToItemView(item *domain.Item, categorySlug string) ItemView {
	return ItemView{
		ID:        item.ID,
		Name:      item.Name,
		Calories:  item.Calories,
		ImagePath: item.ImagePath,
		Hidden:    item.Hidden,
		Category:  categorySlug,
	}
}

// ToCategoryDetail maps a domain category to the creation response shape
func ToCategoryDetail(category *domain.Category) *CategoryDetail {
	return &CategoryDetail{
		ID:    category.ID,
		Slug:  category.Slug,
		Label: category.Label,
	}
}
