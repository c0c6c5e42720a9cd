package menu

import (
	"strings"

	"github.com/kalori/backend/internal/domain/shared"
)

// Category is a named grouping of menu items. The slug is the stable external
// key clients address categories by; the label is the display name.
type Category struct {
	shared.BaseEntity
	Slug  string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Label string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(slug, label string) (*Category, error) {
	slug = strings.TrimSpace(slug)
	label = strings.TrimSpace(label)
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid slug")
	}
	if label == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid label")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Slug:       slug,
		Label:      label,
	}, nil
}

// Rename updates the category's display label
func (c *Category) Rename(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shared.NewDomainError("INVALID_INPUT", "Invalid label")
	}
	c.Label = label
	c.Touch()
	return nil
}
