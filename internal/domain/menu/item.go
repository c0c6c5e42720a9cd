package menu

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kalori/backend/internal/domain/shared"
)

// Item is a food entry owned by exactly one category. ImagePath always holds
// a resolved URL by the time the item is persisted; inline image payloads are
// materialized through the image store before construction.
type Item struct {
	shared.BaseEntity
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Calories   int       `gorm:"not null"`
	ImagePath  string    `gorm:"type:text;not null"`
	Hidden     bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "menu_items"
}

// NewItem creates a new menu item
func NewItem(categoryID uuid.UUID, name string, calories int, imagePath string, hidden bool) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid name")
	}
	if calories < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid calories")
	}
	if strings.TrimSpace(imagePath) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid imagePath")
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		CategoryID: categoryID,
		Name:       name,
		Calories:   calories,
		ImagePath:  imagePath,
		Hidden:     hidden,
	}, nil
}

// SetName updates the item name
func (i *Item) SetName(name string) {
	i.Name = name
	i.Touch()
}

// SetCalories updates the calorie count
func (i *Item) SetCalories(calories int) {
	i.Calories = calories
	i.Touch()
}

// SetImagePath updates the image URL
func (i *Item) SetImagePath(imagePath string) {
	i.ImagePath = imagePath
	i.Touch()
}

// SetHidden updates the visibility flag
func (i *Item) SetHidden(hidden bool) {
	i.Hidden = hidden
	i.Touch()
}
