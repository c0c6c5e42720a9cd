package menu

import "github.com/google/uuid"

// OrderEntry is an explicit display-position override for one item within a
// category. Entries are never patched individually; the whole set for a
// category is replaced atomically on reorder. An entry whose ItemID matches
// no live item is a harmless orphan the read model ignores.
type OrderEntry struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderEntry) TableName() string {
	return "menu_orders"
}
