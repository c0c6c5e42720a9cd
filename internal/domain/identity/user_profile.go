package identity

import (
	"github.com/kalori/backend/internal/domain/shared"
)

// UserProfile holds the health profile a signed-in user saves for the
// metrics calculators. All measurement fields are optional; the record is
// upserted keyed by the identity provider uid and never deleted.
type UserProfile struct {
	shared.BaseEntity
	UID      string   `gorm:"type:varchar(128);not null;uniqueIndex"`
	Email    *string  `gorm:"type:varchar(255)"`
	Age      *int     `gorm:""`
	Weight   *float64 `gorm:""`
	Height   *float64 `gorm:""`
	Gender   *string  `gorm:"type:varchar(16)"`
	Username *string  `gorm:"type:varchar(100)"`
	PhotoURL *string  `gorm:"type:text;column:photo_url"`
}

// TableName returns the table name for GORM
func (UserProfile) TableName() string {
	return "user_profiles"
}

// NewUserProfile creates an empty profile for the given uid
func NewUserProfile(uid string) *UserProfile {
	return &UserProfile{
		BaseEntity: shared.NewBaseEntity(),
		UID:        uid,
	}
}
