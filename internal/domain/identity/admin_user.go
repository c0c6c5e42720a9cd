package identity

import (
	"github.com/kalori/backend/internal/domain/shared"
)

// AdminUser is an allow-listed administrator account. Rows are seeded by
// email from configuration with an empty UID; the UID is backfilled the first
// time the owner authenticates with a verified token (account linking).
type AdminUser struct {
	shared.BaseEntity
	UID      string `gorm:"type:varchar(128);index"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (AdminUser) TableName() string {
	return "admin_users"
}

// NewAdminUser creates an active admin row for the given email. The UID stays
// empty until the first verified login links the account.
func NewAdminUser(email string) *AdminUser {
	return &AdminUser{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		IsActive:   true,
	}
}

// LinkUID records the verified identity uid on the row
func (a *AdminUser) LinkUID(uid string) {
	a.UID = uid
	a.Touch()
}
