package identity

import "context"

// AdminUserRepository defines persistence operations for admin accounts
type AdminUserRepository interface {
	// FindActiveByUIDOrEmail finds an active admin whose uid or email matches
	FindActiveByUIDOrEmail(ctx context.Context, uid, email string) (*AdminUser, error)
	// FindByEmail finds an admin row by email regardless of status
	FindByEmail(ctx context.Context, email string) (*AdminUser, error)
	// Save creates or updates an admin row
	Save(ctx context.Context, admin *AdminUser) error
}

// UserProfileRepository defines persistence operations for user profiles
type UserProfileRepository interface {
	// FindByUID finds a profile by the identity provider uid
	FindByUID(ctx context.Context, uid string) (*UserProfile, error)
	// Save creates or updates a profile
	Save(ctx context.Context, profile *UserProfile) error
}
