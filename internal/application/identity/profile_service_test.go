package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/kalori/backend/internal/domain/identity"
	"github.com/kalori/backend/internal/domain/shared"
	"github.com/kalori/backend/internal/infrastructure/auth"
)

func newTestProfileService() (*ProfileService, *MockUserProfileRepository, *MockAdminUserRepository, *MockImageStore) {
	profileRepo := new(MockUserProfileRepository)
	adminRepo := new(MockAdminUserRepository)
	images := new(MockImageStore)
	gate := NewAdminGate(new(MockTokenVerifier), adminRepo, zap.NewNop())
	svc := NewProfileService(profileRepo, gate, images)
	return svc, profileRepo, adminRepo, images
}

func ptr[T any](v T) *T { return &v }

func TestProfileService_Get(t *testing.T) {
	ident := &auth.Identity{UID: "uid-1", Email: "user@example.com"}

	t.Run("nil profile before first save", func(t *testing.T) {
		svc, profileRepo, adminRepo, _ := newTestProfileService()

		adminRepo.On("FindActiveByUIDOrEmail", mock.Anything, "uid-1", "user@example.com").
			Return(nil, shared.ErrNotFound)
		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(nil, shared.ErrNotFound)

		result, err := svc.Get(context.Background(), ident)

		require.NoError(t, err)
		assert.Nil(t, result.Profile)
		assert.False(t, result.IsAdmin)
	})

	t.Run("returns saved profile with admin flag", func(t *testing.T) {
		svc, profileRepo, adminRepo, _ := newTestProfileService()
		profile := domain.NewUserProfile("uid-1")
		profile.Age = ptr(30)

		adminRepo.On("FindActiveByUIDOrEmail", mock.Anything, "uid-1", "user@example.com").
			Return(domain.NewAdminUser("user@example.com"), nil)
		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(profile, nil)

		result, err := svc.Get(context.Background(), ident)

		require.NoError(t, err)
		require.NotNil(t, result.Profile)
		assert.Equal(t, 30, *result.Profile.Age)
		assert.True(t, result.IsAdmin)
	})
}

func TestProfileService_Save(t *testing.T) {
	ident := &auth.Identity{UID: "uid-1", Email: "user@example.com"}

	t.Run("creates a profile on first save", func(t *testing.T) {
		svc, profileRepo, adminRepo, _ := newTestProfileService()

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(nil, shared.ErrNotFound)
		profileRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
			return p.UID == "uid-1" && p.Age != nil && *p.Age == 25
		})).Return(nil)
		adminRepo.On("FindActiveByUIDOrEmail", mock.Anything, "uid-1", "user@example.com").
			Return(nil, shared.ErrNotFound)

		result, err := svc.Save(context.Background(), ident, SaveProfileRequest{Age: ptr(25)})

		require.NoError(t, err)
		require.NotNil(t, result.Profile)
		assert.Equal(t, 25, *result.Profile.Age)
		assert.Equal(t, "user@example.com", *result.Profile.Email)
	})

	t.Run("sparse save keeps unmentioned fields", func(t *testing.T) {
		svc, profileRepo, adminRepo, _ := newTestProfileService()
		existing := domain.NewUserProfile("uid-1")
		existing.Weight = ptr(70.0)

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(existing, nil)
		profileRepo.On("Save", mock.Anything, existing).Return(nil)
		adminRepo.On("FindActiveByUIDOrEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, shared.ErrNotFound)

		result, err := svc.Save(context.Background(), ident, SaveProfileRequest{Height: ptr(175.0)})

		require.NoError(t, err)
		assert.Equal(t, 70.0, *result.Profile.Weight)
		assert.Equal(t, 175.0, *result.Profile.Height)
	})

	t.Run("invalid gender is ignored", func(t *testing.T) {
		svc, profileRepo, adminRepo, _ := newTestProfileService()
		existing := domain.NewUserProfile("uid-1")

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(existing, nil)
		profileRepo.On("Save", mock.Anything, existing).Return(nil)
		adminRepo.On("FindActiveByUIDOrEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, shared.ErrNotFound)

		result, err := svc.Save(context.Background(), ident, SaveProfileRequest{Gender: ptr("robot")})

		require.NoError(t, err)
		assert.Nil(t, result.Profile.Gender)
	})

	t.Run("inline photo payload is uploaded", func(t *testing.T) {
		svc, profileRepo, adminRepo, images := newTestProfileService()
		existing := domain.NewUserProfile("uid-1")
		dataURI := "data:image/png;base64,aGVsbG8="

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(existing, nil)
		images.On("UploadDataURI", mock.Anything, dataURI, "users").
			Return("https://img.example/users/photo.png", nil)
		profileRepo.On("Save", mock.Anything, existing).Return(nil)
		adminRepo.On("FindActiveByUIDOrEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, shared.ErrNotFound)

		result, err := svc.Save(context.Background(), ident, SaveProfileRequest{PhotoURL: &dataURI})

		require.NoError(t, err)
		assert.Equal(t, "https://img.example/users/photo.png", *result.Profile.PhotoURL)
	})

	t.Run("upload failure aborts the save", func(t *testing.T) {
		svc, profileRepo, _, images := newTestProfileService()
		existing := domain.NewUserProfile("uid-1")
		dataURI := "data:image/png;base64,aGVsbG8="

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(existing, nil)
		images.On("UploadDataURI", mock.Anything, dataURI, "users").
			Return("", shared.NewDomainError("INTERNAL", "bucket down"))

		_, err := svc.Save(context.Background(), ident, SaveProfileRequest{PhotoURL: &dataURI})

		assert.Error(t, err)
		profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProfileService_Metrics(t *testing.T) {
	ident := &auth.Identity{UID: "uid-1", Email: "user@example.com"}

	t.Run("incomplete profile cannot be computed", func(t *testing.T) {
		svc, profileRepo, _, _ := newTestProfileService()
		profile := domain.NewUserProfile("uid-1")
		profile.Weight = ptr(70.0)

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(profile, nil)

		_, err := svc.Metrics(context.Background(), ident)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INCOMPLETE_PROFILE", domainErr.Code)
	})

	t.Run("missing profile cannot be computed", func(t *testing.T) {
		svc, profileRepo, _, _ := newTestProfileService()

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(nil, shared.ErrNotFound)

		_, err := svc.Metrics(context.Background(), ident)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INCOMPLETE_PROFILE", domainErr.Code)
	})

	t.Run("derives the full metric set", func(t *testing.T) {
		svc, profileRepo, _, _ := newTestProfileService()
		profile := domain.NewUserProfile("uid-1")
		profile.Age = ptr(30)
		profile.Weight = ptr(70.0)
		profile.Height = ptr(175.0)
		profile.Gender = ptr("male")

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(profile, nil)

		metrics, err := svc.Metrics(context.Background(), ident)

		require.NoError(t, err)
		assert.InDelta(t, 22.86, metrics.BMI, 0.01)
		assert.Equal(t, "Normal", metrics.BMICategory)
		assert.InDelta(t, 1648.75, metrics.BMR, 0.01)
		assert.Len(t, metrics.Maintenance, 5)
		assert.InDelta(t, 1648.75*1.2, metrics.Maintenance[0].Calories, 0.01)
		require.Len(t, metrics.ActivityBurn, 8)
		jogging := metrics.ActivityBurn[2]
		assert.Equal(t, "Jogging", jogging.Label)
		assert.Equal(t, 30.0, jogging.Minutes)
		assert.InDelta(t, (7.0*3.5*70.0)/200*30, jogging.Calories, 0.01)
		assert.Len(t, metrics.HeartRateZones, 5)
	})

	t.Run("missing gender falls back to the male formulas", func(t *testing.T) {
		svc, profileRepo, _, _ := newTestProfileService()
		profile := domain.NewUserProfile("uid-1")
		profile.Age = ptr(30)
		profile.Weight = ptr(70.0)
		profile.Height = ptr(175.0)

		profileRepo.On("FindByUID", mock.Anything, "uid-1").Return(profile, nil)

		metrics, err := svc.Metrics(context.Background(), ident)

		require.NoError(t, err)
		assert.InDelta(t, 1648.75, metrics.BMR, 0.01)
	})
}
