package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/kalori/backend/internal/domain/health"
	domain "github.com/kalori/backend/internal/domain/identity"
	"github.com/kalori/backend/internal/domain/shared"
	"github.com/kalori/backend/internal/infrastructure/auth"
)

// photoFolder is the bucket folder profile photos are uploaded into
const photoFolder = "users"

// ImageStore materializes inline image payloads into stored objects
type ImageStore interface {
	UploadDataURI(ctx context.Context, dataURI, folder string) (string, error)
}

// ProfileService handles health profile reads, upserts and derived metrics
type ProfileService struct {
	profileRepo domain.UserProfileRepository
	gate        *AdminGate
	images      ImageStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.UserProfileRepository, gate *AdminGate, images ImageStore) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		gate:        gate,
		images:      images,
	}
}

// Get returns the caller's profile (nil when none was saved yet) together
// with their admin status
func (s *ProfileService) Get(ctx context.Context, identity *auth.Identity) (*ProfileResult, error) {
	isAdmin, err := s.gate.IsAdmin(ctx, identity)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &ProfileResult{Profile: nil, IsAdmin: isAdmin}, nil
		}
		return nil, err
	}

	return &ProfileResult{Profile: ToProfileView(profile), IsAdmin: isAdmin}, nil
}

// Save upserts the caller's profile keyed by uid. Nil fields are left
// untouched; an inline photo payload is uploaded and replaced by its URL.
func (s *ProfileService) Save(ctx context.Context, identity *auth.Identity, req SaveProfileRequest) (*ProfileResult, error) {
	profile, err := s.profileRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		profile = domain.NewUserProfile(identity.UID)
	}

	if identity.Email != "" {
		email := identity.Email
		profile.Email = &email
	}

	if req.Age != nil && *req.Age > 0 {
		profile.Age = req.Age
	}
	if req.Weight != nil && *req.Weight > 0 {
		profile.Weight = req.Weight
	}
	if req.Height != nil && *req.Height > 0 {
		profile.Height = req.Height
	}
	if req.Gender != nil {
		gender := strings.ToLower(strings.TrimSpace(*req.Gender))
		if gender == health.GenderMale || gender == health.GenderFemale {
			profile.Gender = &gender
		}
	}
	if req.Username != nil {
		if username := strings.TrimSpace(*req.Username); username != "" {
			profile.Username = &username
		}
	}
	if req.PhotoURL != nil && *req.PhotoURL != "" {
		photoURL := *req.PhotoURL
		if strings.HasPrefix(photoURL, "data:") {
			photoURL, err = s.images.UploadDataURI(ctx, photoURL, photoFolder)
			if err != nil {
				return nil, err
			}
		}
		profile.PhotoURL = &photoURL
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	isAdmin, err := s.gate.IsAdmin(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{Profile: ToProfileView(profile), IsAdmin: isAdmin}, nil
}

// burnMinutes is the reference duration calorie burn is reported for
const burnMinutes = 30.0

// Metrics derives the full health metric set from the caller's saved profile.
// A profile missing age, weight or height cannot be computed; a missing
// gender falls back to the male branch of the formulas.
func (s *ProfileService) Metrics(ctx context.Context, identity *auth.Identity) (*MetricsView, error) {
	profile, err := s.profileRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INCOMPLETE_PROFILE", "Profile is incomplete")
		}
		return nil, err
	}

	if profile.Age == nil || profile.Weight == nil || profile.Height == nil {
		return nil, shared.NewDomainError("INCOMPLETE_PROFILE", "Profile is incomplete")
	}

	age := *profile.Age
	weight := *profile.Weight
	height := *profile.Height
	gender := health.GenderMale
	if profile.Gender != nil {
		gender = *profile.Gender
	}

	bmi := health.BMI(weight, height)
	idealMin, idealMax := health.IdealWeightRange(height)
	bodyFat := health.BodyFatPercent(bmi, age, gender)
	bmr := health.BMR(weight, height, age, gender)

	maintenance := make([]MaintenanceView, len(health.ActivityLevels))
	for i, level := range health.ActivityLevels {
		maintenance[i] = MaintenanceView{
			Label:      level.Label,
			Multiplier: level.Multiplier,
			Calories:   health.MaintenanceCalories(bmr, level.Multiplier),
		}
	}

	burn := make([]ActivityBurnView, len(health.MetActivities))
	for i, activity := range health.MetActivities {
		burn[i] = ActivityBurnView{
			Label:    activity.Label,
			MET:      activity.MET,
			Minutes:  burnMinutes,
			Calories: health.CaloriesBurned(activity.MET, weight, burnMinutes),
		}
	}

	return &MetricsView{
		BMI:             bmi,
		BMICategory:     health.BMICategory(bmi),
		IdealWeightMin:  idealMin,
		IdealWeightMax:  idealMax,
		BodyFatPercent:  bodyFat,
		BodyFatCategory: health.BodyFatCategory(bodyFat),
		BMR:             bmr,
		Maintenance:     maintenance,
		ActivityBurn:    burn,
		HeartRateZones:  health.HeartRateZones(age),
	}, nil
}
