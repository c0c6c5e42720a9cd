package identity

import (
	"github.com/kalori/backend/internal/domain/health"
	domain "github.com/kalori/backend/internal/domain/identity"
)

// ProfileView is the wire shape of a user's health profile
type ProfileView struct {
	UID      string   `json:"uid"`
	Email    *string  `json:"email"`
	Age      *int     `json:"age"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Gender   *string  `json:"gender"`
	Username *string  `json:"username"`
	PhotoURL *string  `json:"photoUrl"`
}

// ProfileResult pairs a profile (nil when none was saved yet) with the
// caller's admin status
type ProfileResult struct {
	Profile *ProfileView `json:"profile"`
	IsAdmin bool         `json:"isAdmin"`
}

// SaveProfileRequest is a sparse profile upsert; nil fields are left untouched
type SaveProfileRequest struct {
	Age      *int
	Weight   *float64
	Height   *float64
	Gender   *string
	Username *string
	PhotoURL *string
}

// MaintenanceView is the daily maintenance calories for one activity level
type MaintenanceView struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	Calories   float64 `json:"calories"`
}

// ActivityBurnView is the estimated calorie burn for one activity over the
// reference duration at the profile's stored weight
type ActivityBurnView struct {
	Label    string  `json:"label"`
	MET      float64 `json:"met"`
	Minutes  float64 `json:"minutes"`
	Calories float64 `json:"calories"`
}

// MetricsView is the full set of derived health metrics for a profile
type MetricsView struct {
	BMI             float64                `json:"bmi"`
	BMICategory     string                 `json:"bmiCategory"`
	IdealWeightMin  float64                `json:"idealWeightMin"`
	IdealWeightMax  float64                `json:"idealWeightMax"`
	BodyFatPercent  float64                `json:"bodyFatPercent"`
	BodyFatCategory string                 `json:"bodyFatCategory"`
	BMR             float64                `json:"bmr"`
	Maintenance     []MaintenanceView      `json:"maintenance"`
	ActivityBurn    []ActivityBurnView     `json:"activityBurn"`
	HeartRateZones  []health.HeartRateZone `json:"heartRateZones"`
}

// ToProfileView maps a domain profile to the wire shape
func ToProfileView(profile *domain.UserProfile) *ProfileView {
	return &ProfileView{
		UID:      profile.UID,
		Email:    profile.Email,
		Age:      profile.Age,
		Weight:   profile.Weight,
		Height:   profile.Height,
		Gender:   profile.Gender,
		Username: profile.Username,
		PhotoURL: profile.PhotoURL,
	}
}
