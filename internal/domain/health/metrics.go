// Package health implements the derived health-metric formulas: BMI,
// body-fat estimate (Deurenberg), basal metabolic rate (Mifflin-St Jeor),
// maintenance calories, MET-based calorie burn and heart-rate zones.
// All functions are pure; a zero or missing input yields a zero result
// rather than an error, matching the calculator UI's guards.
package health

import "math"

// Gender values accepted by the gender-sensitive formulas
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// ActivityLevel pairs a label with its TDEE multiplier
type ActivityLevel struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// ActivityLevels are the supported maintenance-calorie multipliers
var ActivityLevels = []ActivityLevel{
	{Label: "Sedentary", Multiplier: 1.2},
	{Label: "Light", Multiplier: 1.375},
	{Label: "Moderate", Multiplier: 1.55},
	{Label: "Active", Multiplier: 1.725},
	{Label: "Extra Active", Multiplier: 1.9},
}

// MetActivity pairs an activity label with its MET value
type MetActivity struct {
	Label string  `json:"label"`
	MET   float64 `json:"met"`
}

// MetActivities are the activities calorie burn is reported for
var MetActivities = []MetActivity{
	{Label: "Walking (slow)", MET: 2.5},
	{Label: "Walking (brisk)", MET: 3.8},
	{Label: "Jogging", MET: 7.0},
	{Label: "Cycling (moderate)", MET: 6.8},
	{Label: "Swimming", MET: 6.0},
	{Label: "Strength training", MET: 5.0},
	{Label: "Yoga", MET: 3.0},
	{Label: "Basketball", MET: 8.0},
}

// BMI computes body mass index from weight (kg) and height (cm).
// Returns 0 when either input is missing.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

// BMICategory classifies a BMI value
func BMICategory(bmi float64) string {
	switch {
	case bmi == 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// IdealWeightRange returns the weight band (kg) corresponding to the normal
// BMI range of 18.5 to 24.9 for the given height (cm).
func IdealWeightRange(heightCm float64) (min, max float64) {
	if heightCm <= 0 {
		return 0, 0
	}
	h := heightCm / 100
	return 18.5 * h * h, 24.9 * h * h
}

// BodyFatPercent estimates body-fat percentage with the Deurenberg formula.
// Returns 0 when age or BMI is missing.
func BodyFatPercent(bmi float64, age int, gender string) float64 {
	if age <= 0 || bmi <= 0 {
		return 0
	}
	genderValue := 0.0
	if gender == GenderMale {
		genderValue = 1.0
	}
	return 1.2*bmi + 0.23*float64(age) - 10.8*genderValue - 5.4
}

// BodyFatCategory classifies a body-fat percentage
func BodyFatCategory(bodyFat float64) string {
	switch {
	case bodyFat == 0:
		return ""
	case bodyFat < 18:
		return "Low"
	case bodyFat < 25:
		return "Normal"
	default:
		return "High"
	}
}

// BMR computes basal metabolic rate (kcal/day) with the Mifflin-St Jeor
// equation. Returns 0 when any input is missing.
func BMR(weightKg, heightCm float64, age int, gender string) float64 {
	if age <= 0 || weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		return base + 5
	}
	return base - 161
}

// MaintenanceCalories scales a BMR by an activity multiplier
func MaintenanceCalories(bmr, activityMultiplier float64) float64 {
	return bmr * activityMultiplier
}

// CaloriesBurned computes the energy (kcal) spent performing an activity of
// the given MET value for a duration in minutes at the given body weight.
func CaloriesBurned(met, weightKg, minutes float64) float64 {
	if met <= 0 || weightKg <= 0 || minutes <= 0 {
		return 0
	}
	return (met * 3.5 * weightKg) / 200 * minutes
}

// HeartRateZone is a named BPM band
type HeartRateZone struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// HeartRateZones derives five training zones from the age-predicted maximum
// heart rate (220 minus age). Returns nil when age is missing.
func HeartRateZones(age int) []HeartRateZone {
	if age <= 0 {
		return nil
	}
	max := float64(220 - age)
	bands := []struct {
		label    string
		min, max float64
	}{
		{"Recovery", 0.5, 0.6},
		{"Fat Burn", 0.6, 0.7},
		{"Aerobic", 0.7, 0.8},
		{"Threshold", 0.8, 0.9},
		{"Maximum", 0.9, 1.0},
	}

	zones := make([]HeartRateZone, len(bands))
	for i, b := range bands {
		zones[i] = HeartRateZone{
			Label: b.label,
			Min:   int(math.Round(max * b.min)),
			Max:   int(math.Round(max * b.max)),
		}
	}
	return zones
}
