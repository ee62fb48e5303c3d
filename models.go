package main

/* ─── Domain structs ─────────────────────────────────────────────────── */

// userProfile is the anthropometric input for a single calculation.
// Circumference fields use pointers so "not measured" is distinguishable
// from zero — the Navy body-fat method is only eligible when they are present.
type userProfile struct {
	Age          int     `json:"age"`
	Sex          string  `json:"sex"` // "male" or "female"
	HeightCM     float64 `json:"height_cm"`
	WeightKG     float64 `json:"weight_kg"`
	TrainingDays int     `json:"training_days"` // sessions per week, 0–7
	Goal         string  `json:"goal"`          // bulking, cutting, maintenance
	Focus        string  `json:"focus"`         // strength, hypertrophy

	NeckCM  *float64 `json:"neck_cm,omitempty"`
	WaistCM *float64 `json:"waist_cm,omitempty"`
	HipCM   *float64 `json:"hip_cm,omitempty"` // only meaningful for female
}

// targetCalories holds the three daily calorie targets derived from TDEE.
type targetCalories struct {
	Maintenance int `json:"maintenance"`
	Bulking     int `json:"bulking"`
	Cutting     int `json:"cutting"`
}

// fitnessResult is the full set of computed metrics for one profile.
// Values are rounded for display: BMI and body fat to one decimal,
// energy figures to whole kcal. Immutable after construction.
type fitnessResult struct {
	BMI            float64        `json:"bmi"`
	BodyFatPct     float64        `json:"body_fat_pct"`
	BodyFatMethod  string         `json:"body_fat_method"` // "navy" or "deurenberg"
	BMR            int            `json:"bmr"`
	TDEE           int            `json:"tdee"`
	TargetCalories targetCalories `json:"target_calories"`
}

// methodMetadata describes a body-fat estimation method for the
// presentation layer (GET /api/fitness/methods).
type methodMetadata struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Requires    []string `json:"requires"`
}

/* ─── Workout plan (AI contract) ─────────────────────────────────────── */

// planExercise is a single exercise prescription within a training day.
type planExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"` // range like "8-12", or "5" for straight sets
	RestSeconds int    `json:"rest_seconds"`
	Notes       string `json:"notes,omitempty"`
}

// planDay is one training day of the generated split.
type planDay struct {
	Day       int            `json:"day"` // 1-based position in the week
	Focus     string         `json:"focus"`
	Exercises []planExercise `json:"exercises"`
}

// workoutPlan is the structured plan returned by the AI.
type workoutPlan struct {
	SplitName string    `json:"split_name"`
	Days      []planDay `json:"days"`
	Guidance  string    `json:"guidance"`
}

// planResponse is the body of POST /api/fitness/plan: the computed metrics
// plus the generated plan, tagged with a request-scoped plan ID.
type planResponse struct {
	PlanID string        `json:"plan_id"`
	Result fitnessResult `json:"result"`
	Plan   workoutPlan   `json:"plan"`
}
