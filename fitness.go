package main

import "math"

// Body-fat percentage bounds. Both formulas blow up at extreme inputs
// (very low BMI, circumferences near the log singularity), so the final
// value is clamped to this range no matter which method produced it.
const (
	bodyFatMin = 5.0
	bodyFatMax = 50.0
)

// palForTrainingDays maps weekly training frequency to the physical activity
// level multiplier. This is the single source of truth for the TDEE tiers —
// also referenced by the plan prompt so the AI sees the same assumption.
func palForTrainingDays(days int) float64 {
	switch {
	case days <= 1:
		return 1.40
	case days <= 3:
		return 1.55
	case days <= 5:
		return 1.70
	default:
		return 1.85
	}
}

// round1 rounds to one decimal place. Used for BMI and body fat so the
// JSON output carries display-ready values.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// navyEligible reports whether the profile carries the circumference
// measurements the Navy method needs: neck and waist always, hip for female.
func navyEligible(p userProfile) bool {
	if p.NeckCM == nil || p.WaistCM == nil {
		return false
	}
	if p.Sex == "female" {
		return p.HipCM != nil
	}
	return true
}

// navyValid reports whether the measurements are mutually consistent, i.e.
// the log10 argument is positive. Male: waist > neck. Female: waist + hip > neck.
// Inconsistent measurements route to the Deurenberg fallback instead of NaN.
func navyValid(p userProfile) bool {
	if p.Sex == "female" {
		return *p.WaistCM+*p.HipCM > *p.NeckCM
	}
	return *p.WaistCM > *p.NeckCM
}

// navyBodyFat computes the U.S. Navy circumference-based body-fat estimate.
// Callers must have checked navyEligible and navyValid first.
func navyBodyFat(p userProfile) float64 {
	if p.Sex == "female" {
		return 495/(1.29579-0.35004*math.Log10(*p.WaistCM+*p.HipCM-*p.NeckCM)+0.22100*math.Log10(p.HeightCM)) - 450
	}
	return 495/(1.0324-0.19077*math.Log10(*p.WaistCM-*p.NeckCM)+0.15456*math.Log10(p.HeightCM)) - 450
}

// deurenbergBodyFat computes the Deurenberg (1991) BMI/age/sex estimate.
// Takes the already-rounded BMI so the published result stays self-consistent.
func deurenbergBodyFat(bmi float64, p userProfile) float64 {
	sexTerm := 0.0
	if p.Sex == "male" {
		sexTerm = 1.0
	}
	return 1.20*bmi + 0.23*float64(p.Age) - 10.8*sexTerm - 5.4
}

// calculateFitnessMetrics derives all body-composition and energy metrics
// from a profile. Pure and deterministic: no I/O beyond the telemetry
// counter, safe to call concurrently. Inputs are assumed pre-validated by
// the handler; pathological values degrade to clamped output rather than
// failing.
func calculateFitnessMetrics(p userProfile) fitnessResult {
	// BMI from metric inputs
	heightM := p.HeightCM / 100.0
	bmi := round1(p.WeightKG / (heightM * heightM))

	// Body fat: Navy when the measurements allow it, Deurenberg otherwise
	var bodyFat float64
	method := methodDeurenberg
	if navyEligible(p) && navyValid(p) {
		bodyFat = navyBodyFat(p)
		method = methodNavy
	} else {
		bodyFat = deurenbergBodyFat(bmi, p)
	}
	bodyFat = round1(math.Min(math.Max(bodyFat, bodyFatMin), bodyFatMax))
	observeMethodSelected(method)

	// BMR via Mifflin-St Jeor: different constant for male vs female
	bmrF := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == "male" {
		bmrF += 5
	} else {
		bmrF -= 161
	}
	bmr := int(math.Round(bmrF))

	// TDEE from the rounded BMR and the activity tier
	tdee := int(math.Round(float64(bmr) * palForTrainingDays(p.TrainingDays)))

	return fitnessResult{
		BMI:            bmi,
		BodyFatPct:     bodyFat,
		BodyFatMethod:  method,
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: computeTargets(tdee),
	}
}

// computeTargets derives the three calorie targets from TDEE: a 15% deficit
// for cutting, a 10% surplus for bulking, maintenance as-is.
func computeTargets(tdee int) targetCalories {
	return targetCalories{
		Maintenance: tdee,
		Cutting:     tdee - int(math.Round(float64(tdee)*0.15)),
		Bulking:     tdee + int(math.Round(float64(tdee)*0.10)),
	}
}
