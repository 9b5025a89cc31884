package workout

import (
	"math"
	"sort"
)

// Kind identifies a workout type. Its value doubles as the display name
// used in summaries.
type Kind string

const (
	KindRunning       Kind = "Running"
	KindSportsWalking Kind = "SportsWalking"
	KindSwimming      Kind = "Swimming"
)

// Field names one positional sensor value
type Field string

const (
	FieldAction     Field = "action"      // steps or strokes
	FieldDuration   Field = "duration"    // hours
	FieldWeight     Field = "weight"      // kg
	FieldHeight     Field = "height"      // cm
	FieldPoolLength Field = "pool_length" // meters
	FieldLapCount   Field = "lap_count"
)

// Unit conversions and per-kind coefficients
const (
	mInKm  = 1000
	minInH = 60

	lenStep         = 0.65 // m per step
	swimmingLenStep = 1.38 // m per stroke

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// definition describes one workout kind: its ordered field schema, the
// fields used as divisors, and the formulas that differ from the base.
type definition struct {
	fields   []Field
	divisors []Field
	lenStep  float64

	// meanSpeed overrides distance/duration when set
	meanSpeed func(t Training) float64
	// calories has no default; nil means the kind has no formula
	calories func(t Training, speed float64) float64
}

var baseFields = []Field{FieldAction, FieldDuration, FieldWeight}

// base is the generic workout: shared distance and speed, no calorie formula.
var base = definition{
	fields:   baseFields,
	divisors: []Field{FieldDuration},
	lenStep:  lenStep,
}

var definitions = map[Kind]definition{
	KindRunning: {
		fields:   baseFields,
		divisors: []Field{FieldDuration},
		lenStep:  lenStep,
		calories: runningCalories,
	},
	KindSportsWalking: {
		fields:   []Field{FieldAction, FieldDuration, FieldWeight, FieldHeight},
		divisors: []Field{FieldDuration, FieldHeight},
		lenStep:  lenStep,
		calories: walkingCalories,
	},
	KindSwimming: {
		fields:    []Field{FieldAction, FieldDuration, FieldWeight, FieldPoolLength, FieldLapCount},
		divisors:  []Field{FieldDuration},
		lenStep:   swimmingLenStep,
		meanSpeed: swimmingMeanSpeed,
		calories:  swimmingCalories,
	},
}

// codes is the dispatch table from sensor package codes to workout kinds
var codes = map[string]Kind{
	"SWM": KindSwimming,
	"RUN": KindRunning,
	"WLK": KindSportsWalking,
}

func definitionOf(k Kind) definition {
	if d, ok := definitions[k]; ok {
		return d
	}
	return base
}

func (d definition) isDivisor(f Field) bool {
	for _, div := range d.divisors {
		if div == f {
			return true
		}
	}
	return false
}

// KindOf returns the workout kind registered for a package code
func KindOf(code string) (Kind, bool) {
	k, ok := codes[code]
	return k, ok
}

// Codes returns the recognized package codes in sorted order
func Codes() []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Schema returns the ordered field names a package of the given kind must
// carry. Unknown kinds get the base schema.
func Schema(k Kind) []Field {
	fields := definitionOf(k).fields
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func runningCalories(t Training, speed float64) float64 {
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) *
		t.Weight / mInKm * t.Duration * minInH
}

// walkingCalories floors speed²/height, so only whole multiples of height
// contribute.
func walkingCalories(t Training, speed float64) float64 {
	return (walkingCaloriesWeightMultiplier*t.Weight +
		math.Floor(speed*speed/t.Height)*walkingSpeedHeightMultiplier*t.Weight) *
		t.Duration * minInH
}

func swimmingMeanSpeed(t Training) float64 {
	return t.PoolLength * t.LapCount / mInKm / t.Duration
}

func swimmingCalories(t Training, speed float64) float64 {
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * t.Weight
}
