package workout

import "fmt"

// Training is one workout record built from a sensor package. Kind selects
// the formulas; fields a kind does not use stay zero.
type Training struct {
	Kind       Kind
	Action     float64 // steps or strokes
	Duration   float64 // hours
	Weight     float64 // kg
	Height     float64 // cm, SportsWalking only
	PoolLength float64 // meters, Swimming only
	LapCount   float64 // Swimming only
}

// Distance returns the covered distance in km
func (t Training) Distance() float64 {
	return t.Action * definitionOf(t.Kind).lenStep / mInKm
}

// MeanSpeed returns the average speed in km/h.
// A zero duration yields 0.
func (t Training) MeanSpeed() float64 {
	if t.Duration == 0 {
		return 0
	}
	if d := definitionOf(t.Kind); d.meanSpeed != nil {
		return d.meanSpeed(t)
	}
	return t.Distance() / t.Duration
}

// SpentCalories returns the calories burned during the workout. Kinds
// without a calorie formula return ErrCaloriesNotImplemented.
func (t Training) SpentCalories() (float64, error) {
	d := definitionOf(t.Kind)
	if d.calories == nil {
		return 0, fmt.Errorf("%s: %w", t.name(), ErrCaloriesNotImplemented)
	}
	return d.calories(t, t.MeanSpeed()), nil
}

// Summary computes distance, mean speed and calories, in that order, and
// packages them with the kind's display name.
func (t Training) Summary() (Summary, error) {
	distance := t.Distance()
	speed := t.MeanSpeed()
	calories, err := t.SpentCalories()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TrainingType: t.name(),
		Duration:     t.Duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}, nil
}

// Fields returns the record's readings in the kind's schema order
func (t Training) Fields() []float64 {
	schema := definitionOf(t.Kind).fields
	out := make([]float64, len(schema))
	for i, f := range schema {
		out[i] = t.get(f)
	}
	return out
}

func (t Training) name() string {
	if t.Kind == "" {
		return "Training"
	}
	return string(t.Kind)
}

func (t *Training) set(f Field, v float64) {
	switch f {
	case FieldAction:
		t.Action = v
	case FieldDuration:
		t.Duration = v
	case FieldWeight:
		t.Weight = v
	case FieldHeight:
		t.Height = v
	case FieldPoolLength:
		t.PoolLength = v
	case FieldLapCount:
		t.LapCount = v
	}
}

func (t Training) get(f Field) float64 {
	switch f {
	case FieldAction:
		return t.Action
	case FieldDuration:
		return t.Duration
	case FieldWeight:
		return t.Weight
	case FieldHeight:
		return t.Height
	case FieldPoolLength:
		return t.PoolLength
	case FieldLapCount:
		return t.LapCount
	}
	return 0
}
