package workout

import "fmt"

const messageTemplate = "Training type: %s; Duration: %.3f h.; Distance: %.3f km; " +
	"Avg speed: %.3f km/h; Calories spent: %.3f."

// Summary holds the derived metrics of one workout
type Summary struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64
}

// Message renders the summary with three fractional digits per value.
// Values are rounded the way fmt rounds %.3f: to nearest, ties to even on
// the exact binary value.
func (s Summary) Message() string {
	return fmt.Sprintf(messageTemplate, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}
