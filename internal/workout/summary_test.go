package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		code   string
		fields []float64
		want   string
	}{
		{
			code:   "SWM",
			fields: []float64{720, 1, 80, 25, 40},
			want:   "Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories spent: 336.000.",
		},
		{
			code:   "RUN",
			fields: []float64{15000, 1, 75},
			want:   "Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories spent: 699.750.",
		},
		{
			code:   "WLK",
			fields: []float64{9000, 1, 75, 180},
			want:   "Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories spent: 157.500.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tr, err := ReadPackage(tt.code, tt.fields)
			require.NoError(t, err)
			s, err := tr.Summary()
			require.NoError(t, err)

			assert.Equal(t, tt.want, s.Message())
		})
	}
}

func TestMessageRounding(t *testing.T) {
	// Exact binary ties round to even.
	s := Summary{
		TrainingType: "Running",
		Duration:     0.0625,
		Distance:     0.1875,
		Speed:        2.5,
		Calories:     689.0625,
	}

	assert.Equal(t,
		"Training type: Running; Duration: 0.062 h.; Distance: 0.188 km; Avg speed: 2.500 km/h; Calories spent: 689.062.",
		s.Message())
}

func TestMessageDoesNotCompute(t *testing.T) {
	s := Summary{TrainingType: "Swimming", Duration: 2, Distance: 1, Speed: 100, Calories: -1}

	assert.Equal(t,
		"Training type: Swimming; Duration: 2.000 h.; Distance: 1.000 km; Avg speed: 100.000 km/h; Calories spent: -1.000.",
		s.Message())
}
