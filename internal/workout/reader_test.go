package workout

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		fields []float64
		want   Training
	}{
		{
			name:   "running",
			code:   "RUN",
			fields: []float64{15000, 1, 75},
			want:   Training{Kind: KindRunning, Action: 15000, Duration: 1, Weight: 75},
		},
		{
			name:   "sports walking",
			code:   "WLK",
			fields: []float64{9000, 1, 75, 180},
			want:   Training{Kind: KindSportsWalking, Action: 9000, Duration: 1, Weight: 75, Height: 180},
		},
		{
			name:   "swimming",
			code:   "SWM",
			fields: []float64{720, 1, 80, 25, 40},
			want:   Training{Kind: KindSwimming, Action: 720, Duration: 1, Weight: 80, PoolLength: 25, LapCount: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPackage(tt.code, tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fields, got.Fields(), "readings must come back in schema order")
		})
	}
}

func TestReadPackageUnknownCode(t *testing.T) {
	for _, code := range []string{"", "run", "XYZ", "SWIM", "RUN "} {
		t.Run(code, func(t *testing.T) {
			_, err := ReadPackage(code, []float64{15000, 1, 75})
			require.Error(t, err)

			var codeErr *UnknownCodeError
			require.True(t, errors.As(err, &codeErr), "want UnknownCodeError, got %T", err)
			assert.Equal(t, code, codeErr.Code)
			assert.Contains(t, err.Error(), `"`+code+`"`)
		})
	}
}

func TestReadPackageFieldCount(t *testing.T) {
	tests := []struct {
		code   string
		fields []float64
		kind   Kind
		want   int
	}{
		{"RUN", nil, KindRunning, 3},
		{"RUN", []float64{15000, 1, 75, 180}, KindRunning, 3},
		{"WLK", []float64{9000, 1, 75}, KindSportsWalking, 4},
		{"SWM", []float64{720, 1, 80, 25, 40, 50}, KindSwimming, 5},
		{"SWM", []float64{720, 1, 80, 25}, KindSwimming, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.fields)

			var countErr *FieldCountError
			require.True(t, errors.As(err, &countErr), "want FieldCountError, got %v", err)
			assert.Equal(t, tt.kind, countErr.Kind)
			assert.Equal(t, len(tt.fields), countErr.Got)
			assert.Equal(t, tt.want, countErr.Want)

			msg := err.Error()
			assert.Contains(t, msg, string(tt.kind))
			assert.Contains(t, msg, "got "+strconv.Itoa(len(tt.fields)))
			assert.Contains(t, msg, "want "+strconv.Itoa(tt.want))
		})
	}
}

func TestReadPackageZeroDivisor(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		fields []float64
		field  Field
	}{
		{"running duration", "RUN", []float64{15000, 0, 75}, FieldDuration},
		{"swimming duration", "SWM", []float64{720, 0, 80, 25, 40}, FieldDuration},
		{"walking height", "WLK", []float64{9000, 1, 75, 0}, FieldHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.fields)
			require.ErrorIs(t, err, ErrZeroDivisor)

			var divErr *ZeroDivisorError
			require.True(t, errors.As(err, &divErr))
			assert.Equal(t, tt.field, divErr.Field)
		})
	}
}

func TestReadPackageInvalidReading(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		fields []float64
		field  Field
	}{
		{"NaN duration", "RUN", []float64{15000, math.NaN(), 75}, FieldDuration},
		{"negative duration", "RUN", []float64{15000, -1, 75}, FieldDuration},
		{"infinite weight", "WLK", []float64{9000, 1, math.Inf(1), 180}, FieldWeight},
		{"NaN height", "WLK", []float64{9000, 1, 75, math.NaN()}, FieldHeight},
		{"negative infinite laps", "SWM", []float64{720, 1, 80, 25, math.Inf(-1)}, FieldLapCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.fields)
			require.ErrorIs(t, err, ErrInvalidReading)
			assert.NotErrorIs(t, err, ErrZeroDivisor)

			var readingErr *InvalidReadingError
			require.True(t, errors.As(err, &readingErr))
			assert.Equal(t, tt.field, readingErr.Field)
			assert.Contains(t, err.Error(), string(tt.field))
		})
	}
}

func TestCodes(t *testing.T) {
	assert.Equal(t, []string{"RUN", "SWM", "WLK"}, Codes())

	for _, code := range Codes() {
		kind, ok := KindOf(code)
		require.True(t, ok)
		assert.Len(t, Schema(kind), len(definitions[kind].fields))
	}

	_, ok := KindOf("BIKE")
	assert.False(t, ok)
}

func TestSchemaIsACopy(t *testing.T) {
	s := Schema(KindSwimming)
	s[0] = "tampered"
	assert.Equal(t, FieldAction, Schema(KindSwimming)[0])
}
