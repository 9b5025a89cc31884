package workout

import "math"

// ReadPackage validates a sensor package against the dispatch table and
// builds the matching Training. Readings are assigned in the kind's schema
// order.
func ReadPackage(code string, fields []float64) (Training, error) {
	kind, ok := codes[code]
	if !ok {
		return Training{}, &UnknownCodeError{Code: code}
	}

	def := definitions[kind]
	if len(fields) != len(def.fields) {
		return Training{}, &FieldCountError{Kind: kind, Got: len(fields), Want: len(def.fields)}
	}

	t := Training{Kind: kind}
	for i, f := range def.fields {
		v := fields[i]
		if math.IsNaN(v) || math.IsInf(v, 0) || (f == FieldDuration && v < 0) {
			return Training{}, &InvalidReadingError{Kind: kind, Field: f, Value: v}
		}
		if v == 0 && def.isDivisor(f) {
			return Training{}, &ZeroDivisorError{Kind: kind, Field: f}
		}
		t.set(f, v)
	}
	return t, nil
}
