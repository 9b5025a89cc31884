package service

import (
	"fmt"
	"strconv"
	"strings"
)

// SamplePackages returns the demonstration packages run when no packages are
// given on the command line
func SamplePackages() []Package {
	return []Package{
		{Code: "SWM", Fields: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Fields: []float64{15000, 1, 75}},
		{Code: "WLK", Fields: []float64{9000, 1, 75, 180}},
	}
}

// ParsePackage parses the command-line form CODE:v1,v2,...
// The code is kept verbatim; the workout reader decides whether it is known.
func ParsePackage(s string) (Package, error) {
	code, values, ok := strings.Cut(s, ":")
	if !ok {
		return Package{}, fmt.Errorf("package %q: want CODE:v1,v2,...", s)
	}

	p := Package{Code: strings.TrimSpace(code)}
	if strings.TrimSpace(values) == "" {
		return p, nil
	}

	for _, raw := range strings.Split(values, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Package{}, fmt.Errorf("package %q: parsing %q: %w", s, raw, err)
		}
		p.Fields = append(p.Fields, v)
	}
	return p, nil
}

// ParsePackages parses each argument with ParsePackage
func ParsePackages(args []string) ([]Package, error) {
	packages := make([]Package, 0, len(args))
	for _, arg := range args {
		p, err := ParsePackage(arg)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}
