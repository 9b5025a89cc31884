package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"fitness-tracker/internal/config"
)

const kmPerMile = 1.609344

// Units converts the calculator's km-based values to the user's preferred
// display unit. Summary messages themselves always stay in km.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance given in km
func (u Units) FormatDistance(km float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.3f mi", km/kmPerMile)
	}
	return fmt.Sprintf("%.3f km", km)
}

// FormatSpeed formats a speed given in km/h
func (u Units) FormatSpeed(kmh float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.3f mph", kmh/kmPerMile)
	}
	return fmt.Sprintf("%.3f km/h", kmh)
}

// FormatCalories formats calories with thousands separators
func (u Units) FormatCalories(kcal float64) string {
	return humanize.CommafWithDigits(kcal, 1) + " kcal"
}

// FormatDuration formats hours as "1h 30m" or "45m"
func (u Units) FormatDuration(hours float64) string {
	total := int(hours*60 + 0.5)
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}
