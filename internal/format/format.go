// Package format renders fitness metrics into human-readable strings used in
// the analysis sections of tool responses.
package format

import (
	"fmt"
	"strings"
)

type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

const (
	metersPerMile = 1609.344
	feetPerMeter  = 3.28084
	lbsPerKg      = 2.20462
)

// Duration renders seconds as "2h 15m 30s".
func Duration(seconds int) string {
	if seconds < 0 {
		return "0s"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

// Distance renders meters as km or miles.
func Distance(meters float64, unit Unit) string {
	if unit == UnitImperial {
		return fmt.Sprintf("%.2f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// Elevation renders meters as m or ft.
func Elevation(meters float64, unit Unit) string {
	if unit == UnitImperial {
		return fmt.Sprintf("%.0f ft", meters*feetPerMeter)
	}
	return fmt.Sprintf("%.0f m", meters)
}

// Speed renders m/s as km/h or mph.
func Speed(metersPerSecond float64, unit Unit) string {
	if unit == UnitImperial {
		return fmt.Sprintf("%.1f mph", metersPerSecond*3.6/1.609344)
	}
	return fmt.Sprintf("%.1f km/h", metersPerSecond*3.6)
}

// Pace renders m/s as min/km or min/mile ("4:30 /km").
func Pace(metersPerSecond float64, unit Unit) string {
	if metersPerSecond <= 0 {
		return "N/A"
	}
	secondsPer := 1000 / metersPerSecond
	suffix := "/km"
	if unit == UnitImperial {
		secondsPer = metersPerMile / metersPerSecond
		suffix = "/mi"
	}
	minutes := int(secondsPer) / 60
	seconds := int(secondsPer) % 60
	return fmt.Sprintf("%d:%02d %s", minutes, seconds, suffix)
}

// SwimPace renders a threshold in min/100m as "1:30 /100m".
func SwimPace(minutesPer100m float64) string {
	totalSecs := int(minutesPer100m * 60)
	return fmt.Sprintf("%d:%02d /100m", totalSecs/60, totalSecs%60)
}

// RunPace renders a threshold in min/km as "4:30 /km".
func RunPace(minutesPerKm float64) string {
	totalSecs := int(minutesPerKm * 60)
	return fmt.Sprintf("%d:%02d /km", totalSecs/60, totalSecs%60)
}

func Power(watts int) string {
	return fmt.Sprintf("%d W", watts)
}

func HeartRate(bpm int) string {
	return fmt.Sprintf("%d bpm", bpm)
}

// Cadence renders rpm for cycling and spm for running activity types.
func Cadence(value float64, activityType string) string {
	if strings.Contains(activityType, "Run") {
		return fmt.Sprintf("%.0f spm", value)
	}
	return fmt.Sprintf("%.0f rpm", value)
}

func Weight(kg float64, unit Unit) string {
	if unit == UnitImperial {
		return fmt.Sprintf("%.1f lbs", kg*lbsPerKg)
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// TSB renders a Training Stress Balance value with its interpretation band.
func TSB(tsb float64) string {
	var status string
	switch {
	case tsb > 20:
		status = "fresh"
	case tsb > 5:
		status = "recovered"
	case tsb > -10:
		status = "optimal"
	case tsb > -30:
		status = "fatigued"
	default:
		status = "very fatigued"
	}
	return fmt.Sprintf("%+.1f (%s)", tsb, status)
}

// WellnessValue renders a 1-10 scale wellness value.
func WellnessValue(value, scale int) string {
	return fmt.Sprintf("%d/%d", value, scale)
}

// InterpretFitnessTrends summarizes CTL/ATL/ramp rate into one line. Nil
// inputs are skipped.
func InterpretFitnessTrends(ctl, atl, rampRate *float64) string {
	var parts []string

	if ctl != nil {
		parts = append(parts, fmt.Sprintf("Fitness (CTL): %.1f", *ctl))
	}
	if atl != nil {
		parts = append(parts, fmt.Sprintf("Fatigue (ATL): %.1f", *atl))
	}
	if rampRate != nil {
		switch {
		case *rampRate > 8:
			parts = append(parts, "ramp rate high - risk of overtraining")
		case *rampRate > 5:
			parts = append(parts, "ramp rate moderate - monitor fatigue")
		case *rampRate < -5:
			parts = append(parts, "fitness declining")
		default:
			parts = append(parts, "sustainable training load")
		}
	}

	if len(parts) == 0 {
		return "No fitness data available"
	}
	return strings.Join(parts, " | ")
}

// Avg returns the mean of values, 0 for an empty slice.
func Avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
