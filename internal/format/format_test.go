package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, "2h 15m 30s", Duration(8130))
	assert.Equal(t, "1h", Duration(3600))
	assert.Equal(t, "45m", Duration(2700))
	assert.Equal(t, "30s", Duration(30))
	assert.Equal(t, "0s", Duration(0))
	assert.Equal(t, "0s", Duration(-5))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, "10.00 km", Distance(10000, UnitMetric))
	assert.Equal(t, "6.21 mi", Distance(10000, UnitImperial))
}

func TestElevation(t *testing.T) {
	assert.Equal(t, "1000 m", Elevation(1000, UnitMetric))
	assert.Equal(t, "3281 ft", Elevation(1000, UnitImperial))
}

func TestSpeed(t *testing.T) {
	assert.Equal(t, "36.0 km/h", Speed(10, UnitMetric))
	assert.Equal(t, "22.4 mph", Speed(10, UnitImperial))
}

func TestPace(t *testing.T) {
	// 3.7037 m/s is a 4:30/km pace
	assert.Equal(t, "4:30 /km", Pace(1000.0/270.0, UnitMetric))
	assert.Equal(t, "N/A", Pace(0, UnitMetric))
	assert.Equal(t, "N/A", Pace(-1, UnitImperial))
}

func TestSwimAndRunPace(t *testing.T) {
	assert.Equal(t, "1:30 /100m", SwimPace(1.5))
	assert.Equal(t, "4:30 /km", RunPace(4.5))
}

func TestPowerHeartRateCadence(t *testing.T) {
	assert.Equal(t, "250 W", Power(250))
	assert.Equal(t, "165 bpm", HeartRate(165))
	assert.Equal(t, "90 rpm", Cadence(90, "Ride"))
	assert.Equal(t, "180 spm", Cadence(180, "Run"))
	assert.Equal(t, "178 spm", Cadence(178, "VirtualRun"))
}

func TestWeight(t *testing.T) {
	assert.Equal(t, "70.0 kg", Weight(70, UnitMetric))
	assert.Equal(t, "154.3 lbs", Weight(70, UnitImperial))
}

func TestTSB(t *testing.T) {
	assert.Equal(t, "+25.0 (fresh)", TSB(25))
	assert.Equal(t, "+10.0 (recovered)", TSB(10))
	assert.Equal(t, "-5.0 (optimal)", TSB(-5))
	assert.Equal(t, "-20.0 (fatigued)", TSB(-20))
	assert.Equal(t, "-35.0 (very fatigued)", TSB(-35))
}

func TestInterpretFitnessTrends(t *testing.T) {
	ctl, atl := 60.5, 70.2
	high, moderate, declining, steady := 9.0, 6.0, -6.0, 1.0

	assert.Equal(t, "No fitness data available", InterpretFitnessTrends(nil, nil, nil))
	assert.Equal(t, "Fitness (CTL): 60.5", InterpretFitnessTrends(&ctl, nil, nil))
	assert.Equal(t,
		"Fitness (CTL): 60.5 | Fatigue (ATL): 70.2 | ramp rate high - risk of overtraining",
		InterpretFitnessTrends(&ctl, &atl, &high),
	)
	assert.Contains(t, InterpretFitnessTrends(nil, nil, &moderate), "moderate")
	assert.Contains(t, InterpretFitnessTrends(nil, nil, &declining), "declining")
	assert.Contains(t, InterpretFitnessTrends(nil, nil, &steady), "sustainable")
}

func TestAvg(t *testing.T) {
	assert.Equal(t, 0.0, Avg(nil))
	assert.Equal(t, 2.0, Avg([]float64{1, 2, 3}))
}
