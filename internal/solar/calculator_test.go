package solar_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/ja-he/suntimes/internal/model"
	"github.com/ja-he/suntimes/internal/solar"
)

var solstice = model.Date{Year: 2024, Month: 6, Day: 21}

func mustSunTimes(t *testing.T, lat, lng float64, date model.Date) model.SunTimes {
	t.Helper()
	result, err := solar.Compute(lat, lng, date)
	if err != nil {
		t.Fatalf("unexpected error for (%f,%f) on %s: %s", lat, lng, date.ToString(), err)
	}
	sunTimes, ok := result.(model.SunTimes)
	if !ok {
		t.Fatalf("expected sun times for (%f,%f) on %s, got %#v", lat, lng, date.ToString(), result)
	}
	return sunTimes
}

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestComputeFixtures(t *testing.T) {
	for _, tc := range []struct {
		name     string
		lat, lng float64
		date     model.Date
		expected model.SunTimes
	}{
		{
			name: "London, june solstice",
			lat:  51.5, lng: -0.13,
			date: solstice,
			expected: model.SunTimes{
				SolarNoon: utc(2024, 6, 21, 12, 2),
				Nadir:     utc(2024, 6, 21, 0, 2),
				Sunrise:   utc(2024, 6, 21, 3, 43),
				Sunset:    utc(2024, 6, 21, 20, 21),
			},
		},
		{
			name: "London, day before june solstice",
			lat:  51.5, lng: -0.13,
			date: model.Date{Year: 2024, Month: 6, Day: 20},
			expected: model.SunTimes{
				SolarNoon: utc(2024, 6, 20, 12, 1),
				Nadir:     utc(2024, 6, 20, 0, 1),
				Sunrise:   utc(2024, 6, 20, 3, 42),
				Sunset:    utc(2024, 6, 20, 20, 21),
			},
		},
		{
			name: "Berlin, november",
			lat:  52.52, lng: 13.405,
			date: model.Date{Year: 2022, Month: 11, Day: 13},
			expected: model.SunTimes{
				SolarNoon: utc(2022, 11, 13, 10, 51),
				Nadir:     utc(2022, 11, 12, 22, 51),
				Sunrise:   utc(2022, 11, 13, 6, 25),
				Sunset:    utc(2022, 11, 13, 15, 16),
			},
		},
		{
			name: "Tyumen, january",
			lat:  57.1522, lng: 65.5341,
			date: model.Date{Year: 2025, Month: 1, Day: 15},
			expected: model.SunTimes{
				SolarNoon: utc(2025, 1, 15, 7, 47),
				Nadir:     utc(2025, 1, 14, 19, 47),
				Sunrise:   utc(2025, 1, 15, 4, 5),
				Sunset:    utc(2025, 1, 15, 11, 29),
			},
		},
		{
			name: "equator at J2000.0",
			lat:  0, lng: 0,
			date: model.Date{Year: 2000, Month: 1, Day: 1},
			expected: model.SunTimes{
				SolarNoon: utc(2000, 1, 1, 12, 3),
				Nadir:     utc(2000, 1, 1, 0, 3),
				Sunrise:   utc(2000, 1, 1, 6, 0),
				Sunset:    utc(2000, 1, 1, 18, 7),
			},
		},
		{
			name: "Cupertino, new year (sunset on next UTC day)",
			lat:  37.3229978, lng: -122.0321823,
			date: model.Date{Year: 2024, Month: 1, Day: 1},
			expected: model.SunTimes{
				SolarNoon: utc(2024, 1, 1, 20, 11),
				Nadir:     utc(2024, 1, 1, 8, 11),
				Sunrise:   utc(2024, 1, 1, 15, 22),
				Sunset:    utc(2024, 1, 2, 1, 1),
			},
		},
		{
			name: "Cape Town, new year's eve",
			lat:  -33.92, lng: 18.42,
			date: model.Date{Year: 2024, Month: 12, Day: 31},
			expected: model.SunTimes{
				SolarNoon: utc(2024, 12, 31, 10, 50),
				Nadir:     utc(2024, 12, 30, 22, 50),
				Sunrise:   utc(2024, 12, 31, 3, 38),
				Sunset:    utc(2024, 12, 31, 18, 1),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := mustSunTimes(t, tc.lat, tc.lng, tc.date)
			if result != tc.expected {
				t.Errorf("got\n  %+v\nexpected\n  %+v", result, tc.expected)
			}
		})
	}
}

func TestEquatorSymmetry(t *testing.T) {
	date := model.Date{Year: 2024, Month: 1, Day: 1}
	for i := 0; i < 366; i++ {
		result := mustSunTimes(t, 0, 0, date)

		morning := result.SolarNoon.Sub(result.Sunrise)
		afternoon := result.Sunset.Sub(result.SolarNoon)
		diff := morning - afternoon
		if diff < 0 {
			diff = -diff
		}
		if diff > time.Minute {
			t.Errorf("%s: asymmetric day at the equator (%s before noon, %s after)", date.ToString(), morning, afternoon)
		}

		date = date.Next()
	}
}

func TestPolarConditions(t *testing.T) {
	for _, tc := range []struct {
		lat      float64
		date     model.Date
		expected model.PolarKind
	}{
		{80, solstice, model.NeverSets},
		{80, model.Date{Year: 2024, Month: 12, Day: 21}, model.NeverRises},
		{-80, solstice, model.NeverRises},
		{-80, model.Date{Year: 2024, Month: 12, Day: 21}, model.NeverSets},
		{90, model.Date{Year: 2024, Month: 3, Day: 20}, model.NeverSets},
	} {
		result, err := solar.Compute(tc.lat, 0, tc.date)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		polar, ok := result.(model.PolarCondition)
		if !ok {
			t.Errorf("expected polar condition at %f on %s, got %#v", tc.lat, tc.date.ToString(), result)
			continue
		}
		if polar.Kind != tc.expected {
			t.Errorf("expected %s at %f on %s, got %s", tc.expected, tc.lat, tc.date.ToString(), polar.Kind)
		}
	}
}

func TestNadirIsTwelveHoursBeforeNoon(t *testing.T) {
	for _, lng := range []float64{-179.9, -170, -90, -0.13, 0, 13.405, 90, 170, 179.9} {
		result := mustSunTimes(t, 45, lng, solstice)
		if result.SolarNoon.Sub(result.Nadir) != 12*time.Hour {
			t.Errorf("lng %f: nadir %s is not 12h before noon %s", lng, result.Nadir, result.SolarNoon)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a, errA := solar.Compute(51.5, -0.13, solstice)
	b, errB := solar.Compute(51.5, -0.13, solstice)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("results differ: %#v vs %#v", a, b)
	}

	jsonA, _ := model.MarshalResult(a)
	jsonB, _ := model.MarshalResult(b)
	if string(jsonA) != string(jsonB) {
		t.Errorf("serializations differ: %s vs %s", jsonA, jsonB)
	}
}

func TestDayWraparound(t *testing.T) {
	{
		testcase := "far east, sunrise on previous day"
		result := mustSunTimes(t, 10, 170, solstice)

		if !solstice.Prev().Is(result.Sunrise) {
			t.Errorf("[testcase '%s' failed]: expected sunrise on %s, got %s", testcase, solstice.Prev().ToString(), result.Sunrise)
		}
		if got, want := result.Sunrise, utc(2024, 6, 20, 18, 20); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
		if got, want := result.SolarNoon, utc(2024, 6, 21, 0, 41); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
		if got, want := result.Sunset, utc(2024, 6, 21, 7, 2); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
		if got, want := result.Nadir, utc(2024, 6, 20, 12, 41); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
	}
	{
		testcase := "far west, sunset on next day"
		result := mustSunTimes(t, 10, -170, solstice)

		if !solstice.Next().Is(result.Sunset) {
			t.Errorf("[testcase '%s' failed]: expected sunset on %s, got %s", testcase, solstice.Next().ToString(), result.Sunset)
		}
		if got, want := result.Sunrise, utc(2024, 6, 21, 17, 0); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
		if got, want := result.SolarNoon, utc(2024, 6, 21, 23, 21); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
		if got, want := result.Sunset, utc(2024, 6, 22, 5, 42); !got.Equal(want) {
			t.Errorf("[testcase '%s' failed]: got %v, want %v", testcase, got, want)
		}
	}
	{
		testcase := "across year boundary"
		newYear := model.Date{Year: 2025, Month: 1, Day: 1}
		result := mustSunTimes(t, -10, 170, newYear)
		if result.Sunrise.Year() != 2024 || result.Sunrise.Month() != time.December || result.Sunrise.Day() != 31 {
			t.Errorf("[testcase '%s' failed]: expected sunrise on 2024-12-31, got %s", testcase, result.Sunrise)
		}
	}
}

func TestHoursToTime(t *testing.T) {
	for _, tc := range []struct {
		hours    float64
		expected time.Time
	}{
		{0, utc(2024, 6, 21, 0, 0)},
		{12.999, utc(2024, 6, 21, 12, 59)},
		{-0.5, utc(2024, 6, 20, 23, 30)},
		{-12, utc(2024, 6, 20, 12, 0)},
		{24, utc(2024, 6, 22, 0, 0)},
		{30.25, utc(2024, 6, 22, 6, 15)},
	} {
		result, err := solar.HoursToTime(solstice, tc.hours)
		if err != nil {
			t.Fatalf("unexpected error for %f: %s", tc.hours, err)
		}
		if !result.Equal(tc.expected) {
			t.Errorf("%f hours: got %v, want %v", tc.hours, result, tc.expected)
		}
		if result.Second() != 0 || result.Nanosecond() != 0 {
			t.Errorf("%f hours: expected whole minutes, got %v", tc.hours, result)
		}
	}

	for _, hours := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -25, 48} {
		_, err := solar.HoursToTime(solstice, hours)
		if !errors.Is(err, solar.ErrUndefined) {
			t.Errorf("expected ErrUndefined for %f, got %v", hours, err)
		}
	}
}

func TestUndefinedCoordinates(t *testing.T) {
	for _, tc := range []struct{ lat, lng float64 }{
		{math.NaN(), 0},
		{0, math.NaN()},
		{0, math.Inf(1)},
	} {
		_, err := solar.Compute(tc.lat, tc.lng, solstice)
		if !errors.Is(err, solar.ErrUndefined) {
			t.Errorf("expected ErrUndefined for (%f,%f), got %v", tc.lat, tc.lng, err)
		}
	}
}

func TestOutOfRangeCoordinatesPassThrough(t *testing.T) {
	// longitudes beyond ±180 wrap around through the modulo on solar noon
	a := mustSunTimes(t, 20, 190, solstice)
	b := mustSunTimes(t, 20, -170, solstice)
	if a.SolarNoon.Hour() != b.SolarNoon.Hour() || a.SolarNoon.Minute() != b.SolarNoon.Minute() {
		t.Errorf("expected same clock time of noon for 190 and -170, got %s and %s", a.SolarNoon, b.SolarNoon)
	}

	// latitudes beyond the poles are not rejected
	result, err := solar.Compute(95, 0, solstice)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := result.(model.PolarCondition); !ok {
		t.Errorf("expected polar condition beyond the pole, got %#v", result)
	}
}

func TestJulianCentury(t *testing.T) {
	if jc := solar.JulianCentury(model.Date{Year: 2000, Month: 1, Day: 1}); jc != 0 {
		t.Errorf("expected 0 at J2000.0, got %f", jc)
	}

	for _, date := range []model.Date{
		{Year: 1970, Month: 1, Day: 1},
		{Year: 2000, Month: 2, Day: 29},
		solstice,
		{Year: 2100, Month: 3, Day: 1},
	} {
		// meeus returns the (fractional) JD at midnight, the JDN refers to noon
		expected := julian.CalendarGregorianToJD(date.Year, date.Month, float64(date.Day)) + 0.5
		if got := float64(date.JulianDayNumber()); got != expected {
			t.Errorf("%s: JDN %f disagrees with meeus (%f)", date.ToString(), got, expected)
		}
	}
}

func TestGeometry(t *testing.T) {
	g := solar.GeometryAt(solar.JulianCentury(solstice))

	if g.MeanLongitude < 0 || g.MeanLongitude >= 360 {
		t.Errorf("mean longitude %f out of range", g.MeanLongitude)
	}
	if g.RightAscension < 0 || g.RightAscension >= 360 {
		t.Errorf("right ascension %f out of range", g.RightAscension)
	}
	if math.Abs(g.Declination-23.4347) > 0.001 {
		t.Errorf("expected declination near 23.4347 at the june solstice, got %f", g.Declination)
	}
	if math.Abs(g.Eccentricity-0.0167) > 0.0001 {
		t.Errorf("unexpected eccentricity %f", g.Eccentricity)
	}
	if math.Abs(g.RightAscension-90) > 1 {
		t.Errorf("expected right ascension near 90 at the june solstice, got %f", g.RightAscension)
	}

	// mean anomaly is deliberately not range reduced
	if later := solar.GeometryAt(1); later.MeanAnomaly < 360 {
		t.Errorf("expected unreduced mean anomaly, got %f", later.MeanAnomaly)
	}
}

func TestEquationOfTime(t *testing.T) {
	// early november the sun runs ahead the most, mid february it lags
	if eot := solar.EquationOfTime(307); eot < 15 || eot > 17 {
		t.Errorf("unexpected EOT early november: %f", eot)
	}
	if eot := solar.EquationOfTime(43); eot > -13 || eot < -15.5 {
		t.Errorf("unexpected EOT mid february: %f", eot)
	}
}

func TestExplain(t *testing.T) {
	{
		d := solar.Explain(51.5, -0.13, solstice)
		if d.JulianDay != 2460483 {
			t.Errorf("unexpected JDN %d", d.JulianDay)
		}
		if _, isPolar := d.Polar(); isPolar {
			t.Errorf("London should not be polar")
		}
		if d.HourAngle < 124 || d.HourAngle > 125 {
			t.Errorf("unexpected hour angle %f", d.HourAngle)
		}
		if d.NoonHours < 0 || d.NoonHours >= 24 {
			t.Errorf("noon hours %f out of range", d.NoonHours)
		}
	}
	{
		d := solar.Explain(80, 0, solstice)
		if !math.IsNaN(d.HourAngle) {
			t.Errorf("expected undefined hour angle for polar day, got %f", d.HourAngle)
		}
		polar, isPolar := d.Polar()
		if !isPolar || polar.Kind != model.NeverSets {
			t.Errorf("expected polar day, got %#v", polar)
		}
	}
}

func TestCalculator(t *testing.T) {
	calculator := solar.Calculator{Latitude: 51.5, Longitude: -0.13}

	fixed, err := calculator.Get(solstice)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	computed, err := solar.Compute(51.5, -0.13, solstice)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if fixed != computed {
		t.Errorf("calculator and compute disagree: %#v vs %#v", fixed, computed)
	}
}
