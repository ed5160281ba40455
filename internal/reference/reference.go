// Package reference provides sun times from third-party solar libraries, to
// cross-check the approximations of package solar against.
package reference

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/ja-he/suntimes/internal/model"
)

// Provider provides sun times for a location and date.
type Provider interface {
	Name() string
	SunTimes(latitude, longitude float64, date model.Date) (model.SunTimesResult, error)
}

// Providers returns all available reference providers.
func Providers() []Provider {
	return []Provider{GoSunrise{}, SunCalc{}}
}

// GoSunrise provides sun times via github.com/nathan-osman/go-sunrise.
//
// The library only knows sunrise and sunset; solar noon is taken as their
// midpoint.
type GoSunrise struct{}

// Name returns the provider name.
func (GoSunrise) Name() string { return "go-sunrise" }

// SunTimes returns the sun times for the given location and date.
func (GoSunrise) SunTimes(latitude, longitude float64, date model.Date) (model.SunTimesResult, error) {
	rise, set := sunrise.SunriseSunset(latitude, longitude, date.Year, time.Month(date.Month), date.Day)
	if rise.IsZero() || set.IsZero() {
		return polarCondition(latitude, date), nil
	}
	return sunTimesFromRiseSet(rise, set), nil
}

// SunCalc provides sun times via github.com/sixdouglas/suncalc.
type SunCalc struct{}

// Name returns the provider name.
func (SunCalc) Name() string { return "suncalc" }

// SunTimes returns the sun times for the given location and date.
func (SunCalc) SunTimes(latitude, longitude float64, date model.Date) (model.SunTimesResult, error) {
	// suncalc computes for the day around the given instant, so ask at noon
	times := suncalc.GetTimes(date.At(12, 0), latitude, longitude)

	rise, set := times["sunrise"].Value, times["sunset"].Value
	if !validTime(rise) || !validTime(set) || !set.After(rise) {
		return polarCondition(latitude, date), nil
	}

	return model.SunTimes{
		SolarNoon: times["solarNoon"].Value.UTC(),
		Nadir:     times["nadir"].Value.UTC(),
		Sunrise:   rise.UTC(),
		Sunset:    set.UTC(),
	}, nil
}

// EquatorialPosition is the apparent position of the sun in equatorial
// coordinates, in degrees.
type EquatorialPosition struct {
	RightAscension float64
	Declination    float64
}

// Meeus returns the apparent equatorial position of the sun at noon (UTC) of
// the given date, computed with the full algorithms of Jean Meeus'
// "Astronomical Algorithms" via github.com/soniakeys/meeus.
func Meeus(date model.Date) EquatorialPosition {
	ra, dec := solar.ApparentEquatorial(float64(date.JulianDayNumber()))
	raDeg := unit.Angle(ra).Deg()
	if raDeg < 0 {
		raDeg += 360
	}
	return EquatorialPosition{
		RightAscension: raDeg,
		Declination:    dec.Deg(),
	}
}

// polarCondition determines which polar condition applies at the given
// latitude, given that the sun neither rises nor sets: if the sun is above
// the horizon at its highest, it never sets.
func polarCondition(latitude float64, date model.Date) model.PolarCondition {
	noonAltitude := 90 - math.Abs(latitude-Meeus(date).Declination)
	if noonAltitude > 0 {
		return model.PolarCondition{Kind: model.NeverSets}
	}
	return model.PolarCondition{Kind: model.NeverRises}
}

func sunTimesFromRiseSet(rise, set time.Time) model.SunTimes {
	noon := rise.Add(set.Sub(rise) / 2).UTC()
	return model.SunTimes{
		SolarNoon: noon,
		Nadir:     noon.Add(-12 * time.Hour),
		Sunrise:   rise.UTC(),
		Sunset:    set.UTC(),
	}
}

// validTime is false for zero times and for times suncalc derives from NaN
// values at polar latitudes.
func validTime(t time.Time) bool {
	return !t.IsZero() && t.Year() > 1 && t.Year() < 10000
}
