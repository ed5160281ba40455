// Package solar computes approximate sunrise, sunset, solar noon and nadir
// times from closed-form approximations of the sun's position.
package solar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ja-he/suntimes/internal/model"
)

// ErrUndefined is returned when the computation does not yield a finite
// time, e.g. for NaN or infinite coordinates.
var ErrUndefined = errors.New("sun times undefined")

// Details are the intermediate values of a sun times computation.
type Details struct {
	Date           model.Date
	JulianDay      int
	Geometry       Geometry
	HourAngleCos   float64
	HourAngle      float64 // degrees, NaN for a polar condition
	EquationOfTime float64 // minutes
	NoonHours      float64 // UTC hours in [0,24)
	SunriseHours   float64 // UTC hours relative to the date, may be outside [0,24)
	SunsetHours    float64 // UTC hours relative to the date, may be outside [0,24)
}

// Explain runs the computation for the given location and date and returns
// all intermediate values.
func Explain(latitude, longitude float64, date model.Date) Details {
	d := Details{
		Date:      date,
		JulianDay: date.JulianDayNumber(),
		HourAngle: math.NaN(),
	}
	d.Geometry = GeometryAt(JulianCentury(date))
	d.HourAngleCos = HourAngleCosine(latitude, d.Geometry.Declination)
	d.EquationOfTime = EquationOfTime(date.DayOfYear())
	d.NoonHours = SolarNoonHours(d.EquationOfTime, longitude)

	if d.HourAngleCos >= -1 && d.HourAngleCos <= 1 {
		d.HourAngle = math.Acos(d.HourAngleCos) * deg
	}
	d.SunriseHours = d.NoonHours - d.HourAngle/15
	d.SunsetHours = d.NoonHours + d.HourAngle/15

	return d
}

// Polar returns the polar condition the details describe, if any.
func (d Details) Polar() (model.PolarCondition, bool) {
	switch {
	case d.HourAngleCos > 1:
		return model.PolarCondition{Kind: model.NeverRises}, true
	case d.HourAngleCos < -1:
		return model.PolarCondition{Kind: model.NeverSets}, true
	default:
		return model.PolarCondition{}, false
	}
}

// Result converts the details into a sun times result.
func (d Details) Result() (model.SunTimesResult, error) {
	if polar, isPolar := d.Polar(); isPolar {
		return polar, nil
	}

	noon, err := HoursToTime(d.Date, d.NoonHours)
	if err != nil {
		return nil, fmt.Errorf("solar noon: %w", err)
	}
	sunrise, err := HoursToTime(d.Date, d.SunriseHours)
	if err != nil {
		return nil, fmt.Errorf("sunrise: %w", err)
	}
	sunset, err := HoursToTime(d.Date, d.SunsetHours)
	if err != nil {
		return nil, fmt.Errorf("sunset: %w", err)
	}

	return model.SunTimes{
		SolarNoon: noon,
		Nadir:     noon.Add(-12 * time.Hour),
		Sunrise:   sunrise,
		Sunset:    sunset,
	}, nil
}

// Compute returns the sun times at the given location (in degrees) on the
// given UTC date.
//
// Coordinates are not validated. Latitudes beyond the poles still yield a
// polar condition or sun times as the arithmetic dictates; only a non-finite
// outcome results in ErrUndefined.
func Compute(latitude, longitude float64, date model.Date) (model.SunTimesResult, error) {
	return Explain(latitude, longitude, date).Result()
}

// HoursToTime converts an hour value relative to midnight UTC of the given
// date into a time.
//
// Values in [-24,0) fall on the previous date, values in [24,48) on the next
// one. The result is truncated to the minute.
func HoursToTime(date model.Date, hours float64) (time.Time, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return time.Time{}, ErrUndefined
	}

	switch {
	case hours < 0:
		date = date.Prev()
		hours += 24
	case hours >= 24:
		date = date.Next()
		hours -= 24
	}
	if hours < 0 || hours >= 24 {
		return time.Time{}, fmt.Errorf("%w: hour value %f more than a day off", ErrUndefined, hours)
	}

	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return date.At(h, m), nil
}

// Calculator provides sun times for a fixed location.
type Calculator struct {
	Latitude  float64
	Longitude float64
}

// Get returns the sun times for the given date at the calculator's location.
func (c Calculator) Get(date model.Date) (model.SunTimesResult, error) {
	return Compute(c.Latitude, c.Longitude, date)
}

// Clock provides the current time.
type Clock func() time.Time
