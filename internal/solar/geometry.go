package solar

import (
	"math"

	"github.com/ja-he/suntimes/internal/model"
)

const (
	rad = math.Pi / 180
	deg = 180 / math.Pi

	// J2000 is the Julian Day of the J2000.0 epoch.
	J2000 = 2451545.0
	// DaysPerJulianCentury is the number of days in a Julian century.
	DaysPerJulianCentury = 36525
)

// Geometry holds the approximate position of the sun for a Julian century.
// All angles are in degrees.
type Geometry struct {
	JulianCentury     float64
	MeanLongitude     float64 // L, in [0,360)
	MeanAnomaly       float64 // g, not range reduced
	Eccentricity      float64 // of earth's orbit, unitless
	EquationOfCenter  float64 // C
	TrueLongitude     float64 // θ
	ApparentLongitude float64 // λ
	Obliquity         float64 // ε, of the ecliptic
	RightAscension    float64 // α, in [0,360)
	Declination       float64 // δ
}

// JulianCentury returns the Julian centuries elapsed since J2000.0 at the
// Julian Day Number of the given date.
func JulianCentury(date model.Date) float64 {
	return (float64(date.JulianDayNumber()) - J2000) / DaysPerJulianCentury
}

// GeometryAt computes the solar geometry for the given Julian century.
func GeometryAt(jc float64) Geometry {
	g := Geometry{JulianCentury: jc}

	g.MeanLongitude = math.Mod(280.46646+jc*(36000.76983+jc*0.0003032), 360)
	if g.MeanLongitude < 0 {
		g.MeanLongitude += 360
	}

	g.MeanAnomaly = 357.52911 + jc*(35999.05029-0.0001537*jc)
	g.Eccentricity = 0.016708634 - jc*(0.000042037+0.0000001267*jc)

	g.EquationOfCenter = math.Sin(rad*g.MeanAnomaly)*(1.914602-jc*(0.004817+0.000014*jc)) +
		math.Sin(rad*2*g.MeanAnomaly)*(0.019993-0.000101*jc) +
		math.Sin(rad*3*g.MeanAnomaly)*0.000289

	g.TrueLongitude = g.MeanLongitude + g.EquationOfCenter

	omega := 125.04 - 1934.136*jc
	g.ApparentLongitude = g.TrueLongitude - 0.00569 - 0.00478*math.Sin(rad*omega)

	obliquity0 := 23 + (26+21.448/60)/60
	g.Obliquity = obliquity0 - jc*(46.815/3600-jc*(0.00059/3600+jc*0.001813/3600))

	g.RightAscension = math.Atan2(
		math.Cos(rad*g.Obliquity)*math.Sin(rad*g.ApparentLongitude),
		math.Cos(rad*g.ApparentLongitude),
	) * deg
	if g.RightAscension < 0 {
		g.RightAscension += 360
	}

	g.Declination = math.Asin(math.Sin(rad*g.Obliquity)*math.Sin(rad*g.ApparentLongitude)) * deg

	return g
}

// Zenith is the zenith angle of the sun at sunrise and sunset (90°50'),
// accounting for atmospheric refraction and the sun's apparent radius.
const Zenith = 90 + 50.0/60

// HourAngleCosine returns the cosine of the sunrise hour angle for a sun at
// the given declination (degrees) seen from the given latitude (degrees).
//
// A value above 1 means the sun never rises, a value below -1 means it never
// sets.
func HourAngleCosine(latitude, declination float64) float64 {
	return (math.Cos(rad*Zenith) - math.Sin(rad*latitude)*math.Sin(rad*declination)) /
		(math.Cos(rad*latitude) * math.Cos(rad*declination))
}

// EquationOfTime returns the simplified equation of time, in minutes, for the
// ordinal day of the year.
func EquationOfTime(dayOfYear int) float64 {
	b := rad * (360 * float64(dayOfYear-81) / 365)
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// SolarNoonHours returns the UTC hour of solar noon, in [0,24), for the given
// equation of time (minutes) and longitude (degrees).
func SolarNoonHours(eot, longitude float64) float64 {
	noon := math.Mod(12-eot/60-longitude/15, 24)
	if noon < 0 {
		noon += 24
	}
	if noon >= 24 {
		noon -= 24
	}
	return noon
}
