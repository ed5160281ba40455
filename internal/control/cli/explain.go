package cli

import (
	"fmt"
	"io"

	"github.com/ja-he/suntimes/internal/control"
	"github.com/ja-he/suntimes/internal/solar"
)

// ExplainCommand contains flags for the `explain` command line command, for
// `go-flags` to parse command line args into.
type ExplainCommand struct {
	LocationOpts

	out     io.Writer
	clock   solar.Clock
	envData *control.EnvData
}

// Execute executes the explain command.
// (This gets called by `go-flags` when `explain` is provided on the command
// line)
func (command *ExplainCommand) Execute(args []string) error {
	envData, cleanup, err := envOrSetup(command.envData)
	if err != nil {
		return err
	}
	defer cleanup()

	q, err := command.resolve(envData, command.clock)
	if err != nil {
		return err
	}

	d := solar.Explain(q.latitude, q.longitude, q.date)
	g := d.Geometry
	out := outputOrStdout(command.out)

	fmt.Fprintf(out, "location:            (%f, %f)\n", q.latitude, q.longitude)
	fmt.Fprintf(out, "date:                %s (day %d of year)\n", d.Date.ToString(), d.Date.DayOfYear())
	fmt.Fprintf(out, "julian day number:   %d\n", d.JulianDay)
	fmt.Fprintf(out, "julian century:      %.10f\n", g.JulianCentury)
	fmt.Fprintf(out, "mean longitude:      %.6f°\n", g.MeanLongitude)
	fmt.Fprintf(out, "mean anomaly:        %.6f°\n", g.MeanAnomaly)
	fmt.Fprintf(out, "eccentricity:        %.9f\n", g.Eccentricity)
	fmt.Fprintf(out, "equation of center:  %.6f°\n", g.EquationOfCenter)
	fmt.Fprintf(out, "true longitude:      %.6f°\n", g.TrueLongitude)
	fmt.Fprintf(out, "apparent longitude:  %.6f°\n", g.ApparentLongitude)
	fmt.Fprintf(out, "obliquity:           %.6f°\n", g.Obliquity)
	fmt.Fprintf(out, "right ascension:     %.6f°\n", g.RightAscension)
	fmt.Fprintf(out, "declination:         %.6f°\n", g.Declination)
	fmt.Fprintf(out, "cos(hour angle):     %.6f\n", d.HourAngleCos)
	if polar, isPolar := d.Polar(); isPolar {
		fmt.Fprintf(out, "hour angle:          undefined (%s)\n", polar)
	} else {
		fmt.Fprintf(out, "hour angle:          %.6f°\n", d.HourAngle)
	}
	fmt.Fprintf(out, "equation of time:    %.4f min\n", d.EquationOfTime)
	fmt.Fprintf(out, "solar noon:          %.6f h\n", d.NoonHours)
	if _, isPolar := d.Polar(); !isPolar {
		fmt.Fprintf(out, "sunrise:             %.6f h\n", d.SunriseHours)
		fmt.Fprintf(out, "sunset:              %.6f h\n", d.SunsetHours)
	}

	return nil
}
