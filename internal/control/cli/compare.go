package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ja-he/suntimes/internal/control"
	"github.com/ja-he/suntimes/internal/model"
	"github.com/ja-he/suntimes/internal/reference"
	"github.com/ja-he/suntimes/internal/solar"
)

// CompareCommand contains flags for the `compare` command line command, for
// `go-flags` to parse command line args into.
type CompareCommand struct {
	LocationOpts

	Timeout   time.Duration `long:"timeout" description:"how long to wait for the reference providers" value-name:"<duration>" default:"10s"`
	Tolerance time.Duration `long:"tolerance" description:"the deviation above which a reference is reported as disagreeing" value-name:"<duration>" default:"5m"`

	out       io.Writer
	clock     solar.Clock
	envData   *control.EnvData
	providers []reference.Provider
}

// Execute executes the compare command.
// (This gets called by `go-flags` when `compare` is provided on the command
// line)
func (command *CompareCommand) Execute(args []string) error {
	envData, cleanup, err := envOrSetup(command.envData)
	if err != nil {
		return err
	}
	defer cleanup()

	q, err := command.resolve(envData, command.clock)
	if err != nil {
		return err
	}

	providers := command.providers
	if providers == nil {
		providers = reference.Providers()
	}

	ctx := context.Background()
	if command.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, command.Timeout)
		defer cancel()
	}

	comparison, err := reference.Compare(ctx, providers, q.latitude, q.longitude, q.date)
	if err != nil {
		return err
	}

	out := outputOrStdout(command.out)
	fmt.Fprintf(out, "sun times at (%.4f, %.4f) on %s\n", q.latitude, q.longitude, q.date.ToString())
	fmt.Fprintf(out, "% 12s: %s\n", "calculated", describe(comparison.Calculated))
	for _, e := range comparison.Entries {
		fmt.Fprintf(out, "% 12s: %s\n", e.Provider, describe(e.Result))
		switch {
		case !e.Agrees:
			fmt.Fprintf(out, "% 12s  DISAGREES\n", "")
		case e.Deviation != nil:
			verdict := "ok"
			if e.Deviation.Max() > command.Tolerance {
				verdict = "OUT OF TOLERANCE"
			}
			fmt.Fprintf(out, "% 12s  deviation: noon %s, rise %s, set %s (%s)\n", "",
				e.Deviation.SolarNoon, e.Deviation.Sunrise, e.Deviation.Sunset, verdict)
		}
	}

	g, p := comparison.Geometry, comparison.Position
	fmt.Fprintf(out, "declination:     %.4f° (meeus %.4f°, Δ %.4f°)\n", g.Declination, p.Declination, g.Declination-p.Declination)
	raDiff := math.Mod(g.RightAscension-p.RightAscension+540, 360) - 180
	fmt.Fprintf(out, "right ascension: %.4f° (meeus %.4f°, Δ %.4f°)\n", g.RightAscension, p.RightAscension, raDiff)

	return nil
}

func describe(result model.SunTimesResult) string {
	switch r := result.(type) {
	case model.SunTimes:
		return fmt.Sprintf("rise %s, noon %s, set %s, nadir %s",
			r.Sunrise.Format("2006-01-02 15:04"),
			r.SolarNoon.Format("2006-01-02 15:04"),
			r.Sunset.Format("2006-01-02 15:04"),
			r.Nadir.Format("2006-01-02 15:04"),
		)
	case model.PolarCondition:
		return r.String()
	default:
		return fmt.Sprintf("unknown result %T", r)
	}
}
