package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/control"
	"github.com/ja-he/suntimes/internal/model"
	"github.com/ja-he/suntimes/internal/solar"
)

// LocationOpts are the flags shared by the commands which compute sun times
// for a location on a date.
type LocationOpts struct {
	Latitude  string `long:"lat" description:"the latitude in degrees (negative values as --lat=-33.9)" value-name:"<degrees>"`
	Longitude string `long:"lng" description:"the longitude in degrees (negative values as --lng=-0.13)" value-name:"<degrees>"`
	Location  string `short:"l" long:"location" description:"a named location from the config file, instead of --lat and --lng" value-name:"<name>"`
	Date      string `short:"d" long:"date" description:"the UTC date; defaults to the current UTC date" value-name:"<yyyy-mm-dd>"`
}

// query is a resolved location and date.
type query struct {
	latitude, longitude float64
	date                model.Date
}

// resolve determines the coordinates and date the options describe.
func (o LocationOpts) resolve(envData *control.EnvData, clock solar.Clock) (query, error) {
	var q query

	switch {
	case o.Location != "" && (o.Latitude != "" || o.Longitude != ""):
		return q, fmt.Errorf("either a named location or coordinates can be given, not both")
	case o.Location != "":
		location, ok := envData.Config.Lookup(o.Location)
		if !ok {
			return q, fmt.Errorf("location '%s' not found in config", o.Location)
		}
		q.latitude, q.longitude = location.Latitude, location.Longitude
	case o.Latitude != "" && o.Longitude != "":
		var err error
		q.latitude, err = parseDegrees(o.Latitude)
		if err != nil {
			return q, fmt.Errorf("invalid latitude (%w)", err)
		}
		q.longitude, err = parseDegrees(o.Longitude)
		if err != nil {
			return q, fmt.Errorf("invalid longitude (%w)", err)
		}
	default:
		return q, fmt.Errorf("need either both --lat and --lng, or --location")
	}

	if err := envData.Config.Coordinates.CheckCoordinates(q.latitude, q.longitude); err != nil {
		return q, err
	}

	if o.Date != "" {
		date, err := model.FromString(o.Date)
		if err != nil {
			return q, err
		}
		q.date = date
	} else {
		if clock == nil {
			clock = time.Now
		}
		q.date = model.FromTime(clock())
	}

	log.Debug().
		Float64("lat", q.latitude).
		Float64("lng", q.longitude).
		Str("date", q.date.ToString()).
		Msg("resolved query")

	return q, nil
}

func parseDegrees(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// setupLogging directs the global logger to stderr or the file given in the
// options.
// The returned function closes the log file, if any.
func setupLogging(opts *CommandLineOpts) (func(), error) {
	var logWriter io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	cleanup := func() {}

	if opts.LogOutputFile != "" {
		file, err := os.OpenFile(opts.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("could not open file '%s' for logging (%w)", opts.LogOutputFile, err)
		}
		cleanup = func() { file.Close() }
		if opts.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			logWriter = file
		}
	}

	log.Logger = zerolog.New(logWriter).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(verbosity(opts, zerolog.WarnLevel))
	return cleanup, nil
}

func verbosity(opts *CommandLineOpts, configured zerolog.Level) zerolog.Level {
	if opts.Verbose {
		return zerolog.DebugLevel
	}
	return configured
}

// setup prepares logging and loads the environment data for a command.
func setup() (*control.EnvData, func(), error) {
	cleanup, err := setupLogging(&Opts)
	if err != nil {
		return nil, nil, err
	}

	envData, err := control.LoadEnvData()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	level, err := envData.Config.Level()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	zerolog.SetGlobalLevel(verbosity(&Opts, level))

	return envData, cleanup, nil
}
