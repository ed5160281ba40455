package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/control"
	"github.com/ja-he/suntimes/internal/model"
	"github.com/ja-he/suntimes/internal/solar"
)

// GetCommand contains flags for the `get` command line command, for
// `go-flags` to parse command line args into.
type GetCommand struct {
	LocationOpts

	HumanReadable bool `long:"human-readable" description:"print a table instead of JSON"`

	out     io.Writer
	clock   solar.Clock
	envData *control.EnvData
}

// Execute executes the get command.
// (This gets called by `go-flags` when `get` is provided on the command line)
func (command *GetCommand) Execute(args []string) error {
	envData, cleanup, err := envOrSetup(command.envData)
	if err != nil {
		return err
	}
	defer cleanup()

	q, err := command.resolve(envData, command.clock)
	if err != nil {
		return err
	}

	calculator := solar.Calculator{Latitude: q.latitude, Longitude: q.longitude}
	result, err := calculator.Get(q.date)
	if err != nil {
		return err
	}

	humanReadable := command.HumanReadable
	if prefs := envData.Config.Output.HumanReadable; prefs != nil && *prefs {
		humanReadable = true
	}

	out := outputOrStdout(command.out)
	if humanReadable {
		return printHumanReadable(out, q, result)
	}
	data, err := model.MarshalResult(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func envOrSetup(envData *control.EnvData) (*control.EnvData, func(), error) {
	if envData != nil {
		return envData, func() {}, nil
	}
	return setup()
}

func outputOrStdout(out io.Writer) io.Writer {
	if out != nil {
		return out
	}
	return os.Stdout
}

func printHumanReadable(out io.Writer, q query, result model.SunTimesResult) error {
	fmt.Fprintf(out, "sun times at (%.4f, %.4f) on %s:\n", q.latitude, q.longitude, q.date.ToString())

	switch r := result.(type) {
	case model.SunTimes:
		for _, entry := range []struct {
			name string
			at   model.Date
			hhmm string
		}{
			{"nadir", model.FromTime(r.Nadir), r.Nadir.Format("15:04")},
			{"sunrise", model.FromTime(r.Sunrise), r.Sunrise.Format("15:04")},
			{"solar noon", model.FromTime(r.SolarNoon), r.SolarNoon.Format("15:04")},
			{"sunset", model.FromTime(r.Sunset), r.Sunset.Format("15:04")},
		} {
			fmt.Fprintf(out, "  % 12s: %s %s UTC\n", entry.name, entry.at.ToString(), entry.hhmm)
		}
	case model.PolarCondition:
		switch r.Kind {
		case model.NeverRises:
			fmt.Fprintln(out, "  the sun never rises (polar night)")
		case model.NeverSets:
			fmt.Fprintln(out, "  the sun never sets (polar day)")
		}
	}
	return nil
}

// errorReport is the JSON object reported on invalid invocations.
type errorReport struct {
	Error string `json:"error"`
}

// GetSunTimes runs the `<program> <latitude> <longitude>` invocation and
// returns the exit code.
//
// Exactly one JSON object is written to stdout: the result, or an object with
// an error message if the arguments are invalid.
func GetSunTimes(program string, args []string, clock solar.Clock, stdout io.Writer) int {
	if len(args) != 2 {
		log.Debug().Strs("args", args).Msg("wrong number of arguments")
		return reportError(stdout, fmt.Sprintf("Usage: %s <latitude> <longitude>", filepath.Base(program)))
	}

	lat, errLat := parseDegrees(args[0])
	lng, errLng := parseDegrees(args[1])
	if errLat != nil || errLng != nil {
		log.Debug().Err(errors.Join(errLat, errLng)).Strs("args", args).Msg("non-numeric arguments")
		return reportError(stdout, "Invalid arguments. Must be numbers.")
	}

	date := model.FromTime(clock())
	result, err := solar.Compute(lat, lng, date)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("could not compute sun times")
		return reportError(stdout, err.Error())
	}
	log.Debug().
		Float64("lat", lat).
		Float64("lng", lng).
		Str("date", date.ToString()).
		Str("result", fmt.Sprintf("%+v", result)).
		Msg("computed sun times")

	data, err := model.MarshalResult(result)
	if err != nil {
		return reportError(stdout, err.Error())
	}
	fmt.Fprintln(stdout, string(data))
	return 0
}

// reportError writes the error object without HTML escaping, so the usage
// message keeps its literal '<' and '>'.
func reportError(stdout io.Writer, message string) int {
	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(errorReport{Error: message}); err != nil {
		log.Error().Err(err).Str("message", message).Msg("could not write error report")
	}
	return 1
}
