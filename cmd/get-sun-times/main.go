// get-sun-times prints today's UTC solar noon, nadir, sunrise and sunset for a
// latitude and longitude as a JSON object.
//
//	get-sun-times <latitude> <longitude>
package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/control/cli"
)

type options struct {
	Verbose bool `long:"verbose" description:"log debug output to stderr"`
}

// MAIN
func main() {
	var opts options

	// unknown flags are kept as arguments, which is what negative coordinates
	// such as '-0.13' look like
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
	args, err := parser.Parse()
	if err != nil {
		// only help can end up here, which is a usage error all the same
		args = nil
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	os.Exit(cli.GetSunTimes(os.Args[0], args, time.Now, os.Stdout))
}
