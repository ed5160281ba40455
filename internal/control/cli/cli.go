// Package cli provides the command-line interfaces for suntimes.
package cli

// CommandLineOpts are the flags and commands of the `suntimes` command.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	LogOutputFile string `long:"log-output-file" description:"specify a log output file (otherwise logs go to stderr)" value-name:"<file>"`
	LogPretty     bool   `long:"log-pretty" description:"prettify logs to file"`
	Verbose       bool   `long:"verbose" description:"log debug output"`

	GetCommand       GetCommand       `command:"get" description:"print solar noon, nadir, sunrise and sunset"`
	ExplainCommand   ExplainCommand   `command:"explain" description:"print the intermediate values of the computation"`
	CompareCommand   CompareCommand   `command:"compare" description:"compare the computed times against reference libraries"`
	LocationsCommand LocationsCommand `command:"locations" description:"list the named locations from the config file"`
	VersionCommand   VersionCommand   `command:"version" description:"show the program version"`
}

// Opts are the parsed options of the `suntimes` command.
var Opts CommandLineOpts
