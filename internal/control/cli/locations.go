package cli

import (
	"fmt"
	"io"

	"github.com/ja-he/suntimes/internal/control"
)

// LocationsCommand contains flags for the `locations` command line command,
// for `go-flags` to parse command line args into.
type LocationsCommand struct {
	out     io.Writer
	envData *control.EnvData
}

// Execute executes the locations command.
func (command *LocationsCommand) Execute(args []string) error {
	envData, cleanup, err := envOrSetup(command.envData)
	if err != nil {
		return err
	}
	defer cleanup()

	out := outputOrStdout(command.out)
	if len(envData.Config.Locations) == 0 {
		fmt.Fprintf(out, "no locations configured in '%s/config.yaml'\n", envData.BaseDirPath)
		return nil
	}
	for _, l := range envData.Config.Locations {
		fmt.Fprintf(out, "% 20s: (%.4f, %.4f)\n", l.Name, l.Latitude, l.Longitude)
	}
	return nil
}
