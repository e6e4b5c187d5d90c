package shared

import (
	"context"
	"errors"
	"fmt"

	"trianglefree/pkg/config"
	"trianglefree/pkg/log"
	"trianglefree/pkg/pipeio"
	"trianglefree/pkg/terminal"

	"github.com/urfave/cli/v3"
)

// ErrNoElements is returned when no elements were given and stdin is a terminal.
var ErrNoElements = errors.New("no elements given: pass them as arguments, in --config, or on stdin")

// CommandElements collects the elements given with --elements followed by the
// command's positional arguments.
func CommandElements(cmd *cli.Command) ([]int, error) {
	args := append([]string{}, cmd.StringSlice(ElementsFlag)...)
	args = append(args, cmd.Args().Slice()...)
	return ParseArgs(args)
}

// ParseArgs parses the positional arguments of a command into elements.
func ParseArgs(args []string) ([]int, error) {
	elems, err := pipeio.ParseElements(args)
	if err != nil {
		return nil, fmt.Errorf("parsing arguments: %w", err)
	}

	return elems, nil
}

// ReadStdin reads elements from the injected stdin. It refuses to block on an
// interactive terminal.
func ReadStdin(ctx context.Context, deps *config.Dependencies, logger *log.Logger) ([]int, error) {
	stdin := config.GetStdinFunc(deps)()
	if terminal.IsInteractive(stdin) {
		return nil, ErrNoElements
	}

	log.InfoMsg("Reading elements from stdin\n")
	elems, err := pipeio.ReadElements(ctx, stdin)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	logger.Verbose("Read %d elements from stdin\n", len(elems))

	return elems, nil
}
