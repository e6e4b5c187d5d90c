// Package combinations provides the combinations command, which lists every
// 3-element combination of a set in enumeration order.
package combinations

import (
	"context"
	"fmt"

	"trianglefree/cmd/shared"
	"trianglefree/pkg/config"
	"trianglefree/pkg/format"
	"trianglefree/pkg/log"
	"trianglefree/pkg/triangle"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for listing combinations.
func GetCommand() *cli.Command {
	return NewCommand(nil)
}

// NewCommand returns the command with injected stdin and stdout.
func NewCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "combinations",
		Aliases:     []string{"combs"},
		Usage:       "List every 3-element combination in the order check tests them",
		ArgsUsage:   shared.GetArgsUsage(),
		Description: shared.GetBaseDescription(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := log.NewLogger(cmd.Bool(shared.VerboseFlag))

			elems, err := shared.CommandElements(cmd)
			if err != nil {
				return err
			}
			if len(elems) == 0 {
				elems, err = shared.ReadStdin(ctx, deps, logger)
				if err != nil {
					return err
				}
			}

			modulus := int(cmd.Int(shared.ModulusFlag))
			if modulus < 0 {
				return fmt.Errorf("'--modulus': %w, got %d", triangle.ErrInvalidModulus, modulus)
			}

			if cmd.Bool(shared.DedupFlag) {
				elems = triangle.Deduplicate(elems)
			}
			logger.Verbose("Listing %d combinations of %s\n", triangle.Count(len(elems)), format.Set(elems))

			out := config.GetStdoutFunc(deps)()
			if err := format.Combinations(out, triangle.Combinations(elems), modulus); err != nil {
				return fmt.Errorf("writing combinations: %w", err)
			}

			return nil
		},
		Flags: getFlags(),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)
	flags = append(flags, shared.GetCombinationsFlags()...)

	return flags
}
