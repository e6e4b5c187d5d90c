// Package check provides the check command, which decides whether a set of
// integers is triangle-free modulo n.
package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trianglefree/cmd/shared"
	"trianglefree/pkg/config"
	"trianglefree/pkg/format"
	"trianglefree/pkg/log"
	"trianglefree/pkg/triangle"

	"github.com/urfave/cli/v3"
)

// ErrNotTriangleFree is returned when a witness triple was found. main maps it
// to exit status 1 without printing an error.
var ErrNotTriangleFree = errors.New("set is not triangle-free")

// GetCommand returns the CLI command for checking a set.
func GetCommand() *cli.Command {
	return NewCommand(nil)
}

// NewCommand returns the command with injected stdin and stdout.
func NewCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "check",
		Usage:       "Check whether no 3 elements sum to a multiple of n",
		ArgsUsage:   shared.GetArgsUsage(),
		Description: shared.GetBaseDescription(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			elems, err := shared.CommandElements(cmd)
			if err != nil {
				return err
			}

			cfg := &config.Check{
				Modulus:          int(cmd.Int(shared.ModulusFlag)),
				Elements:         elems,
				Deduplicate:      cmd.Bool(shared.DedupFlag),
				Strict:           cmd.Bool(shared.StrictFlag),
				ListCombinations: cmd.Bool(shared.AllFlag),
				Timeout:          time.Duration(cmd.Int(shared.TimeoutFlag)) * time.Millisecond,
				Verbose:          cmd.Bool(shared.VerboseFlag),
			}
			logger := log.NewLogger(cfg.Verbose)

			if path := cmd.String(shared.ConfigFlag); path != "" {
				f, err := config.LoadFile(path)
				if err != nil {
					return err
				}
				logger.Verbose("Loaded config from %s\n", path)
				cfg.Merge(f, config.Explicit{
					Modulus:     cmd.IsSet(shared.ModulusFlag),
					Elements:    len(elems) > 0,
					Deduplicate: cmd.IsSet(shared.DedupFlag),
					Strict:      cmd.IsSet(shared.StrictFlag),
				})
			}

			if len(cfg.Elements) == 0 {
				cfg.Elements, err = shared.ReadStdin(ctx, deps, logger)
				if err != nil {
					return err
				}
			}

			if errs := config.Validate(cfg); len(errs) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errs {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("invalid arguments: %w", errors.Join(errs...))
			}

			return run(ctx, cfg, deps, logger)
		},
		Flags: getFlags(),
	}
}

func run(ctx context.Context, cfg *config.Check, deps *config.Dependencies, logger *log.Logger) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var opts []triangle.Option
	if cfg.Deduplicate {
		opts = append(opts, triangle.WithDeduplicate())
	}

	logger.Verbose("Checking %d elements mod %d\n", len(cfg.Elements), cfg.Modulus)
	start := time.Now()

	res, err := triangle.CheckContext(ctx, cfg.Elements, cfg.Modulus, opts...)
	if err != nil {
		return fmt.Errorf("checking: %w", err)
	}
	logger.Verbose("Tested %d of %d combinations in %s\n", res.Tested, triangle.Count(len(res.Elements())), time.Since(start))

	out := config.GetStdoutFunc(deps)()
	if err := format.Result(out, res, cfg.Modulus); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if cfg.ListCombinations {
		if err := format.Combinations(out, res.All(), cfg.Modulus); err != nil {
			return fmt.Errorf("writing combinations: %w", err)
		}
	}

	if !res.TriangleFree {
		return ErrNotTriangleFree
	}
	log.SuccessMsg("No 3 elements sum to a multiple of %d\n", cfg.Modulus)

	return nil
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)
	flags = append(flags, shared.GetCheckFlags()...)

	return flags
}
