package main

import (
	"context"
	"errors"
	"os"

	"trianglefree/cmd/check"
	"trianglefree/cmd/combinations"
	"trianglefree/cmd/shared"
	"trianglefree/cmd/version"
	"trianglefree/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	stop := shared.SetupSignalHandling(cancel)

	code := run(ctx, os.Args)

	stop()
	cancel()
	os.Exit(code)
}

// run executes the CLI and returns the exit status: 0 if triangle-free,
// 1 if a witness was found, 2 on any other error.
func run(ctx context.Context, args []string) int {
	app := &cli.Command{
		Name:  "trianglefree",
		Usage: "check whether no 3 integers of a set sum to a multiple of n",
		Commands: []*cli.Command{
			check.GetCommand(),
			combinations.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, check.ErrNotTriangleFree) {
			return 1
		}
		log.ErrorMsg("%s\n", err)
		return 2
	}

	return 0
}
