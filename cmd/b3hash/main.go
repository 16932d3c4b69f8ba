package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/shizhMSFT/b3hash/internal/output"
	"github.com/shizhMSFT/b3hash/internal/trace"
	"github.com/shizhMSFT/b3hash/internal/version"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

// errUsage marks invalid command line input.
var errUsage = errors.New("usage error")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newApp().RunContext(ctx, os.Args)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns 2 for invalid input and 1 for other failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage),
		errors.Is(err, output.ErrUnsupportedRequest),
		errors.Is(err, blake3hash.ErrInvalidOutputLength),
		errors.Is(err, blake3hash.ErrInvalidKeyLength):
		return 2
	default:
		return 1
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "b3hash",
		Usage:     "Compute BLAKE3 digests of any length, keyed or unkeyed",
		UsageText: "b3hash [options] [MESSAGE]\n   b3hash [global options] command [options] [arguments...]",
		Version:   version.GetVersion(),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "BLAKE3 implementation to use (zeebo, lukechampine)",
				Value:   blake3hash.DefaultPrimitive.Name(),
				EnvVars: []string{"B3HASH_BACKEND"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Log debug messages to stderr",
				EnvVars: []string{"B3HASH_DEBUG"},
			},
		}, hashFlags(true)...),
		Before: func(c *cli.Context) error {
			level := logrus.WarnLevel
			if c.Bool("debug") {
				level = logrus.DebugLevel
			}
			c.Context, _ = trace.NewLogger(c.Context, c.App.ErrWriter, level)
			return nil
		},
		Commands: []*cli.Command{
			hashCommand(),
			infoCommand(),
			checkCommand(),
			statCommand(),
		},
		Action:          runHash,
		OnUsageError:    usageError,
		HideHelpCommand: true,
		// errors are reported by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// usageError marks flag parsing failures as invalid input.
func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", err, errUsage)
}

func processor(c *cli.Context) (*blake3hash.Processor, error) {
	p, err := blake3hash.PrimitiveByName(c.String("backend"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, errUsage)
	}
	return blake3hash.NewProcessor(p), nil
}
