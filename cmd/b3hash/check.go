package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/shizhMSFT/b3hash/internal/selftest"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check the binding against every backend and write a markdown report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file for the report",
			},
		},
		Action: func(c *cli.Context) error {
			reference, err := blake3hash.PrimitiveByName(c.String("backend"))
			if err != nil {
				return fmt.Errorf("%w: %w", err, errUsage)
			}
			out := c.App.Writer
			if outPath := c.String("output"); outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				out = file
			}
			suite := &selftest.TestSuite{
				Context:   c.Context,
				Reference: reference,
			}
			return suite.Run(out)
		},
		OnUsageError: usageError,
	}
}
