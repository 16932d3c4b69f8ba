package main

import (
	"fmt"
	"strings"

	"github.com/shizhMSFT/gha/pkg/markdown"
	"github.com/urfave/cli/v2"

	"github.com/shizhMSFT/b3hash/internal/cpu"
	"github.com/shizhMSFT/b3hash/internal/version"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show implementation details",
		Action: func(c *cli.Context) error {
			p, err := processor(c)
			if err != nil {
				return err
			}
			features := strings.Join(cpu.Features(), ", ")
			if features == "" {
				features = "none"
			}
			table := markdown.NewTable("Property", "Value")
			table.AddRow("BLAKE3 support", "enabled")
			table.AddRow("Version", version.GetVersion())
			table.AddRow("Backend", p.Primitive().Name())
			table.AddRow("Available backends", strings.Join(blake3hash.PrimitiveNames(), ", "))
			table.AddRow("Default output length", fmt.Sprintf("%d bytes", blake3hash.DefaultOutputLength))
			table.AddRow("Output length range", fmt.Sprintf("%d-%d bytes", blake3hash.MinOutputLength, blake3hash.MaxOutputLength))
			table.AddRow("Key size", fmt.Sprintf("%d bytes", blake3hash.KeySize))
			table.AddRow("CPU", cpu.Brand())
			table.AddRow("SIMD features", features)
			return table.Print(c.App.Writer)
		},
		OnUsageError: usageError,
	}
}
