package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/shizhMSFT/b3hash/internal/output"
	"github.com/shizhMSFT/b3hash/internal/trace"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

func messageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "hex-input",
			Usage: "Decode MESSAGE from hexadecimal",
		},
	}
}

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Hash a message (default command)",
		ArgsUsage: "[MESSAGE]",
		Description: "Hashes MESSAGE, or standard input when MESSAGE is absent or \"-\".\n" +
			"An empty key selects unkeyed mode.",
		Flags:        hashFlags(false),
		Action:       runHash,
		OnUsageError: usageError,
	}
}

// hashFlags returns the hash options. They are defined on the app and again on
// the hash command; environment variables only feed the app level so that a
// command level flag is set only when given on the command line.
func hashFlags(env bool) []cli.Flag {
	envVars := func(name string) []string {
		if !env {
			return nil
		}
		return []string{name}
	}
	return append([]cli.Flag{
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"l"},
			Usage:   fmt.Sprintf("Output length in bytes (%d-%d)", blake3hash.MinOutputLength, blake3hash.MaxOutputLength),
			Value:   blake3hash.DefaultOutputLength,
			EnvVars: envVars("B3HASH_LENGTH"),
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   fmt.Sprintf("Key of exactly %d bytes for keyed mode", blake3hash.KeySize),
			EnvVars: envVars("B3HASH_KEY"),
		},
		&cli.StringFlag{
			Name:    "key-hex",
			Usage:   "Key for keyed mode, hex encoded",
			EnvVars: envVars("B3HASH_KEY_HEX"),
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "Write raw digest bytes, same as --format raw",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (hex, raw, digest, multihash, descriptor)",
			Value:   string(output.Hex),
			EnvVars: envVars("B3HASH_FORMAT"),
		},
	}, messageFlags()...)
}

func runHash(c *cli.Context) error {
	p, err := processor(c)
	if err != nil {
		return err
	}
	format, err := output.Parse(lookup(c, "format").String("format"))
	if err != nil {
		return fmt.Errorf("%w: %w", err, errUsage)
	}
	if lookup(c, "raw").Bool("raw") {
		if ctx := lookup(c, "format"); ctx.IsSet("format") && format != output.Raw {
			return fmt.Errorf("--raw conflicts with --format %s: %w", format, errUsage)
		}
		format = output.Raw
	}
	message, err := readMessage(c)
	if err != nil {
		return err
	}
	key, err := readKey(c)
	if err != nil {
		return err
	}

	req := blake3hash.NewRequest(message,
		blake3hash.WithOutputLength(lookup(c, "length").Int("length")),
		blake3hash.WithKey(key),
	)
	trace.Logger(c.Context).WithFields(logrus.Fields{
		"backend": p.Primitive().Name(),
		"length":  req.OutputLength,
		"keyed":   req.Keyed(),
		"format":  format,
		"size":    len(message),
	}).Debug("hashing message")
	return output.Write(c.App.Writer, format, p, req)
}

// readMessage returns the first argument, or all of standard input when the
// argument is absent or "-".
func readMessage(c *cli.Context) ([]byte, error) {
	if c.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one MESSAGE argument, got %d: %w", c.NArg(), errUsage)
	}
	var message []byte
	if arg := c.Args().First(); c.NArg() == 0 || arg == "-" {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		message = data
	} else {
		message = []byte(arg)
	}
	if !lookup(c, "hex-input").Bool("hex-input") {
		return message, nil
	}
	decoded, err := hex.DecodeString(string(message))
	if err != nil {
		return nil, fmt.Errorf("invalid hex message: %v: %w", err, errUsage)
	}
	return decoded, nil
}

func readKey(c *cli.Context) ([]byte, error) {
	key, keyHex := lookup(c, "key").String("key"), lookup(c, "key-hex").String("key-hex")
	switch {
	case key != "" && keyHex != "":
		return nil, fmt.Errorf("--key and --key-hex are mutually exclusive: %w", errUsage)
	case keyHex != "":
		decoded, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex key: %v: %w", err, errUsage)
		}
		return decoded, nil
	default:
		return []byte(key), nil
	}
}

// lookup returns the innermost context of c's lineage in which the flag name
// was set, or c when it was set nowhere. Hash options may be given before or
// after the command name, and the value closest to the command wins.
func lookup(c *cli.Context, name string) *cli.Context {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx
		}
	}
	return c
}
