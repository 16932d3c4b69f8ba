package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/shizhMSFT/b3hash/internal/registry"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Check whether a registry has a blob with the BLAKE3 digest of a message",
		ArgsUsage: "[MESSAGE]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "registry",
				Aliases:  []string{"r"},
				Usage:    "Registry name",
				Required: true,
				EnvVars:  []string{"B3HASH_REGISTRY"},
			},
			&cli.StringFlag{
				Name:     "repository",
				Usage:    "Repository in the registry",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Username for authentication",
				EnvVars: []string{"B3HASH_USERNAME"},
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Password for authentication",
				EnvVars: []string{"B3HASH_PASSWORD"},
			},
			&cli.StringFlag{
				Name:    "identity-token",
				Aliases: []string{"t", "token"},
				Usage:   "Identity token for authentication",
				EnvVars: []string{"B3HASH_IDENTITY_TOKEN"},
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use plain HTTP instead of HTTPS",
			},
		}, messageFlags()...),
		Action: func(c *cli.Context) error {
			p, err := processor(c)
			if err != nil {
				return err
			}
			message, err := readMessage(c)
			if err != nil {
				return err
			}
			opts := registry.Options{
				Registry:      c.String("registry"),
				Repository:    c.String("repository"),
				Username:      c.String("username"),
				Password:      c.String("password"),
				IdentityToken: c.String("identity-token"),
				PlainHTTP:     c.Bool("plain-http"),
			}
			res, err := registry.Stat(c.Context, opts, p, message)
			if err != nil {
				return err
			}
			status := "not found"
			if res.Exists {
				status = "found"
			}
			_, err = fmt.Fprintf(c.App.Writer, "%s\t%s\n", res.Descriptor.Digest, status)
			return err
		},
		OnUsageError: usageError,
	}
}
