package main

import (
	"fmt"
	"math"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/otpkit/otpkit"
	"github.com/otpkit/otpkit/keyring"
)

// secretFlags are shared by the totp and hotp commands.
func secretFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "secret",
			Aliases:  []string{"s"},
			Usage:    "base32 shared secret",
			EnvVars:  []string{"OTPKIT_SECRET"},
			Required: true,
		},
		&cli.StringFlag{
			Name:  "algo",
			Usage: "hash algorithm: SHA1, SHA256, or SHA512",
			Value: "SHA1",
		},
		&cli.IntFlag{
			Name:  "digits",
			Usage: "code length",
			Value: 6,
		},
	}
}

func totpCommand() *cli.Command {
	return &cli.Command{
		Name:  "totp",
		Usage: "generate a time-based code",
		Flags: append(secretFlags(),
			&cli.Float64Flag{
				Name:  "period",
				Usage: "refresh period in seconds",
				Value: 30,
			},
			&cli.Int64Flag{
				Name:  "at",
				Usage: "unix timestamp to generate for; defaults to now",
			},
		),
		Action: func(ctx *cli.Context) error {
			var entry keyring.Entry = keyring.Entry{
				Name:   "totp",
				Type:   keyring.TypeTOTP,
				Secret: ctx.String("secret"),
				Algo:   ctx.String("algo"),
				Digits: ctx.Int("digits"),
				Period: ctx.Float64("period"),
			}

			var at time.Time = time.Now()

			if ctx.IsSet("at") {
				at = time.Unix(ctx.Int64("at"), 0)
			}

			code, err := otpkit.Code(entry, at)
			if err != nil {
				return err
			}

			var left float64 = math.Ceil(otpkit.TTN(entry.Period, at).Seconds())

			fmt.Printf("%v (%.0fs left)\n", code, left)

			return nil
		},
	}
}

func hotpCommand() *cli.Command {
	return &cli.Command{
		Name:  "hotp",
		Usage: "generate a counter-based code",
		Flags: append(secretFlags(),
			&cli.Uint64Flag{
				Name:     "counter",
				Aliases:  []string{"c"},
				Usage:    "counter value",
				Required: true,
			},
		),
		Action: func(ctx *cli.Context) error {
			var entry keyring.Entry = keyring.Entry{
				Name:    "hotp",
				Type:    keyring.TypeHOTP,
				Secret:  ctx.String("secret"),
				Algo:    ctx.String("algo"),
				Digits:  ctx.Int("digits"),
				Counter: ctx.Uint64("counter"),
			}

			code, err := otpkit.Code(entry, time.Now())
			if err != nil {
				return err
			}

			fmt.Println(code)

			return nil
		},
	}
}
