package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/otpkit/otpkit/keyring"
	"github.com/otpkit/otpkit/keyuri"
)

func uriCommand() *cli.Command {
	return &cli.Command{
		Name:  "uri",
		Usage: "build an otpauth:// URI, optionally as a QR code",
		Flags: append(secretFlags(),
			&cli.StringFlag{
				Name:     "name",
				Usage:    "account name",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "issuer",
				Usage: "issuing organization",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "otp type: totp or hotp",
				Value: keyring.TypeTOTP,
			},
			&cli.Float64Flag{
				Name:  "period",
				Usage: "refresh period in seconds (totp)",
				Value: 30,
			},
			&cli.Uint64Flag{
				Name:  "counter",
				Usage: "counter value (hotp)",
			},
			&cli.StringFlag{
				Name:  "qr",
				Usage: "write a QR code PNG to `PATH` instead of printing",
			},
			&cli.IntFlag{
				Name:  "qr-size",
				Usage: "QR code size in pixels",
				Value: 256,
			},
		),
		Action: func(ctx *cli.Context) error {
			var entry keyring.Entry = keyring.Entry{
				Name:    ctx.String("name"),
				Issuer:  ctx.String("issuer"),
				Type:    ctx.String("type"),
				Secret:  ctx.String("secret"),
				Algo:    ctx.String("algo"),
				Digits:  ctx.Int("digits"),
				Period:  ctx.Float64("period"),
				Counter: ctx.Uint64("counter"),
			}

			var uri string = keyuri.Format(entry)

			if path := ctx.String("qr"); path != "" {
				img, err := keyuri.QR(uri, ctx.Int("qr-size"))
				if err != nil {
					return err
				}

				return os.WriteFile(path, img, 0o600)
			}

			fmt.Println(uri)

			return nil
		},
	}
}

func parseURICommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "decode an otpauth:// URI",
		ArgsUsage: "URI",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return fmt.Errorf("expected exactly one otpauth:// URI argument")
			}

			entry, err := keyuri.Parse(ctx.Args().First())
			if err != nil {
				return err
			}

			fmt.Printf("name:   %v\n", entry.Name)

			if entry.Issuer != "" {
				fmt.Printf("issuer: %v\n", entry.Issuer)
			}

			fmt.Printf("type:   %v\n", entry.Type)
			fmt.Printf("algo:   %v\n", entry.Algo)
			fmt.Printf("digits: %v\n", entry.Digits)

			switch entry.Type {
			case keyring.TypeTOTP:
				fmt.Printf("period: %v\n", entry.Period)
			case keyring.TypeHOTP:
				fmt.Printf("counter: %v\n", entry.Counter)
			}

			return nil
		},
	}
}
