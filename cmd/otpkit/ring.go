package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/otpkit/otpkit"
	"github.com/otpkit/otpkit/keyring"
	"github.com/otpkit/otpkit/keyuri"
)

func ringFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "keyring file path",
			EnvVars:  []string{"OTPKIT_KEYRING"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "keyring password; prompted for encrypted keyrings when unset",
			EnvVars: []string{"OTPKIT_PASSWORD"},
		},
	}
}

// openRing loads the keyring file, prompting for a password when the
// file is encrypted and none was supplied.
func openRing(ctx *cli.Context) (*keyring.Keyring, string, error) {
	var path string = ctx.String("file")
	var pwd string = ctx.String("password")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	if keyring.Encrypted(data) && pwd == "" {
		pwd, err = promptPassword()
		if err != nil {
			return nil, "", err
		}
	}

	ring, err := keyring.Decode(data, pwd)

	return ring, pwd, err
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")

	pwd, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stderr)

	return string(pwd), err
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "print a code for every keyring entry",
		Flags: ringFlags(),
		Action: func(ctx *cli.Context) error {
			ring, _, err := openRing(ctx)
			if err != nil {
				return err
			}

			var now time.Time = time.Now()

			for _, entry := range ring.Entries {
				code, codeErr := otpkit.Code(entry, now)
				if codeErr != nil {
					err = codeErr

					fmt.Printf("%-24v <error: %v>\n", entry.Name, codeErr)
					continue
				}

				if entry.Type == keyring.TypeTOTP {
					var left float64 = math.Ceil(otpkit.TTN(entry.Period, now).Seconds())

					fmt.Printf("%-24v %v (%.0fs left)\n", entry.Name, code, left)
				} else {
					fmt.Printf("%-24v %v (counter %v)\n", entry.Name, code, entry.Counter)
				}
			}

			return err
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add an entry from an otpauth:// URI to the keyring",
		ArgsUsage: "URI",
		Flags:     ringFlags(),
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return fmt.Errorf("expected exactly one otpauth:// URI argument")
			}

			entry, err := keyuri.Parse(ctx.Args().First())
			if err != nil {
				return err
			}

			var path string = ctx.String("file")
			var pwd string = ctx.String("password")

			var ring *keyring.Keyring

			if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
				// Start a fresh keyring when the file doesn't exist yet
				ring = keyring.New()
			} else {
				ring, pwd, err = openRing(ctx)
				if err != nil {
					return err
				}
			}

			if err := ring.Add(entry); err != nil {
				return err
			}

			if err := ring.WriteFile(path, pwd); err != nil {
				return err
			}

			fmt.Printf("added %q\n", entry.Name)

			return nil
		},
	}
}
