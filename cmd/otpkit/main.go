// Command otpkit generates HOTP and TOTP codes from flags or from an
// optionally encrypted keyring file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	var app *cli.App = &cli.App{
		Name:  "otpkit",
		Usage: "generate HOTP and TOTP one-time passwords",
		Commands: []*cli.Command{
			totpCommand(),
			hotpCommand(),
			uriCommand(),
			parseURICommand(),
			listCommand(),
			addCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
