// Command create-webflow scaffolds a Webflow script project.
package main

import (
	"os"

	"github.com/kobonostudio/create-webflow/internal/cli"
	"github.com/kobonostudio/create-webflow/internal/tui"
)

func main() {
	if err := cli.Execute(); err != nil {
		tui.Fail(os.Stderr, "%s", cli.UserMessage(err))
		os.Exit(1)
	}
}
