package main

import (
	"os"

	"github.com/TheusHen/primkit/primkit/cli"
)

func main() {
	os.Exit(cli.Execute())
}
