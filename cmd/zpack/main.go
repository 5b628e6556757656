package main

import (
	"os"

	"zpack/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
