package main

import (
	"os"

	"github.com/idilsaglam/shopping/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
