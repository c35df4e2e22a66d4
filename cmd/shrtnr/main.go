package main

import (
	"os"

	"shrtnr/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
