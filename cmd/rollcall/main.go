package main

import (
	"os"

	"rollcall/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
