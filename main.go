package main

import (
	"os"

	"github.com/robalobadob/wordle/apps/go-solver/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
