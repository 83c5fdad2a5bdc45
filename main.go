package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/tasknest/cmd"
	"github.com/thenoetrevino/tasknest/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil && !cmd.Reported(err) {
		fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
