package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"spellscan.dev/spellscan/pkg/cmd"
	cmdscan "spellscan.dev/spellscan/pkg/cmd/scan"
)

func main() {
	command := cmd.NewDefaultSpellscanCmd()

	err := command.Execute()
	if err != nil && !cmdscan.Silent(err) {
		fmt.Fprintf(os.Stderr, "spellscan: Error: %s\n", uierrs.NewMultiLineError(err))
	}
	os.Exit(cmdscan.ExitCode(err))
}
