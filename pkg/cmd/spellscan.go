package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	cmdscan "spellscan.dev/spellscan/pkg/cmd/scan"
	"spellscan.dev/spellscan/pkg/version"
)

type SpellscanOptions struct{}

func NewDefaultSpellscanOptions() *SpellscanOptions {
	return &SpellscanOptions{}
}

func NewDefaultSpellscanCmd() *cobra.Command {
	return NewSpellscanCmd(NewDefaultSpellscanOptions())
}

func NewSpellscanCmd(o *SpellscanOptions) *cobra.Command {
	cmd := cmdscan.NewCmd(cmdscan.NewOptions())

	cmd.Use = "spellscan"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "spellscan finds known misspellings in source code and text"
	cmd.Long = `spellscan finds known misspellings in source code and text,
suggesting corrections while filtering out the false positives common in
code (identifiers, hex literals, URLs, casing variants).`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdscan.NewCmd(cmdscan.NewOptions())) // `spellscan scan` for explicitness

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
