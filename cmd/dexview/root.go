package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/dexview/internal/app"
)

var errNoTerminal = errors.New(`the interactive viewer needs a terminal; use "dexview show <name>"`)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath  string
	prefsPath   string
	logLevel    string
	metricsAddr string
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath:  f.configPath,
		PrefsPath:   f.prefsPath,
		LogLevel:    f.logLevel,
		MetricsAddr: f.metricsAddr,
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "dexview",
		Short: "Look up Pokemon species in the terminal",
		Long: `dexview looks up species in the public PokeAPI catalog and shows their
weight and abilities. Without a subcommand it starts the interactive viewer.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNoTerminal
			}
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/dexview/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/dexview/prefs.toml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	cmd.AddCommand(newShowCmd(flags))
	return cmd
}
