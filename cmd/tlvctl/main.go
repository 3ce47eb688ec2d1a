package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/danmuck/tlvkit/internal/config"
	"github.com/danmuck/tlvkit/internal/logging"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	settings   config.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{settings: config.Default()}
	root := &cobra.Command{
		Use:           "tlvctl [command] (flags)",
		Short:         "build, inspect and decode nested TLV documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(
		&a.configPath, "config", "", "TOML settings file (defaults apply when empty)")
	root.PersistentFlags().StringVar(
		&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newDemoCmd(a),
		newDecodeCmd(a),
		newConfigCmd(),
	)
	return root
}

func (a *app) setup() error {
	if a.configPath != "" {
		s, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.settings = s
	}
	overrides := a.settings.Log.Overrides()
	if a.logLevel != "" {
		lvl, ok := logging.ParseLevel(a.logLevel)
		if !ok {
			return errors.Newf("unknown log level %q", a.logLevel)
		}
		overrides.Level = &lvl
	}
	logging.ConfigureProfile(logging.ProfileRuntime, overrides)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tlvctl: %v\n", err)
		os.Exit(1)
	}
}
