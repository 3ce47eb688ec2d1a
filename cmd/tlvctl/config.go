package main

import (
	"fmt"

	"github.com/danmuck/tlvkit/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "tlvkit.toml"

func newConfigCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "config",
		Short: "settings file helpers",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a settings template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote config template to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "load and validate a settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			s, err := config.Load(path)
			if err != nil {
				return err
			}
			c := s.Codec
			fmt.Fprintf(cmd.OutOrStdout(), "validated %s: attr=%d tag=%d len=%d order=%s max_payload=%d log=%s\n",
				path, c.AttrLen, c.TagLen, c.LenLen, c.Order, s.Frame.MaxPayloadBytes, s.Log.Level)
			return nil
		},
	}

	root.AddCommand(initCmd, validateCmd)
	return root
}
