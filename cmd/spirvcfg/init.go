package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spirvcfg/internal/config"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Write(g.cfgFile, config.Default()); err != nil {
				g.logger.Error("Error initializing config file", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", g.cfgFile)
			return nil
		},
	}
}
