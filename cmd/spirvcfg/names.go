package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNamesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "names -f <file.spv>",
		Short: "Print the OpName table sorted by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdNames(g.logger, g.file, cmd.OutOrStdout())
		},
	}
}

func cmdNames(logger *zap.Logger, file string, w io.Writer) error {
	v, err := loadView(logger, file)
	if err != nil {
		return err
	}
	for _, id := range v.IDs() {
		name, _ := v.Name(id)
		if _, err := fmt.Fprintf(w, "%%%d\t%s\n", id, name); err != nil {
			return fmt.Errorf("names: write: %w", err)
		}
	}
	return nil
}
