package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zboralski/lattice/render"
	"go.uber.org/zap"

	"spirvcfg/internal/callgraph"
	"spirvcfg/internal/output"
)

func newCallgraphCmd(g *globalFlags) *cobra.Command {
	var reachable bool
	cmd := &cobra.Command{
		Use:   "callgraph -f <file.spv>",
		Short: "Render the module call graph",
		Long: `Nodes are functions, edges are OpFunctionCall sites (deduplicated).
With --reachable only functions reachable from an OpEntryPoint are kept; a
module without entry points starts from the functions nothing calls.
Example) spirvcfg callgraph -f shader.spv --reachable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCallgraph(g.logger, g.file, g.output, cmd.OutOrStdout(), reachable)
		},
	}
	cmd.Flags().BoolVar(&reachable, "reachable", false, "keep only functions reachable from the entry points")
	return cmd
}

func cmdCallgraph(logger *zap.Logger, file, out string, stdout io.Writer, reachable bool) error {
	v, err := loadView(logger, file)
	if err != nil {
		return err
	}

	g := callgraph.BuildCallGraph(v)
	if reachable {
		entries := callgraph.EntryPoints(v)
		if len(entries) == 0 {
			entries = callgraph.Roots(g)
			logger.Debug("no OpEntryPoint, using uncalled functions", zap.Strings("roots", entries))
		}
		total := len(g.Nodes)
		g = callgraph.Filter(g, callgraph.ReachableSet(entries, g))
		logger.Debug("filtered call graph",
			zap.Int("functions", total),
			zap.Int("reachable", len(g.Nodes)),
		)
	}

	dot := render.DOT(g, filepath.Base(file))
	if err := output.WriteFile(stdout, out, []byte(dot)); err != nil {
		return err
	}
	logger.Info("wrote call graph", zap.String("output", out), zap.Int("nodes", len(g.Nodes)), zap.Int("edges", len(g.Edges)))
	return nil
}
