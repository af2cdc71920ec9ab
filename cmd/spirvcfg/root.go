package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spirvcfg/internal/cfg"
	"spirvcfg/internal/config"
	"spirvcfg/internal/output"
	"spirvcfg/internal/render"
	"spirvcfg/internal/spirv"
	"spirvcfg/internal/view"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	file    string
	output  string
	cfgFile string
	verbose bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var (
		splitDir string
		prune    bool
	)

	rootCmd := &cobra.Command{
		Use:   "spirvcfg -f <file.spv>",
		Short: "Render the control-flow graphs of a SPIR-V module as Graphviz DOT",
		Long: `Writes one digraph per function: a node per basic block listing its
instructions, an edge per control-flow successor and a dashed edge from each
selection header to its merge block.
Example) spirvcfg -f shader.spv -o shader.dot`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(g.verbose)
			if err != nil {
				return err
			}
			g.logger = logger
			spirv.SetLogger(logger.Named("spirv"))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(g.cfgFile)
			if err != nil {
				return err
			}
			opts := conf.RenderOptions()
			if cmd.Flags().Changed("prune") {
				opts.Prune = prune
			}
			return cmdCFG(g.logger, g.file, g.output, cmd.OutOrStdout(), splitDir, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&g.file, "file", "f", "", "path to the SPIR-V binary")
	pf.StringVarP(&g.output, "output", "o", output.StdoutPath, "output DOT path, - for stdout")
	pf.StringVar(&g.cfgFile, "config", config.DefaultPath, "configuration file")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&splitDir, "split", "", "write one <function>.dot per function into this directory")
	rootCmd.Flags().BoolVar(&prune, "prune", false, "omit blocks unreachable from the function entry")

	rootCmd.AddCommand(newLatticeCmd(g))
	rootCmd.AddCommand(newCallgraphCmd(g))
	rootCmd.AddCommand(newNamesCmd(g))
	rootCmd.AddCommand(newInitCmd(g))
	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadView loads the module named by --file and builds its view.
func loadView(logger *zap.Logger, path string) (v *view.View, err error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	m, err := spirv.Load(path)
	if err != nil {
		return nil, err
	}
	defer recoverInvariant(&err)
	v = view.New(m)
	logger.Debug("module loaded",
		zap.String("path", path),
		zap.Int("functions", len(m.Functions)),
		zap.Int("instructions", m.InstructionCount()),
		zap.Int("names", v.Len()),
	)
	return v, nil
}

// recoverInvariant turns an invariant panic from the CFG core into err.
// Any other panic is re-raised.
func recoverInvariant(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var ie *cfg.InvariantError
	var ne *view.NameError
	if e, ok := r.(error); ok && (errors.As(e, &ie) || errors.As(e, &ne)) {
		*err = fmt.Errorf("invalid module: %w", e)
		return
	}
	panic(r)
}

func cmdCFG(logger *zap.Logger, file, out string, stdout io.Writer, splitDir string, opts render.Options) (err error) {
	v, err := loadView(logger, file)
	if err != nil {
		return err
	}
	defer recoverInvariant(&err)

	m := v.Module()
	for i := range m.Functions {
		f := &m.Functions[i]
		if dead := len(f.Blocks) - len(cfg.Reachable(f)); dead > 0 {
			logger.Debug("unreachable blocks",
				zap.String("function", v.Resolve(f.ID())),
				zap.Int("blocks", dead),
			)
		}
	}

	if splitDir != "" {
		docs := make([]output.Document, 0, len(m.Functions))
		for i := range m.Functions {
			f := &m.Functions[i]
			name, ok := v.FunctionName(f)
			if !ok {
				name = fmt.Sprintf("%%%d", f.ID())
			}
			docs = append(docs, output.Document{
				Name: name,
				ID:   f.ID(),
				Data: []byte(render.FunctionDOT(v, f, opts)),
			})
		}
		paths, err := output.WriteSplit(splitDir, docs)
		if err != nil {
			return err
		}
		logger.Info("wrote CFGs", zap.String("dir", splitDir), zap.Int("files", len(paths)))
		return nil
	}

	var buf bytes.Buffer
	if err := render.WriteModule(&buf, v, opts); err != nil {
		return err
	}
	if err := output.WriteFile(stdout, out, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("wrote CFG", zap.String("output", out), zap.Int("functions", len(m.Functions)))
	return nil
}
