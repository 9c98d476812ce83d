// Package cli wires the generator into a cobra command and orchestrates one
// generation run: parse, extract, build metadata, emit.
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/actionplatform/actiongen/pkg/emit"
	"github.com/actionplatform/actiongen/pkg/ioutil"
	"github.com/actionplatform/actiongen/pkg/logging"
	"github.com/actionplatform/actiongen/pkg/metadata"
	"github.com/actionplatform/actiongen/pkg/multierr"
	"github.com/actionplatform/actiongen/pkg/schema"
	"github.com/actionplatform/actiongen/pkg/typescript"
)

type CommonConfig struct {
	verbose bool
	jsonLog bool
	color   string
}

// GenerateConfig is the run-level configuration, threaded explicitly into
// metadata building and emission. Feature applies uniformly to every record
// in the run.
type GenerateConfig struct {
	Feature string
	Out     string
}

func NewRootCommand() *cobra.Command {
	commonCfg := &CommonConfig{}
	runCfg := &GenerateConfig{}

	root := &cobra.Command{
		Use:          "actiongen <file>",
		Short:        "Generate action boilerplate from annotated TypeScript record declarations",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(args[0], *runCfg, cmd.Flags())
			if err != nil {
				return err
			}
			return Generate(args[0], cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&commonCfg.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&commonCfg.jsonLog, "json-log", false, "Enable JSON logging")
	flags.StringVar(&commonCfg.color, "color", "auto", "Colorize console logging (auto, on, off)")
	addGenerateFlags(root.Flags(), runCfg)

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logOpts := logging.LogOpts{
			Verbose: commonCfg.verbose,
			Color:   commonCfg.color,
		}
		if commonCfg.jsonLog {
			logOpts.Encoding = "json"
		}
		zap.ReplaceGlobals(logOpts.NewLogger())
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		zap.L().Sync() //nolint:errcheck
	}

	return root
}

func addGenerateFlags(flags *pflag.FlagSet, cfg *GenerateConfig) {
	flags.StringVar(&cfg.Feature, "feature", "", "Feature label prefixed to every generated enum value and metadata entry")
	flags.StringVar(&cfg.Out, "out", "", "Path of the generated file (defaults to stdout)")
}

// Generate runs the whole pipeline for one input file. Any failure aborts the
// run; the output file is only written once rendering has fully succeeded.
func Generate(inputPath string, cfg GenerateConfig) error {
	log := zap.L()

	input, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", inputPath)
	}
	defer input.Close()

	source, err := typescript.NewFile(inputPath, input)
	if err != nil {
		return err
	}

	extracted, err := schema.Extract(source)
	if err != nil {
		return err
	}
	log.Debug("extracted schema",
		zap.String("input", inputPath),
		zap.Int("records", len(extracted.Actions)),
		zap.Int("imports", len(extracted.Imports)),
	)

	metaByAction := make([]metadata.Metadata, len(extracted.Actions))
	for i, desc := range extracted.Actions {
		metaByAction[i] = metadata.Build(desc, cfg.Feature)
	}

	emitter, err := emit.New(extracted, metaByAction, cfg.Feature)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.Out != "" {
		outFile, err := os.Create(cfg.Out)
		if err != nil {
			return errors.Wrapf(err, "could not create %s", cfg.Out)
		}
		err = emitter.Emit(ioutil.NewWriterSink(outFile))
		if err = multierr.Append(err, outFile.Close()); err != nil {
			return err
		}
		log.Info("generated actions", zap.String("input", inputPath), zap.String("out", cfg.Out))
		return nil
	}
	return emitter.Emit(ioutil.NewWriterSink(out))
}
