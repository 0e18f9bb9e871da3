// Package cmd wires the CLI: flag parsing, config resolution, logger
// setup, and handing the loaded document to the TUI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/jex/internal/config"
	"github.com/oakwood-commons/jex/internal/ui"
	"github.com/oakwood-commons/jex/pkg/core"
	"github.com/oakwood-commons/jex/pkg/loader"
	"github.com/oakwood-commons/jex/pkg/logger"
	"github.com/oakwood-commons/jex/pkg/settings"
)

var (
	outputPath string
	configFile string
	logFile    string
	debug      bool
	noColor    bool
	width      int
	height     int

	rootCtx = context.Background()
)

var rootCmd = &cobra.Command{
	Use:     settings.CliBinaryName + " <file>",
	Short:   "Interactive terminal editor for JSON documents",
	Long:    "jex opens a JSON document as a navigable tree: expand and collapse containers,\npreview values, edit them in place, rename keys, delete nodes, and write the\nresult back without disturbing key order or number formatting.",
	Example: "\n  jex config.json\n  jex big.json -o edited.json\n  jex data.json --no-color\n",
	Version: settings.VersionInformation.BuildVersion,
	Args:    cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cfg := config.Load(configFile)
		level := cfg.Log.Level
		if debug {
			level = -1
		}
		sink := logFile
		if sink == "" {
			sink = cfg.Log.File
		}
		lgr := logger.Get(level, sink)
		lgr = logger.WithValues(lgr, "command", settings.CliBinaryName)
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		params := settings.NewCliParams()
		params.InputPath = args[0]
		params.OutputPath = outputPath
		params.ConfigPath = configFile
		params.LogFile = logFile
		params.NoColor = noColor
		return run(settings.IntoContext(rootCtx, params))
	},
	SilenceUsage: true,
}

func run(ctx context.Context) error {
	lgr := logger.FromContext(ctx)
	params, ok := settings.FromContext(ctx)
	if !ok {
		return errors.New("run parameters missing from context")
	}

	cfg := config.Load(params.ConfigPath)
	maxBytes, err := cfg.MaxSizeBytes()
	if err != nil {
		return err
	}

	keyMode, err := ui.ParseKeyMode(cfg.Keys.Mode)
	if err != nil {
		return err
	}

	root, err := loader.Load(params.InputPath)
	if err != nil {
		return err
	}
	lgr.Info("document loaded", "path", params.InputPath)

	opts := core.Options{
		PreviewMaxBytes: maxBytes,
		PreviewMinPct:   cfg.Preview.MinPercent,
		PreviewMaxPct:   cfg.Preview.MaxPercent,
		PreviewPct:      cfg.Preview.Percent,
	}
	ctrl := core.New(root, params.SavePath(), opts, *lgr)

	return ui.RunModel(ctrl, displayPath(params), params.NoColor, keyMode, width, height)
}

// displayPath is what the status bar shows: the input, plus the output
// when saves go elsewhere.
func displayPath(params *settings.Run) string {
	if params.OutputPath != "" && params.OutputPath != params.InputPath {
		return fmt.Sprintf("%s -> %s", filepath.Base(params.InputPath), params.OutputPath)
	}
	return params.InputPath
}

func init() { //nolint:gochecknoinits
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write saves to this path instead of editing in place")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML or TOML config file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "append structured logs to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().IntVar(&width, "width", 0, "terminal width override (0 auto-detects)")
	rootCmd.Flags().IntVar(&height, "height", 0, "terminal height override (0 auto-detects)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
