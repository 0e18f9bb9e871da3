package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/jex/pkg/logger"
	"github.com/oakwood-commons/jex/pkg/settings"
)

func resetRootCmdState() {
	outputPath = ""
	configFile = ""
	logFile = ""
	debug = false
	noColor = false
	width = 0
	height = 0
	rootCtx = context.Background()

	rootCmd.SetArgs(nil)
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
}

func discardCtx() context.Context {
	lgr := logr.Discard()
	return logger.WithLogger(context.Background(), &lgr)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRootCmdParsesFlags(t *testing.T) {
	resetRootCmdState()
	err := rootCmd.ParseFlags([]string{
		"-o", "out.json",
		"--config-file", "conf.yaml",
		"--log-file", "jex.log",
		"--debug",
		"--no-color",
		"--width", "120",
		"--height", "40",
	})
	require.NoError(t, err)
	require.Equal(t, "out.json", outputPath)
	require.Equal(t, "conf.yaml", configFile)
	require.Equal(t, "jex.log", logFile)
	require.True(t, debug)
	require.True(t, noColor)
	require.Equal(t, 120, width)
	require.Equal(t, 40, height)
}

func TestRootCmdRequiresExactlyOneFile(t *testing.T) {
	resetRootCmdState()
	require.Error(t, rootCmd.Args(rootCmd, nil))
	require.Error(t, rootCmd.Args(rootCmd, []string{"a.json", "b.json"}))
	require.NoError(t, rootCmd.Args(rootCmd, []string{"a.json"}))
}

func runWith(params *settings.Run) error {
	return run(settings.IntoContext(discardCtx(), params))
}

func TestRunRequiresParamsInContext(t *testing.T) {
	resetRootCmdState()
	err := run(discardCtx())
	require.ErrorContains(t, err, "run parameters")
}

func TestRunRejectsMissingDocument(t *testing.T) {
	resetRootCmdState()
	params := settings.NewCliParams()
	params.InputPath = filepath.Join(t.TempDir(), "nope.json")
	require.Error(t, runWith(params))
}

func TestRunRejectsMalformedDocument(t *testing.T) {
	resetRootCmdState()
	params := settings.NewCliParams()
	params.InputPath = writeFile(t, t.TempDir(), "bad.json", "{oops")
	require.Error(t, runWith(params))
}

func TestRunRejectsBadPreviewSizeConfig(t *testing.T) {
	resetRootCmdState()
	dir := t.TempDir()
	params := settings.NewCliParams()
	params.InputPath = writeFile(t, dir, "doc.json", `{"a": 1}`)
	params.ConfigPath = writeFile(t, dir, "conf.yaml", "preview:\n  max_size: \"lots\"\n")
	require.Error(t, runWith(params))
}

func TestRunRejectsUnknownKeyMode(t *testing.T) {
	resetRootCmdState()
	dir := t.TempDir()
	params := settings.NewCliParams()
	params.InputPath = writeFile(t, dir, "doc.json", `{"a": 1}`)
	params.ConfigPath = writeFile(t, dir, "conf.yaml", "keys:\n  mode: \"emacs\"\n")
	err := runWith(params)
	require.ErrorContains(t, err, "unknown key mode")
}

func TestDisplayPath(t *testing.T) {
	params := settings.NewCliParams()
	params.InputPath = "/data/doc.json"
	require.Equal(t, "/data/doc.json", displayPath(params))

	params.OutputPath = "/data/doc.json"
	require.Equal(t, "/data/doc.json", displayPath(params))

	params.OutputPath = "out.json"
	require.Equal(t, "doc.json -> out.json", displayPath(params))
}

func TestVersionMatchesBuildInfo(t *testing.T) {
	require.Equal(t, settings.VersionInformation.BuildVersion, rootCmd.Version)
}
