// Package settings provides build metadata, runtime parameters, and
// context helpers used across the jex CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "jex"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the parameters of a single editor invocation: the document to
// open, where saves go, and how the process behaves around the TUI.
type Run struct {
	// InputPath is the JSON document to open.
	InputPath string
	// OutputPath is where saves are written; empty means in place.
	OutputPath string
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// LogFile receives structured logs; empty disables logging.
	LogFile string
	// MinLogLevel maps onto zapcore levels; negative enables debug.
	MinLogLevel int8
	// NoColor disables styled output.
	NoColor bool
}

// NewCliParams returns a Run with CLI defaults.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
	}
}

// SavePath resolves where the document is written: the explicit output
// path when set, otherwise back over the input.
func (r *Run) SavePath() string {
	if r.OutputPath != "" {
		return r.OutputPath
	}
	return r.InputPath
}
