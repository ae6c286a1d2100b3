// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Taskframe is the canonical application identifier used for filesystem paths and CLI branding.
	Taskframe = "taskframe"

	// ConfigType is the on-disk format of the configuration file.
	ConfigType = "toml"
)

// Build metadata, stamped with -ldflags "-X".
var (
	Version  = "0.1.0"
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
