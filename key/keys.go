// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 5

// Terminal output - these keys control styling and pacing of rendered output.
const (
	ColorEnable = "color.enable"
	ExecDelayMs = "exec.delay_ms"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
