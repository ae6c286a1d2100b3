package config

import (
	"github.com/invopop/jsonschema"
)

// File mirrors the layout of the TOML config file.
type File struct {
	Color struct {
		Enable bool `json:"enable" jsonschema:"description=Enable ANSI colors in rendered frames and task output,default=true"`
	} `json:"color"`
	Exec struct {
		DelayMs int `json:"delay_ms" jsonschema:"description=Delay between animated task steps in milliseconds,minimum=1,default=500"`
	} `json:"exec"`
	Logs struct {
		Write bool   `json:"write" jsonschema:"default=false"`
		Level string `json:"level" jsonschema:"enum=panic,enum=fatal,enum=error,enum=warn,enum=info,enum=debug,enum=trace,default=info"`
		Json  bool   `json:"json" jsonschema:"default=false"`
	} `json:"logs"`
}

// Schema returns the JSON Schema of the config file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(&File{})
	s.Title = "taskframe configuration"
	return s
}
