// Package config handles mesh tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds mesh file paths used by the fixed-path commands.
type DataConfig struct {
	BunnyJSON string `yaml:"bunny_json"` // Compact mesh read by analyze_bunny, written by the converter
	BunnyOBJ  string `yaml:"bunny_obj"`  // OBJ source read by the converter
}

// OutputConfig holds report and conversion output settings.
type OutputConfig struct {
	Precision  int    `yaml:"precision"`   // Decimals in printed numbers
	JSONIndent int    `yaml:"json_indent"` // Spaces per level in written JSON
	OBJName    string `yaml:"obj_name"`    // Mesh name given to converted OBJ files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			BunnyJSON: "data/models/bunny.json",
			BunnyOBJ:  "bunny.obj",
		},
		Output: OutputConfig{
			Precision:  4,
			JSONIndent: 2,
			OBJName:    "Stanford Bunny (OBJ Converted)",
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}
