package config

// Config is the resolved capnames configuration.
type Config struct {
	Input  string       `koanf:"input"  validate:"required"`
	Output string       `koanf:"output" validate:"required"`
	Lists  []ListConfig `koanf:"lists"  validate:"dive"`
	Log    LogConfig    `koanf:"log"`
}

// ListConfig is one input/output pair processed by `capnames batch`.
type ListConfig struct {
	Input  string `koanf:"input"  validate:"required" yaml:"input"`
	Output string `koanf:"output" validate:"required" yaml:"output"`
}

// LogConfig holds the logger settings. These are the only keys that can be
// set from the environment.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error disabled" env:"CAPNAMES_LOG_LEVEL"`
	JSON   bool   `koanf:"json"                                                   env:"CAPNAMES_LOG_JSON"`
	Source bool   `koanf:"source"                                                 env:"CAPNAMES_LOG_SOURCE"`
}

const (
	DefaultInput      = "last-names.txt"
	DefaultOutput     = "last_names.txt"
	DefaultConfigFile = "capnames.yaml"
	EnvPrefix         = "CAPNAMES_"
)

func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Log: LogConfig{
			Level: "info",
		},
	}
}
