package config

const (
	defaultConfigPath     = "~/.config/rtcalc/config.toml"
	projectConfigName     = "rtcalc.toml"
	defaultLineNumbering  = "compact"
	defaultOutputFormat   = "table"
	defaultOutputStyle    = "rounded"
	defaultOutputColor    = "auto"
	defaultServerBind     = "127.0.0.1:7488"
	defaultMaxBodyBytes   = 1 << 20
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultMetricsEnabled = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			LineNumbering: defaultLineNumbering,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Style:  defaultOutputStyle,
			Color:  defaultOutputColor,
		},
		Server: Server{
			Bind:           defaultServerBind,
			MetricsEnabled: defaultMetricsEnabled,
			MaxBodyBytes:   defaultMaxBodyBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
