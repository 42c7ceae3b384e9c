package config

const (
	defaultMinLetters   = 4
	defaultMinGroupSize = 1
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Wordlist: Wordlist{
			SystemPaths: []string{
				"/usr/dict/words",
				"/usr/share/dict/words",
			},
		},
		Rules: Rules{
			MinLetters:   defaultMinLetters,
			MinGroupSize: defaultMinGroupSize,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
