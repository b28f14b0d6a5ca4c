package domain

// Config is the normalized runtime configuration.
type Config struct {
	Output       OutputMode
	OutputDir    string
	Locale       string
	NetshCommand string
	LogLevel     string
	Locales      LocaleTable
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Output:       DefaultOutputMode,
		OutputDir:    DefaultOutputDir,
		NetshCommand: DefaultNetshCommand,
		LogLevel:     DefaultLogLevel,
		Locales:      BuiltinLocales(),
	}
}
