package log

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Level  Level  `mapstructure:"level"`
	Format Format `mapstructure:"format"`
}

// DefaultConfig logs warnings and above: stdout carries the live table and
// stderr usually shares the same terminal.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
	}
}
