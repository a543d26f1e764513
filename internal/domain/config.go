package domain

// Output formats understood by the CLI.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config represents the circlekit configuration loaded from circlekit.yaml.
type Config struct {
	Output OutputConfig
}

type OutputConfig struct {
	Format string

	// Precision is the number of decimals in pretty output.
	// Negative means the shortest exact representation.
	Precision int
}

// DefaultConfig provides sane defaults if circlekit.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format:    FormatPretty,
			Precision: -1,
		},
	}
}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	return f == FormatPretty || f == FormatJSON
}
