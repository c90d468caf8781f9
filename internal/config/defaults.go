package config

// DefaultFuzzyThreshold is the minimum fuzzy similarity accepted when the
// configuration does not override it.
const DefaultFuzzyThreshold = 85.0

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Paths: Paths{
			StorePath: "~/.local/share/hansard/runs.db",
		},
		Matching: Matching{
			FuzzyThreshold: DefaultFuzzyThreshold,
		},
		Logging: Logging{
			Level:  "info",
			Format: "auto",
		},
	}
}
