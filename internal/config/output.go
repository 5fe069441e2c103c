package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Colour enables ANSI colouring of verdicts.
	Colour bool

	// ShowFEN appends the final position in FEN to each report line.
	ShowFEN bool

	// ShowBoard prints the final board after each report line.
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour: true,
	}
}
