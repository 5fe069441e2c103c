// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	noColour   = flag.Bool("nocolor", false, "Don't colour verdicts")
	showFEN    = flag.Bool("showfen", false, "Append the final position in FEN to each report line")
	showBoard  = flag.Bool("board", false, "Print the final board after each report line")

	// Starting position
	startFEN = flag.String("fen", "", "Replay every game from this FEN position")

	// Draw rules
	moveLimit    = flag.Uint("movelimit", 100, "Half-move clock value that draws the game (150 = 75-move rule)")
	repetition   = flag.Uint("repetition", 3, "Occurrences of a position that draw the game (5 = fivefold)")
	insufficient = flag.Bool("insufficient", false, "Draw games with insufficient mating material")

	// Logging
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	commentary = flag.Bool("commentary", false, "Log every accepted ply")
	quiet      = flag.Bool("s", false, "Silent mode (no diagnostics or totals)")

	// Other options
	failFast = flag.Bool("failfast", false, "Stop replaying after the first rejected game")
	help     = flag.Bool("h", false, "Show help")
	version  = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of games replayed at once (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(b *config.ConfigBuilder) *config.ConfigBuilder {
	b = b.WithMoveLimit(*moveLimit).
		WithRepetitionCount(*repetition).
		WithInsufficientMaterial(*insufficient).
		WithStartFEN(*startFEN).
		WithColour(!*noColour).
		WithFEN(*showFEN).
		WithBoard(*showBoard)

	if *workers > 0 {
		b = b.WithWorkers(*workers)
	}

	switch {
	case *quiet:
		b = b.WithVerbosity(config.Silent)
	case *commentary:
		b = b.WithVerbosity(config.Commentary)
	}
	return b
}
