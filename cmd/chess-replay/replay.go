// replay.go - Loading move lists, replaying them and reporting verdicts
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/fen"
	"github.com/lgbarn/chess-arbiter-go/internal/notation"
	"github.com/lgbarn/chess-arbiter-go/internal/worker"
)

// input is one source of move text. err is set if it could not be opened.
type input struct {
	name string
	r    io.Reader
	err  error
}

// ReplayStats holds the totals printed at the end of a run.
type ReplayStats struct {
	Games      int // games read
	Finished   int // games that reached a terminal state
	Rejected   int // games stopped by a rejected or undecodable move
	Skipped    int // games not replayed after -failfast
	Unreadable int // inputs that could not be opened or tokenised
}

// palette colours the verdicts.
type palette struct {
	win, draw, fail, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		win:  color.New(color.FgGreen, color.Bold),
		draw: color.New(color.FgCyan),
		fail: color.New(color.FgRed, color.Bold),
		note: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.win, p.draw, p.fail, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// newReplayer builds the replayer for cfg's start position and rules.
func newReplayer(cfg *config.Config) (*worker.Replayer, error) {
	r := worker.NewReplayer(*cfg.Rules)
	r.Trace = cfg.Verbosity >= config.Commentary
	if cfg.StartFEN == "" {
		return r, nil
	}

	board, ctx, err := fen.Parse(cfg.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "-fen")
	}
	r.Board, r.Ctx = board, ctx
	return r, nil
}

// loadGames tokenises every input. Inputs that fail are logged and counted.
func loadGames(cfg *config.Config, inputs []input, stats *ReplayStats) []worker.WorkItem {
	var items []worker.WorkItem
	for _, in := range inputs {
		if in.err != nil {
			stats.Unreadable++
			continue
		}
		list, err := notation.ParseMoveList(in.r)
		if err != nil {
			cfg.Logf(config.Silent, "%s: %v", in.name, err)
			stats.Unreadable++
			continue
		}
		items = append(items, worker.WorkItem{Index: len(items), Name: in.name, Moves: list})
	}
	return items
}

// replayAll replays every input on the worker pool and writes one report
// line per game to cfg.OutputFile.
func replayAll(cfg *config.Config, inputs []input, failFast bool) (ReplayStats, error) {
	var stats ReplayStats

	replayer, err := newReplayer(cfg)
	if err != nil {
		return stats, err
	}

	items := loadGames(cfg, inputs, &stats)
	stats.Games = len(items)

	var pool *worker.Pool
	process := func(item worker.WorkItem) worker.ProcessResult {
		result := replayer.Replay(item)
		if failFast && result.Failed() {
			pool.Stop()
		}
		return result
	}
	pool = worker.NewPool(process, worker.WithWorkers(cfg.Workers))
	results := pool.Run(items)
	stats.Skipped = len(items) - len(results)

	colours := newPalette(cfg.Output.Colour)
	for _, res := range results {
		switch {
		case res.Failed():
			stats.Rejected++
		case res.Status.State.IsTerminal():
			stats.Finished++
		}
		logCommentary(cfg, res)
		writeReport(cfg, colours, res)
	}
	return stats, nil
}

// logCommentary logs every traced ply and any failure.
func logCommentary(cfg *config.Config, res worker.ProcessResult) {
	for i, p := range res.Plies {
		cfg.Logf(config.Commentary, "%s: ply %d %s -> %s", res.Name, i+1, p.Move, p.Status)
	}
	if res.Failed() {
		cfg.Logf(config.Summary, "%v", res.Err)
	}
}

// writeReport writes the verdict line for one game.
func writeReport(cfg *config.Config, colours palette, res worker.ProcessResult) {
	var sb strings.Builder
	sb.WriteString(res.Name)
	sb.WriteString(": ")
	sb.WriteString(verdict(colours, res))

	if res.Board != nil && cfg.Output.ShowFEN {
		sb.WriteString(" [")
		sb.WriteString(fen.Encode(res.Board, res.Ctx))
		sb.WriteString("]")
	}
	sb.WriteString("\n")

	if res.Board != nil && cfg.Output.ShowBoard {
		sb.WriteString(res.Board.String())
	}
	fmt.Fprint(cfg.OutputFile, sb.String())
}

// verdict describes how the replay ended.
func verdict(colours palette, res worker.ProcessResult) string {
	if res.Failed() {
		return colours.fail.Sprint("rejected: ", rejectionReason(res.Err))
	}

	state := res.Status.State
	var s string
	switch {
	case state == engine.Checkmate:
		s = colours.win.Sprint(res.Status)
	case state.IsDraw():
		s = colours.draw.Sprint(res.Status)
	default:
		s = res.Status.String()
	}
	s += fmt.Sprintf(" after %d plies", res.Ply)

	if want := resultFor(res.Status); res.Result != "" && res.Result != "*" && want != "*" && res.Result != want {
		s += colours.note.Sprintf(" (recorded %s, expected %s)", res.Result, want)
	}
	return s
}

// rejectionReason renders a replay failure without the game name, which the
// report line already starts with.
func rejectionReason(err error) string {
	if moveErr, ok := err.(*errors.MoveError); ok {
		return fmt.Sprintf("ply %d %q: %v", moveErr.Ply, moveErr.Move, moveErr.Err)
	}
	return err.Error()
}

// resultFor returns the result marker a finished game should carry, or "*"
// if the game is still in progress.
func resultFor(status engine.Status) string {
	switch {
	case status.State == engine.Checkmate && status.Team == chess.Black:
		return "1-0"
	case status.State == engine.Checkmate:
		return "0-1"
	case status.State.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// reportStatistics prints the final totals to the log.
func reportStatistics(cfg *config.Config, stats ReplayStats) {
	cfg.Logf(config.Summary, "%d game(s) replayed: %d finished, %d rejected, %d skipped, %d unreadable input(s).",
		stats.Games, stats.Finished, stats.Rejected, stats.Skipped, stats.Unreadable)
}
