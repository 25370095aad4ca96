package platform

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Reporter turns step events into console output.
// A finished round prints "Last score: N" to its writer; everything else
// goes to the logger at debug level.
type Reporter struct {
	out    io.Writer
	logger *log.Logger
	game   string
	rounds int
}

// NewReporter creates a reporter for the named game.
func NewReporter(out io.Writer, logger *log.Logger, game string) *Reporter {
	return &Reporter{out: out, logger: logger, game: game}
}

// Report handles one event. It matches core.Loop's OnEvent hook.
func (r *Reporter) Report(ev core.Event) {
	switch ev.Kind {
	case core.EventRoundOver:
		r.rounds++
		fmt.Fprintf(r.out, "Last score: %d\n", ev.Score)
		if r.logger != nil {
			r.logger.Info("round over", "game", r.game, "round", r.rounds, "score", ev.Score)
		}
	default:
		if r.logger != nil {
			r.logger.Debug(ev.Kind.String(), "game", r.game, "player", ev.Player, "score", ev.Score)
		}
	}
}

// Rounds returns the number of finished rounds seen so far.
func (r *Reporter) Rounds() int {
	return r.rounds
}
