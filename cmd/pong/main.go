// pong opens two-player Pong in a window: W/S for the left paddle,
// Up/Down for the right one.
package main

import (
	"github.com/vovakirdan/box-arcade/internal/games/pong"
	"github.com/vovakirdan/box-arcade/internal/platform/window"
)

func main() {
	window.Main(pong.GameID)
}
