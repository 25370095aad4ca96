// pong4p opens four-player Pong in a window: W/S left, Up/Down right,
// Z/X top, N/M bottom.
package main

import (
	"github.com/vovakirdan/box-arcade/internal/games/pong"
	"github.com/vovakirdan/box-arcade/internal/platform/window"
)

func main() {
	window.Main(pong.GameID4P)
}
