// flappybox opens Flappy Box in a window. Space flaps, Escape quits, and
// every finished round prints its score.
package main

import (
	"github.com/vovakirdan/box-arcade/internal/games/flappy"
	"github.com/vovakirdan/box-arcade/internal/platform/window"
)

func main() {
	window.Main(flappy.GameID)
}
