// avoidthedots opens Avoid the Dots in a window. Arrow keys move the box.
package main

import (
	"github.com/vovakirdan/box-arcade/internal/games/dodger"
	"github.com/vovakirdan/box-arcade/internal/platform/window"
)

func main() {
	window.Main(dodger.GameID)
}
