package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// namedKeys translates the key names used in game bindings to ebiten keys.
var namedKeys = map[string]ebiten.Key{
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	" ":     ebiten.KeySpace,
	"esc":   ebiten.KeyEscape,
	"enter": ebiten.KeyEnter,
	"a":     ebiten.KeyA,
	"b":     ebiten.KeyB,
	"c":     ebiten.KeyC,
	"d":     ebiten.KeyD,
	"e":     ebiten.KeyE,
	"f":     ebiten.KeyF,
	"g":     ebiten.KeyG,
	"h":     ebiten.KeyH,
	"i":     ebiten.KeyI,
	"j":     ebiten.KeyJ,
	"k":     ebiten.KeyK,
	"l":     ebiten.KeyL,
	"m":     ebiten.KeyM,
	"n":     ebiten.KeyN,
	"o":     ebiten.KeyO,
	"p":     ebiten.KeyP,
	"q":     ebiten.KeyQ,
	"r":     ebiten.KeyR,
	"s":     ebiten.KeyS,
	"t":     ebiten.KeyT,
	"u":     ebiten.KeyU,
	"v":     ebiten.KeyV,
	"w":     ebiten.KeyW,
	"x":     ebiten.KeyX,
	"y":     ebiten.KeyY,
	"z":     ebiten.KeyZ,
}

// keyFor resolves a binding key name.
func keyFor(name string) (ebiten.Key, error) {
	k, ok := namedKeys[name]
	if !ok {
		return 0, fmt.Errorf("window: no key for %q", name)
	}
	return k, nil
}
