// Package window runs a game in a desktop window with ebiten.
// Ebiten owns the scheduler: every Update is one loop tick and every Draw
// replays the canvas that tick produced.
package window

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Frontend adapts a registry.Game to ebiten.Game.
type Frontend struct {
	game   registry.Game
	loop   *core.Loop
	keys   map[string]ebiten.Key
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	width  int
	height int
	logger *log.Logger
}

// New resets game with cfg and prepares it for the window.
// onEvent, when set, receives every event the game emits.
func New(game registry.Game, cfg core.RuntimeConfig, onEvent func(core.Event), logger *log.Logger) (*Frontend, error) {
	keys := make(map[string]ebiten.Key)
	for _, b := range game.Bindings() {
		k, err := keyFor(b.Key)
		if err != nil {
			return nil, err
		}
		keys[b.Key] = k
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)
	w, h := game.Field()
	loop := core.NewLoop(game, w, h, cfg.TickRate)
	loop.OnEvent = onEvent

	return &Frontend{
		game:   game,
		loop:   loop,
		keys:   keys,
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
		width:  w,
		height: h,
		logger: logger,
	}, nil
}

// held reports whether the key bound under name is down.
func (f *Frontend) held(name string) bool {
	k, ok := f.keys[name]
	return ok && ebiten.IsKeyPressed(k)
}

// Update runs one tick on the held-key snapshot.
func (f *Frontend) Update() error {
	if ebiten.IsWindowBeingClosed() {
		f.loop.Stop()
		return ebiten.Termination
	}

	f.loop.Tick(core.FrameFromKeys(f.game.Bindings(), f.held))
	if f.loop.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last rendered canvas.
func (f *Frontend) Draw(screen *ebiten.Image) {
	c := f.loop.Canvas()
	screen.Fill(c.Background())

	for _, op := range c.Ops() {
		switch op.Kind {
		case core.OpFill:
			r := op.Rect
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), op.Color, false)
		case core.OpText:
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(float64(op.Rect.X), float64(op.Rect.Y))
			opts.ColorScale.ScaleWithColor(op.Color)
			text.Draw(screen, op.Text, f.face(op.Size), opts)
		}
	}
}

// Layout keeps the logical field size whatever the window size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.width, f.height
}

// face returns a cached monospace face of the given pixel size.
func (f *Frontend) face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// Ticks returns the number of ticks run so far.
func (f *Frontend) Ticks() int {
	return f.loop.Ticks()
}

// Run opens a centered window titled after the game and blocks until the
// player quits or closes it.
func (f *Frontend) Run(tickRate int) error {
	ebiten.SetWindowTitle(f.game.Title())
	ebiten.SetWindowSize(f.width, f.height)
	if mw, mh := ebiten.Monitor().Size(); mw > 0 && mh > 0 {
		ebiten.SetWindowPosition((mw-f.width)/2, (mh-f.height)/2)
	}
	ebiten.SetTPS(tickRate)
	ebiten.SetWindowClosingHandled(true)

	f.logger.Info("window opened", "game", f.game.ID(), "width", f.width, "height", f.height, "tps", tickRate)
	err := ebiten.RunGame(f)
	f.logger.Info("window closed", "game", f.game.ID(), "ticks", f.Ticks())
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
