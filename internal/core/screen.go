package core

// Cell is one character cell of a terminal screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer for terminal rendering.
// The terminal frontend rasterizes a Canvas into it, scaling field pixels
// down to cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear(ColorBlack)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorBlack)
}

// Clear fills the entire screen with blank cells of the given background.
func (s *Screen) Clear(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: ColorWhite, BG: bg}
		}
	}
}

// Set places a rune at the given position, keeping the cell background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
}

// Fill blends clr over the background of the cell at (x, y) and blanks it.
func (s *Screen) Fill(x, y int, clr Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	cell.BG = blend(cell.BG, clr)
	cell.Rune = ' '
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: ColorWhite, BG: ColorBlack}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, fg)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// Rasterize replays a canvas into the screen, scaling the field to fit.
// Every filled rect covers at least one cell so small entities stay visible.
func (s *Screen) Rasterize(c *Canvas) {
	s.Clear(c.Background())
	if s.width == 0 || s.height == 0 || c.Width() == 0 || c.Height() == 0 {
		return
	}

	sx := float64(c.Width()) / float64(s.width)
	sy := float64(c.Height()) / float64(s.height)

	for _, op := range c.Ops() {
		switch op.Kind {
		case OpFill:
			x0 := int(float64(op.Rect.X) / sx)
			y0 := int(float64(op.Rect.Y) / sy)
			x1 := Max(int(float64(op.Rect.Right())/sx), x0+1)
			y1 := Max(int(float64(op.Rect.Bottom())/sy), y0+1)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					s.Fill(x, y, op.Color)
				}
			}
		case OpText:
			s.DrawText(int(float64(op.Rect.X)/sx), int(float64(op.Rect.Y)/sy), op.Text, op.Color)
		}
	}
}

// blend composites src over an opaque dst using src's straight alpha.
func blend(dst, src Color) Color {
	if src.A == 0xff {
		return src
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}
