package core

// OpKind distinguishes draw operations.
type OpKind int

const (
	OpFill OpKind = iota // Filled rectangle
	OpText               // Text anchored at the rect's top-left corner
)

// DrawOp is one immediate-mode draw command.
type DrawOp struct {
	Kind  OpKind
	Rect  Rect
	Color Color
	Text  string
	Size  float64 // Font size in pixels for OpText
}

// Canvas is the per-frame draw list for a field of fixed logical size.
// Games append to it during Render; frontends replay it in order, so the
// append order is the z-order.
type Canvas struct {
	width      int
	height     int
	background Color
	ops        []DrawOp
}

// NewCanvas creates an empty canvas for a w×h field.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		width:      w,
		height:     h,
		background: ColorBlack,
		ops:        make([]DrawOp, 0, 64),
	}
}

// Width returns the field width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the field height.
func (c *Canvas) Height() int {
	return c.height
}

// Background returns the clear color.
func (c *Canvas) Background() Color {
	return c.background
}

// Clear drops all ops and sets the background color.
func (c *Canvas) Clear(bg Color) {
	c.background = bg
	c.ops = c.ops[:0]
}

// FillRect appends a filled rectangle.
func (c *Canvas) FillRect(r Rect, clr Color) {
	if r.W <= 0 || r.H <= 0 || clr.A == 0 {
		return
	}
	c.ops = append(c.ops, DrawOp{Kind: OpFill, Rect: r, Color: clr})
}

// DrawText appends text whose top-left corner is at (x, y).
func (c *Canvas) DrawText(x, y int, text string, size float64, clr Color) {
	if text == "" {
		return
	}
	c.ops = append(c.ops, DrawOp{Kind: OpText, Rect: NewRect(x, y, 0, 0), Color: clr, Text: text, Size: size})
}

// DrawSurface replays a cached surface with its origin at (x, y).
func (c *Canvas) DrawSurface(x, y int, s Surface) {
	for _, op := range s {
		op.Rect = op.Rect.Translate(x, y)
		c.ops = append(c.ops, op)
	}
}

// Ops returns the draw list in z-order.
func (c *Canvas) Ops() []DrawOp {
	return c.ops
}

// Surface is a prebuilt group of draw ops relative to an entity's origin.
// Entities keep one in a Lazy so it is rebuilt only when its inputs change.
type Surface []DrawOp

// TextSurface returns a surface holding one line of text.
func TextSurface(text string, size float64, clr Color) Surface {
	return Surface{{Kind: OpText, Text: text, Size: size, Color: clr}}
}
