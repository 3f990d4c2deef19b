package core

import (
	"strings"
)

// Half-block glyphs used to pack two vertical pixels into one terminal cell.
const (
	glyphEmpty = ' '
	glyphFull  = '█'
	glyphUpper = '▀'
	glyphLower = '▄'
)

// Screen is a monochrome pixel buffer sized in terminal cells.
// Every cell holds two pixels stacked vertically, so a Screen of
// width x height cells addresses width x 2*height pixels. Frontends
// draw into it with pixel coordinates and read it back as text.
type Screen struct {
	width  int // cells
	height int // cells
	pixels [][]bool
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	return s
}

// allocate creates the underlying pixel storage.
func (s *Screen) allocate() {
	s.pixels = make([][]bool, s.height*2)
	for y := range s.pixels {
		s.pixels[y] = make([]bool, s.width)
	}
}

// Width returns the screen width in cells (and pixels).
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// PixelHeight returns the screen height in pixels.
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions. Content is discarded since the
// next frame repaints everything anyway.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
}

// Clear turns every pixel off.
func (s *Screen) Clear() {
	for y := range s.pixels {
		clear(s.pixels[y])
	}
}

// SetPixel turns on the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(x, y int) {
	if x < 0 || x >= s.width || y < 0 || y >= len(s.pixels) {
		return
	}
	s.pixels[y][x] = true
}

// Pixel reports whether the pixel at (x, y) is on.
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= len(s.pixels) {
		return false
	}
	return s.pixels[y][x]
}

// FillPixels turns on every pixel inside r, clipped to the buffer.
func (s *Screen) FillPixels(r Rect) {
	x0 := Clamp(r.X, 0, s.width)
	x1 := Clamp(r.Right(), 0, s.width)
	y0 := Clamp(r.Y, 0, len(s.pixels))
	y1 := Clamp(r.Bottom(), 0, len(s.pixels))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.pixels[y][x] = true
		}
	}
}

// Cell returns the glyph for the cell at (x, y).
func (s *Screen) Cell(x, y int) rune {
	top := s.Pixel(x, y*2)
	bottom := s.Pixel(x, y*2+1)
	switch {
	case top && bottom:
		return glyphFull
	case top:
		return glyphUpper
	case bottom:
		return glyphLower
	default:
		return glyphEmpty
	}
}

// Row returns the specified cell row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width * 3)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.Cell(x, y))
	}
	return sb.String()
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.width*3 + 1) * s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}
