package lcd

// Font is a digit face. Glyphs are stored page-interleaved: column c of page
// row r of a glyph is byte r + c*Pages.
type Font struct {
	// Width is the number of columns drawn per glyph, also the digit pitch.
	Width uint8
	// Pages is the glyph height in display pages (8 pixel rows each).
	Pages uint8
	// stride is the number of stored bytes per glyph.
	stride int
	data   []byte
}

var (
	// Large is the 14×24 digit face of the speed readout.
	Large = &Font{Width: 14, Pages: 3, stride: 45, data: large[:]}
	// Small is the 6×8 digit face.
	Small = &Font{Width: 6, Pages: 1, stride: 6, data: small[:]}
)

// Glyph is the bitmap of one digit.
type Glyph struct {
	font *Font
	data []byte
}

// Glyph returns the glyph of digit d. ok is false if d is not 0–9.
func (f *Font) Glyph(d uint8) (g Glyph, ok bool) {
	if d > 9 {
		return Glyph{}, false
	}

	return Glyph{font: f, data: f.data[int(d)*f.stride : (int(d)+1)*f.stride]}, true
}

// Column returns column col of page row page of the glyph.
func (g Glyph) Column(page, col uint8) byte {
	return g.data[int(page)+int(col)*int(g.font.Pages)]
}
