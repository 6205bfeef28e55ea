package lcd

// Glyph bitmaps. Every glyph is stored column by column, each column holding
// the bytes of all its pages (top page first).

// large is a 15 column, 3 page (24 pixel) digit face; only 14 columns are drawn.
var large = [10 * 45]byte{
	// 0
	0xE0, 0xFF, 0x00, 0xF8, 0xFF, 0x03, 0xFE, 0xFF, 0x0F, 0x1E, 0x00, 0x0F, 0x0F, 0x00, 0x1E,
	0x07, 0x00, 0x1C, 0x07, 0x00, 0x1C, 0x07, 0x00, 0x1C, 0x0F, 0x00, 0x1E, 0x1E, 0x00, 0x0F,
	0xFE, 0xFF, 0x0F, 0xF8, 0xFF, 0x03, 0xE0, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 1
	0x00, 0x00, 0x00, 0x30, 0x00, 0x1C, 0x38, 0x00, 0x1C, 0x38, 0x00, 0x1C, 0x3C, 0x00, 0x1C,
	0xFE, 0xFF, 0x1F, 0xFF, 0xFF, 0x1F, 0xFF, 0xFF, 0x1F, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x1C,
	0x00, 0x00, 0x1C, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 2
	0x0E, 0x00, 0x1E, 0x0E, 0x00, 0x1F, 0x07, 0x80, 0x1F, 0x07, 0xC0, 0x1D, 0x07, 0xE0, 0x1C,
	0x07, 0x70, 0x1C, 0x07, 0x38, 0x1C, 0x07, 0x1C, 0x1C, 0x0F, 0x0F, 0x1C, 0xFE, 0x07, 0x1C,
	0xFC, 0x03, 0x1C, 0xF8, 0x00, 0x1C, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 3
	0x00, 0x00, 0x0E, 0x0E, 0x00, 0x0E, 0x0E, 0x00, 0x1C, 0x07, 0x00, 0x1C, 0x07, 0x0E, 0x1C,
	0x07, 0x0E, 0x1C, 0x07, 0x0E, 0x1C, 0x07, 0x0E, 0x1C, 0x07, 0x0F, 0x1E, 0x8F, 0x1D, 0x0F,
	0xFE, 0xFD, 0x0F, 0xFE, 0xF8, 0x07, 0x78, 0xF0, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 4
	0x00, 0xC0, 0x00, 0x00, 0xF0, 0x00, 0x00, 0xFC, 0x00, 0x00, 0xEF, 0x00, 0xC0, 0xE3, 0x00,
	0xF0, 0xE0, 0x00, 0x3C, 0xE0, 0x00, 0x0E, 0xE0, 0x00, 0x03, 0xE0, 0x00, 0xFF, 0xFF, 0x1F,
	0xFF, 0xFF, 0x1F, 0xFF, 0xFF, 0x1F, 0x00, 0xE0, 0x00, 0x00, 0xE0, 0x00, 0x00, 0x00, 0x00,
	// 5
	0x00, 0x00, 0x0E, 0xFF, 0x07, 0x0E, 0xFF, 0x07, 0x1C, 0xFF, 0x07, 0x1C, 0x07, 0x07, 0x1C,
	0x07, 0x07, 0x1C, 0x07, 0x07, 0x1C, 0x07, 0x07, 0x1C, 0x07, 0x0F, 0x1E, 0x07, 0x0E, 0x0F,
	0x07, 0xFE, 0x0F, 0x07, 0xFC, 0x07, 0x07, 0xF8, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 6
	0x80, 0xFF, 0x00, 0xE0, 0xFF, 0x03, 0xF8, 0xFF, 0x07, 0x7C, 0x0E, 0x0F, 0x1E, 0x06, 0x1E,
	0x0E, 0x07, 0x1C, 0x0F, 0x07, 0x1C, 0x07, 0x07, 0x1C, 0x07, 0x07, 0x1C, 0x07, 0x0F, 0x1E,
	0x07, 0x0E, 0x0F, 0x07, 0xFE, 0x0F, 0x00, 0xFC, 0x07, 0x00, 0xF8, 0x01, 0x00, 0x00, 0x00,
	// 7
	0x07, 0x00, 0x00, 0x07, 0x00, 0x10, 0x07, 0x00, 0x1C, 0x07, 0x00, 0x1F, 0x07, 0xC0, 0x0F,
	0x07, 0xF0, 0x03, 0x07, 0xFC, 0x00, 0x07, 0x3F, 0x00, 0x87, 0x0F, 0x00, 0xE7, 0x03, 0x00,
	0xFF, 0x00, 0x00, 0x7F, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// 8
	0x00, 0xE0, 0x01, 0x78, 0xF8, 0x07, 0xFC, 0xF9, 0x0F, 0xFE, 0x0D, 0x0F, 0x8F, 0x07, 0x1E,
	0x07, 0x07, 0x1C, 0x07, 0x07, 0x1C, 0x07, 0x06, 0x1C, 0x07, 0x0E, 0x1C, 0x0F, 0x0F, 0x1E,
	0xFE, 0x1F, 0x0E, 0xFC, 0xF9, 0x0F, 0x78, 0xF8, 0x07, 0x00, 0xE0, 0x01, 0x00, 0x00, 0x00,
	// 9
	0xF0, 0x03, 0x00, 0xFC, 0x07, 0x00, 0xFE, 0x0F, 0x1C, 0x1E, 0x0E, 0x1C, 0x0F, 0x1E, 0x1C,
	0x07, 0x1C, 0x1C, 0x07, 0x1C, 0x1C, 0x07, 0x1C, 0x1E, 0x07, 0x1C, 0x0E, 0x0F, 0x0C, 0x0F,
	0x1E, 0xCE, 0x07, 0xFC, 0xFF, 0x03, 0xF8, 0xFF, 0x00, 0xE0, 0x3F, 0x00, 0x00, 0x00, 0x00,
}

// small is a 6 column, 1 page (8 pixel) digit face.
var small = [10 * 6]byte{
	0x00, 0x3E, 0x51, 0x49, 0x45, 0x3E, // 0
	0x00, 0x00, 0x42, 0x7F, 0x40, 0x00, // 1
	0x00, 0x42, 0x61, 0x51, 0x49, 0x46, // 2
	0x00, 0x21, 0x41, 0x45, 0x4B, 0x31, // 3
	0x00, 0x18, 0x14, 0x12, 0x7F, 0x10, // 4
	0x00, 0x27, 0x45, 0x45, 0x45, 0x39, // 5
	0x00, 0x3C, 0x4A, 0x49, 0x49, 0x30, // 6
	0x00, 0x01, 0x71, 0x09, 0x05, 0x03, // 7
	0x00, 0x36, 0x49, 0x49, 0x49, 0x36, // 8
	0x00, 0x06, 0x49, 0x49, 0x29, 0x1E, // 9
}
