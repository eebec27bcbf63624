package render

import "image/color"

// Default cell colours.
var (
	AliveColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	DeadColor  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position to (row, col) for a grid drawn at the origin
// with the given pixel scale. ok is false outside the w x h grid.
func CellAt(x, y, scale, w, h int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/scale, y/scale
	if col >= w || row >= h {
		return 0, 0, false
	}
	return row, col, true
}
