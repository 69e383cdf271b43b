package renderer

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RGB8 is a quantized 8-bit pixel
type RGB8 struct {
	R, G, B uint8
}

// PixelBuffer holds a rendered image in scan order: row 0 is the top of the
// image, columns run left to right.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []RGB8
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]RGB8, width*height),
	}
}

// At returns the pixel at column x, row y (row 0 = top)
func (pb *PixelBuffer) At(x, y int) RGB8 {
	return pb.Pixels[y*pb.Width+x]
}

// Set stores the pixel at column x, row y (row 0 = top)
func (pb *PixelBuffer) Set(x, y int, c RGB8) {
	pb.Pixels[y*pb.Width+x] = c
}

// Row returns the slice backing row y. Writers on distinct rows never overlap.
func (pb *PixelBuffer) Row(y int) []RGB8 {
	return pb.Pixels[y*pb.Width : (y+1)*pb.Width]
}

// Vec3ToRGB8 converts an averaged linear color to 8-bit channels:
// gamma 2 (square root), clamp to [0,1], scale by 255.99 and truncate.
func Vec3ToRGB8(colorVec core.Vec3) RGB8 {
	colorVec = colorVec.Sqrt().Clamp(0.0, 1.0).Multiply(255.99)

	return RGB8{
		R: uint8(colorVec.X),
		G: uint8(colorVec.Y),
		B: uint8(colorVec.Z),
	}
}
