package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameBuffer is a floating point RGB image; y = 0 is the bottom row
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrameBuffer creates a black buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// SetPixel stores an unclamped color
func (fb *FrameBuffer) SetPixel(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the stored color
func (fb *FrameBuffer) GetPixel(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the buffer to 8-bit RGBA, clamping to [0,1] and flipping
// rows so the bottom row of the buffer is the last row of the image
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, fb.Height-1-y, vec3ToColor(fb.GetPixel(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with clamping; no gamma is applied
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}

// Frame holds the three buffers produced by one render
type Frame struct {
	Color   *FrameBuffer
	Normals *FrameBuffer // Normals encoded as (n+1)/2
	Depth   *FrameBuffer // Normalized depth, gray
}

// NewFrame creates a frame with black buffers
func NewFrame(width, height int) *Frame {
	return &Frame{
		Color:   NewFrameBuffer(width, height),
		Normals: NewFrameBuffer(width, height),
		Depth:   NewFrameBuffer(width, height),
	}
}
