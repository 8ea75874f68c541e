package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WriteColorPNG encodes the buffer's RGB8 color plane as a standard PNG
// (§6 Image output: color image).
func (fb *FrameBuffer) WriteColorPNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			idx := y*fb.Width + x
			img.Set(x, y, color.RGBA{
				R: fb.Color[3*idx+0],
				G: fb.Color[3*idx+1],
				B: fb.Color[3*idx+2],
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}

// WriteDepthPNG encodes the linearly-remapped depth plane as an 8-bit
// grayscale PNG (§6 Image output: depth image).
func (fb *FrameBuffer) WriteDepthPNG(w io.Writer) error {
	return writeGray(w, fb.Width, fb.Height, fb.DepthImage())
}

// WriteSampleCountPNG encodes the linearly-remapped sample-count plane as
// an 8-bit grayscale PNG (§6 Image output: sample-count image).
func (fb *FrameBuffer) WriteSampleCountPNG(w io.Writer) error {
	return writeGray(w, fb.Width, fb.Height, fb.SampleCountImage())
}

func writeGray(w io.Writer, width, height int, plane []uint8) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, plane)
	return png.Encode(w, img)
}
