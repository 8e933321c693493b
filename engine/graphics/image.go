package graphics

import (
	"image"

	"golang.org/x/image/draw"
)

// PixelsFromImage converts a decoded image into the tightly packed RGBA8
// texel layout NewColorTexture2D expects. Rows are emitted top-to-bottom in
// the decoded image's own orientation.
//
// Parameters:
//   - img: any decoded image
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - int: texture width in pixels
//   - int: texture height in pixels
func PixelsFromImage(img image.Image) ([]byte, int, int) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == width*4 {
		return rgba.Pix, width, height
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, width, height
}

// ScaledPixelsFromImage resamples a decoded image to the given size and
// returns it in the same layout as PixelsFromImage. Useful for clamping
// oversized source images to a GPU-friendly resolution.
//
// Parameters:
//   - img: any decoded image
//   - width, height: target size in pixels
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
func ScaledPixelsFromImage(img image.Image, width, height int) []byte {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, img.Bounds(), draw.Src, nil)
	return rgba.Pix
}
