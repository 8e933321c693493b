package graphics_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

func TestPixelsFromImageRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{B: 255, A: 255})

	pixels, width, height := graphics.PixelsFromImage(img)
	if width != 2 || height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", width, height)
	}
	if len(pixels) != 16 {
		t.Fatalf("%d bytes, want 16", len(pixels))
	}
	// Tightly packed RGBA images pass through without copying.
	if &pixels[0] != &img.Pix[0] {
		t.Error("tightly packed RGBA image was copied")
	}
	if pixels[0] != 255 || pixels[3] != 255 {
		t.Errorf("top-left texel = %v, want opaque red", pixels[0:4])
	}
	if pixels[14] != 255 {
		t.Errorf("bottom-right texel = %v, want opaque blue", pixels[12:16])
	}
}

func TestPixelsFromImageConvertsOtherFormats(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(1, 0, color.Gray{Y: 128})

	pixels, width, height := graphics.PixelsFromImage(img)
	if width != 3 || height != 1 {
		t.Fatalf("size = %dx%d, want 3x1", width, height)
	}
	if len(pixels) != 12 {
		t.Fatalf("%d bytes, want 12", len(pixels))
	}
	if pixels[4] != 128 || pixels[5] != 128 || pixels[6] != 128 {
		t.Errorf("gray texel = %v, want equal rgb channels", pixels[4:8])
	}
	if pixels[7] != 255 {
		t.Errorf("gray texel alpha = %d, want opaque", pixels[7])
	}
}

func TestPixelsFromImageOffsetBounds(t *testing.T) {
	// Subimages keep their parent's coordinate space; conversion must
	// rebase them at the origin.
	parent := image.NewRGBA(image.Rect(0, 0, 4, 4))
	parent.SetRGBA(2, 2, color.RGBA{G: 255, A: 255})
	sub := parent.SubImage(image.Rect(2, 2, 4, 4))

	pixels, width, height := graphics.PixelsFromImage(sub)
	if width != 2 || height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", width, height)
	}
	if pixels[1] != 255 {
		t.Errorf("top-left texel = %v, want the parent texel at the subimage origin", pixels[0:4])
	}
}

func TestScaledPixelsFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	pixels := graphics.ScaledPixelsFromImage(img, 4, 2)
	if len(pixels) != 4*2*4 {
		t.Fatalf("%d bytes, want %d", len(pixels), 4*2*4)
	}
	// A constant-color source stays constant through resampling, up to one
	// count of kernel rounding.
	within := func(got, want byte) bool {
		diff := int(got) - int(want)
		return diff >= -1 && diff <= 1
	}
	for i := 0; i < len(pixels); i += 4 {
		if !within(pixels[i], 200) || !within(pixels[i+1], 100) || !within(pixels[i+2], 50) || pixels[i+3] != 255 {
			t.Fatalf("texel %d = %v, want the source color", i/4, pixels[i:i+4])
		}
	}
}
