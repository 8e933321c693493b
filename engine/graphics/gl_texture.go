package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glTexture is the backend-internal view of a texture: its GL name and the
// target it binds to. UseTexture asserts to this to reject textures from a
// different Context implementation.
type glTexture interface {
	glHandle() (id uint32, target uint32)
}

type glTexture2D struct {
	id     uint32
	width  int
	height int
}

var _ Texture2D = (*glTexture2D)(nil)

func (t *glTexture2D) Width() int                 { return t.width }
func (t *glTexture2D) Height() int                { return t.height }
func (t *glTexture2D) glHandle() (uint32, uint32) { return t.id, gl.TEXTURE_2D }

func (t *glTexture2D) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

type glTexture2DArray struct {
	id     uint32
	width  int
	height int
	layers int
}

var _ Texture2DArray = (*glTexture2DArray)(nil)

func (t *glTexture2DArray) Width() int                 { return t.width }
func (t *glTexture2DArray) Height() int                { return t.height }
func (t *glTexture2DArray) Layers() int                { return t.layers }
func (t *glTexture2DArray) glHandle() (uint32, uint32) { return t.id, gl.TEXTURE_2D_ARRAY }

func (t *glTexture2DArray) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

type glDepthTexture2D struct {
	id     uint32
	width  int
	height int
}

var _ DepthTexture2D = (*glDepthTexture2D)(nil)

func (t *glDepthTexture2D) Width() int                 { return t.width }
func (t *glDepthTexture2D) Height() int                { return t.height }
func (t *glDepthTexture2D) glHandle() (uint32, uint32) { return t.id, gl.TEXTURE_2D }

func (t *glDepthTexture2D) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

type glDepthTexture2DArray struct {
	id     uint32
	width  int
	height int
	layers int
}

var _ DepthTexture2DArray = (*glDepthTexture2DArray)(nil)

func (t *glDepthTexture2DArray) Width() int                 { return t.width }
func (t *glDepthTexture2DArray) Height() int                { return t.height }
func (t *glDepthTexture2DArray) Layers() int                { return t.layers }
func (t *glDepthTexture2DArray) glHandle() (uint32, uint32) { return t.id, gl.TEXTURE_2D_ARRAY }

func (t *glDepthTexture2DArray) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
