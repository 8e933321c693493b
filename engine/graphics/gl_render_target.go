package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glRenderTarget wraps a framebuffer object over texture layers.
type glRenderTarget struct {
	fbo uint32
}

var _ RenderTarget = (*glRenderTarget)(nil)

func newGLRenderTarget(color Texture2DArray, colorLayers []int, depth DepthTexture2DArray, depthLayer int) (RenderTarget, error) {
	if color == nil && depth == nil {
		return nil, fmt.Errorf("render target needs at least one attachment")
	}

	t := &glRenderTarget{}
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	if color != nil && len(colorLayers) > 0 {
		arr, ok := color.(*glTexture2DArray)
		if !ok {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			t.Destroy()
			return nil, fmt.Errorf("color texture was not created by this context")
		}
		drawBuffers := make([]uint32, len(colorLayers))
		for i, layer := range colorLayers {
			gl.FramebufferTextureLayer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(i), arr.id, 0, int32(layer))
			drawBuffers[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
		}
		gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])
	} else {
		// Depth-only target; rasterize without color output.
		gl.DrawBuffer(gl.NONE)
		gl.ReadBuffer(gl.NONE)
	}

	if depth != nil {
		arr, ok := depth.(*glDepthTexture2DArray)
		if !ok {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			t.Destroy()
			return nil, fmt.Errorf("depth texture was not created by this context")
		}
		gl.FramebufferTextureLayer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, arr.id, 0, int32(depthLayer))
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return t, nil
}

func newGLDepthTarget(depth DepthTexture2D) (RenderTarget, error) {
	tex, ok := depth.(*glDepthTexture2D)
	if !ok {
		return nil, fmt.Errorf("depth texture was not created by this context")
	}

	t := &glRenderTarget{}
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, tex.id, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return t, nil
}

func (t *glRenderTarget) Write(clear ClearState, render func() error) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	applyClearState(clear)
	err := render()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return err
}

func (t *glRenderTarget) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
}

// glScreenTarget is the default framebuffer.
type glScreenTarget struct{}

var _ ScreenTarget = (*glScreenTarget)(nil)

func (t *glScreenTarget) Write(clear ClearState, render func() error) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	applyClearState(clear)
	return render()
}

func (t *glScreenTarget) ReadColor(viewport Viewport) ([]byte, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("cannot read back a %dx%d viewport", viewport.Width, viewport.Height)
	}
	pixels := make([]byte, viewport.Width*viewport.Height*4)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(
		int32(viewport.X), int32(viewport.Y),
		int32(viewport.Width), int32(viewport.Height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels),
	)
	return pixels, nil
}

func (t *glScreenTarget) Destroy() {}

func applyClearState(clear ClearState) {
	var mask uint32
	if clear.ClearColor {
		gl.ClearColor(clear.Red, clear.Green, clear.Blue, clear.Alpha)
		mask |= gl.COLOR_BUFFER_BIT
	}
	if clear.ClearDepth {
		// Clearing depth needs depth writes enabled.
		gl.DepthMask(true)
		gl.ClearDepth(float64(clear.Depth))
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

// glCopyDepth blits one layer of a depth array into a 2D depth texture
// through a pair of temporary framebuffers. GL 4.1 has no direct image copy,
// so the blit path is the portable snapshot mechanism.
func glCopyDepth(src DepthTexture2DArray, srcLayer int, dst DepthTexture2D) error {
	srcArr, ok := src.(*glDepthTexture2DArray)
	if !ok {
		return fmt.Errorf("source depth texture was not created by this context")
	}
	dstTex, ok := dst.(*glDepthTexture2D)
	if !ok {
		return fmt.Errorf("destination depth texture was not created by this context")
	}
	if srcArr.width != dstTex.width || srcArr.height != dstTex.height {
		return fmt.Errorf(
			"depth copy size mismatch: %dx%d source, %dx%d destination",
			srcArr.width, srcArr.height, dstTex.width, dstTex.height,
		)
	}

	var fbos [2]uint32
	gl.GenFramebuffers(2, &fbos[0])
	defer gl.DeleteFramebuffers(2, &fbos[0])

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fbos[0])
	gl.FramebufferTextureLayer(gl.READ_FRAMEBUFFER, gl.DEPTH_ATTACHMENT, srcArr.id, 0, int32(srcLayer))
	gl.ReadBuffer(gl.NONE)

	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fbos[1])
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, dstTex.id, 0)
	gl.DrawBuffer(gl.NONE)

	gl.BlitFramebuffer(
		0, 0, int32(srcArr.width), int32(srcArr.height),
		0, 0, int32(dstTex.width), int32(dstTex.height),
		gl.DEPTH_BUFFER_BIT, gl.NEAREST,
	)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	return nil
}
