package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type glVertexBuffer struct {
	id    uint32
	count int
}

var _ VertexBuffer = (*glVertexBuffer)(nil)

func (b *glVertexBuffer) Count() int {
	return b.count
}

func (b *glVertexBuffer) Destroy() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

type glElementBuffer struct {
	id    uint32
	count int
}

var _ ElementBuffer = (*glElementBuffer)(nil)

func (b *glElementBuffer) Count() int {
	return b.count
}

func (b *glElementBuffer) Destroy() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

type glUniformBuffer struct {
	id   uint32
	size int
}

var _ UniformBuffer = (*glUniformBuffer)(nil)

func (b *glUniformBuffer) Update(data []byte) error {
	// Orphan-and-upload: the full block is rewritten, so the old storage can
	// be dropped without waiting on in-flight draws.
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.id)
	gl.BufferData(gl.UNIFORM_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	b.size = len(data)
	return nil
}

func (b *glUniformBuffer) Destroy() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
