package graphics

// Program is a compiled, linked shader program. Uniforms, textures and
// attributes are addressed by the names the source text declares; bindings
// set through one Use* call stay attached to the program until overwritten,
// so per-frame callers only rebind what changed.
//
// Names the source declares but the backend's linker discarded (because the
// value provably does not affect output) are accepted and ignored, so callers
// can bind against the declared contract without tracking optimizer behavior.
type Program interface {
	// UseUniformInt binds an int uniform.
	UseUniformInt(name string, value int32) error
	// UseUniformFloat binds a float uniform.
	UseUniformFloat(name string, value float32) error
	// UseUniformVec2 binds a vec2 uniform.
	UseUniformVec2(name string, x, y float32) error
	// UseUniformVec3 binds a vec3 uniform.
	UseUniformVec3(name string, x, y, z float32) error
	// UseUniformVec4 binds a vec4 uniform.
	UseUniformVec4(name string, x, y, z, w float32) error
	// UseUniformMat4 binds a mat4 uniform from 16 column-major values.
	UseUniformMat4(name string, matrix []float32) error

	// UseTexture binds a texture to the named sampler. The program assigns
	// texture units internally; one name keeps one unit for the program's
	// lifetime.
	//
	// Parameters:
	//   - texture: a texture created by the same Context
	//   - name: the sampler name the fragment source declares
	//
	// Returns:
	//   - error: when the texture belongs to a different Context implementation
	UseTexture(texture Texture, name string) error

	// UseUniformBlock binds a uniform buffer to the named interface block.
	//
	// Parameters:
	//   - buffer: a buffer created by the same Context
	//   - name: the block name the source declares
	//
	// Returns:
	//   - error: when the buffer belongs to a different Context implementation
	UseUniformBlock(buffer UniformBuffer, name string) error

	// UseAttributeVec2 binds a buffer of vec2 values to the named vertex input.
	UseAttributeVec2(buffer VertexBuffer, name string) error
	// UseAttributeVec3 binds a buffer of vec3 values to the named vertex input.
	UseAttributeVec3(buffer VertexBuffer, name string) error
	// UseAttributeVec4 binds a buffer of vec4 values to the named vertex input.
	UseAttributeVec4(buffer VertexBuffer, name string) error

	// DrawArrays issues a non-indexed triangle draw over the given number of
	// vertices, under the given render state and viewport. State changes do
	// not outlive the call.
	DrawArrays(states RenderStates, viewport Viewport, count int)

	// DrawElements issues an indexed triangle draw over every index in the
	// buffer, under the given render state and viewport.
	DrawElements(states RenderStates, viewport Viewport, elements ElementBuffer)

	// Destroy releases the compiled program. Safe to call more than once.
	Destroy()
}
