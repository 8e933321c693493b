package mesh

import (
	"sync"

	"github.com/UmbraEngine/umbra-go/engine/graphics"
)

// Slot identifies one mesh program variant in a ProgramCache. The set of
// variants is closed: every call site owns one slot and always passes the
// same fragment source for it.
type Slot int

const (
	// SlotDepth renders depth only, with an empty fragment stage.
	SlotDepth Slot = iota
	// SlotColor renders a single uniform color.
	SlotColor
	// SlotTexture samples a 2D texture over the mesh UVs.
	SlotTexture
	// SlotPerVertexColor interpolates the per-vertex color attribute.
	SlotPerVertexColor
	// SlotForwardColorAmbient shades a solid color under ambient light.
	SlotForwardColorAmbient
	// SlotForwardColorAmbientDirectional shades a solid color under ambient
	// plus one directional light.
	SlotForwardColorAmbientDirectional
	// SlotForwardTextureAmbient shades a textured surface under ambient light.
	SlotForwardTextureAmbient
	// SlotForwardTextureAmbientDirectional shades a textured surface under
	// ambient plus one directional light.
	SlotForwardTextureAmbientDirectional
	// SlotDeferredColor writes a solid-color surface into the geometry buffer.
	SlotDeferredColor
	// SlotDeferredTexture writes a textured surface into the geometry buffer.
	SlotDeferredTexture

	slotCount
)

// ProgramCache owns the shared mesh program variants. Each slot compiles at
// most once, on first request, and every mesh registers with the cache for
// its lifetime; when the last registered mesh is destroyed all slots are
// released together, so an idle cache holds no GPU programs.
type ProgramCache struct {
	mu    *sync.Mutex
	ctx   graphics.Context
	slots [slotCount]*MeshProgram
	live  int
}

// NewProgramCache creates an empty cache compiling against the given context.
//
// Parameters:
//   - ctx: graphics context used for program compilation
//
// Returns:
//   - *ProgramCache: the empty cache
func NewProgramCache(ctx graphics.Context) *ProgramCache {
	return &ProgramCache{
		mu:  &sync.Mutex{},
		ctx: ctx,
	}
}

// GetOrCreate returns the cached program for slot, compiling it from
// fragmentSource on the first request. Later requests return the same
// instance and ignore the source argument.
//
// Parameters:
//   - slot: which variant to fetch
//   - fragmentSource: fragment stage source, used only on the first request
//
// Returns:
//   - *MeshProgram: the shared program instance
//   - error: compilation failure
func (c *ProgramCache) GetOrCreate(slot Slot, fragmentSource string) (*MeshProgram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.slots[slot] == nil {
		program, err := NewProgram(c.ctx, fragmentSource)
		if err != nil {
			return nil, err
		}
		c.slots[slot] = program
	}
	return c.slots[slot], nil
}

// retain records one more live mesh riding the cache.
func (c *ProgramCache) retain() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.live++
}

// release records one mesh gone. When the last one goes, every compiled slot
// is destroyed so the next mesh starts against an empty cache.
func (c *ProgramCache) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live > 0 {
		c.live--
	}
	if c.live == 0 {
		c.destroySlots()
	}
}

// Destroy releases every compiled slot regardless of live meshes. Slots
// recompile on the next GetOrCreate, so calling this at shutdown is safe
// even with meshes still registered.
func (c *ProgramCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroySlots()
}

// destroySlots clears all compiled slots. Caller must hold the mutex.
func (c *ProgramCache) destroySlots() {
	for i, program := range c.slots {
		if program != nil {
			program.Destroy()
			c.slots[i] = nil
		}
	}
}
