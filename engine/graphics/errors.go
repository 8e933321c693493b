package graphics

import "fmt"

// MissingAttributeError reports that a program variant requires a mesh
// attribute the mesh does not own. It is returned before any draw call is
// issued, so a failed render never partially draws.
type MissingAttributeError struct {
	// Attribute is the vertex attribute the program declares.
	Attribute string
	// Remedy tells the caller how to provide the attribute.
	Remedy string
}

func (e *MissingAttributeError) Error() string {
	if e.Remedy == "" {
		return fmt.Sprintf("missing required attribute: %s", e.Attribute)
	}
	return fmt.Sprintf("missing required attribute: %s (%s)", e.Attribute, e.Remedy)
}

// ShaderError reports a failed shader compile or program link together with
// the driver's info log.
type ShaderError struct {
	// Stage is "vertex", "fragment" or "link".
	Stage string
	// Log is the driver info log, trimmed.
	Log string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader error: %s", e.Stage, e.Log)
}
