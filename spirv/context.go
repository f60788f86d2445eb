package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// ExtendedMappingEntry is one row of the extended-mapping table built
// during variable initialization: the push-constant (buffer, field) pair
// backing a resource-descriptor SGPR loaded via SLoadDwordx4/8.
type ExtendedMappingEntry struct {
	Buffer int
	Field  int
}

// TranslationContext owns every artifact of one Generate call: the
// constant and variable pools, the SSA id counter, and the
// extended-mapping table. Nothing here outlives the call; there is no
// persistent state between invocations (spec invariant: pure and
// deterministic).
type TranslationContext struct {
	Code  *gcn.ShaderCode
	Debug bool

	Vertex  *binding.VertexInfo
	Pixel   *binding.PixelInfo
	Compute *binding.ComputeInfo

	Constants *ConstantPool
	Variables *VariablePool

	// ExtendedMapping is indexed by (register_id - Extended.StartRegister).
	ExtendedMapping map[uint32]ExtendedMappingEntry

	nextID uint32

	// CurrentPC tracks the instruction under translation, so rule
	// functions can report errors without threading pc through every
	// call.
	CurrentPC uint32
}

// NewTranslationContext allocates an empty context for code. Exactly one
// of Vertex/Pixel/Compute should be set by the caller afterward, matching
// code.Type.
func NewTranslationContext(code *gcn.ShaderCode) *TranslationContext {
	return &TranslationContext{
		Code:            code,
		Constants:       NewConstantPool(),
		Variables:       NewVariablePool(),
		ExtendedMapping: make(map[uint32]ExtendedMappingEntry),
		nextID:          1,
	}
}

// Resources returns the resource-binding layout for whichever stage info
// is set.
func (c *TranslationContext) Resources() binding.Resources {
	switch {
	case c.Vertex != nil:
		return c.Vertex.Resources
	case c.Pixel != nil:
		return c.Pixel.Resources
	case c.Compute != nil:
		return c.Compute.Resources
	default:
		return binding.Resources{}
	}
}

// NextIndex returns a monotonically increasing counter, substituted into
// every "<index>" placeholder in a rule's template so that independently
// emitted snippets remain SSA-unique within the function.
func (c *TranslationContext) NextIndex() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

// NewID allocates a fresh result id of the form "t<n>" (callers add
// the leading '%').
func (c *TranslationContext) NewID() string {
	return fmt.Sprintf("t%d", c.NextIndex())
}

// Errorf builds an *Error of kind at the instruction currently being
// translated.
func (c *TranslationContext) Errorf(kind ErrorKind, format string, args ...any) *Error {
	return NewInstructionError(kind, c.CurrentPC, fmt.Sprintf(format, args...))
}

// Bug is a shorthand for Errorf(ErrBug, ...): an emitter-internal
// invariant failed (e.g. a pool lookup returned its sentinel).
func (c *TranslationContext) Bug(format string, args ...any) *Error {
	return c.Errorf(ErrBug, format, args...)
}
