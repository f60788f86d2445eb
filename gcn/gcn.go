// Package gcn defines the decoded-instruction data model consumed by the
// recompiler: AMD GCN shader instructions, their operands, and the small
// amount of per-shader metadata (stage, labels) the recompiler needs to
// walk them in order.
//
// Everything in this package is produced upstream (by a GCN disassembler)
// and is treated as read-only, borrowed input: see the gcnspirv package doc
// for the translation contract.
package gcn

// ShaderType identifies which pipeline stage a ShaderCode belongs to.
type ShaderType uint8

const (
	Vertex ShaderType = iota
	Pixel
	Compute
)

func (t ShaderType) String() string {
	switch t {
	case Vertex:
		return "Vertex"
	case Pixel:
		return "Pixel"
	case Compute:
		return "Compute"
	default:
		return "Unknown"
	}
}

// Label is a branch target: a source instruction at SrcPC branches to the
// instruction at DstPC. The SPIR-V label id formed from a Label is
// "label_<DstPC>_<SrcPC>", keeping multiple branches into the same DstPC
// distinguishable in the emitted module.
type Label struct {
	SrcPC uint32
	DstPC uint32
}

// ShaderCode is an ordered, decoded GCN instruction stream plus the minimal
// metadata the recompiler needs: which stage it targets and where its
// branch targets are.
type ShaderCode struct {
	Type         ShaderType
	Instructions []ShaderInstruction
	Labels       []Label
}

// HasAnyOf reports whether the instruction stream contains at least one
// instruction of any of the given types. Used by the support-function
// emitter to decide which helper functions to append.
func (c *ShaderCode) HasAnyOf(types ...InstructionType) bool {
	want := make(map[InstructionType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	for i := range c.Instructions {
		if want[c.Instructions[i].Type] {
			return true
		}
	}
	return false
}

// LabelsReversed returns the label table in reverse discovery order, as
// required by spec: labels are processed in reverse order of discovery but
// each is emitted exactly once, on the first instruction whose PC it
// targets.
func (c *ShaderCode) LabelsReversed() []Label {
	out := make([]Label, len(c.Labels))
	for i, l := range c.Labels {
		out[len(c.Labels)-1-i] = l
	}
	return out
}
