package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// Kind is the SPIR-V scalar type an operand is viewed as.
type Kind uint8

const (
	KindFloat Kind = iota
	KindUint
	KindInt
)

func (k Kind) spirvType() string {
	switch k {
	case KindFloat:
		return "%float"
	case KindUint:
		return "%uint"
	case KindInt:
		return "%int"
	default:
		return "%uint"
	}
}

// IsConstant/IsVariable/IsExec re-export the gcn package's pure operand
// predicates under the names the rule files already spell them with.
func IsConstant(op gcn.ShaderOperand) bool { return gcn.IsConstant(op) }
func IsVariable(op gcn.ShaderOperand) bool { return gcn.IsVariable(op) }
func IsExec(op gcn.ShaderOperand) bool     { return gcn.IsExec(op) }

// VariableName returns the scalar variable name and native SPIR-V type
// for op at the given shift (shift must be < op.Size). Register operands
// enumerate consecutive registers starting at RegisterID; VccLo/ExecLo
// expand to their lo/hi halves instead of consecutive register ids.
func VariableName(op gcn.ShaderOperand, shift uint32) (name string, kind Kind) {
	switch op.Type {
	case gcn.Vgpr:
		return fmt.Sprintf("v%d", op.RegisterID+shift), KindFloat
	case gcn.Sgpr:
		return fmt.Sprintf("s%d", op.RegisterID+shift), KindUint
	case gcn.VccLo:
		if shift == 0 {
			return "vcc_lo", KindUint
		}
		return "vcc_hi", KindUint
	case gcn.VccHi:
		return "vcc_hi", KindUint
	case gcn.ExecLo:
		if shift == 0 {
			return "exec_lo", KindUint
		}
		return "exec_hi", KindUint
	case gcn.ExecHi:
		return "exec_hi", KindUint
	case gcn.ExecZ:
		return "execz", KindUint
	case gcn.Scc:
		return "scc", KindUint
	case gcn.M0:
		return "m0", KindUint
	default:
		return "", KindUint
	}
}

// nativeConstantKind picks the kind a constant operand's bits were
// authored in: IntegerInlineConstant and FloatInlineConstant carry their
// kind directly; a bare LiteralConstant is a raw bit pattern and is
// pooled as Uint, matching the constant pool's "bit-pattern by default"
// convention for SGPR-shaped immediates.
func nativeConstantKind(op gcn.ShaderOperand) Kind {
	switch op.Type {
	case gcn.IntegerInlineConstant:
		return KindInt
	case gcn.FloatInlineConstant:
		return KindFloat
	default:
		return KindUint
	}
}
