package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// VariablePool is the set of scalar SSA-addressable variables the
// translation will materialize as SPIR-V function-scope OpVariables.
// Same dedup-by-key shape as ConstantPool, keyed by rendered name instead
// of (kind, bits).
type VariablePool struct {
	seen  map[string]Kind
	order []string
}

// NewVariablePool returns a pool pre-seeded with the registers every
// shader needs regardless of which instructions it contains: v0, the
// EXEC pair, EXECZ, SCC, and M0.
func NewVariablePool() *VariablePool {
	p := &VariablePool{seen: make(map[string]Kind, 64)}
	p.add("v0", KindFloat)
	p.add("exec_lo", KindUint)
	p.add("exec_hi", KindUint)
	p.add("execz", KindUint)
	p.add("scc", KindUint)
	p.add("m0", KindUint)
	return p
}

func (p *VariablePool) add(name string, kind Kind) {
	if _, ok := p.seen[name]; ok {
		return
	}
	p.seen[name] = kind
	p.order = append(p.order, name)
}

// AddOperand expands op across its full Size and adds each resulting
// scalar variable to the pool.
func (p *VariablePool) AddOperand(op gcn.ShaderOperand) {
	if !IsVariable(op) {
		return
	}
	size := op.Size
	if size == 0 {
		size = 1
	}
	for shift := uint32(0); shift < size; shift++ {
		name, kind := VariableName(op, shift)
		if name == "" {
			continue
		}
		p.add(name, kind)
	}
}

// AddRegisterRange adds a contiguous block of SGPRs, e.g. the register
// range backing a storage-buffer or texture descriptor.
func (p *VariablePool) AddRegisterRange(startRegister, count uint32) {
	for i := uint32(0); i < count; i++ {
		p.add(fmt.Sprintf("s%d", startRegister+i), KindUint)
	}
}

// Contains reports whether name has been added to the pool.
func (p *VariablePool) Contains(name string) bool {
	_, ok := p.seen[name]
	return ok
}

// Declarations renders one OpVariable line per pooled entry, in
// insertion order.
func (p *VariablePool) Declarations() []string {
	lines := make([]string, 0, len(p.order))
	for _, name := range p.order {
		kind := p.seen[name]
		ptrType := ptrFunctionType(kind)
		lines = append(lines, fmt.Sprintf("%%%s = %s %s %s", name, OpVariable, ptrType, StorageClassFunction))
	}
	return lines
}

func ptrFunctionType(kind Kind) string {
	switch kind {
	case KindFloat:
		return "%_ptr_Function_float"
	default:
		return "%_ptr_Function_uint"
	}
}
