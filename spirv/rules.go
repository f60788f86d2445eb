package spirv

import (
	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// RuleFunc recompiles one instruction: it appends SPIR-V text for
// code.Instructions[index] and returns it as a slice of lines (the
// caller joins them into the growing function body). index is supplied
// because a few rules (fetch-thunk expansion, kill-pattern recognition)
// need to inspect neighboring instructions.
type RuleFunc func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error)

type ruleKey struct {
	typ    gcn.InstructionType
	format gcn.InstructionFormat
}

var ruleTable = map[ruleKey]RuleFunc{}

func register(typ gcn.InstructionType, format gcn.InstructionFormat, fn RuleFunc) {
	ruleTable[ruleKey{typ, format}] = fn
}

// Dispatch looks up and runs the rule for the instruction at index. A
// miss is ErrUnsupportedInstruction: no rule exists for this
// (type, format) pair.
func Dispatch(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := &code.Instructions[index]
	ctx.CurrentPC = inst.PC

	fn, ok := ruleTable[ruleKey{inst.Type, inst.Format}]
	if !ok {
		return nil, ctx.Errorf(ErrUnsupportedInstruction, "no rule for %s/%s", inst.Type, inst.Format)
	}
	return fn(ctx, index, code)
}

// instAt is a convenience accessor used by rules that need the instruction
// under translation's operands without repeatedly indexing code.
func instAt(code *gcn.ShaderCode, index int) *gcn.ShaderInstruction {
	return &code.Instructions[index]
}
