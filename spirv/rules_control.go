package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.SCbranchScc0, gcn.FmtSimm16, scalarCondBranch("scc", OpIEqual, ConstUint, 0))
	register(gcn.SCbranchScc1, gcn.FmtSimm16, scalarCondBranch("scc", OpIEqual, ConstUint, 1))
	register(gcn.SCbranchExecz, gcn.FmtSimm16, scalarCondBranch("execz", OpIEqual, ConstUint, 1))

	register(gcn.SEndpgm, gcn.FmtNone, scalarEndpgm)
	register(gcn.SWaitcnt, gcn.FmtNone, scalarWaitcnt)
}

// labelID forms the SPIR-V label id for a branch from srcPC to dstPC,
// matching gcn.Label's naming scheme so the body emitter's label-table
// walk and a rule's own branch-target computation always agree.
func labelID(srcPC, dstPC uint32) string {
	return fmt.Sprintf("label_%d_%d", dstPC, srcPC)
}

// scalarCondBranch builds a rule for a conditional scalar branch: load
// varName, compare it against compareValue with compareMnemonic, and
// branch to the pc+4+displacement target on a true result, falling
// through to a synthesized merge label otherwise. Per the structured
// control-flow invariant, that synthesized label doubles as the
// OpSelectionMerge join point.
func scalarCondBranch(varName, compareMnemonic string, compareKind ConstKind, compareValue uint32) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		if !IsConstant(inst.Src[0]) {
			return nil, ctx.Errorf(ErrUnsupportedOperandShape, "branch displacement operand is not a constant")
		}

		targetPC := uint32(int32(inst.PC) + 4 + inst.Src[0].I())
		trueLabel := labelID(inst.PC, targetPC)
		falseLabel := fmt.Sprintf("merge_%d", ctx.NextIndex())
		constID := ctx.Constants.Get(compareKind, compareValue)

		loadID := ctx.NewID()
		condID := ctx.NewID()

		return []string{
			fmt.Sprintf("%%%s = %s %%uint %%%s", loadID, OpLoad, varName),
			fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", condID, compareMnemonic, loadID, constID),
			fmt.Sprintf("%s %%%s None", OpSelectionMerge, falseLabel),
			fmt.Sprintf("%s %%%s %%%s %%%s", OpBranchConditional, condID, trueLabel, falseLabel),
			fmt.Sprintf("%%%s = %s", falseLabel, OpLabel),
		}, nil
	}
}

// scalarEndpgm emits OpReturn, unless this SEndpgm is the third
// instruction of the canonical pixel-kill pattern
// (SMovB64 EXEC,0 ; Exp Mrt0,off,off,compr,vm,done ; SEndpgm), in which
// case the Exp rule already emitted OpKill and no OpReturn follows it.
func scalarEndpgm(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	if index >= 2 {
		movExec := code.Instructions[index-2]
		exp := code.Instructions[index-1]
		if movExec.Type == gcn.SMovB64 && movExec.Dst.Type == gcn.ExecLo &&
			exp.Type == gcn.Exp && exp.Format == gcn.FmtExpMrt0OffOffComprVmDone {
			return nil, nil
		}
	}
	return []string{OpReturn}, nil
}

// scalarWaitcnt is a pipeline hint with no SSA effect in this model.
func scalarWaitcnt(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	return nil, nil
}
