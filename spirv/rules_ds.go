package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.DsAppend, gcn.FmtVdstM0, dsAtomic(OpAtomicIAdd, 1))
	register(gcn.DsConsume, gcn.FmtVdstM0, dsAtomic(OpAtomicISub, 1))
}

// dsAtomic builds the rule for {DsAppend, DsConsume}: an atomic
// add/sub of delta against gds[m0>>16], with the pre-op value
// returned in dst and a matching OpMemoryBarrier to order the GDS
// access against surrounding memory operations.
func dsAtomic(mnemonic string, delta uint32) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)

		m0, err := LoadUint(ctx, gcn.ShaderOperand{Type: gcn.M0}, 0)
		if err != nil {
			return nil, err
		}

		var lines []string
		lines = append(lines, m0.Lines...)

		shift16 := ctx.Constants.Get(ConstUint, 16)
		idxID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", idxID, OpShiftRightLogical, m0.ID, shift16))

		ptrID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%_ptr_StorageBuffer_uint %%gds %%%s", ptrID, OpAccessChain, idxID))

		scopeConst := ctx.Constants.Get(ConstUint, ScopeDeviceValue)
		semConst := ctx.Constants.Get(ConstUint, SemanticsAcquireReleaseValue)
		deltaConst := ctx.Constants.Get(ConstUint, delta)

		resID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s %%%s", resID, mnemonic, ptrID, scopeConst, semConst, deltaConst))
		lines = append(lines, fmt.Sprintf("%s %%%s %%%s", OpMemoryBarrier, scopeConst, semConst))

		lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, resID)...)
		return lines, nil
	}
}
