package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.SAndB32, gcn.FmtSVdstSVsrc0SVsrc1, scalarBitwise32(OpBitwiseAnd))
	register(gcn.SOrB32, gcn.FmtSVdstSVsrc0SVsrc1, scalarBitwise32(OpBitwiseOr))
	register(gcn.SXorB32, gcn.FmtSVdstSVsrc0SVsrc1, scalarBitwise32(OpBitwiseXor))
	register(gcn.SLshlB32, gcn.FmtSVdstSVsrc0SVsrc1, scalarBitwise32(OpShiftLeftLogical))
	register(gcn.SLshrB32, gcn.FmtSVdstSVsrc0SVsrc1, scalarBitwise32(OpShiftRightLogical))
	register(gcn.SCselectB32, gcn.FmtSVdstSVsrc0SVsrc1, scalarCselectB32)

	register(gcn.SAddI32, gcn.FmtSVdstSVsrc0SVsrc1, scalarAddI32)
	register(gcn.SMulI32, gcn.FmtSVdstSVsrc0SVsrc1, scalarMulI32)

	register(gcn.SAndB64, gcn.FmtSVdst2SVsrc0SVsrc1Pair, scalarBitwise64(OpBitwiseAnd))
	register(gcn.SOrB64, gcn.FmtSVdst2SVsrc0SVsrc1Pair, scalarBitwise64(OpBitwiseOr))
	register(gcn.SXorB64, gcn.FmtSVdst2SVsrc0SVsrc1Pair, scalarBitwise64(OpBitwiseXor))

	register(gcn.SMovB32, gcn.FmtSVdstSVsrc0, scalarMovB32)
	register(gcn.SMovB64, gcn.FmtSVdst2SVsrc0Pair, scalarMovB64)
	register(gcn.SWqmB64, gcn.FmtSVdst2SVsrc0Pair, scalarMovB64) // trivial ExecLo<-ExecLo case only
	register(gcn.SAndSaveexecB64, gcn.FmtSVdst2Implicit, scalarAndSaveexecB64)

	register(gcn.SCmpEqU32, gcn.FmtSVsrc0SVsrc1, scalarCompareU32(OpIEqual))
	register(gcn.SCmpLgU32, gcn.FmtSVsrc0SVsrc1, scalarCompareU32(OpINotEqual))
	register(gcn.SCmpGtU32, gcn.FmtSVsrc0SVsrc1, scalarCompareU32(OpUGreaterThan))
	register(gcn.SCmpGeU32, gcn.FmtSVsrc0SVsrc1, scalarCompareU32(OpUGreaterThanEqual))
	register(gcn.SCmpLtU32, gcn.FmtSVsrc0SVsrc1, scalarCompareU32(OpULessThan))
	register(gcn.SCmpLeU32, gcn.FmtSVsrc0SVsrc1, scalarCompareU32(OpULessThanEqual))
}

// storeU emits an OpStore of valueID into the uint variable named name.
func storeU(name, valueID string) string {
	return fmt.Sprintf("%s %%%s %%%s", OpStore, name, valueID)
}

// emitSccNonZero appends the standard "scc := (value != 0) ? 1 : 0" snippet.
func emitSccNonZero(ctx *TranslationContext, valueID string) []string {
	zero := ctx.Constants.Get(ConstUint, 0)
	one := ctx.Constants.Get(ConstUint, 1)
	boolID := ctx.NewID()
	selID := ctx.NewID()
	return []string{
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", boolID, OpINotEqual, valueID, zero),
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", selID, OpSelect, boolID, one, zero),
		storeU("scc", selID),
	}
}

func scalarBitwise32(mnemonic string) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		s0, err := LoadUint(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		s1, err := LoadUint(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		result := ctx.NewID()
		dstName, _ := VariableName(inst.Dst, 0)

		var lines []string
		lines = append(lines, s0.Lines...)
		lines = append(lines, s1.Lines...)
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", result, mnemonic, s0.ID, s1.ID))
		lines = append(lines, storeU(dstName, result))
		return lines, nil
	}
}

func scalarCselectB32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	s0, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	s1, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	zero := ctx.Constants.Get(ConstUint, 0)
	sccLoad := ctx.NewID()
	condID := ctx.NewID()
	selID := ctx.NewID()
	dstName, _ := VariableName(inst.Dst, 0)

	var lines []string
	lines = append(lines, s0.Lines...)
	lines = append(lines, s1.Lines...)
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%scc", sccLoad, OpLoad))
	lines = append(lines, fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", condID, OpINotEqual, sccLoad, zero))
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", selID, OpSelect, condID, s0.ID, s1.ID))
	lines = append(lines, storeU(dstName, selID))
	return lines, nil
}

func scalarAddI32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadInt(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadInt(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}

	zeroInt := ctx.Constants.Get(ConstInt, 0)
	sum := ctx.NewID()
	asUint := ctx.NewID()
	dstName, _ := VariableName(inst.Dst, 0)

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	lines = append(lines, fmt.Sprintf("%%%s = %s %%int %%%s %%%s", sum, OpIAdd, a.ID, b.ID))
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s", asUint, OpBitcast, sum))
	lines = append(lines, storeU(dstName, asUint))

	// SCC is signed-addition overflow: both operands share a sign and the
	// sum's sign differs from it. The formula holds for addition only; no
	// subtraction rule reuses it.
	signA, signB, signR := ctx.NewID(), ctx.NewID(), ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", signA, OpSLessThan, a.ID, zeroInt),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", signB, OpSLessThan, b.ID, zeroInt),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", signR, OpSLessThan, sum, zeroInt),
	)
	signsMatch := ctx.NewID()
	sameAsA := ctx.NewID()
	signChanged := ctx.NewID()
	overflow := ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", signsMatch, OpLogicalEqual, signA, signB),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", sameAsA, OpLogicalEqual, signR, signA),
		fmt.Sprintf("%%%s = %s %%bool %%%s", signChanged, OpLogicalNot, sameAsA),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", overflow, OpLogicalAnd, signsMatch, signChanged),
	)
	zero := ctx.Constants.Get(ConstUint, 0)
	one := ctx.Constants.Get(ConstUint, 1)
	sccVal := ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", sccVal, OpSelect, overflow, one, zero),
		storeU("scc", sccVal),
	)
	return lines, nil
}

func scalarMulI32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadInt(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadInt(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	prod := ctx.NewID()
	asUint := ctx.NewID()
	dstName, _ := VariableName(inst.Dst, 0)

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	lines = append(lines, fmt.Sprintf("%%%s = %s %%int %%%s %%%s", prod, OpIMul, a.ID, b.ID))
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s", asUint, OpBitcast, prod))
	lines = append(lines, storeU(dstName, asUint))
	return lines, nil
}

func scalarBitwise64(mnemonic string) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		lo0, err := LoadUint(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		hi0, err := LoadUint(ctx, inst.Src[0], 1)
		if err != nil {
			return nil, err
		}
		lo1, err := LoadUint(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		hi1, err := LoadUint(ctx, inst.Src[1], 1)
		if err != nil {
			return nil, err
		}

		loRes, hiRes := ctx.NewID(), ctx.NewID()
		dstLo, _ := VariableName(inst.Dst, 0)
		dstHi, _ := VariableName(inst.Dst, 1)

		var lines []string
		lines = append(lines, lo0.Lines...)
		lines = append(lines, hi0.Lines...)
		lines = append(lines, lo1.Lines...)
		lines = append(lines, hi1.Lines...)
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", loRes, mnemonic, lo0.ID, lo1.ID))
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", hiRes, mnemonic, hi0.ID, hi1.ID))
		lines = append(lines, storeU(dstLo, loRes))
		lines = append(lines, storeU(dstHi, hiRes))

		orHalves := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", orHalves, OpBitwiseOr, loRes, hiRes))
		lines = append(lines, emitSccNonZero(ctx, orHalves)...)
		return lines, nil
	}
}

func scalarMovB32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	s0, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	dstName, _ := VariableName(inst.Dst, 0)
	return append(append([]string{}, s0.Lines...), storeU(dstName, s0.ID)), nil
}

func scalarMovB64(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if inst.Type == gcn.SWqmB64 && (inst.Dst.Type != gcn.ExecLo || inst.Src[0].Type != gcn.ExecLo) {
		return nil, ctx.Errorf(ErrUnsupportedOperandShape, "SWqmB64 is only supported as exec <- exec")
	}
	lo, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	hi, err := LoadUint(ctx, inst.Src[0], 1)
	if err != nil {
		return nil, err
	}
	dstLo, _ := VariableName(inst.Dst, 0)
	dstHi, _ := VariableName(inst.Dst, 1)

	var lines []string
	lines = append(lines, lo.Lines...)
	lines = append(lines, hi.Lines...)
	lines = append(lines, storeU(dstLo, lo.ID))
	lines = append(lines, storeU(dstHi, hi.ID))

	if inst.Dst.Type == gcn.ExecLo {
		lines = append(lines, emitExeczRefresh(ctx, lo.ID, hi.ID)...)
	}
	return lines, nil
}

func scalarAndSaveexecB64(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	maskLo, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	maskHi, err := LoadUint(ctx, inst.Src[0], 1)
	if err != nil {
		return nil, err
	}

	oldLo, oldHi := ctx.NewID(), ctx.NewID()
	dstLo, _ := VariableName(inst.Dst, 0)
	dstHi, _ := VariableName(inst.Dst, 1)

	var lines []string
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%uint %%exec_lo", oldLo, OpLoad),
		fmt.Sprintf("%%%s = %s %%uint %%exec_hi", oldHi, OpLoad),
		storeU(dstLo, oldLo),
		storeU(dstHi, oldHi),
	)
	lines = append(lines, maskLo.Lines...)
	lines = append(lines, maskHi.Lines...)

	newLo, newHi := ctx.NewID(), ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", newLo, OpBitwiseAnd, oldLo, maskLo.ID),
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", newHi, OpBitwiseAnd, oldHi, maskHi.ID),
		storeU("exec_lo", newLo),
		storeU("exec_hi", newHi),
	)
	lines = append(lines, emitExeczRefresh(ctx, newLo, newHi)...)
	return lines, nil
}

// emitExeczRefresh appends "execz := (lo == 0) AND (hi == 0)".
func emitExeczRefresh(ctx *TranslationContext, loID, hiID string) []string {
	zero := ctx.Constants.Get(ConstUint, 0)
	one := ctx.Constants.Get(ConstUint, 1)
	loZero, hiZero := ctx.NewID(), ctx.NewID()
	both := ctx.NewID()
	sel := ctx.NewID()
	return []string{
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", loZero, OpIEqual, loID, zero),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", hiZero, OpIEqual, hiID, zero),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", both, OpLogicalAnd, loZero, hiZero),
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", sel, OpSelect, both, one, zero),
		storeU("execz", sel),
	}
}

func scalarCompareU32(mnemonic string) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		s0, err := LoadUint(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		s1, err := LoadUint(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		zero := ctx.Constants.Get(ConstUint, 0)
		one := ctx.Constants.Get(ConstUint, 1)
		condID := ctx.NewID()
		selID := ctx.NewID()

		var lines []string
		lines = append(lines, s0.Lines...)
		lines = append(lines, s1.Lines...)
		lines = append(lines, fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", condID, mnemonic, s0.ID, s1.ID))
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", selID, OpSelect, condID, one, zero))
		lines = append(lines, storeU("scc", selID))
		return lines, nil
	}
}
