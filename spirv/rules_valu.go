package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	// Family 12: V-ALU float ops.
	register(gcn.VAddF32, gcn.FmtVdstVsrc0Vsrc1, valuFloatBinary(OpFAdd))
	register(gcn.VMulF32, gcn.FmtVdstVsrc0Vsrc1, valuFloatBinary(OpFMul))
	register(gcn.VMinF32, gcn.FmtVdstVsrc0Vsrc1, valuFloatExtBinary(GLSLstd450FMin))
	register(gcn.VMaxF32, gcn.FmtVdstVsrc0Vsrc1, valuFloatExtBinary(GLSLstd450FMax))
	register(gcn.VSubF32, gcn.FmtVdstVsrc0Vsrc1, valuFloatBinary(OpFSub))
	register(gcn.VSubrevF32, gcn.FmtVdstVsrc0Vsrc1, valuFloatBinaryReversed(OpFSub))
	register(gcn.VMacF32, gcn.FmtVdstVsrc0Vsrc1, valuMacF32)
	register(gcn.VMadF32, gcn.FmtVdstVsrc0Vsrc1Vsrc2, valuMadF32)
	register(gcn.VCvtF32I32, gcn.FmtVdstVsrc0, valuCvtF32FromI32)
	register(gcn.VCvtI32F32, gcn.FmtVdstVsrc0, valuCvtI32FromF32)
	register(gcn.VCvtF32U32, gcn.FmtVdstVsrc0, valuCvtF32FromU32)
	register(gcn.VCvtU32F32, gcn.FmtVdstVsrc0, valuCvtU32FromF32)

	// Family 13: V-ALU int/uint ops.
	register(gcn.VMulU32U24, gcn.FmtVdstVsrc0Vsrc1, valuMulU32U24)
	register(gcn.VMadU32U24, gcn.FmtVdstVsrc0Vsrc1Vsrc2, valuMadU32U24)
	register(gcn.VMulLoI32, gcn.FmtVdstVsrc0Vsrc1, valuMulLoI32)
	register(gcn.VSadU32, gcn.FmtVdstVsrc0Vsrc1Vsrc2, valuSadU32)
	register(gcn.VBfeU32, gcn.FmtVdstVsrc0Vsrc1Vsrc2, valuBfeU32)
	register(gcn.VAddI32, gcn.FmtSdstVsrc0Vsrc1, valuAddSubI32Carry(OpIAddCarry, false))
	register(gcn.VSubI32, gcn.FmtSdstVsrc0Vsrc1, valuAddSubI32Carry(OpISubBorrow, false))
	register(gcn.VSubrevI32, gcn.FmtSdstVsrc0Vsrc1, valuAddSubI32Carry(OpISubBorrow, true))
	register(gcn.VLshlB32, gcn.FmtVdstVsrc0Vsrc1, valuShift(OpShiftLeftLogical, false))
	register(gcn.VLshrB32, gcn.FmtVdstVsrc0Vsrc1, valuShift(OpShiftRightLogical, false))
	register(gcn.VAshrI32, gcn.FmtVdstVsrc0Vsrc1, valuShift(OpShiftRightArithmetic, true))

	// Family 14: compare ops.
	register(gcn.VCmpEqF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdEqual, false))
	register(gcn.VCmpLtF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdLessThan, false))
	register(gcn.VCmpGtF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdGreaterThan, false))
	register(gcn.VCmpLeF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdLessThanEqual, false))
	register(gcn.VCmpGeF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdGreaterThanEqual, false))
	register(gcn.VCmpNeqF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFUnordNotEqual, false))
	register(gcn.VCmpxEqF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdEqual, true))
	register(gcn.VCmpxLtF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdLessThan, true))
	register(gcn.VCmpxGtF32, gcn.FmtSdstVsrc0Vsrc1, valuCompareFloat(OpFOrdGreaterThan, true))

	// Family 15: cndmask.
	register(gcn.VCndmaskB32, gcn.FmtVdstVsrc0Vsrc1Vcc, valuCndmaskB32)

	// Family 16: half-float pack.
	register(gcn.VCvtPkrtzF16F32, gcn.FmtVdstVsrc0Vsrc1, valuCvtPkrtzF16F32)
}

// postProcessFloat appends the destination-side output modifiers shared
// by every family-12 float op: multiply by dst.Multiplier (when set and
// not 1.0), then clamp to [0,1] (when dst.Clamp). The constants come
// from the constant pool's fixed float seed (0.0, 0.5, 1.0, 2.0, 4.0);
// the prepass does not add multiplier constants, so a multiplier that is
// neither in that seed nor used as a constant operand elsewhere resolves
// to the sentinel id, which Validate rejects.
func postProcessFloat(ctx *TranslationContext, dst gcn.ShaderOperand, valueID string) ([]string, string) {
	var lines []string
	cur := valueID

	if dst.Multiplier != 0 && dst.Multiplier != 1.0 {
		multConst := ctx.Constants.Get(ConstFloat, floatBits(dst.Multiplier))
		mulID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", mulID, OpFMul, cur, multConst))
		cur = mulID
	}
	if dst.Clamp {
		zero := ctx.Constants.Get(ConstFloat, floatBits(0))
		one := ctx.Constants.Get(ConstFloat, floatBits(1))
		clampID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%glsl_std_450 %s %%%s %%%s %%%s", clampID, OpExtInst, GLSLstd450FClamp, cur, zero, one))
		cur = clampID
	}
	return lines, cur
}

func valuFloatBinary(mnemonic string) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		a, err := LoadFloat(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := LoadFloat(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		resID := ctx.NewID()
		var lines []string
		lines = append(lines, a.Lines...)
		lines = append(lines, b.Lines...)
		lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", resID, mnemonic, a.ID, b.ID))
		post, final := postProcessFloat(ctx, inst.Dst, resID)
		lines = append(lines, post...)
		dstName, _ := VariableName(inst.Dst, 0)
		lines = append(lines, storeU(dstName, final))
		return lines, nil
	}
}

// valuFloatBinaryReversed is valuFloatBinary with its two sources
// swapped, for the _rev variants (v_subrev_f32 computes src1 - src0).
func valuFloatBinaryReversed(mnemonic string) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		a, err := LoadFloat(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := LoadFloat(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		resID := ctx.NewID()
		var lines []string
		lines = append(lines, a.Lines...)
		lines = append(lines, b.Lines...)
		lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", resID, mnemonic, b.ID, a.ID))
		post, final := postProcessFloat(ctx, inst.Dst, resID)
		lines = append(lines, post...)
		dstName, _ := VariableName(inst.Dst, 0)
		lines = append(lines, storeU(dstName, final))
		return lines, nil
	}
}

func valuFloatExtBinary(extName string) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		a, err := LoadFloat(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := LoadFloat(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		resID := ctx.NewID()
		var lines []string
		lines = append(lines, a.Lines...)
		lines = append(lines, b.Lines...)
		lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%glsl_std_450 %s %%%s %%%s", resID, OpExtInst, extName, a.ID, b.ID))
		post, final := postProcessFloat(ctx, inst.Dst, resID)
		lines = append(lines, post...)
		dstName, _ := VariableName(inst.Dst, 0)
		lines = append(lines, storeU(dstName, final))
		return lines, nil
	}
}

func valuMacF32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadFloat(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadFloat(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	dstName, _ := VariableName(inst.Dst, 0)

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	prodID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", prodID, OpFMul, a.ID, b.ID))
	accID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s", accID, OpLoad, dstName))
	sumID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", sumID, OpFAdd, accID, prodID))
	post, final := postProcessFloat(ctx, inst.Dst, sumID)
	lines = append(lines, post...)
	lines = append(lines, storeU(dstName, final))
	return lines, nil
}

func valuMadF32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadFloat(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadFloat(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	c, err := LoadFloat(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	lines = append(lines, c.Lines...)
	prodID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", prodID, OpFMul, a.ID, b.ID))
	sumID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s", sumID, OpFAdd, prodID, c.ID))
	post, final := postProcessFloat(ctx, inst.Dst, sumID)
	lines = append(lines, post...)
	dstName, _ := VariableName(inst.Dst, 0)
	lines = append(lines, storeU(dstName, final))
	return lines, nil
}

func valuCvtF32FromI32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadInt(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	resID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s", resID, OpConvertSToF, a.ID))
	post, final := postProcessFloat(ctx, inst.Dst, resID)
	lines = append(lines, post...)
	dstName, _ := VariableName(inst.Dst, 0)
	lines = append(lines, storeU(dstName, final))
	return lines, nil
}

func valuCvtF32FromU32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	resID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s", resID, OpConvertUToF, a.ID))
	post, final := postProcessFloat(ctx, inst.Dst, resID)
	lines = append(lines, post...)
	dstName, _ := VariableName(inst.Dst, 0)
	lines = append(lines, storeU(dstName, final))
	return lines, nil
}

// valuCvtI32FromF32 and valuCvtU32FromF32 produce a dst whose SPIR-V
// result type is not float, so the output-modifier pass (defined in
// terms of %float arithmetic) does not apply; the result is bitcast
// straight into the VGPR's native float-typed variable.
func valuCvtI32FromF32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadFloat(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	resID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%int %%%s", resID, OpConvertFToS, a.ID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindInt, resID)...)
	return lines, nil
}

func valuCvtU32FromF32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadFloat(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	resID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s", resID, OpConvertFToU, a.ID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, resID)...)
	return lines, nil
}

func valuMulU32U24(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	mask := ctx.Constants.Get(ConstUint, 0xffffff)

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	a24, b24 := ctx.NewID(), ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", a24, OpBitwiseAnd, a.ID, mask),
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", b24, OpBitwiseAnd, b.ID, mask),
	)
	callID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%mul_lo_uint %%%s %%%s", callID, OpFunctionCall, a24, b24))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, callID)...)
	return lines, nil
}

func valuMadU32U24(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	c, err := LoadUint(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}
	mask := ctx.Constants.Get(ConstUint, 0xffffff)

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	lines = append(lines, c.Lines...)
	a24, b24 := ctx.NewID(), ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", a24, OpBitwiseAnd, a.ID, mask),
		fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", b24, OpBitwiseAnd, b.ID, mask),
	)
	prodID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%mul_lo_uint %%%s %%%s", prodID, OpFunctionCall, a24, b24))
	sumID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", sumID, OpIAdd, prodID, c.ID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, sumID)...)
	return lines, nil
}

func valuMulLoI32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadInt(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadInt(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	callID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%int %%mul_lo_int %%%s %%%s", callID, OpFunctionCall, a.ID, b.ID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindInt, callID)...)
	return lines, nil
}

func valuSadU32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	c, err := LoadUint(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	lines = append(lines, c.Lines...)
	diffID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%abs_diff %%%s %%%s", diffID, OpFunctionCall, a.ID, b.ID))
	sumID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", sumID, OpIAdd, diffID, c.ID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, sumID)...)
	return lines, nil
}

func valuBfeU32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	base, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	offset, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	count, err := LoadUint(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, base.Lines...)
	lines = append(lines, offset.Lines...)
	lines = append(lines, count.Lines...)
	resID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", resID, OpBitFieldUExtract, base.ID, offset.ID, count.ID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, resID)...)
	return lines, nil
}

// valuAddSubI32Carry builds the rule for the {VAddI32, VSubI32,
// VSubrevI32} family: produce the 32-bit result plus a carry/borrow
// flag via the struct-returning SPIR-V arithmetic op, storing the
// result in dst and the flag (lo: flag, hi: 0) in the VCC-shaped dst2
// pair.
func valuAddSubI32Carry(mnemonic string, reversed bool) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		a, err := LoadUint(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := LoadUint(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		lhs, rhs := a.ID, b.ID
		if reversed {
			lhs, rhs = b.ID, a.ID
		}

		var lines []string
		lines = append(lines, a.Lines...)
		lines = append(lines, b.Lines...)
		structID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%_struct_uint_uint %%%s %%%s", structID, mnemonic, lhs, rhs))
		resultID, flagID := ctx.NewID(), ctx.NewID()
		lines = append(lines,
			fmt.Sprintf("%%%s = %s %%uint %%%s 0", resultID, OpCompositeExtract, structID),
			fmt.Sprintf("%%%s = %s %%uint %%%s 1", flagID, OpCompositeExtract, structID),
		)
		lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, resultID)...)

		dst2Lo, _ := VariableName(inst.Dst2, 0)
		dst2Hi, _ := VariableName(inst.Dst2, 1)
		zero := ctx.Constants.Get(ConstUint, 0)
		lines = append(lines, storeU(dst2Lo, flagID), storeU(dst2Hi, zero))
		return lines, nil
	}
}

// valuShift builds the rule for {VLshlB32, VLshrB32, VAshrI32}: the
// shift count is masked to its low 5 bits before use, matching hardware
// 32-bit shift-amount wraparound.
func valuShift(mnemonic string, signedBase bool) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		var base Loaded
		var err *Error
		if signedBase {
			base, err = LoadInt(ctx, inst.Src[0], 0)
		} else {
			base, err = LoadUint(ctx, inst.Src[0], 0)
		}
		if err != nil {
			return nil, err
		}
		shiftRaw, err := LoadUint(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		mask := ctx.Constants.Get(ConstUint, 31)

		var lines []string
		lines = append(lines, base.Lines...)
		lines = append(lines, shiftRaw.Lines...)
		maskedID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", maskedID, OpBitwiseAnd, shiftRaw.ID, mask))

		baseType := "%uint"
		kind := KindUint
		if signedBase {
			baseType = "%int"
			kind = KindInt
		}
		resID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %s %%%s %%%s", resID, mnemonic, baseType, base.ID, maskedID))
		lines = append(lines, StoreValue(ctx, inst.Dst, 0, kind, resID)...)
		return lines, nil
	}
}

// valuCompareFloat builds the rule for the {VCmp*, VCmpx*} family: write
// the comparison result (1/0) into dst's SGPR pair, and for the x
// variants additionally overwrite EXEC with the same pattern and
// refresh EXECZ.
func valuCompareFloat(mnemonic string, alsoExec bool) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		a, err := LoadFloat(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := LoadFloat(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}
		zero := ctx.Constants.Get(ConstUint, 0)
		one := ctx.Constants.Get(ConstUint, 1)

		var lines []string
		lines = append(lines, a.Lines...)
		lines = append(lines, b.Lines...)
		condID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", condID, mnemonic, a.ID, b.ID))
		loID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s", loID, OpSelect, condID, one, zero))

		dstLo, _ := VariableName(inst.Dst, 0)
		dstHi, _ := VariableName(inst.Dst, 1)
		lines = append(lines, storeU(dstLo, loID), storeU(dstHi, zero))

		if alsoExec {
			lines = append(lines, storeU("exec_lo", loID), storeU("exec_hi", zero))
			lines = append(lines, emitExeczRefresh(ctx, loID, zero)...)
		}
		return lines, nil
	}
}

func valuCndmaskB32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadFloat(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadFloat(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	condName, _ := VariableName(inst.Src[2], 0)
	zero := ctx.Constants.Get(ConstUint, 0)

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	condLoad := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s", condLoad, OpLoad, condName))
	condBool := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", condBool, OpINotEqual, condLoad, zero))
	selID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%float %%%s %%%s %%%s", selID, OpSelect, condBool, a.ID, b.ID))
	dstName, _ := VariableName(inst.Dst, 0)
	lines = append(lines, storeU(dstName, selID))
	return lines, nil
}

func valuCvtPkrtzF16F32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	a, err := LoadFloat(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadFloat(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)
	vecID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%v2float %%%s %%%s", vecID, OpCompositeConstruct, a.ID, b.ID))
	packID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%glsl_std_450 %s %%%s", packID, OpExtInst, GLSLstd450PackHalf2x16, vecID))
	lines = append(lines, StoreValue(ctx, inst.Dst, 0, KindUint, packID)...)
	return lines, nil
}
