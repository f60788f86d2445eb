package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.SLoadDwordx4, gcn.FmtSdstQuadSsrcOffset, sLoadDwordx(4))
	register(gcn.SLoadDwordx8, gcn.FmtSdstOctSsrcOffset, sLoadDwordx(8))

	register(gcn.SBufferLoadDword, gcn.FmtSdstRangeSsrcOffset, sBufferLoadDwordx(1))
	register(gcn.SBufferLoadDwordx2, gcn.FmtSdstRangeSsrcOffset, sBufferLoadDwordx(2))
	register(gcn.SBufferLoadDwordx4, gcn.FmtSdstRangeSsrcOffset, sBufferLoadDwordx(4))
	register(gcn.SBufferLoadDwordx8, gcn.FmtSdstRangeSsrcOffset, sBufferLoadDwordx(8))
	register(gcn.SBufferLoadDwordx16, gcn.FmtSdstRangeSsrcOffset, sBufferLoadDwordx(16))

	register(gcn.BufferLoadDword, gcn.FmtVdataVaddrSrsrcOffsetIdxen, bufferLoadFloat1)
	register(gcn.BufferLoadFormatX, gcn.FmtVdataVaddrSrsrcOffsetIdxen, bufferLoadFloat1)
	register(gcn.BufferStoreDword, gcn.FmtVdataVaddrSrsrcOffsetIdxen, bufferStoreFloat1)
	register(gcn.BufferStoreFormatX, gcn.FmtVdataVaddrSrsrcOffsetIdxen, bufferStoreFloat1)
	register(gcn.TBufferLoadFormatXyzw, gcn.FmtVdataVaddrSrsrcDfmtNfmtOffset, tBufferLoadFormatXyzw)
}

// sLoadDwordx builds the rule for SLoadDwordx4/8: n resource-descriptor
// dwords resolved through the extended-mapping table that BuildBody
// fills via buildExtendedMapping (body.go), not through a direct
// register load.
func sLoadDwordx(n int) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		res := ctx.Resources()

		if !res.Extended.Used {
			return nil, ctx.Errorf(ErrUnsupportedBindingConfig, "SLoadDwordx%d requires an extended push-constant window", n)
		}
		if inst.Src[0].RegisterID != res.Extended.StartRegister {
			return nil, ctx.Errorf(ErrUnsupportedOperandShape,
				"SLoadDwordx%d source register s%d does not match extended window start s%d",
				n, inst.Src[0].RegisterID, res.Extended.StartRegister)
		}

		var lines []string
		for i := 0; i < n; i++ {
			rowIdx := inst.Src[0].RegisterID - res.Extended.StartRegister + uint32(i)
			entry, ok := ctx.ExtendedMapping[rowIdx]
			if !ok {
				return nil, ctx.Bug("extended-mapping table has no row %d", rowIdx)
			}

			bufConst := ctx.Constants.Get(ConstUint, uint32(entry.Buffer))
			fieldConst := ctx.Constants.Get(ConstUint, uint32(entry.Field))
			if bufConst == sentinelConstID || fieldConst == sentinelConstID {
				return nil, ctx.Bug("extended-mapping row %d references an unpooled constant", rowIdx)
			}

			accessID := ctx.NewID()
			loadID := ctx.NewID()
			dstName, _ := VariableName(inst.Dst, uint32(i))

			lines = append(lines,
				fmt.Sprintf("%%%s = %s %%_ptr_PushConstant_uint %%push_constants %%%s %%%s", accessID, OpAccessChain, bufConst, fieldConst),
				fmt.Sprintf("%%%s = %s %%uint %%%s", loadID, OpLoad, accessID),
				storeU(dstName, loadID),
			)
		}
		return lines, nil
	}
}

func sbufferHelperName(n int) string {
	if n == 1 {
		return "sbuffer_load_dword"
	}
	return fmt.Sprintf("sbuffer_load_dword_%d", n)
}

// sBufferLoadDwordx builds the rule for SBufferLoadDwordx{1,2,4,8,16}: n
// calls to the width's scalar-buffer-load helper, each fetching the next
// dword (buffer pointer in src0's SGPR pair, dword offset in src1).
func sBufferLoadDwordx(n int) RuleFunc {
	helper := sbufferHelperName(n)
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		ptrLo, err := LoadUint(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		ptrHi, err := LoadUint(ctx, inst.Src[0], 1)
		if err != nil {
			return nil, err
		}
		offset, err := LoadUint(ctx, inst.Src[1], 0)
		if err != nil {
			return nil, err
		}

		var lines []string
		lines = append(lines, ptrLo.Lines...)
		lines = append(lines, ptrHi.Lines...)
		lines = append(lines, offset.Lines...)

		for i := 0; i < n; i++ {
			callOffsetID := offset.ID
			if i > 0 {
				incConst := ctx.Constants.Get(ConstUint, uint32(i))
				sumID := ctx.NewID()
				lines = append(lines, fmt.Sprintf("%%%s = %s %%uint %%%s %%%s", sumID, OpIAdd, offset.ID, incConst))
				callOffsetID = sumID
			}
			callID := ctx.NewID()
			dstName, _ := VariableName(inst.Dst, uint32(i))
			lines = append(lines,
				fmt.Sprintf("%%%s = %s %%uint %%%s %%%s %%%s %%%s", callID, OpFunctionCall, helper, ptrLo.ID, ptrHi.ID, callOffsetID),
				storeU(dstName, callID),
			)
		}
		return lines, nil
	}
}

// bufferLoadFloat1 loads one float through the shared %buffer_load_float1
// helper. Per the documented (known-incorrect) EXEC-handling contract,
// loads ignore EXEC entirely.
func bufferLoadFloat1(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	vaddr, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	s0, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	s1, err := LoadUint(ctx, inst.Src[1], 1)
	if err != nil {
		return nil, err
	}
	offset, err := LoadUint(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}

	var lines []string
	lines = append(lines, vaddr.Lines...)
	lines = append(lines, s0.Lines...)
	lines = append(lines, s1.Lines...)
	lines = append(lines, offset.Lines...)

	callID := ctx.NewID()
	dstName, _ := VariableName(inst.Dst, 0)
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%float %%buffer_load_float1 %%%s %%%s %%%s %%%s", callID, OpFunctionCall, s0.ID, s1.ID, vaddr.ID, offset.ID),
		storeU(dstName, callID),
	)
	return lines, nil
}

// bufferStoreFloat1 stores one float through %buffer_store_float1, gated
// on exec_lo != 0 — TODO: check EXEC properly checks only the low half,
// reproducing the documented divergence rather than the full 64-bit mask.
func bufferStoreFloat1(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	vaddr, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	s0, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	s1, err := LoadUint(ctx, inst.Src[1], 1)
	if err != nil {
		return nil, err
	}
	offset, err := LoadUint(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}
	// The store's data source is encoded in the Dst field for this
	// instruction family (there is no destination write).
	value, err := LoadFloat(ctx, inst.Dst, 0)
	if err != nil {
		return nil, err
	}

	var lines []string
	lines = append(lines, vaddr.Lines...)
	lines = append(lines, s0.Lines...)
	lines = append(lines, s1.Lines...)
	lines = append(lines, offset.Lines...)
	lines = append(lines, value.Lines...)

	zero := ctx.Constants.Get(ConstUint, 0)
	execLoad := ctx.NewID()
	condID := ctx.NewID()
	trueLabel := fmt.Sprintf("store_%d", ctx.NextIndex())
	mergeLabel := fmt.Sprintf("store_merge_%d", ctx.NextIndex())

	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%uint %%exec_lo", execLoad, OpLoad),
		fmt.Sprintf("%%%s = %s %%bool %%%s %%%s", condID, OpINotEqual, execLoad, zero),
		fmt.Sprintf("%s %%%s None", OpSelectionMerge, mergeLabel),
		fmt.Sprintf("%s %%%s %%%s %%%s", OpBranchConditional, condID, trueLabel, mergeLabel),
		fmt.Sprintf("%%%s = %s", trueLabel, OpLabel),
		fmt.Sprintf("%s %%buffer_store_float1 %%%s %%%s %%%s %%%s %%%s", OpFunctionCall, s0.ID, s1.ID, vaddr.ID, offset.ID, value.ID),
		fmt.Sprintf("%s %%%s", OpBranch, mergeLabel),
		fmt.Sprintf("%%%s = %s", mergeLabel, OpLabel),
	)
	return lines, nil
}

// tBufferLoadFormatXyzw loads all four channels through
// %tbuffer_load_format_xyzw. The dfmt:nfmt format code (src[3]) must
// statically resolve to 119 (R32G32B32A32_FLOAT): other encodings fall
// through as a translation-time error rather than a runtime no-op, since
// this rule only ever matches the Xyzw instruction variant.
func tBufferLoadFormatXyzw(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if !IsConstant(inst.Src[3]) || inst.Src[3].U() != 119 {
		return nil, ctx.Errorf(ErrUnsupportedOperandShape, "tbuffer_load_format_xyzw requires dfmt:nfmt == 119")
	}

	vaddr, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	s0, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}
	s1, err := LoadUint(ctx, inst.Src[1], 1)
	if err != nil {
		return nil, err
	}
	offset, err := LoadUint(ctx, inst.Src[2], 0)
	if err != nil {
		return nil, err
	}

	var lines []string
	lines = append(lines, vaddr.Lines...)
	lines = append(lines, s0.Lines...)
	lines = append(lines, s1.Lines...)
	lines = append(lines, offset.Lines...)

	callID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%v4float %%tbuffer_load_format_xyzw %%%s %%%s %%%s %%%s", callID, OpFunctionCall, s0.ID, s1.ID, vaddr.ID, offset.ID))

	for i := 0; i < 4; i++ {
		extractID := ctx.NewID()
		dstName, _ := VariableName(inst.Dst, uint32(i))
		lines = append(lines,
			fmt.Sprintf("%%%s = %s %%float %%%s %d", extractID, OpCompositeExtract, callID, i),
			storeU(dstName, extractID),
		)
	}
	return lines, nil
}
