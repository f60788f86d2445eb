package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// BuildSupport conditionally appends helper function bodies the rule
// files call by name (%abs_diff, %mul_lo_uint, %mul_lo_int, %fetch_vfN,
// %buffer_load_float1, %buffer_store_float1, %tbuffer_load_format_xyzw,
// %sbuffer_load_dword[_N]) -- each one only if code actually contains an
// instruction that calls it, mirroring the teacher's pattern of emitting
// a helper function's IR once per module and calling it from every site
// that needs it instead of inlining the expansion at each call site.
func BuildSupport(ctx *TranslationContext, mod *Module) {
	code := ctx.Code

	if code.HasAnyOf(gcn.VAddI32, gcn.VSubI32, gcn.VSubrevI32) {
		mod.Types = append(mod.Types, "%_struct_uint_uint = "+OpTypeStruct+" %uint %uint")
	}
	if code.HasAnyOf(gcn.VSadU32) {
		mod.Types = append(mod.Types, "%fn_uint_uint_uint = "+OpTypeFunction+" %uint %uint %uint")
		mod.Functions = append(mod.Functions, absDiffFn()...)
	}
	if code.HasAnyOf(gcn.VMulLoI32) {
		mod.Types = append(mod.Types,
			"%fn_int_int_int = "+OpTypeFunction+" %int %int %int",
			"%_struct_int_int = "+OpTypeStruct+" %int %int",
		)
		mod.Functions = append(mod.Functions, mulLoFn("mul_lo_int", OpSMulExtended)...)
	}
	if code.HasAnyOf(gcn.SSwappcB64) {
		for _, n := range []uint32{1, 2, 3, 4} {
			mod.Types = append(mod.Types, fmt.Sprintf("%%fn_fetch_%d = %s %s %%v4float", n, OpTypeFunction, fetchResultType(n)))
			mod.Functions = append(mod.Functions, fetchVfFn(n)...)
		}
	}
	if code.HasAnyOf(gcn.BufferLoadDword, gcn.BufferLoadFormatX) {
		mod.Types = append(mod.Types, "%fn_float_uint_uint = "+OpTypeFunction+" %float %uint %uint")
		mod.Functions = append(mod.Functions, bufferLoadFloat1Fn()...)
	}
	if code.HasAnyOf(gcn.BufferStoreDword, gcn.BufferStoreFormatX) {
		mod.Types = append(mod.Types, "%fn_void_uint_uint_float = "+OpTypeFunction+" %void %uint %uint %float")
		mod.Functions = append(mod.Functions, bufferStoreFloat1Fn()...)
	}
	if code.HasAnyOf(gcn.TBufferLoadFormatXyzw) {
		mod.Types = append(mod.Types, "%fn_v4float_uint_uint = "+OpTypeFunction+" %v4float %uint %uint")
		mod.Functions = append(mod.Functions, tbufferLoadFormatXyzwFn()...)
	}
	if code.HasAnyOf(gcn.SBufferLoadDword, gcn.SBufferLoadDwordx2, gcn.SBufferLoadDwordx4,
		gcn.SBufferLoadDwordx8, gcn.SBufferLoadDwordx16) {
		mod.Types = append(mod.Types, "%fn_uint_uint_uint_uint = "+OpTypeFunction+" %uint %uint %uint %uint")
	}
	if code.HasAnyOf(gcn.SBufferLoadDword) {
		mod.Functions = append(mod.Functions, sbufferLoadDwordFn(1)...)
	}
	if code.HasAnyOf(gcn.SBufferLoadDwordx2) {
		mod.Functions = append(mod.Functions, sbufferLoadDwordFn(2)...)
	}
	if code.HasAnyOf(gcn.SBufferLoadDwordx4) {
		mod.Functions = append(mod.Functions, sbufferLoadDwordFn(4)...)
	}
	if code.HasAnyOf(gcn.SBufferLoadDwordx8) {
		mod.Functions = append(mod.Functions, sbufferLoadDwordFn(8)...)
	}
	if code.HasAnyOf(gcn.SBufferLoadDwordx16) {
		mod.Functions = append(mod.Functions, sbufferLoadDwordFn(16)...)
	}
}

func absDiffFn() []string {
	return []string{
		"%abs_diff = " + OpFunction + " %uint None %fn_uint_uint_uint",
		"%abs_diff_a = " + OpFunctionParameter + " %uint",
		"%abs_diff_b = " + OpFunctionParameter + " %uint",
		"%abs_diff_entry = " + OpLabel,
		"%abs_diff_cmp = " + OpUGreaterThan + " %bool %abs_diff_a %abs_diff_b",
		"%abs_diff_fwd = " + OpISub + " %uint %abs_diff_a %abs_diff_b",
		"%abs_diff_rev = " + OpISub + " %uint %abs_diff_b %abs_diff_a",
		"%abs_diff_result = " + OpSelect + " %uint %abs_diff_cmp %abs_diff_fwd %abs_diff_rev",
		OpReturnValue + " %abs_diff_result",
		OpFunctionEnd,
	}
}

// mulLoFn appends a wide-multiply helper returning only the low 32 bits,
// using the struct-returning Extended multiply so a single instruction
// gives both halves.
func mulLoFn(name, mnemonic string) []string {
	return []string{
		fmt.Sprintf("%%%s = %s %%int None %%fn_int_int_int", name, OpFunction),
		fmt.Sprintf("%%%s_a = %s %%int", name, OpFunctionParameter),
		fmt.Sprintf("%%%s_b = %s %%int", name, OpFunctionParameter),
		fmt.Sprintf("%%%s_entry = %s", name, OpLabel),
		fmt.Sprintf("%%%s_wide = %s %%_struct_int_int %%%s_a %%%s_b", name, mnemonic, name, name),
		fmt.Sprintf("%%%s_lo = %s %%int %%%s_wide 0", name, OpCompositeExtract, name),
		fmt.Sprintf("%s %%%s_lo", OpReturnValue, name),
		OpFunctionEnd,
	}
}

func fetchVfFn(registersNum uint32) []string {
	name := fetchHelperName(registersNum)
	resultType := fetchResultType(registersNum)
	lines := []string{
		fmt.Sprintf("%%%s = %s %s None %%fn_fetch_%d", name, OpFunction, resultType, registersNum),
		fmt.Sprintf("%%%s_attr = %s %%v4float", name, OpFunctionParameter),
		fmt.Sprintf("%%%s_entry = %s", name, OpLabel),
	}
	if registersNum == 1 {
		extractID := fmt.Sprintf("%s_x", name)
		lines = append(lines,
			fmt.Sprintf("%%%s = %s %%float %%%s_attr 0", extractID, OpCompositeExtract, name),
			fmt.Sprintf("%s %%%s", OpReturnValue, extractID),
		)
	} else {
		lines = append(lines, fmt.Sprintf("%s %%%s_attr", OpReturnValue, name))
	}
	return append(lines, OpFunctionEnd)
}

func bufferLoadFloat1Fn() []string {
	return []string{
		"%buffer_load_float1 = " + OpFunction + " %float None %fn_float_uint_uint",
		"%buffer_load_float1_srsrc = " + OpFunctionParameter + " %uint",
		"%buffer_load_float1_offset = " + OpFunctionParameter + " %uint",
		"%buffer_load_float1_entry = " + OpLabel,
		"%buffer_load_float1_ptr = " + OpAccessChain + " %_ptr_StorageBuffer_uint %gds %buffer_load_float1_offset",
		"%buffer_load_float1_bits = " + OpLoad + " %uint %buffer_load_float1_ptr",
		"%buffer_load_float1_value = " + OpBitcast + " %float %buffer_load_float1_bits",
		OpReturnValue + " %buffer_load_float1_value",
		OpFunctionEnd,
	}
}

func bufferStoreFloat1Fn() []string {
	return []string{
		"%buffer_store_float1 = " + OpFunction + " %void None %fn_void_uint_uint_float",
		"%buffer_store_float1_srsrc = " + OpFunctionParameter + " %uint",
		"%buffer_store_float1_offset = " + OpFunctionParameter + " %uint",
		"%buffer_store_float1_value = " + OpFunctionParameter + " %float",
		"%buffer_store_float1_entry = " + OpLabel,
		"%buffer_store_float1_ptr = " + OpAccessChain + " %_ptr_StorageBuffer_uint %gds %buffer_store_float1_offset",
		"%buffer_store_float1_bits = " + OpBitcast + " %uint %buffer_store_float1_value",
		OpStore + " %buffer_store_float1_ptr %buffer_store_float1_bits",
		OpReturn,
		OpFunctionEnd,
	}
}

func tbufferLoadFormatXyzwFn() []string {
	return []string{
		"%tbuffer_load_format_xyzw = " + OpFunction + " %v4float None %fn_v4float_uint_uint",
		"%tbuffer_load_format_xyzw_srsrc = " + OpFunctionParameter + " %uint",
		"%tbuffer_load_format_xyzw_offset = " + OpFunctionParameter + " %uint",
		"%tbuffer_load_format_xyzw_entry = " + OpLabel,
		"%tbuffer_load_format_xyzw_ptr = " + OpAccessChain + " %_ptr_StorageBuffer_uint %gds %tbuffer_load_format_xyzw_offset",
		"%tbuffer_load_format_xyzw_bits = " + OpLoad + " %uint %tbuffer_load_format_xyzw_ptr",
		"%tbuffer_load_format_xyzw_scalar = " + OpBitcast + " %float %tbuffer_load_format_xyzw_bits",
		"%tbuffer_load_format_xyzw_value = " + OpCompositeConstruct +
			" %v4float %tbuffer_load_format_xyzw_scalar %tbuffer_load_format_xyzw_scalar " +
			"%tbuffer_load_format_xyzw_scalar %tbuffer_load_format_xyzw_scalar",
		OpReturnValue + " %tbuffer_load_format_xyzw_value",
		OpFunctionEnd,
	}
}

// sbufferLoadDwordFn builds the width-n scalar-buffer-load helper:
// (ptrLo, ptrHi, offset uint) -> uint, one dword fetched from the
// GDS-backed storage buffer at byte offset*4. sBufferLoadDwordx calls
// this once per dword in its width, each with a different offset, so
// every width gets its own identically-bodied helper rather than one
// helper returning a wide composite -- matching the per-dword dispatch
// at the call site.
func sbufferLoadDwordFn(dwords uint32) []string {
	name := sbufferHelperName(int(dwords))
	return []string{
		fmt.Sprintf("%%%s = %s %%uint None %%fn_uint_uint_uint_uint", name, OpFunction),
		fmt.Sprintf("%%%s_ptr_lo = %s %%uint", name, OpFunctionParameter),
		fmt.Sprintf("%%%s_ptr_hi = %s %%uint", name, OpFunctionParameter),
		fmt.Sprintf("%%%s_offset = %s %%uint", name, OpFunctionParameter),
		fmt.Sprintf("%%%s_entry = %s", name, OpLabel),
		fmt.Sprintf("%%%s_access = %s %%_ptr_StorageBuffer_uint %%gds %%%s_offset", name, OpAccessChain, name),
		fmt.Sprintf("%%%s_bits = %s %%uint %%%s_access", name, OpLoad, name),
		fmt.Sprintf("%s %%%s_bits", OpReturnValue, name),
		OpFunctionEnd,
	}
}
