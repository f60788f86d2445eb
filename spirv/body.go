package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// Prepass walks every instruction once before body emission, populating
// the constant and variable pools so that Dispatch's rule functions can
// assume every pool lookup they make already succeeded. Grounded on the
// teacher's two-pass approach to the IR (a first pass records referenced
// handles, a second pass emits against a closed set).
func Prepass(ctx *TranslationContext) {
	code := ctx.Code
	ctx.Constants.SeedStageIO(computeWorkgroupSize(ctx))

	for i := range code.Instructions {
		inst := &code.Instructions[i]
		seedOperand(ctx, inst.Dst)
		seedOperand(ctx, inst.Dst2)
		for s := 0; s < inst.SrcNum; s++ {
			seedOperand(ctx, inst.Src[s])
		}
	}

	seedResourceRegisters(ctx, ctx.Resources())
}

// seedResourceRegisters declares the SGPR variables backing every
// resource-descriptor register range the binding info names, so
// SLoadDwordx4/8 and SBufferLoadDword* rules find their source SGPRs
// already in the pool even when the shader stream never itself writes
// them (they arrive pre-loaded by the pipeline's descriptor setup).
func seedResourceRegisters(ctx *TranslationContext, res binding.Resources) {
	seedRange := func(r binding.ResourceRange, slots uint32) {
		for _, start := range r.StartRegister {
			ctx.Variables.AddRegisterRange(start, slots)
		}
	}
	seedRange(res.StorageBuffers, 4)
	seedRange(res.Textures2D, 8)
	seedRange(res.Samplers, 4)
	seedRange(res.GDSPointers, 1)
}

func computeWorkgroupSize(ctx *TranslationContext) *[3]uint32 {
	if ctx.Compute == nil {
		return nil
	}
	t := ctx.Compute.ThreadsNum
	return &t
}

func seedOperand(ctx *TranslationContext, op gcn.ShaderOperand) {
	if IsConstant(op) {
		native := nativeConstantKind(op)
		ctx.Constants.AddFromOperand(native, op.Constant)
		return
	}
	ctx.Variables.AddOperand(op)
}

// BuildBody emits the single entry-point function: declarations, stage
// input materialization, the extended-mapping table, the instruction
// walk with label placement, and the closing OpFunctionEnd. Grounded on
// the teacher's per-function emission loop in Backend.Compile, adapted
// from SSA-value bookkeeping to this package's scalar-variable model.
func BuildBody(ctx *TranslationContext, mod *Module) *Error {
	code := ctx.Code

	var fn []string
	fn = append(fn, fmt.Sprintf("%%main = %s %%void None %%fn_void", OpFunction))
	fn = append(fn, fmt.Sprintf("%%entry = %s", OpLabel))
	fn = append(fn, ctx.Variables.Declarations()...)
	fn = append(fn, buildStageEntry(ctx)...)

	if err := buildExtendedMapping(ctx); err != nil {
		return err
	}

	labels := code.LabelsReversed()
	labelsAt := make(map[uint32][]string, len(labels))
	for _, l := range labels {
		labelsAt[l.DstPC] = append(labelsAt[l.DstPC], fmt.Sprintf("label_%d_%d", l.DstPC, l.SrcPC))
	}

	terminated := false
	for i := range code.Instructions {
		inst := &code.Instructions[i]
		for _, name := range labelsAt[inst.PC] {
			if !terminated {
				fn = append(fn, fmt.Sprintf("%s %%%s", OpBranch, name))
			}
			fn = append(fn, fmt.Sprintf("%%%s = %s", name, OpLabel))
			terminated = false
		}

		lines, err := Dispatch(ctx, i, code)
		if err != nil {
			return err
		}
		fn = append(fn, lines...)
		terminated = instructionTerminates(inst.Type)
	}

	if !terminated {
		fn = append(fn, OpReturn)
	}
	fn = append(fn, OpFunctionEnd)

	mod.Functions = append(mod.Functions, fn...)
	return nil
}

// instructionTerminates reports whether inst's rule already emitted a
// block terminator (SEndpgm emits OpReturn, or ends the kill pattern
// whose OpKill is already in place), so the per-label loop above must
// not also insert a fallthrough OpBranch. Conditional branches are not terminators here: their rule
// ends by opening the merge block, which still needs one.
func instructionTerminates(t gcn.InstructionType) bool {
	switch t {
	case gcn.SEndpgm:
		return true
	default:
		return false
	}
}

// buildStageEntry materializes the inputs every instruction in the body
// may assume are already sitting in their GCN register variables: the
// vertex index, the fragment coordinate when the pixel shader consumes
// it, and the compute invocation/workgroup ids.
func buildStageEntry(ctx *TranslationContext) []string {
	switch {
	case ctx.Vertex != nil:
		return vertexEntry(ctx)
	case ctx.Pixel != nil:
		return pixelEntry(ctx, ctx.Pixel)
	case ctx.Compute != nil:
		return computeEntry(ctx, ctx.Compute)
	default:
		return nil
	}
}

// pixelEntry materializes gl_FragCoord's x/y into v2/v3 when the shader
// was flagged as consuming the pixel position, matching GCN's convention
// of delivering the interpolated fragment position in fixed VGPRs ahead
// of the first interpolant read.
func pixelEntry(ctx *TranslationContext, p *binding.PixelInfo) []string {
	if !p.PSPosXY {
		return nil
	}
	var lines []string
	for i, dst := range []string{"v2", "v3"} {
		accessID := ctx.NewID()
		loadID := ctx.NewID()
		idxConst := ctx.Constants.Get(ConstUint, uint32(i))
		lines = append(lines,
			fmt.Sprintf("%%%s = %s %%_ptr_Input_float %%gl_FragCoord %%%s", accessID, OpAccessChain, idxConst),
			fmt.Sprintf("%%%s = %s %%float %%%s", loadID, OpLoad, accessID),
			storeU(dst, loadID),
		)
	}
	return lines
}

// computeEntry materializes the local-invocation and workgroup ids into
// their GCN register homes: v0/v1/v2 for gl_LocalInvocationID.xyz, and
// the SGPR ComputeInfo.WorkgroupRegister names for gl_WorkGroupID.x.
func computeEntry(ctx *TranslationContext, c *binding.ComputeInfo) []string {
	var lines []string
	for i, dst := range []string{"v0", "v1", "v2"} {
		extractID := ctx.NewID()
		castID := ctx.NewID()
		localID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %%v3uint %%gl_LocalInvocationID", localID, OpLoad))
		lines = append(lines,
			fmt.Sprintf("%%%s = %s %%uint %%%s %d", extractID, OpCompositeExtract, localID, i),
			fmt.Sprintf("%%%s = %s %%float %%%s", castID, OpBitcast, extractID),
			storeU(dst, castID),
		)
	}

	groupLoadID := ctx.NewID()
	groupExtractID := ctx.NewID()
	dstName := fmt.Sprintf("s%d", c.WorkgroupRegister)
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%v3uint %%gl_WorkGroupID", groupLoadID, OpLoad),
		fmt.Sprintf("%%%s = %s %%uint %%%s 0", groupExtractID, OpCompositeExtract, groupLoadID),
		storeU(dstName, groupExtractID),
	)
	return lines
}

func vertexEntry(ctx *TranslationContext) []string {
	loadID := ctx.NewID()
	castID := ctx.NewID()
	return []string{
		fmt.Sprintf("%%%s = %s %%uint %%gl_VertexIndex", loadID, OpLoad),
		fmt.Sprintf("%%%s = %s %%float %%%s", castID, OpBitcast, loadID),
		storeU("v0", castID),
	}
}

// buildExtendedMapping populates ctx.ExtendedMapping with the (buffer,
// field) pair each push-constant-backed resource descriptor's source
// SGPR resolves to, indexed by (register - StartRegister). The layout
// matches the ABI documented on binding.Resources: storage buffers, then
// two slots per texture (lo/hi), then samplers, then GDS pointers.
func buildExtendedMapping(ctx *TranslationContext) *Error {
	res := ctx.Resources()
	if !res.Extended.Used {
		return nil
	}
	base := res.Extended.StartRegister
	field := 0
	add := func(reg uint32) {
		ctx.ExtendedMapping[reg-base] = ExtendedMappingEntry{Buffer: 0, Field: field}
		field++
	}
	for _, r := range res.StorageBuffers.StartRegister {
		add(r)
	}
	for _, r := range res.Textures2D.StartRegister {
		add(r)
		add(r + 1)
	}
	for _, r := range res.Samplers.StartRegister {
		add(r)
	}
	for _, r := range res.GDSPointers.StartRegister {
		add(r)
	}
	return nil
}
