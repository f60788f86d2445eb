package spirv

import (
	"fmt"
	"strings"

	"github.com/InoriRus/kyty-gcnspirv/binding"
)

// BuildHeader populates every module section except Functions: the fixed
// capability/memory-model preamble, the stage's type/global declarations,
// and (once the interface list is known) the entry point and execution
// mode lines. Grounded on the phase order of the teacher's
// Backend.Compile (capabilities, ext-inst import, memory model,
// decorations, types, constants, globals, entry-point interface
// variables, then entry points themselves, deferred until function IDs —
// here, interface variable names — are known).
func BuildHeader(ctx *TranslationContext, mod *Module) *Error {
	mod.Debug = ctx.Debug
	mod.Capabilities = []string{fmt.Sprintf("%s %s", OpCapability, CapabilityShader)}
	mod.ExtInstImports = []string{fmt.Sprintf("%%glsl_std_450 = %s \"GLSL.std.450\"", OpExtInstImport)}
	mod.MemoryModel = fmt.Sprintf("%s %s %s", OpMemoryModel, AddressingModelLogical, MemoryModelGLSL450)
	mod.Types = append(mod.Types, baseTypeDeclarations()...)

	b := &headerBuilder{ctx: ctx, mod: mod, declaredTypes: map[string]bool{}}
	switch {
	case ctx.Vertex != nil:
		b.buildVertex(ctx.Vertex)
	case ctx.Pixel != nil:
		b.buildPixel(ctx.Pixel)
	case ctx.Compute != nil:
		b.buildCompute(ctx.Compute)
	default:
		return ctx.Bug("translation context has no stage info attached")
	}

	execModel, execModes := executionModeLines(ctx)
	mod.ExecutionModes = execModes

	var wrapped []string
	for _, name := range b.interfaces {
		wrapped = append(wrapped, "%"+name)
	}
	mod.EntryPoints = []string{fmt.Sprintf("%s %s %%main \"main\" %s", OpEntryPoint, execModel, strings.Join(wrapped, " "))}

	if ctx.Debug {
		mod.DebugNames = append(mod.DebugNames, fmt.Sprintf("%s %%main \"main\"", OpName))
	}
	return nil
}

func baseTypeDeclarations() []string {
	return []string{
		fmt.Sprintf("%%void = %s", OpTypeVoid),
		fmt.Sprintf("%%bool = %s", OpTypeBool),
		fmt.Sprintf("%%int = %s 32 1", OpTypeInt),
		fmt.Sprintf("%%uint = %s 32 0", OpTypeInt),
		fmt.Sprintf("%%float = %s 32", OpTypeFloat),
		fmt.Sprintf("%%v2float = %s %%float 2", OpTypeVector),
		fmt.Sprintf("%%v3float = %s %%float 3", OpTypeVector),
		fmt.Sprintf("%%v3uint = %s %%uint 3", OpTypeVector),
		fmt.Sprintf("%%v4float = %s %%float 4", OpTypeVector),
		fmt.Sprintf("%%fn_void = %s %%void", OpTypeFunction),
		"%_ptr_Function_float = " + OpTypePointer + " Function %float",
		"%_ptr_Function_uint = " + OpTypePointer + " Function %uint",
	}
}

func executionModeLines(ctx *TranslationContext) (string, []string) {
	switch {
	case ctx.Vertex != nil:
		return ExecutionModelVertex, nil
	case ctx.Pixel != nil:
		return ExecutionModelFragment, []string{fmt.Sprintf("%s %%main %s", OpExecutionMode, ExecutionModeOriginUpperLeft)}
	case ctx.Compute != nil:
		t := ctx.Compute.ThreadsNum
		return ExecutionModelGLCompute, []string{fmt.Sprintf("%s %%main %s %d %d %d", OpExecutionMode, ExecutionModeLocalSize, t[0], t[1], t[2])}
	default:
		return ExecutionModelVertex, nil
	}
}

// headerBuilder accumulates interface variable names and deduplicates
// the on-demand pointer types each stage's I/O variables need.
type headerBuilder struct {
	ctx           *TranslationContext
	mod           *Module
	declaredTypes map[string]bool
	interfaces    []string
}

func (b *headerBuilder) declarePtrType(name, storageClass, pointee string) {
	if b.declaredTypes[name] {
		return
	}
	b.declaredTypes[name] = true
	b.mod.Types = append(b.mod.Types, fmt.Sprintf("%%%s = %s %s %s", name, OpTypePointer, storageClass, pointee))
}

func (b *headerBuilder) global(name, ptrType, storageClass string) {
	b.mod.GlobalVars = append(b.mod.GlobalVars, fmt.Sprintf("%%%s = %s %%%s %s", name, OpVariable, ptrType, storageClass))
}

func (b *headerBuilder) decorateBuiltin(name, builtin string) {
	b.mod.Annotations = append(b.mod.Annotations, fmt.Sprintf("%s %%%s %s %s", OpDecorate, name, DecorationBuiltIn, builtin))
}

func (b *headerBuilder) decorateLocation(name string, location uint32) {
	b.mod.Annotations = append(b.mod.Annotations, fmt.Sprintf("%s %%%s %s %d", OpDecorate, name, DecorationLocation, location))
}

func (b *headerBuilder) buildVertex(v *binding.VertexInfo) {
	b.declarePtrType("_ptr_Input_uint", StorageClassInput, "%uint")
	b.declarePtrType("_ptr_Output_v4float", StorageClassOutput, "%v4float")
	b.declarePtrType("_ptr_Input_float", StorageClassInput, "%float")

	b.global("gl_VertexIndex", "_ptr_Input_uint", StorageClassInput)
	b.decorateBuiltin("gl_VertexIndex", BuiltInVertexIndex)
	b.interfaces = append(b.interfaces, "gl_VertexIndex")

	b.global("gl_Position", "_ptr_Output_v4float", StorageClassOutput)
	b.decorateBuiltin("gl_Position", BuiltInPosition)
	b.interfaces = append(b.interfaces, "gl_Position")

	for _, f := range v.Fetches {
		typ := fetchResultType(f.RegistersNum)
		ptrName := fmt.Sprintf("_ptr_Input_%s", strings.TrimPrefix(typ, "%"))
		b.declarePtrType(ptrName, StorageClassInput, typ)
		name := fmt.Sprintf("in_attr%d", f.AttrIndex)
		b.global(name, ptrName, StorageClassInput)
		b.decorateLocation(name, f.AttrIndex)
		b.interfaces = append(b.interfaces, name)
	}
	for i := uint32(0); i < v.ExportCount; i++ {
		name := fmt.Sprintf("out_param%d", i)
		b.global(name, "_ptr_Output_v4float", StorageClassOutput)
		b.decorateLocation(name, i)
		b.interfaces = append(b.interfaces, name)
	}
	b.buildResources(v.Resources)
}

func (b *headerBuilder) buildPixel(p *binding.PixelInfo) {
	b.declarePtrType("_ptr_Input_v4float", StorageClassInput, "%v4float")
	b.declarePtrType("_ptr_Input_float", StorageClassInput, "%float")
	b.declarePtrType("_ptr_Output_v4float", StorageClassOutput, "%v4float")

	if p.PSPosXY {
		b.global("gl_FragCoord", "_ptr_Input_v4float", StorageClassInput)
		b.decorateBuiltin("gl_FragCoord", BuiltInFragCoord)
		b.interfaces = append(b.interfaces, "gl_FragCoord")
	}
	for i := uint32(0); i < p.InputNum; i++ {
		name := fmt.Sprintf("attr%d", i)
		b.global(name, "_ptr_Input_float", StorageClassInput)
		b.decorateLocation(name, i)
		b.interfaces = append(b.interfaces, name)
	}
	for i := range p.TargetOutputMode {
		name := fmt.Sprintf("out_color%d", i)
		b.global(name, "_ptr_Output_v4float", StorageClassOutput)
		b.decorateLocation(name, uint32(i))
		b.interfaces = append(b.interfaces, name)
	}
	b.buildResources(p.Resources)
}

func (b *headerBuilder) buildCompute(c *binding.ComputeInfo) {
	b.declarePtrType("_ptr_Input_v3uint", StorageClassInput, "%v3uint")
	b.global("gl_LocalInvocationID", "_ptr_Input_v3uint", StorageClassInput)
	b.decorateBuiltin("gl_LocalInvocationID", BuiltInLocalInvocationId)
	b.interfaces = append(b.interfaces, "gl_LocalInvocationID")

	b.global("gl_WorkGroupID", "_ptr_Input_v3uint", StorageClassInput)
	b.decorateBuiltin("gl_WorkGroupID", BuiltInWorkgroupId)
	b.interfaces = append(b.interfaces, "gl_WorkGroupID")

	b.buildResources(c.Resources)
}

// buildResources declares the push-constant block, bound textures/
// samplers, and the GDS backing array, all at the stage's configured
// descriptor set.
func (b *headerBuilder) buildResources(res binding.Resources) {
	if res.PushConstantSize > 0 || res.Extended.Used {
		b.declarePtrType("_ptr_PushConstant_uint", StorageClassPushConstant, "%uint")
		words := res.PushConstantSize / 4
		if words == 0 {
			words = 1
		}
		wordsConst := b.ctx.Constants.Add(ConstUint, words)
		if !b.declaredTypes["arr_push_constants"] {
			b.declaredTypes["arr_push_constants"] = true
			b.mod.Types = append(b.mod.Types,
				fmt.Sprintf("%%arr_push_constants = %s %%uint %%%s", OpTypeArray, wordsConst),
				fmt.Sprintf("%%struct_push_constants = %s %%arr_push_constants", OpTypeStruct),
				"%_ptr_PushConstant_struct_push_constants = "+OpTypePointer+" PushConstant %struct_push_constants",
			)
			b.mod.Annotations = append(b.mod.Annotations,
				fmt.Sprintf("%s %%struct_push_constants %s", OpDecorate, DecorationBlock),
				fmt.Sprintf("%s %%struct_push_constants 0 %s 0", OpMemberDecorate, DecorationOffset),
			)
		}
		b.global("push_constants", "_ptr_PushConstant_struct_push_constants", StorageClassPushConstant)
	}

	if res.Textures2D.Count > 0 {
		b.declarePtrType("_ptr_UniformConstant_image2d", StorageClassUniformConstant, "%sampled_image2d")
		if !b.declaredTypes["image2d"] {
			b.declaredTypes["image2d"] = true
			b.mod.Types = append(b.mod.Types,
				fmt.Sprintf("%%image2d = %s %%float %s 0 0 0 1 %s", OpTypeImage, Dim2D, ImageFormatUnknown),
				fmt.Sprintf("%%sampled_image2d = %s %%image2d", OpTypeSampledImage),
				"%_ptr_UniformConstant_sampler = "+OpTypePointer+" UniformConstant %sampler",
				fmt.Sprintf("%%sampler = %s", OpTypeSampler),
			)
		}
		for i := uint32(0); i < res.Textures2D.Count; i++ {
			name := fmt.Sprintf("tex%d", i)
			b.global(name, "_ptr_UniformConstant_image2d", StorageClassUniformConstant)
			b.mod.Annotations = append(b.mod.Annotations,
				fmt.Sprintf("%s %%%s %s %d", OpDecorate, name, DecorationDescriptorSet, res.DescriptorSetSlot),
				fmt.Sprintf("%s %%%s %s %d", OpDecorate, name, DecorationBinding, res.Textures2D.BindingIndex+i),
			)
		}
	}
	if res.Samplers.Count > 0 {
		for i := uint32(0); i < res.Samplers.Count; i++ {
			name := fmt.Sprintf("samp%d", i)
			b.global(name, "_ptr_UniformConstant_sampler", StorageClassUniformConstant)
			b.mod.Annotations = append(b.mod.Annotations,
				fmt.Sprintf("%s %%%s %s %d", OpDecorate, name, DecorationDescriptorSet, res.DescriptorSetSlot),
				fmt.Sprintf("%s %%%s %s %d", OpDecorate, name, DecorationBinding, res.Samplers.BindingIndex+i),
			)
		}
	}
	// %gds and its backing pointer type are declared unconditionally: the
	// buffer/tbuffer/sbuffer support-function bodies (support.go) route
	// every storage-buffer-shaped access through this one binding in this
	// reduced binding model, not only the ds_append/ds_consume GDS atomics,
	// so they need it regardless of which specific resource ranges a given
	// stage declares.
	if !b.declaredTypes["gds"] {
		b.declaredTypes["gds"] = true
		b.mod.Types = append(b.mod.Types,
			fmt.Sprintf("%%arr_gds = %s %%uint", OpTypeRuntimeArray),
			fmt.Sprintf("%%struct_gds = %s %%arr_gds", OpTypeStruct),
			"%_ptr_StorageBuffer_struct_gds = "+OpTypePointer+" StorageBuffer %struct_gds",
			"%_ptr_StorageBuffer_uint = "+OpTypePointer+" StorageBuffer %uint",
		)
		b.mod.Annotations = append(b.mod.Annotations, fmt.Sprintf("%s %%struct_gds %s", OpDecorate, DecorationBufferBlock))
	}
	b.global("gds", "_ptr_StorageBuffer_struct_gds", StorageClassStorageBuffer)
	gdsBinding := res.GDSPointers.BindingIndex
	b.mod.Annotations = append(b.mod.Annotations,
		fmt.Sprintf("%s %%gds %s %d", OpDecorate, DecorationDescriptorSet, res.DescriptorSetSlot),
		fmt.Sprintf("%s %%gds %s %d", OpDecorate, DecorationBinding, gdsBinding),
	)
}
