package spirv

// This file catalogues the SPIR-V mnemonics the emitter needs. These are
// not this package's invention — they are the textual spellings defined
// by the SPIR-V specification — narrowed to the subset the recompiler
// actually emits.

// Op* are the SPIR-V instruction mnemonics used across header.go,
// body.go, support.go and the rules files.
const (
	OpCapability       = "OpCapability"
	OpExtInstImport    = "OpExtInstImport"
	OpMemoryModel      = "OpMemoryModel"
	OpEntryPoint       = "OpEntryPoint"
	OpExecutionMode    = "OpExecutionMode"
	OpName             = "OpName"
	OpDecorate         = "OpDecorate"
	OpMemberDecorate   = "OpMemberDecorate"

	OpTypeVoid     = "OpTypeVoid"
	OpTypeBool     = "OpTypeBool"
	OpTypeInt      = "OpTypeInt"
	OpTypeFloat    = "OpTypeFloat"
	OpTypeVector   = "OpTypeVector"
	OpTypeArray    = "OpTypeArray"
	OpTypeRuntimeArray = "OpTypeRuntimeArray"
	OpTypeStruct   = "OpTypeStruct"
	OpTypePointer  = "OpTypePointer"
	OpTypeFunction = "OpTypeFunction"
	OpTypeImage    = "OpTypeImage"
	OpTypeSampler  = "OpTypeSampler"
	OpTypeSampledImage = "OpTypeSampledImage"

	OpConstant          = "OpConstant"
	OpConstantComposite = "OpConstantComposite"

	OpVariable = "OpVariable"
	OpLoad     = "OpLoad"
	OpStore    = "OpStore"
	OpAccessChain = "OpAccessChain"

	OpFunction       = "OpFunction"
	OpFunctionParameter = "OpFunctionParameter"
	OpFunctionCall   = "OpFunctionCall"
	OpLabel          = "OpLabel"
	OpBranch         = "OpBranch"
	OpBranchConditional = "OpBranchConditional"
	OpSelectionMerge = "OpSelectionMerge"
	OpReturn         = "OpReturn"
	OpReturnValue    = "OpReturnValue"
	OpFunctionEnd    = "OpFunctionEnd"
	OpKill           = "OpKill"
	OpUnreachable    = "OpUnreachable"

	OpBitcast  = "OpBitcast"
	OpSelect   = "OpSelect"
	OpCompositeConstruct  = "OpCompositeConstruct"
	OpCompositeExtract    = "OpCompositeExtract"

	OpIAdd   = "OpIAdd"
	OpISub   = "OpISub"
	OpIMul   = "OpIMul"
	OpSDiv   = "OpSDiv"
	OpUDiv   = "OpUDiv"
	OpBitwiseAnd = "OpBitwiseAnd"
	OpBitwiseOr  = "OpBitwiseOr"
	OpBitwiseXor = "OpBitwiseXor"
	OpShiftLeftLogical    = "OpShiftLeftLogical"
	OpShiftRightLogical   = "OpShiftRightLogical"
	OpShiftRightArithmetic = "OpShiftRightArithmetic"
	OpSMulExtended = "OpSMulExtended"
	OpUMulExtended = "OpUMulExtended"
	OpBitFieldUExtract = "OpBitFieldUExtract"

	OpFAdd = "OpFAdd"
	OpFSub = "OpFSub"
	OpFMul = "OpFMul"
	OpFNegate = "OpFNegate"
	OpFOrdEqual        = "OpFOrdEqual"
	OpFOrdLessThan     = "OpFOrdLessThan"
	OpFOrdGreaterThan  = "OpFOrdGreaterThan"
	OpFOrdLessThanEqual    = "OpFOrdLessThanEqual"
	OpFOrdGreaterThanEqual = "OpFOrdGreaterThanEqual"
	OpFUnordNotEqual   = "OpFUnordNotEqual"

	OpIEqual        = "OpIEqual"
	OpINotEqual     = "OpINotEqual"
	OpUGreaterThan  = "OpUGreaterThan"
	OpUGreaterThanEqual = "OpUGreaterThanEqual"
	OpULessThan     = "OpULessThan"
	OpULessThanEqual = "OpULessThanEqual"
	OpLogicalAnd    = "OpLogicalAnd"
	OpLogicalOr     = "OpLogicalOr"
	OpLogicalNot    = "OpLogicalNot"
	OpLogicalEqual  = "OpLogicalEqual"
	OpSLessThan     = "OpSLessThan"

	OpConvertFToS = "OpConvertFToS"
	OpConvertSToF = "OpConvertSToF"
	OpConvertFToU = "OpConvertFToU"
	OpConvertUToF = "OpConvertUToF"

	OpExtInst = "OpExtInst"

	OpSampledImage = "OpSampledImage"
	OpImageSampleImplicitLod = "OpImageSampleImplicitLod"

	OpAtomicIAdd = "OpAtomicIAdd"
	OpAtomicISub = "OpAtomicISub"
	OpMemoryBarrier = "OpMemoryBarrier"

	OpIAddCarry  = "OpIAddCarry"
	OpISubBorrow = "OpISubBorrow"
)

// GLSLstd450 mnemonics used by the float-compute rules beyond FClamp/
// PackHalf2x16.
const (
	GLSLstd450FMin = "FMin"
	GLSLstd450FMax = "FMax"
)

// Capability mnemonics.
const (
	CapabilityShader = "Shader"
)

// AddressingModel/MemoryModel mnemonics, used verbatim in the single
// OpMemoryModel line the emitter produces.
const (
	AddressingModelLogical = "Logical"
	MemoryModelGLSL450     = "GLSL450"
)

// ExecutionModel mnemonics, one per stage.
const (
	ExecutionModelVertex   = "Vertex"
	ExecutionModelFragment = "Fragment"
	ExecutionModelGLCompute = "GLCompute"
)

// ExecutionMode mnemonics.
const (
	ExecutionModeOriginUpperLeft = "OriginUpperLeft"
	ExecutionModeLocalSize       = "LocalSize"
)

// StorageClass mnemonics.
const (
	StorageClassInput          = "Input"
	StorageClassOutput         = "Output"
	StorageClassPrivate        = "Private"
	StorageClassFunction       = "Function"
	StorageClassUniformConstant = "UniformConstant"
	StorageClassPushConstant   = "PushConstant"
	StorageClassStorageBuffer  = "StorageBuffer"
)

// Decoration mnemonics.
const (
	DecorationBlock         = "Block"
	DecorationBufferBlock   = "BufferBlock"
	DecorationArrayStride   = "ArrayStride"
	DecorationOffset        = "Offset"
	DecorationLocation      = "Location"
	DecorationBinding       = "Binding"
	DecorationDescriptorSet = "DescriptorSet"
	DecorationBuiltIn       = "BuiltIn"
)

// BuiltIn mnemonics.
const (
	BuiltInPosition          = "Position"
	BuiltInVertexIndex       = "VertexIndex"
	BuiltInFragCoord         = "FragCoord"
	BuiltInLocalInvocationId = "LocalInvocationId"
	BuiltInWorkgroupId       = "WorkgroupId"
)

// Dim mnemonics for OpTypeImage.
const (
	Dim2D = "2D"
)

// ImageFormat mnemonic for OpTypeImage; Unknown defers format inference to
// the descriptor/sampler combination, matching a combined-image-sampler
// binding model.
const (
	ImageFormatUnknown = "Unknown"
)

// GLSLstd450 extended-instruction-set mnemonics, imported once per module
// as %glsl_std_450 and invoked via OpExtInst.
const (
	GLSLstd450FClamp         = "FClamp"
	GLSLstd450PackHalf2x16   = "PackHalf2x16"
	GLSLstd450UnpackHalf2x16 = "UnpackHalf2x16"
)

// Scope/MemorySemantics mnemonics. The GDS atomic rules do not use
// these; they pass the numeric values below.
const (
	ScopeUniform                  = "Uniform"
	MemorySemanticsAcquireRelease = "AcquireRelease"
)

// Numeric SPIR-V enumerant values for the GDS atomics' Scope/Semantics
// operands, referenced as plain pooled %uint constants rather than
// named enum constants (no disassembler re-derives the mnemonic from a
// textual %uint_N id).
const (
	ScopeDeviceValue                = 1
	SemanticsAcquireReleaseValue    = 8
)
