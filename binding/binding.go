// Package binding describes the stage I/O and pipeline-resource binding
// layout that accompanies a gcn.ShaderCode: which attributes/interpolants
// a stage consumes, and where its storage buffers, textures, samplers and
// GDS pointers live in the push-constant layout.
//
// Like gcn, this package is borrowed, read-only input: it is produced by
// the surrounding pipeline-state builder, not by the recompiler.
package binding

// ResourceRange describes one class of resource (storage buffers,
// textures, samplers, or GDS pointers) bound to a stage: how many there
// are, which Vulkan descriptor binding they occupy, which GCN SGPR each
// one's descriptor starts at, and — per resource — whether it is loaded
// eagerly at stage entry or deferred to the extended-mapping table (see
// ExtendedInfo).
type ResourceRange struct {
	Count         uint32
	BindingIndex  uint32
	StartRegister []uint32
	Extended      []bool
}

// ExtendedInfo describes the push-constant-backed resource descriptor
// window: SLoadDwordx4/SLoadDwordx8 whose source SGPR equals
// StartRegister are resolved through the extended-mapping table rather
// than a direct register load; any other source register is rejected.
type ExtendedInfo struct {
	Used          bool
	StartRegister uint32
}

// Resources is the resource-binding layout shared by all three stages.
// Slot order within the push-constant layout is part of the ABI with the
// Vulkan pipeline-layout builder: storage buffers, then textures (two
// 16-byte slots each, lo/hi), then samplers, then GDS pointers.
type Resources struct {
	DescriptorSetSlot uint32

	StorageBuffers ResourceRange
	Textures2D     ResourceRange
	Samplers       ResourceRange
	GDSPointers    ResourceRange

	PushConstantOffset uint32
	PushConstantSize   uint32

	Extended ExtendedInfo
}

// FetchDescriptor is one vertex-input attribute fetch: RegistersNum
// consecutive VGPRs starting at RegisterStart receive the components of
// vertex attribute AttrIndex.
type FetchDescriptor struct {
	RegisterStart uint32
	RegistersNum  uint32 // 1, 2, 3, or 4
	AttrIndex     uint32
}

// VertexInfo is the vertex-stage I/O and resource-binding description.
type VertexInfo struct {
	Fetches     []FetchDescriptor
	ExportCount uint32
	Fetch       bool // true iff the shader begins with the SSwappcB64 fetch-thunk pattern
	Resources   Resources
}

// TargetOutputMode values for PixelInfo.TargetOutputMode.
const (
	TargetOutputPackedHalf = 4
	TargetOutputFourFloat  = 9
)

// PixelInfo is the pixel-stage I/O and resource-binding description.
type PixelInfo struct {
	InputNum          uint32
	PSPosXY           bool // gl_FragCoord is consumed into v2/v3
	PSPixelKillEnable bool
	TargetOutputMode  []uint32 // indexed by MRT; TargetOutputPackedHalf or TargetOutputFourFloat
	Resources         Resources
}

// ComputeInfo is the compute-stage I/O and resource-binding description.
type ComputeInfo struct {
	ThreadsNum        [3]uint32
	WorkgroupRegister uint32 // SGPR that receives gl_WorkGroupID.x
	Resources         Resources
}
