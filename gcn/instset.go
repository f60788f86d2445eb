package gcn

// InstructionType identifies a decoded GCN opcode. The full AMD GCN ISA
// has on the order of 150 opcodes; this enumerates the subset the
// recompiler implements a rule for (see spec.md §4.E's 21 rule
// families) — every value here except VMovB32 has a corresponding entry
// in the spirv package's rule table; a VMovB32 instruction fails
// translation with ErrUnsupportedInstruction.
type InstructionType uint16

const (
	// Scalar ALU
	SMovB32 InstructionType = iota
	SMovB64
	SAddI32
	SMulI32
	SAndB32
	SOrB32
	SXorB32
	SLshlB32
	SLshrB32
	SCselectB32
	SAndB64
	SOrB64
	SXorB64
	SAndSaveexecB64
	SWqmB64

	// Scalar compare (sets SCC)
	SCmpEqU32
	SCmpLgU32
	SCmpGtU32
	SCmpGeU32
	SCmpLtU32
	SCmpLeU32

	// Scalar control flow
	SCbranchScc0
	SCbranchScc1
	SCbranchExecz
	SEndpgm
	SWaitcnt

	// Scalar memory
	SLoadDwordx4
	SLoadDwordx8
	SBufferLoadDword
	SBufferLoadDwordx2
	SBufferLoadDwordx4
	SBufferLoadDwordx8
	SBufferLoadDwordx16

	// Scalar program-counter / fetch-shader thunk
	SSwappcB64

	// Vector ALU - float
	VMovB32
	VAddF32
	VMulF32
	VMinF32
	VMaxF32
	VSubF32
	VSubrevF32
	VMacF32
	VMadF32
	VCvtF32I32
	VCvtI32F32
	VCvtF32U32
	VCvtU32F32
	VCvtPkrtzF16F32

	// Vector ALU - integer/uint
	VMulU32U24
	VMadU32U24
	VMulLoI32
	VSadU32
	VBfeU32
	VAddI32
	VSubI32
	VSubrevI32
	VLshlB32
	VLshrB32
	VAshrI32

	// Vector compare
	VCmpEqF32
	VCmpLtF32
	VCmpGtF32
	VCmpLeF32
	VCmpGeF32
	VCmpNeqF32
	VCmpxEqF32
	VCmpxLtF32
	VCmpxGtF32

	VCndmaskB32

	// Interpolation
	VInterpP1F32
	VInterpP2F32

	// Vector memory - buffer
	BufferLoadDword
	BufferLoadFormatX
	BufferStoreDword
	BufferStoreFormatX
	TBufferLoadFormatXyzw

	// Vector memory - image
	ImageSample

	// Export
	Exp

	// Global data share
	DsAppend
	DsConsume
)

// InstructionFormat identifies a decoded GCN operand/encoding shape. The
// full ISA has on the order of 80 encoding shapes; this enumerates the
// subset used by the recompiler's rule table.
type InstructionFormat uint16

const (
	FmtNone InstructionFormat = iota

	// Scalar ALU
	FmtSVdstSVsrc0
	FmtSVdstSVsrc0SVsrc1
	FmtSVdst2SVsrc0Pair
	FmtSVdst2SVsrc0SVsrc1Pair
	FmtSVdst2Implicit // SAndSaveexecB64: dst pair written, EXEC read/written implicitly

	// Scalar compare (implicit SCC destination)
	FmtSVsrc0SVsrc1

	// Scalar branch
	FmtSimm16

	// Scalar memory
	FmtSdstQuadSsrcOffset // SLoadDwordx4
	FmtSdstOctSsrcOffset  // SLoadDwordx8
	FmtSdstRangeSsrcOffset

	// Fetch-shader thunk
	FmtSVdst2Ssrc0Pair

	// Vector ALU
	FmtVdstVsrc0
	FmtVdstVsrc0Vsrc1
	FmtVdstVsrc0Vsrc1Vsrc2
	FmtVdstVsrc0Vsrc1Vcc // VCndmaskB32: Src[2] is the VCC-shaped select pair

	// Vector compare, and the VAddI32/VSubI32/VSubrevI32 carry forms
	// (Dst2 carries the carry/borrow SGPR pair)
	FmtSdstVsrc0Vsrc1

	// Interpolation
	FmtNoneAttrChan  // not produced by gcnasm nor matched by any rule
	FmtVdstAttrChan  // VInterpP1F32, VInterpP2F32

	// Vector memory - buffer/image
	FmtVdataVaddrSrsrcOffsetIdxen
	FmtVdataVaddrSrsrcDfmtNfmtOffset
	FmtVdataVaddrSrsrcSsampDmask7
	FmtVdataVaddrSrsrcSsampDmaskF

	// Export (target MRT/param/pos index carried on ShaderInstruction.ExportTarget)
	FmtExpMrt0Vsrc0Vsrc1ComprVmDone
	FmtExpMrtVsrc0Vsrc1Vsrc2Vsrc3VmDone
	FmtExpMrt0OffOffComprVmDone
	FmtExpParamVsrc0Vsrc1Vsrc2Vsrc3
	FmtExpPosVsrc0Vsrc1Vsrc2Vsrc3Done

	// GDS
	FmtVdstM0
)
