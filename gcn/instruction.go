package gcn

// ShaderInstruction is one decoded GCN instruction: an opcode/format pair
// plus up to four source operands, one or two destination operands, and
// the handful of encoding fields a few instruction families need beyond
// the common operand slots.
type ShaderInstruction struct {
	PC     uint32
	Type   InstructionType
	Format InstructionFormat

	Dst  ShaderOperand
	Dst2 ShaderOperand // second destination: VCC/carry pair, SGPR-pair high half, ...

	Src    [4]ShaderOperand
	SrcNum int

	// Attr/Chan are the interpolant attribute index and component channel
	// consulted by VInterpP1F32/VInterpP2F32.
	Attr uint32
	Chan uint32

	// ExportTarget is the MRT/param/position index consulted by Exp; its
	// meaning depends on Format (FmtExpMrt0..., FmtExpParam..., FmtExpPos...).
	ExportTarget uint32
}

// String names the instruction's opcode, for diagnostics.
func (t InstructionType) String() string {
	if name, ok := instructionTypeNames[t]; ok {
		return name
	}
	return "UnknownInstruction"
}

// String names the instruction's operand encoding shape, for diagnostics.
func (f InstructionFormat) String() string {
	if name, ok := instructionFormatNames[f]; ok {
		return name
	}
	return "UnknownFormat"
}

var instructionTypeNames = map[InstructionType]string{
	SMovB32:               "s_mov_b32",
	SMovB64:                "s_mov_b64",
	SAddI32:                "s_add_i32",
	SMulI32:                "s_mul_i32",
	SAndB32:                "s_and_b32",
	SOrB32:                 "s_or_b32",
	SXorB32:                "s_xor_b32",
	SLshlB32:               "s_lshl_b32",
	SLshrB32:               "s_lshr_b32",
	SCselectB32:            "s_cselect_b32",
	SAndB64:                "s_and_b64",
	SOrB64:                 "s_or_b64",
	SXorB64:                "s_xor_b64",
	SAndSaveexecB64:        "s_and_saveexec_b64",
	SWqmB64:                "s_wqm_b64",
	SCmpEqU32:              "s_cmp_eq_u32",
	SCmpLgU32:              "s_cmp_lg_u32",
	SCmpGtU32:              "s_cmp_gt_u32",
	SCmpGeU32:              "s_cmp_ge_u32",
	SCmpLtU32:              "s_cmp_lt_u32",
	SCmpLeU32:              "s_cmp_le_u32",
	SCbranchScc0:           "s_cbranch_scc0",
	SCbranchScc1:           "s_cbranch_scc1",
	SCbranchExecz:          "s_cbranch_execz",
	SEndpgm:                "s_endpgm",
	SWaitcnt:               "s_waitcnt",
	SLoadDwordx4:           "s_load_dwordx4",
	SLoadDwordx8:           "s_load_dwordx8",
	SBufferLoadDword:       "s_buffer_load_dword",
	SBufferLoadDwordx2:     "s_buffer_load_dwordx2",
	SBufferLoadDwordx4:     "s_buffer_load_dwordx4",
	SBufferLoadDwordx8:     "s_buffer_load_dwordx8",
	SBufferLoadDwordx16:    "s_buffer_load_dwordx16",
	SSwappcB64:             "s_swappc_b64",
	VMovB32:                "v_mov_b32",
	VAddF32:                "v_add_f32",
	VMulF32:                "v_mul_f32",
	VMinF32:                "v_min_f32",
	VMaxF32:                "v_max_f32",
	VSubF32:                "v_sub_f32",
	VSubrevF32:             "v_subrev_f32",
	VMacF32:                "v_mac_f32",
	VMadF32:                "v_mad_f32",
	VCvtF32I32:             "v_cvt_f32_i32",
	VCvtI32F32:             "v_cvt_i32_f32",
	VCvtF32U32:             "v_cvt_f32_u32",
	VCvtU32F32:             "v_cvt_u32_f32",
	VCvtPkrtzF16F32:        "v_cvt_pkrtz_f16_f32",
	VMulU32U24:             "v_mul_u32_u24",
	VMadU32U24:             "v_mad_u32_u24",
	VMulLoI32:              "v_mul_lo_i32",
	VSadU32:                "v_sad_u32",
	VBfeU32:                "v_bfe_u32",
	VAddI32:                "v_add_i32",
	VSubI32:                "v_sub_i32",
	VSubrevI32:             "v_subrev_i32",
	VLshlB32:               "v_lshl_b32",
	VLshrB32:               "v_lshr_b32",
	VAshrI32:               "v_ashr_i32",
	VCmpEqF32:              "v_cmp_eq_f32",
	VCmpLtF32:              "v_cmp_lt_f32",
	VCmpGtF32:              "v_cmp_gt_f32",
	VCmpLeF32:              "v_cmp_le_f32",
	VCmpGeF32:              "v_cmp_ge_f32",
	VCmpNeqF32:             "v_cmp_neq_f32",
	VCmpxEqF32:             "v_cmpx_eq_f32",
	VCmpxLtF32:             "v_cmpx_lt_f32",
	VCmpxGtF32:             "v_cmpx_gt_f32",
	VCndmaskB32:            "v_cndmask_b32",
	VInterpP1F32:           "v_interp_p1_f32",
	VInterpP2F32:           "v_interp_p2_f32",
	BufferLoadDword:        "buffer_load_dword",
	BufferLoadFormatX:      "buffer_load_format_x",
	BufferStoreDword:       "buffer_store_dword",
	BufferStoreFormatX:     "buffer_store_format_x",
	TBufferLoadFormatXyzw:  "tbuffer_load_format_xyzw",
	ImageSample:            "image_sample",
	Exp:                    "exp",
	DsAppend:               "ds_append",
	DsConsume:              "ds_consume",
}

var instructionFormatNames = map[InstructionFormat]string{
	FmtNone:                              "none",
	FmtSVdstSVsrc0:                       "sdst,ssrc0",
	FmtSVdstSVsrc0SVsrc1:                 "sdst,ssrc0,ssrc1",
	FmtSVdst2SVsrc0Pair:                  "sdst[0:1],ssrc0[0:1]",
	FmtSVdst2SVsrc0SVsrc1Pair:            "sdst[0:1],ssrc0[0:1],ssrc1[0:1]",
	FmtSVdst2Implicit:                    "sdst[0:1],exec",
	FmtSVsrc0SVsrc1:                      "ssrc0,ssrc1",
	FmtSimm16:                            "simm16",
	FmtSdstQuadSsrcOffset:                "sdst[0:3],ssrc0[0:1],offset",
	FmtSdstOctSsrcOffset:                 "sdst[0:7],ssrc0[0:1],offset",
	FmtSdstRangeSsrcOffset:               "sdst[0:n],ssrc0[0:3],offset",
	FmtSVdst2Ssrc0Pair:                   "sdst[0:1],ssrc0[0:1]",
	FmtVdstVsrc0:                         "vdst,vsrc0",
	FmtVdstVsrc0Vsrc1:                    "vdst,vsrc0,vsrc1",
	FmtVdstVsrc0Vsrc1Vsrc2:               "vdst,vsrc0,vsrc1,vsrc2",
	FmtVdstVsrc0Vsrc1Vcc:                 "vdst,vsrc0,vsrc1,vcc",
	FmtSdstVsrc0Vsrc1:                    "sdst[0:1],vsrc0,vsrc1",
	FmtNoneAttrChan:                      "attr,chan",
	FmtVdstAttrChan:                      "vdst,attr,chan",
	FmtVdataVaddrSrsrcOffsetIdxen:        "vdata,vaddr,srsrc,offset,idxen",
	FmtVdataVaddrSrsrcDfmtNfmtOffset:     "vdata,vaddr,srsrc,dfmt,nfmt,offset",
	FmtVdataVaddrSrsrcSsampDmask7:        "vdata,vaddr,srsrc,ssamp,dmask=0x7",
	FmtVdataVaddrSrsrcSsampDmaskF:        "vdata,vaddr,srsrc,ssamp,dmask=0xf",
	FmtExpMrt0Vsrc0Vsrc1ComprVmDone:      "mrt0,vsrc0,vsrc1,compr,vm,done",
	FmtExpMrtVsrc0Vsrc1Vsrc2Vsrc3VmDone:  "mrt,vsrc0,vsrc1,vsrc2,vsrc3,vm,done",
	FmtExpMrt0OffOffComprVmDone:          "mrt0,off,off,compr,vm,done",
	FmtExpParamVsrc0Vsrc1Vsrc2Vsrc3:      "param,vsrc0,vsrc1,vsrc2,vsrc3",
	FmtExpPosVsrc0Vsrc1Vsrc2Vsrc3Done:    "pos,vsrc0,vsrc1,vsrc2,vsrc3,done",
	FmtVdstM0:                            "vdst,m0",
}
