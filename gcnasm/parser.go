package gcnasm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// Parse lexes and parses GCN assembly text into a gcn.ShaderCode for the
// given stage. Grounded on wgsl.Parser's token-cursor shape (NewParser,
// token-at-a-time consumption), scaled from a recursive-descent
// expression grammar down to one flat instruction-per-line grammar: no
// operator precedence, no nested expressions, just a mnemonic and its
// comma-separated operands.
func Parse(source string, stage gcn.ShaderType) (*gcn.ShaderCode, error) {
	tokens, err := NewLexer(source).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens, stage: stage}
	return p.parse()
}

// Parser builds a gcn.ShaderCode from a token stream in two passes: the
// first assigns a PC to every instruction line (four bytes apart, the
// displacement unit scalarCondBranch's pc+4+displacement formula
// assumes) and records where every label_<pc>: line points, the second
// decodes each instruction line's mnemonic and operands, resolving
// label references against the PC table the first pass built.
type Parser struct {
	tokens []Token
	stage  gcn.ShaderType
}

type asmLine struct {
	labels []string
	toks   []Token
	num    int
}

func (p *Parser) splitLines() []asmLine {
	var lines []asmLine
	var pendingLabels []string
	var curToks []Token
	curNum := 0

	flush := func() {
		if len(curToks) > 0 {
			lines = append(lines, asmLine{labels: pendingLabels, toks: curToks, num: curNum})
			pendingLabels = nil
			curToks = nil
		}
	}
	for _, t := range p.tokens {
		switch t.Kind {
		case TokenNewline, TokenEOF:
			flush()
		case TokenLabelDef:
			pendingLabels = append(pendingLabels, t.Text)
			curNum = t.Line
		case TokenComma:
			// separator only, carries no operand information
		default:
			curToks = append(curToks, t)
			curNum = t.Line
		}
	}
	flush()
	return lines
}

func (p *Parser) parse() (*gcn.ShaderCode, error) {
	lines := p.splitLines()

	pcs := make([]uint32, len(lines))
	labelPC := make(map[string]uint32, len(lines))
	pc := uint32(0)
	for i, ln := range lines {
		for _, name := range ln.labels {
			labelPC[name] = pc
		}
		pcs[i] = pc
		pc += 4
	}

	code := &gcn.ShaderCode{Type: p.stage}
	for i, ln := range lines {
		inst, label, err := decodeLine(ln, pcs[i], labelPC)
		if err != nil {
			return nil, err
		}
		code.Instructions = append(code.Instructions, inst)
		if label != nil {
			code.Labels = append(code.Labels, *label)
		}
	}
	return code, nil
}

func decodeLine(ln asmLine, pc uint32, labelPC map[string]uint32) (gcn.ShaderInstruction, *gcn.Label, error) {
	if len(ln.toks) == 0 {
		return gcn.ShaderInstruction{}, nil, fmt.Errorf("gcnasm: empty instruction at line %d", ln.num)
	}
	mnemonic := strings.ToLower(ln.toks[0].Text)
	operands := ln.toks[1:]

	def, ok := mnemonicTable[mnemonic]
	if !ok {
		return gcn.ShaderInstruction{}, nil, fmt.Errorf("gcnasm: unknown mnemonic %q at line %d", mnemonic, ln.num)
	}

	inst, err := def.decode(operands)
	if err != nil {
		return gcn.ShaderInstruction{}, nil, fmt.Errorf("gcnasm: line %d: %w", ln.num, err)
	}
	inst.PC = pc
	inst.Type = def.typ
	inst.Format = def.format

	if !def.isBranch {
		return inst, nil, nil
	}

	if len(operands) < 1 {
		return gcn.ShaderInstruction{}, nil, fmt.Errorf("gcnasm: line %d: %s requires a label operand", ln.num, mnemonic)
	}
	name := operands[0].Text
	target, ok := labelPC[name]
	if !ok {
		return gcn.ShaderInstruction{}, nil, fmt.Errorf("gcnasm: line %d: undefined label %q", ln.num, name)
	}
	disp := int32(target) - int32(pc) - 4
	inst.Src[0] = gcn.ShaderOperand{Type: gcn.IntegerInlineConstant, Constant: uint32(disp)}
	inst.SrcNum = 1
	return inst, &gcn.Label{SrcPC: pc, DstPC: target}, nil
}

// --- operand parsing ---

func parseReg(tok Token) (gcn.ShaderOperand, error) {
	s := tok.Text
	switch s {
	case "vcc_lo":
		return gcn.ShaderOperand{Type: gcn.VccLo, Size: 1}, nil
	case "vcc_hi":
		return gcn.ShaderOperand{Type: gcn.VccHi, Size: 1}, nil
	case "vcc":
		return gcn.ShaderOperand{Type: gcn.VccLo, Size: 2}, nil
	case "exec_lo":
		return gcn.ShaderOperand{Type: gcn.ExecLo, Size: 1}, nil
	case "exec_hi":
		return gcn.ShaderOperand{Type: gcn.ExecHi, Size: 1}, nil
	case "exec":
		return gcn.ShaderOperand{Type: gcn.ExecLo, Size: 2}, nil
	case "execz":
		return gcn.ShaderOperand{Type: gcn.ExecZ, Size: 1}, nil
	case "scc":
		return gcn.ShaderOperand{Type: gcn.Scc, Size: 1}, nil
	case "m0":
		return gcn.ShaderOperand{Type: gcn.M0, Size: 1}, nil
	}

	if strings.ContainsRune(s, '[') {
		return parseRegRange(s)
	}
	if len(s) < 2 {
		return gcn.ShaderOperand{}, fmt.Errorf("not a register: %q", s)
	}
	var kind gcn.OperandType
	switch s[0] {
	case 'v':
		kind = gcn.Vgpr
	case 's':
		kind = gcn.Sgpr
	default:
		return gcn.ShaderOperand{}, fmt.Errorf("not a register: %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 10, 32)
	if err != nil {
		return gcn.ShaderOperand{}, fmt.Errorf("bad register %q: %w", s, err)
	}
	return gcn.ShaderOperand{Type: kind, RegisterID: uint32(n), Size: 1}, nil
}

// parseRegRange decodes "v[0:3]" / "s[4:7]" into an operand spanning
// Size consecutive registers starting at RegisterID.
func parseRegRange(s string) (gcn.ShaderOperand, error) {
	open := strings.IndexByte(s, '[')
	end := strings.IndexByte(s, ']')
	if open < 1 || end < open {
		return gcn.ShaderOperand{}, fmt.Errorf("bad register range %q", s)
	}
	var kind gcn.OperandType
	switch s[0] {
	case 'v':
		kind = gcn.Vgpr
	case 's':
		kind = gcn.Sgpr
	default:
		return gcn.ShaderOperand{}, fmt.Errorf("bad register range %q", s)
	}
	parts := strings.SplitN(s[open+1:end], ":", 2)
	if len(parts) != 2 {
		return gcn.ShaderOperand{}, fmt.Errorf("bad register range %q", s)
	}
	lo, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return gcn.ShaderOperand{}, fmt.Errorf("bad register range %q: %w", s, err)
	}
	hi, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return gcn.ShaderOperand{}, fmt.Errorf("bad register range %q: %w", s, err)
	}
	if hi < lo {
		return gcn.ShaderOperand{}, fmt.Errorf("bad register range %q", s)
	}
	return gcn.ShaderOperand{Type: kind, RegisterID: uint32(lo), Size: uint32(hi - lo + 1)}, nil
}

// parseOperand decodes a register or an immediate literal.
func parseOperand(tok Token) (gcn.ShaderOperand, error) {
	switch tok.Kind {
	case TokenIntLiteral:
		n, err := parseIntLiteral(tok.Text)
		if err != nil {
			return gcn.ShaderOperand{}, err
		}
		return gcn.ShaderOperand{Type: gcn.IntegerInlineConstant, Constant: n}, nil
	case TokenFloatLiteral:
		f, err := strconv.ParseFloat(tok.Text, 32)
		if err != nil {
			return gcn.ShaderOperand{}, fmt.Errorf("bad float literal %q: %w", tok.Text, err)
		}
		return gcn.ShaderOperand{Type: gcn.FloatInlineConstant, Constant: math.Float32bits(float32(f))}, nil
	default:
		return parseReg(tok)
	}
}

func parseIntLiteral(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		return uint32(n), err
	}
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func requireOperands(ops []Token, n int) error {
	if len(ops) < n {
		return fmt.Errorf("expected at least %d operands, got %d", n, len(ops))
	}
	return nil
}

// --- instruction shapes ---
//
// Each shape function fills in Dst/Dst2/Src/SrcNum/Attr/Chan/ExportTarget
// from the operand tokens following the mnemonic; PC/Type/Format are set
// by decodeLine from the mnemonicTable entry.

func shapeNone(ops []Token) (gcn.ShaderInstruction, error) {
	return gcn.ShaderInstruction{}, nil
}

func shapeDst1Src1(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 2); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0}, SrcNum: 1}, nil
}

func shapeDst1Src2(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 3); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0, s1}, SrcNum: 2}, nil
}

func shapeDst1Src3(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 4); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	var src [4]gcn.ShaderOperand
	for i := 0; i < 3; i++ {
		s, err := parseOperand(ops[1+i])
		if err != nil {
			return gcn.ShaderInstruction{}, err
		}
		src[i] = s
	}
	return gcn.ShaderInstruction{Dst: dst, Src: src, SrcNum: 3}, nil
}

func shapeDstPairSrcPair(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 2); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0}, SrcNum: 1}, nil
}

func shapeDstPairSrc2Pair(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 3); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0, s1}, SrcNum: 2}, nil
}

func shapeSrc2NoDst(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 2); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Src: [4]gcn.ShaderOperand{s0, s1}, SrcNum: 2}, nil
}

// shapeCarry handles v_add_i32/v_sub_i32/v_subrev_i32: vdst, sdst[0:1],
// vsrc0, vsrc1 -- the 32-bit result in Dst, the carry/borrow pair in
// Dst2, matching valuAddSubI32Carry's reads.
func shapeCarry(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 4); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst2, err := parseReg(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[3])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Dst2: dst2, Src: [4]gcn.ShaderOperand{s0, s1}, SrcNum: 2}, nil
}

// shapeComparePair handles v_cmp*_f32/v_cmpx*_f32: sdst[0:1], vsrc0,
// vsrc1, matching valuCompareFloat's reads (Dst is the vcc-shaped pair).
func shapeComparePair(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 3); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0, s1}, SrcNum: 2}, nil
}

// shapeCndmask handles v_cndmask_b32: vdst, vsrc0, vsrc1, vcc.
func shapeCndmask(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 4); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s2, err := parseReg(ops[3])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0, s1, s2}, SrcNum: 3}, nil
}

// shapeInterp handles v_interp_p1_f32/v_interp_p2_f32: vdst, attr, chan.
func shapeInterp(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 3); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	attr, err := parseIntLiteral(ops[1].Text)
	if err != nil {
		return gcn.ShaderInstruction{}, fmt.Errorf("bad attr index: %w", err)
	}
	chan_, err := parseIntLiteral(ops[2].Text)
	if err != nil {
		return gcn.ShaderInstruction{}, fmt.Errorf("bad chan index: %w", err)
	}
	return gcn.ShaderInstruction{Dst: dst, Attr: attr, Chan: chan_}, nil
}

// shapeVdstM0 handles ds_append/ds_consume: vdst[, m0]. The rule
// synthesizes the M0 read itself, so only the destination matters here.
func shapeVdstM0(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 1); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst}, nil
}

// shapeSLoad builds the decoder for s_load_dwordx{4,8}: sdst range,
// ssrc0[, offset] -- offset is accepted but ignored, matching
// sLoadDwordx's extended-mapping-table-driven rule which never reads it.
func shapeSLoad(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 2); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseReg(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0}, SrcNum: 1}, nil
}

// shapeSBufferLoad handles s_buffer_load_dword{,x2,x4,x8,x16}: sdst
// range, ssrc0[0:1], offset.
func shapeSBufferLoad(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 3); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseReg(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	offset, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{s0, offset}, SrcNum: 2}, nil
}

// shapeBufferVdata handles buffer_load/store_dword/format_x: vdata,
// vaddr, srsrc (an SGPR range such as s[0:3]; the rules read its first
// two registers), offset[, idxen]. For the store variants vdata
// holds the value to store rather than a destination, matching
// bufferStoreFloat1's "data source encoded in Dst" convention.
func shapeBufferVdata(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 4); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	vdata, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	vaddr, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	srsrc, err := parseReg(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	offset, err := parseOperand(ops[3])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: vdata, Src: [4]gcn.ShaderOperand{vaddr, srsrc, offset}, SrcNum: 3}, nil
}

// shapeTBuffer handles tbuffer_load_format_xyzw: vdata[0:3], vaddr,
// srsrc[0:1], dfmt_nfmt, offset.
func shapeTBuffer(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 5); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	vaddr, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	srsrc, err := parseReg(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dfmtNfmt, err := parseOperand(ops[3])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	offset, err := parseOperand(ops[4])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{vaddr, srsrc, offset, dfmtNfmt}, SrcNum: 4}, nil
}

// shapeImageSample builds the decoder for image_sample_rgb/rgba: vdata
// range, coord[0:1], srsrc, ssamp.
func shapeImageSample(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 4); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	dst, err := parseReg(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	coord, err := parseReg(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	tex, err := parseReg(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	samp, err := parseReg(ops[3])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{Dst: dst, Src: [4]gcn.ShaderOperand{coord, tex, samp}, SrcNum: 3}, nil
}

func parseExportTarget(tok Token) (uint32, error) {
	if tok.Kind != TokenIntLiteral {
		return 0, fmt.Errorf("expected an export target index, got %q", tok.Text)
	}
	return parseIntLiteral(tok.Text)
}

// shapeExpMrtCompr handles exp_mrt0_compr: target, vsrc0, vsrc1.
func shapeExpMrtCompr(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 3); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	target, err := parseExportTarget(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s0, err := parseOperand(ops[1])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	s1, err := parseOperand(ops[2])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	return gcn.ShaderInstruction{ExportTarget: target, Src: [4]gcn.ShaderOperand{s0, s1}, SrcNum: 2}, nil
}

// shapeExpFour handles exp_mrt_four/exp_param/exp_pos: target, vsrc0,
// vsrc1, vsrc2, vsrc3.
func shapeExpFour(ops []Token) (gcn.ShaderInstruction, error) {
	if err := requireOperands(ops, 5); err != nil {
		return gcn.ShaderInstruction{}, err
	}
	target, err := parseExportTarget(ops[0])
	if err != nil {
		return gcn.ShaderInstruction{}, err
	}
	var src [4]gcn.ShaderOperand
	for i := 0; i < 4; i++ {
		s, err := parseOperand(ops[1+i])
		if err != nil {
			return gcn.ShaderInstruction{}, err
		}
		src[i] = s
	}
	return gcn.ShaderInstruction{ExportTarget: target, Src: src, SrcNum: 4}, nil
}

// --- mnemonic table ---

type mnemonicDef struct {
	typ      gcn.InstructionType
	format   gcn.InstructionFormat
	isBranch bool
	decode   func(ops []Token) (gcn.ShaderInstruction, error)
}

var mnemonicTable = map[string]mnemonicDef{
	"s_and_b32":   {typ: gcn.SAndB32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_or_b32":    {typ: gcn.SOrB32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_xor_b32":   {typ: gcn.SXorB32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_lshl_b32":  {typ: gcn.SLshlB32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_lshr_b32":  {typ: gcn.SLshrB32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_cselect_b32": {typ: gcn.SCselectB32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_add_i32":   {typ: gcn.SAddI32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},
	"s_mul_i32":   {typ: gcn.SMulI32, format: gcn.FmtSVdstSVsrc0SVsrc1, decode: shapeDst1Src2},

	"s_and_b64": {typ: gcn.SAndB64, format: gcn.FmtSVdst2SVsrc0SVsrc1Pair, decode: shapeDstPairSrc2Pair},
	"s_or_b64":  {typ: gcn.SOrB64, format: gcn.FmtSVdst2SVsrc0SVsrc1Pair, decode: shapeDstPairSrc2Pair},
	"s_xor_b64": {typ: gcn.SXorB64, format: gcn.FmtSVdst2SVsrc0SVsrc1Pair, decode: shapeDstPairSrc2Pair},

	"s_mov_b32": {typ: gcn.SMovB32, format: gcn.FmtSVdstSVsrc0, decode: shapeDst1Src1},
	"s_mov_b64": {typ: gcn.SMovB64, format: gcn.FmtSVdst2SVsrc0Pair, decode: shapeDstPairSrcPair},
	"s_wqm_b64": {typ: gcn.SWqmB64, format: gcn.FmtSVdst2SVsrc0Pair, decode: shapeDstPairSrcPair},
	"s_and_saveexec_b64": {typ: gcn.SAndSaveexecB64, format: gcn.FmtSVdst2Implicit, decode: shapeDstPairSrcPair},

	"s_cmp_eq_u32": {typ: gcn.SCmpEqU32, format: gcn.FmtSVsrc0SVsrc1, decode: shapeSrc2NoDst},
	"s_cmp_lg_u32": {typ: gcn.SCmpLgU32, format: gcn.FmtSVsrc0SVsrc1, decode: shapeSrc2NoDst},
	"s_cmp_gt_u32": {typ: gcn.SCmpGtU32, format: gcn.FmtSVsrc0SVsrc1, decode: shapeSrc2NoDst},
	"s_cmp_ge_u32": {typ: gcn.SCmpGeU32, format: gcn.FmtSVsrc0SVsrc1, decode: shapeSrc2NoDst},
	"s_cmp_lt_u32": {typ: gcn.SCmpLtU32, format: gcn.FmtSVsrc0SVsrc1, decode: shapeSrc2NoDst},
	"s_cmp_le_u32": {typ: gcn.SCmpLeU32, format: gcn.FmtSVsrc0SVsrc1, decode: shapeSrc2NoDst},

	"s_cbranch_scc0":  {typ: gcn.SCbranchScc0, format: gcn.FmtSimm16, isBranch: true, decode: shapeNone},
	"s_cbranch_scc1":  {typ: gcn.SCbranchScc1, format: gcn.FmtSimm16, isBranch: true, decode: shapeNone},
	"s_cbranch_execz": {typ: gcn.SCbranchExecz, format: gcn.FmtSimm16, isBranch: true, decode: shapeNone},

	"s_endpgm":   {typ: gcn.SEndpgm, format: gcn.FmtNone, decode: shapeNone},
	"s_waitcnt":  {typ: gcn.SWaitcnt, format: gcn.FmtNone, decode: shapeNone},
	"s_swappc_b64": {typ: gcn.SSwappcB64, format: gcn.FmtSVdst2Ssrc0Pair, decode: shapeNone},

	"s_load_dwordx4": {typ: gcn.SLoadDwordx4, format: gcn.FmtSdstQuadSsrcOffset, decode: shapeSLoad},
	"s_load_dwordx8": {typ: gcn.SLoadDwordx8, format: gcn.FmtSdstOctSsrcOffset, decode: shapeSLoad},

	"s_buffer_load_dword":     {typ: gcn.SBufferLoadDword, format: gcn.FmtSdstRangeSsrcOffset, decode: shapeSBufferLoad},
	"s_buffer_load_dwordx2":   {typ: gcn.SBufferLoadDwordx2, format: gcn.FmtSdstRangeSsrcOffset, decode: shapeSBufferLoad},
	"s_buffer_load_dwordx4":   {typ: gcn.SBufferLoadDwordx4, format: gcn.FmtSdstRangeSsrcOffset, decode: shapeSBufferLoad},
	"s_buffer_load_dwordx8":   {typ: gcn.SBufferLoadDwordx8, format: gcn.FmtSdstRangeSsrcOffset, decode: shapeSBufferLoad},
	"s_buffer_load_dwordx16":  {typ: gcn.SBufferLoadDwordx16, format: gcn.FmtSdstRangeSsrcOffset, decode: shapeSBufferLoad},

	"v_mov_b32": {typ: gcn.VMovB32, format: gcn.FmtVdstVsrc0, decode: shapeDst1Src1},

	"v_add_f32":    {typ: gcn.VAddF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_mul_f32":    {typ: gcn.VMulF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_min_f32":    {typ: gcn.VMinF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_max_f32":    {typ: gcn.VMaxF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_sub_f32":    {typ: gcn.VSubF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_subrev_f32": {typ: gcn.VSubrevF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_mac_f32":    {typ: gcn.VMacF32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_mad_f32":    {typ: gcn.VMadF32, format: gcn.FmtVdstVsrc0Vsrc1Vsrc2, decode: shapeDst1Src3},

	"v_cvt_f32_i32": {typ: gcn.VCvtF32I32, format: gcn.FmtVdstVsrc0, decode: shapeDst1Src1},
	"v_cvt_i32_f32": {typ: gcn.VCvtI32F32, format: gcn.FmtVdstVsrc0, decode: shapeDst1Src1},
	"v_cvt_f32_u32": {typ: gcn.VCvtF32U32, format: gcn.FmtVdstVsrc0, decode: shapeDst1Src1},
	"v_cvt_u32_f32": {typ: gcn.VCvtU32F32, format: gcn.FmtVdstVsrc0, decode: shapeDst1Src1},

	"v_cvt_pkrtz_f16_f32": {typ: gcn.VCvtPkrtzF16F32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},

	"v_mul_u32_u24": {typ: gcn.VMulU32U24, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_mad_u32_u24": {typ: gcn.VMadU32U24, format: gcn.FmtVdstVsrc0Vsrc1Vsrc2, decode: shapeDst1Src3},
	"v_mul_lo_i32":  {typ: gcn.VMulLoI32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_sad_u32":     {typ: gcn.VSadU32, format: gcn.FmtVdstVsrc0Vsrc1Vsrc2, decode: shapeDst1Src3},
	"v_bfe_u32":     {typ: gcn.VBfeU32, format: gcn.FmtVdstVsrc0Vsrc1Vsrc2, decode: shapeDst1Src3},

	"v_add_i32":    {typ: gcn.VAddI32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeCarry},
	"v_sub_i32":    {typ: gcn.VSubI32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeCarry},
	"v_subrev_i32": {typ: gcn.VSubrevI32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeCarry},

	"v_lshl_b32": {typ: gcn.VLshlB32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_lshr_b32": {typ: gcn.VLshrB32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},
	"v_ashr_i32": {typ: gcn.VAshrI32, format: gcn.FmtVdstVsrc0Vsrc1, decode: shapeDst1Src2},

	"v_cmp_eq_f32":   {typ: gcn.VCmpEqF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmp_lt_f32":   {typ: gcn.VCmpLtF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmp_gt_f32":   {typ: gcn.VCmpGtF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmp_le_f32":   {typ: gcn.VCmpLeF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmp_ge_f32":   {typ: gcn.VCmpGeF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmp_neq_f32":  {typ: gcn.VCmpNeqF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmpx_eq_f32":  {typ: gcn.VCmpxEqF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmpx_lt_f32":  {typ: gcn.VCmpxLtF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},
	"v_cmpx_gt_f32":  {typ: gcn.VCmpxGtF32, format: gcn.FmtSdstVsrc0Vsrc1, decode: shapeComparePair},

	"v_cndmask_b32": {typ: gcn.VCndmaskB32, format: gcn.FmtVdstVsrc0Vsrc1Vcc, decode: shapeCndmask},

	"v_interp_p1_f32": {typ: gcn.VInterpP1F32, format: gcn.FmtVdstAttrChan, decode: shapeInterp},
	"v_interp_p2_f32": {typ: gcn.VInterpP2F32, format: gcn.FmtVdstAttrChan, decode: shapeInterp},

	"buffer_load_dword":       {typ: gcn.BufferLoadDword, format: gcn.FmtVdataVaddrSrsrcOffsetIdxen, decode: shapeBufferVdata},
	"buffer_load_format_x":    {typ: gcn.BufferLoadFormatX, format: gcn.FmtVdataVaddrSrsrcOffsetIdxen, decode: shapeBufferVdata},
	"buffer_store_dword":      {typ: gcn.BufferStoreDword, format: gcn.FmtVdataVaddrSrsrcOffsetIdxen, decode: shapeBufferVdata},
	"buffer_store_format_x":   {typ: gcn.BufferStoreFormatX, format: gcn.FmtVdataVaddrSrsrcOffsetIdxen, decode: shapeBufferVdata},
	"tbuffer_load_format_xyzw": {typ: gcn.TBufferLoadFormatXyzw, format: gcn.FmtVdataVaddrSrsrcDfmtNfmtOffset, decode: shapeTBuffer},

	"image_sample_rgb":  {typ: gcn.ImageSample, format: gcn.FmtVdataVaddrSrsrcSsampDmask7, decode: shapeImageSample},
	"image_sample_rgba": {typ: gcn.ImageSample, format: gcn.FmtVdataVaddrSrsrcSsampDmaskF, decode: shapeImageSample},

	"exp_mrt0_compr": {typ: gcn.Exp, format: gcn.FmtExpMrt0Vsrc0Vsrc1ComprVmDone, decode: shapeExpMrtCompr},
	"exp_mrt_four":   {typ: gcn.Exp, format: gcn.FmtExpMrtVsrc0Vsrc1Vsrc2Vsrc3VmDone, decode: shapeExpFour},
	"exp_pixel_kill": {typ: gcn.Exp, format: gcn.FmtExpMrt0OffOffComprVmDone, decode: shapeNone},
	"exp_param":      {typ: gcn.Exp, format: gcn.FmtExpParamVsrc0Vsrc1Vsrc2Vsrc3, decode: shapeExpFour},
	"exp_pos":        {typ: gcn.Exp, format: gcn.FmtExpPosVsrc0Vsrc1Vsrc2Vsrc3Done, decode: shapeExpFour},

	"ds_append":  {typ: gcn.DsAppend, format: gcn.FmtVdstM0, decode: shapeVdstM0},
	"ds_consume": {typ: gcn.DsConsume, format: gcn.FmtVdstM0, decode: shapeVdstM0},
}
