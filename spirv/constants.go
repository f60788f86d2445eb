package spirv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func floatBits(f float32) uint32      { return math.Float32bits(f) }
func floatFromBits(bits uint32) float32 { return math.Float32frombits(bits) }

// ConstKind is the typed domain a pooled constant's bits are interpreted
// under: the same 32 bits pool separately as Int, Uint, and Float.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstUint
	ConstFloat
)

func (k ConstKind) String() string {
	switch k {
	case ConstInt:
		return "int"
	case ConstUint:
		return "uint"
	case ConstFloat:
		return "float"
	default:
		return "unknown"
	}
}

// sentinelConstID is returned by Get for an (kind, bits) pair nobody ever
// Add-ed. It must never appear in well-formed output — property tests
// can grep for it as an oracle.
const sentinelConstID = "const_MISSING"

type constKey struct {
	kind ConstKind
	bits uint32
}

// ConstantPool is a deduplicated registry of (kind, bits) constants, each
// assigned a stable id the first time it is seen. Grounded on the
// map-based handle-cache shape of a type registry: GetOrCreate-by-key,
// with a separate read-only Get for the body-emission pass once the
// pre-pass has finished populating the pool.
type ConstantPool struct {
	ids   map[constKey]string
	order []constKey
}

// NewConstantPool returns a pool pre-seeded with the fixed minimum set
// every module needs regardless of which instructions it contains.
func NewConstantPool() *ConstantPool {
	p := &ConstantPool{ids: make(map[constKey]string, 64)}
	for _, f := range []float32{0.0, 0.5, 1.0, 2.0, 4.0} {
		p.Add(ConstFloat, floatBits(f))
	}
	for i := uint32(0); i <= 16; i++ {
		p.Add(ConstInt, i)
		p.Add(ConstUint, i)
	}
	return p
}

// SeedStageIO adds the extra constants every shader with stage I/O needs
// (push-constant field offsets, T-buffer format codes, and so on), plus
// the compute workgroup size when non-nil.
func (p *ConstantPool) SeedStageIO(workgroupSize *[3]uint32) {
	for _, i := range []uint32{12, 16, 31, 36, 119} {
		p.Add(ConstInt, i)
	}
	for _, u := range []uint32{24, 31, 72, 127, 0x3fff, 0xffffff} {
		p.Add(ConstUint, u)
	}
	if workgroupSize != nil {
		for _, d := range workgroupSize {
			p.Add(ConstUint, d)
		}
	}
}

// Add registers (kind, bits) if not already present and returns its id.
func (p *ConstantPool) Add(kind ConstKind, bits uint32) string {
	key := constKey{kind, bits}
	if id, ok := p.ids[key]; ok {
		return id
	}
	id := formatConstID(kind, bits)
	p.ids[key] = id
	p.order = append(p.order, key)
	return id
}

// AddFromOperand adds the constant an operand (already known to
// satisfy IsConstant) carries, under its native kind.
func (p *ConstantPool) AddFromOperand(kind Kind, bits uint32) string {
	return p.Add(constKindFromOperandKind(kind), bits)
}

// Get looks up (kind, bits) without creating it. A miss returns
// sentinelConstID: any appearance of that id in generated output is a
// bug in the pre-pass that populates the pool.
func (p *ConstantPool) Get(kind ConstKind, bits uint32) string {
	if id, ok := p.ids[constKey{kind, bits}]; ok {
		return id
	}
	return sentinelConstID
}

// Declarations renders one OpConstant line per pooled entry, in
// insertion order. Callers place this block before the function body, so
// every constant's declaration textually precedes its first use.
func (p *ConstantPool) Declarations() []string {
	lines := make([]string, 0, len(p.order))
	for _, key := range p.order {
		id := p.ids[key]
		lines = append(lines, fmt.Sprintf("%%%s = %s %s %s", id, OpConstant, key.kind.spirvTypeRef(), constLiteral(key.kind, key.bits)))
	}
	return lines
}

func (k ConstKind) spirvTypeRef() string {
	switch k {
	case ConstInt:
		return "%int"
	case ConstUint:
		return "%uint"
	case ConstFloat:
		return "%float"
	default:
		return "%uint"
	}
}

func constKindFromOperandKind(k Kind) ConstKind {
	switch k {
	case KindInt:
		return ConstInt
	case KindFloat:
		return ConstFloat
	default:
		return ConstUint
	}
}

// formatConstID renders a pool entry's stable id: "<kind>_<value>" where
// value is decimal for Uint < 256, hex (0x%08x) for Uint >= 256, signed
// decimal for Int, and a decimal float with '.' -> '_' and '-' -> 'm' for
// Float.
func formatConstID(kind ConstKind, bits uint32) string {
	switch kind {
	case ConstInt:
		return fmt.Sprintf("int_%d", int32(bits))
	case ConstFloat:
		s := strconv.FormatFloat(float64(floatFromBits(bits)), 'f', -1, 32)
		s = strings.ReplaceAll(s, ".", "_")
		s = strings.ReplaceAll(s, "-", "m")
		return "float_" + s
	default: // ConstUint
		if bits < 256 {
			return fmt.Sprintf("uint_%d", bits)
		}
		return fmt.Sprintf("uint_0x%08x", bits)
	}
}

func constLiteral(kind ConstKind, bits uint32) string {
	switch kind {
	case ConstInt:
		return strconv.Itoa(int(int32(bits)))
	case ConstFloat:
		return strconv.FormatFloat(float64(floatFromBits(bits)), 'g', -1, 32)
	default:
		return strconv.FormatUint(uint64(bits), 10)
	}
}
