package spirv

import (
	"fmt"
	"strings"
)

// Version is a SPIR-V target version, major.minor. Grounded on the
// teacher's Version struct in spirv.go.
type Version struct {
	Major, Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Module assembles SPIR-V textual assembly section by section, in the
// fixed order the SPIR-V binary module format requires. Grounded on the
// teacher's ModuleBuilder, which accumulates the same named sections as
// []Instruction; here each section is a []string of already-rendered
// assembly lines, and Assemble joins them with a disassembler-style
// header instead of encoding a binary word stream.
type Module struct {
	Version   Version
	Generator string
	Debug     bool

	Capabilities   []string
	ExtInstImports []string
	MemoryModel    string
	EntryPoints    []string
	ExecutionModes []string
	DebugNames     []string
	Annotations    []string
	Types          []string
	Constants      []string
	GlobalVars     []string
	Functions      []string
}

// NewModule returns an empty module ready to be populated section by
// section.
func NewModule(version Version) *Module {
	return &Module{Version: version, Generator: "kyty-gcnspirv"}
}

// Assemble renders the module as SPIR-V textual assembly: one
// instruction per line, sections in the spec-mandated order.
func (m *Module) Assemble() string {
	var b strings.Builder
	fmt.Fprintf(&b, "; SPIR-V\n; Version: %s\n; Generator: %s\n", m.Version.String(), m.Generator)

	emit := func(lines []string) {
		for _, l := range lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}

	emit(m.Capabilities)
	emit(m.ExtInstImports)
	if m.MemoryModel != "" {
		b.WriteString(m.MemoryModel)
		b.WriteByte('\n')
	}
	emit(m.EntryPoints)
	emit(m.ExecutionModes)
	if m.Debug {
		emit(m.DebugNames)
	}
	emit(m.Annotations)
	emit(m.Types)
	emit(m.Constants)
	emit(m.GlobalVars)
	emit(m.Functions)

	return b.String()
}
