package gcnspirv

import (
	"errors"
	"strings"
	"testing"

	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
	"github.com/InoriRus/kyty-gcnspirv/gcnasm"
	"github.com/InoriRus/kyty-gcnspirv/spirv"
)

// TestGenerateMinimalVertex exercises the minimal-vertex scenario: one
// instruction, no fetches, no exports.
func TestGenerateMinimalVertex(t *testing.T) {
	code, err := gcnasm.Parse("s_endpgm\n", gcn.Vertex)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	asm, genErr := Generate(code, &binding.VertexInfo{}, nil, nil)
	if genErr != nil {
		t.Fatalf("Generate failed: %v", genErr)
	}

	for _, want := range []string{"OpEntryPoint Vertex", "OpFunctionEnd", "OpReturn"} {
		if !strings.Contains(asm, want) {
			t.Errorf("output missing %q:\n%s", want, asm)
		}
	}
}

// TestGenerateScalarAddSetsSCC exercises a scalar add: s2 <- s0 + s1,
// which must leave an explicit SCC recomputation in the emitted module.
func TestGenerateScalarAddSetsSCC(t *testing.T) {
	source := `
s_mov_b32 s0, 5
s_mov_b32 s1, 10
s_add_i32 s2, s0, s1
s_endpgm
`
	code, err := gcnasm.Parse(source, gcn.Vertex)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(code.Instructions) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(code.Instructions))
	}

	asm, genErr := Generate(code, &binding.VertexInfo{}, nil, nil)
	if genErr != nil {
		t.Fatalf("Generate failed: %v", genErr)
	}
	if !strings.Contains(asm, "OpStore %scc") {
		t.Errorf("output missing a store to scc:\n%s", asm)
	}
}

// TestGeneratePixelKill exercises the three-instruction discard pattern:
// the body must contain exactly one OpKill and no OpReturn.
func TestGeneratePixelKill(t *testing.T) {
	source := `
s_mov_b64 exec, 0
exp_pixel_kill
s_endpgm
`
	code, err := gcnasm.Parse(source, gcn.Pixel)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	psInfo := &binding.PixelInfo{PSPixelKillEnable: true}
	asm, genErr := Generate(code, nil, psInfo, nil)
	if genErr != nil {
		t.Fatalf("Generate failed: %v", genErr)
	}

	if n := strings.Count(asm, "OpKill"); n != 1 {
		t.Errorf("expected exactly one OpKill, got %d:\n%s", n, asm)
	}
	if strings.Contains(asm, "OpReturn") {
		t.Errorf("expected no OpReturn after the kill pattern:\n%s", asm)
	}
}

// TestGenerateComputeWorkgroup exercises cs_info's local-size execution
// mode and the workgroup-id-to-SGPR wiring.
func TestGenerateComputeWorkgroup(t *testing.T) {
	code, err := gcnasm.Parse("s_endpgm\n", gcn.Compute)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	csInfo := &binding.ComputeInfo{ThreadsNum: [3]uint32{64, 1, 1}, WorkgroupRegister: 4}
	asm, genErr := Generate(code, nil, nil, csInfo)
	if genErr != nil {
		t.Fatalf("Generate failed: %v", genErr)
	}
	if !strings.Contains(asm, "LocalSize 64 1 1") {
		t.Errorf("output missing LocalSize execution mode:\n%s", asm)
	}
}

// TestGenerateRejectsMismatchedStageInfo checks that a Vertex-typed
// ShaderCode passed without VertexInfo fails with ErrInvalidStageCombination
// rather than silently compiling.
func TestGenerateRejectsMismatchedStageInfo(t *testing.T) {
	code, err := gcnasm.Parse("s_endpgm\n", gcn.Vertex)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	_, genErr := Generate(code, nil, nil, nil)
	if genErr == nil {
		t.Fatal("expected an error for missing VertexInfo, got nil")
	}
	var spErr *spirv.Error
	if !errors.As(genErr, &spErr) || spErr.Kind != spirv.ErrInvalidStageCombination {
		t.Errorf("expected ErrInvalidStageCombination, got %v", genErr)
	}
}

func BenchmarkGenerateScalarAdd(b *testing.B) {
	source := "s_mov_b32 s0, 5\ns_mov_b32 s1, 10\ns_add_i32 s2, s0, s1\ns_endpgm\n"
	code, err := gcnasm.Parse(source, gcn.Vertex)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	vsInfo := &binding.VertexInfo{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, genErr := Generate(code, vsInfo, nil, nil); genErr != nil {
			b.Fatalf("Generate failed: %v", genErr)
		}
	}
}
