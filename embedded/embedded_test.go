package embedded

import (
	"strings"
	"testing"
)

func TestGetVertexShaderKnownID(t *testing.T) {
	asm, err := GetVertexShader(0)
	if err != nil {
		t.Fatalf("GetVertexShader(0) failed: %v", err)
	}
	if asm == "" {
		t.Fatal("expected non-empty SPIR-V assembly")
	}
	if want := "OpEntryPoint Vertex"; !strings.Contains(asm, want) {
		t.Errorf("output missing %q", want)
	}
}

func TestGetVertexShaderUnknownID(t *testing.T) {
	if _, err := GetVertexShader(999); err == nil {
		t.Fatal("expected an error for an unregistered id")
	}
}
