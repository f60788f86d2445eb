package gcn

import "testing"

func TestShaderCodeHasAnyOf(t *testing.T) {
	code := &ShaderCode{
		Instructions: []ShaderInstruction{
			{Type: SMovB32},
			{Type: VAddF32},
		},
	}

	if !code.HasAnyOf(VAddF32) {
		t.Fatal("expected HasAnyOf(VAddF32) to be true")
	}
	if code.HasAnyOf(ImageSample) {
		t.Fatal("expected HasAnyOf(ImageSample) to be false")
	}
	if !code.HasAnyOf(ImageSample, SMovB32) {
		t.Fatal("expected HasAnyOf to match any of multiple candidates")
	}
}

func TestShaderCodeLabelsReversed(t *testing.T) {
	code := &ShaderCode{
		Labels: []Label{
			{SrcPC: 4, DstPC: 8},
			{SrcPC: 12, DstPC: 8},
			{SrcPC: 20, DstPC: 24},
		},
	}

	got := code.LabelsReversed()
	want := []Label{
		{SrcPC: 20, DstPC: 24},
		{SrcPC: 12, DstPC: 8},
		{SrcPC: 4, DstPC: 8},
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOperandClassification(t *testing.T) {
	cases := []struct {
		op                             ShaderOperand
		constant, variable, exec       bool
	}{
		{ShaderOperand{Type: Vgpr}, false, true, false},
		{ShaderOperand{Type: Sgpr}, false, true, false},
		{ShaderOperand{Type: Scc}, false, true, false},
		{ShaderOperand{Type: M0}, false, true, false},
		{ShaderOperand{Type: ExecLo}, false, true, true},
		{ShaderOperand{Type: ExecZ}, false, true, true},
		{ShaderOperand{Type: LiteralConstant}, true, false, false},
		{ShaderOperand{Type: IntegerInlineConstant}, true, false, false},
		{ShaderOperand{Type: FloatInlineConstant}, true, false, false},
	}
	for _, c := range cases {
		if got := IsConstant(c.op); got != c.constant {
			t.Errorf("IsConstant(%v) = %v, want %v", c.op.Type, got, c.constant)
		}
		if got := IsVariable(c.op); got != c.variable {
			t.Errorf("IsVariable(%v) = %v, want %v", c.op.Type, got, c.variable)
		}
		if got := IsExec(c.op); got != c.exec {
			t.Errorf("IsExec(%v) = %v, want %v", c.op.Type, got, c.exec)
		}
	}
}

func TestShaderOperandAccessors(t *testing.T) {
	op := ShaderOperand{Type: FloatInlineConstant, Constant: 0x3f800000} // 1.0f
	if got := op.F(); got != 1.0 {
		t.Errorf("F() = %v, want 1.0", got)
	}

	neg := ShaderOperand{Type: IntegerInlineConstant, Constant: 0xffffffff}
	if got := neg.I(); got != -1 {
		t.Errorf("I() = %v, want -1", got)
	}
	if got := neg.U(); got != 0xffffffff {
		t.Errorf("U() = %v, want 0xffffffff", got)
	}
}
