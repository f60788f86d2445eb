// Package embedded is a fixed lookup table of known SPIR-V shaders,
// keyed by the small integer IDs the pipeline-state builder uses to
// request built-in shaders that never go through GCN recompilation at
// all (blits, clears, the full-screen quad).
package embedded

import "fmt"

// GetVertexShader returns the fixed SPIR-V assembly text for a known
// vertex shader id. IDs outside the table are an error: there is
// nothing to fall back to.
func GetVertexShader(id int) (string, error) {
	asm, ok := vertexShaders[id]
	if !ok {
		return "", fmt.Errorf("embedded: no vertex shader registered for id %d", id)
	}
	return asm, nil
}

// vertexShaders is the fixed id -> SPIR-V assembly table. id 0 is the
// full-screen quad, driven entirely from gl_VertexIndex (no vertex
// buffer, no fetch thunk): vertices 0..3 land on the four clip-space
// corners via x = 2*(idx&1)-1, y = 2*((idx>>1)&1)-1, with position.z=0
// and position.w=1.
var vertexShaders = map[int]string{
	0: fullScreenTriangleVS,
}

const fullScreenTriangleVS = `; SPIR-V
; Version: 1.3
; Generator: kyty-gcnspirv
OpCapability Shader
%1 = OpExtInstImport "GLSL.std.450"
OpMemoryModel Logical GLSL450
OpEntryPoint Vertex %main "main" %gl_VertexIndex %out_position
OpDecorate %gl_VertexIndex BuiltIn VertexIndex
OpMemberDecorate %gl_PerVertex 0 BuiltIn Position
OpDecorate %gl_PerVertex Block
%void = OpTypeVoid
%fnvoid = OpTypeFunction %void
%int = OpTypeInt 32 1
%uint = OpTypeInt 32 0
%float = OpTypeFloat 32
%v2float = OpTypeVector %float 2
%v4float = OpTypeVector %float 4
%_ptr_Input_int = OpTypePointer Input %int
%gl_VertexIndex = OpVariable %_ptr_Input_int Input
%gl_PerVertex = OpTypeStruct %v4float
%_ptr_Output_gl_PerVertex = OpTypePointer Output %gl_PerVertex
%out_position = OpVariable %_ptr_Output_gl_PerVertex Output
%int_0 = OpConstant %int 0
%int_1 = OpConstant %int 1
%int_2 = OpConstant %int 2
%float_0 = OpConstant %float 0
%float_1 = OpConstant %float 1
%float_2 = OpConstant %float 2
%float_m1 = OpConstant %float -1
%main = OpFunction %void None %fnvoid
%entry = OpLabel
%idx = OpLoad %int %gl_VertexIndex
%idx_and1 = OpBitwiseAnd %int %idx %int_1
%idx_shr1 = OpShiftRightArithmetic %int %idx %int_1
%idx_and1_f = OpConvertSToF %float %idx_and1
%idx_shr1_and1 = OpBitwiseAnd %int %idx_shr1 %int_1
%idx_shr1_f = OpConvertSToF %float %idx_shr1_and1
%x_scaled = OpFMul %float %idx_and1_f %float_2
%y_scaled = OpFMul %float %idx_shr1_f %float_2
%x = OpFAdd %float %x_scaled %float_m1
%y = OpFAdd %float %y_scaled %float_m1
%pos = OpCompositeConstruct %v4float %x %y %float_0 %float_1
OpStore %out_position %pos
OpReturn
OpFunctionEnd
`
