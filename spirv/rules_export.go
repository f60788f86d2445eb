package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.Exp, gcn.FmtExpMrt0Vsrc0Vsrc1ComprVmDone, expMrtCompr)
	register(gcn.Exp, gcn.FmtExpMrtVsrc0Vsrc1Vsrc2Vsrc3VmDone, expMrtFour)
	register(gcn.Exp, gcn.FmtExpMrt0OffOffComprVmDone, expPixelKill)
	register(gcn.Exp, gcn.FmtExpParamVsrc0Vsrc1Vsrc2Vsrc3, expParam)
	register(gcn.Exp, gcn.FmtExpPosVsrc0Vsrc1Vsrc2Vsrc3Done, expPosition)
}

// outputTargetMode looks up the MRT's declared output mode, defaulting
// to four-float when no pixel-stage info is attached or the target has
// no declared mode.
func outputTargetMode(ctx *TranslationContext, target uint32) uint32 {
	if ctx.Pixel == nil || int(target) >= len(ctx.Pixel.TargetOutputMode) {
		return binding.TargetOutputFourFloat
	}
	return ctx.Pixel.TargetOutputMode[target]
}

// expMrtCompr exports a packed-half color target: src0/src1 each hold
// two fp16 channels packed into a uint32, unpacked back to four floats
// before the vec4 store.
func expMrtCompr(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if ctx.Pixel == nil {
		return nil, ctx.Errorf(ErrInvalidStageCombination, "color export requires a pixel-stage shader")
	}

	a, err := LoadUint(ctx, inst.Src[0], 0)
	if err != nil {
		return nil, err
	}
	b, err := LoadUint(ctx, inst.Src[1], 0)
	if err != nil {
		return nil, err
	}

	var lines []string
	lines = append(lines, a.Lines...)
	lines = append(lines, b.Lines...)

	unpackA, unpackB := ctx.NewID(), ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%v2float %%glsl_std_450 %s %%%s", unpackA, OpExtInst, GLSLstd450UnpackHalf2x16, a.ID),
		fmt.Sprintf("%%%s = %s %%v2float %%glsl_std_450 %s %%%s", unpackB, OpExtInst, GLSLstd450UnpackHalf2x16, b.ID),
	)
	r, g, bC, aC := ctx.NewID(), ctx.NewID(), ctx.NewID(), ctx.NewID()
	lines = append(lines,
		fmt.Sprintf("%%%s = %s %%float %%%s 0", r, OpCompositeExtract, unpackA),
		fmt.Sprintf("%%%s = %s %%float %%%s 1", g, OpCompositeExtract, unpackA),
		fmt.Sprintf("%%%s = %s %%float %%%s 0", bC, OpCompositeExtract, unpackB),
		fmt.Sprintf("%%%s = %s %%float %%%s 1", aC, OpCompositeExtract, unpackB),
	)
	vecID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%v4float %%%s %%%s %%%s %%%s", vecID, OpCompositeConstruct, r, g, bC, aC))
	lines = append(lines, fmt.Sprintf("%s %%out_color%d %%%s", OpStore, inst.ExportTarget, vecID))
	return lines, nil
}

// expMrtFour exports a four-float (uncompressed) color target.
func expMrtFour(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if ctx.Pixel == nil {
		return nil, ctx.Errorf(ErrInvalidStageCombination, "color export requires a pixel-stage shader")
	}

	var loaded [4]Loaded
	var lines []string
	for i := 0; i < 4; i++ {
		l, err := LoadFloat(ctx, inst.Src[i], 0)
		if err != nil {
			return nil, err
		}
		loaded[i] = l
		lines = append(lines, l.Lines...)
	}
	vecID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%v4float %%%s %%%s %%%s %%%s", vecID, OpCompositeConstruct, loaded[0].ID, loaded[1].ID, loaded[2].ID, loaded[3].ID))
	lines = append(lines, fmt.Sprintf("%s %%out_color%d %%%s", OpStore, inst.ExportTarget, vecID))
	return lines, nil
}

// expPixelKill is the off,off export of the canonical discard pattern
// (EXEC cleared to 0, then this, then s_endpgm): it contributes OpKill
// directly. scalarEndpgm recognizes the three-instruction sequence and
// suppresses the trailing OpReturn that would otherwise follow OpKill
// in the same block.
func expPixelKill(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	return []string{OpKill}, nil
}

// expParam exports a vertex varying at location inst.ExportTarget.
func expParam(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if ctx.Vertex == nil {
		return nil, ctx.Errorf(ErrInvalidStageCombination, "param export requires a vertex-stage shader")
	}

	var loaded [4]Loaded
	var lines []string
	for i := 0; i < 4; i++ {
		l, err := LoadFloat(ctx, inst.Src[i], 0)
		if err != nil {
			return nil, err
		}
		loaded[i] = l
		lines = append(lines, l.Lines...)
	}
	vecID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%v4float %%%s %%%s %%%s %%%s", vecID, OpCompositeConstruct, loaded[0].ID, loaded[1].ID, loaded[2].ID, loaded[3].ID))
	lines = append(lines, fmt.Sprintf("%s %%out_param%d %%%s", OpStore, inst.ExportTarget, vecID))
	return lines, nil
}

// expPosition stores gl_Position. Only target 0 (the position itself,
// as opposed to the clip-distance exports at higher target indices) is
// supported.
func expPosition(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if ctx.Vertex == nil {
		return nil, ctx.Errorf(ErrInvalidStageCombination, "position export requires a vertex-stage shader")
	}
	if inst.ExportTarget != 0 {
		return nil, ctx.Errorf(ErrUnsupportedOperandShape, "clip-distance position export (pos%d) is not supported", inst.ExportTarget)
	}

	var loaded [4]Loaded
	var lines []string
	for i := 0; i < 4; i++ {
		l, err := LoadFloat(ctx, inst.Src[i], 0)
		if err != nil {
			return nil, err
		}
		loaded[i] = l
		lines = append(lines, l.Lines...)
	}
	vecID := ctx.NewID()
	lines = append(lines, fmt.Sprintf("%%%s = %s %%v4float %%%s %%%s %%%s %%%s", vecID, OpCompositeConstruct, loaded[0].ID, loaded[1].ID, loaded[2].ID, loaded[3].ID))
	lines = append(lines, fmt.Sprintf("%s %%gl_Position %%%s", OpStore, vecID))
	return lines, nil
}
