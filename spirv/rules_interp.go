package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.VInterpP1F32, gcn.FmtVdstAttrChan, interpP1F32)
	register(gcn.VInterpP2F32, gcn.FmtVdstAttrChan, interpP2F32)
}

// interpP1F32 is the first of the two-instruction interpolation pair
// real hardware splits across VALU/transcendental units; the barycentric
// weighting it would apply is already folded into interpP2F32's direct
// attribute read, so it has no SSA effect of its own.
func interpP1F32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	return nil, nil
}

// interpP2F32 reads channel inst.Chan of the pixel-stage input
// attribute inst.Attr and stores it to dst, completing the
// interpolation pair.
func interpP2F32(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	inst := instAt(code, index)
	if ctx.Pixel == nil {
		return nil, ctx.Errorf(ErrInvalidStageCombination, "v_interp_p2_f32 requires a pixel-stage shader")
	}

	attrName := fmt.Sprintf("attr%d", inst.Attr)
	chanConst := ctx.Constants.Get(ConstUint, inst.Chan)

	accessID := ctx.NewID()
	loadID := ctx.NewID()
	dstName, _ := VariableName(inst.Dst, 0)

	lines := []string{
		fmt.Sprintf("%%%s = %s %%_ptr_Input_float %%%s %%%s", accessID, OpAccessChain, attrName, chanConst),
		fmt.Sprintf("%%%s = %s %%float %%%s", loadID, OpLoad, accessID),
		storeU(dstName, loadID),
	}
	return lines, nil
}
