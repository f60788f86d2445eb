package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.ImageSample, gcn.FmtVdataVaddrSrsrcSsampDmask7, imageSample(3))
	register(gcn.ImageSample, gcn.FmtVdataVaddrSrsrcSsampDmaskF, imageSample(4))
}

// findResourceIndex returns the logical resource index whose descriptor
// starts at the given SGPR, used to translate a texture/sampler operand
// register into the header-declared %tex<i>/%samp<i> global name.
func findResourceIndex(rr binding.ResourceRange, registerID uint32) (int, bool) {
	for i, start := range rr.StartRegister {
		if start == registerID {
			return i, true
		}
	}
	return 0, false
}

// imageSample builds the rule for ImageSample's Dmask7 (rgb) and DmaskF
// (rgba) variants: combine the bound texture and sampler, sample at
// (v[src0], v[src0+1]), and scatter dmaskCount components to consecutive
// destination VGPRs.
func imageSample(dmaskCount int) RuleFunc {
	return func(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
		inst := instAt(code, index)
		res := ctx.Resources()

		texIdx, ok := findResourceIndex(res.Textures2D, inst.Src[1].RegisterID)
		if !ok {
			return nil, ctx.Errorf(ErrUnsupportedBindingConfig, "no texture bound at s%d", inst.Src[1].RegisterID)
		}
		sampIdx, ok := findResourceIndex(res.Samplers, inst.Src[2].RegisterID)
		if !ok {
			return nil, ctx.Errorf(ErrUnsupportedBindingConfig, "no sampler bound at s%d", inst.Src[2].RegisterID)
		}

		u, err := LoadFloat(ctx, inst.Src[0], 0)
		if err != nil {
			return nil, err
		}
		v, err := LoadFloat(ctx, inst.Src[0], 1)
		if err != nil {
			return nil, err
		}

		texName := fmt.Sprintf("tex%d", texIdx)
		sampName := fmt.Sprintf("samp%d", sampIdx)
		texLoad, sampLoad := ctx.NewID(), ctx.NewID()
		coordID := ctx.NewID()
		sampledImageID := ctx.NewID()
		resultID := ctx.NewID()

		var lines []string
		lines = append(lines, u.Lines...)
		lines = append(lines, v.Lines...)
		lines = append(lines,
			fmt.Sprintf("%%%s = %s %%image2d %%%s", texLoad, OpLoad, texName),
			fmt.Sprintf("%%%s = %s %%sampler %%%s", sampLoad, OpLoad, sampName),
			fmt.Sprintf("%%%s = %s %%v2float %%%s %%%s", coordID, OpCompositeConstruct, u.ID, v.ID),
			fmt.Sprintf("%%%s = %s %%sampled_image2d %%%s %%%s", sampledImageID, OpSampledImage, texLoad, sampLoad),
			fmt.Sprintf("%%%s = %s %%v4float %%%s %%%s", resultID, OpImageSampleImplicitLod, sampledImageID, coordID),
		)

		for i := 0; i < dmaskCount; i++ {
			extractID := ctx.NewID()
			dstName, _ := VariableName(inst.Dst, uint32(i))
			lines = append(lines,
				fmt.Sprintf("%%%s = %s %%float %%%s %d", extractID, OpCompositeExtract, resultID, i),
				storeU(dstName, extractID),
			)
		}
		return lines, nil
	}
}
