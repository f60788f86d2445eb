package spirv

import (
	"fmt"

	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

func init() {
	register(gcn.SSwappcB64, gcn.FmtSVdst2Ssrc0Pair, vertexFetchThunk)
}

func fetchHelperName(registersNum uint32) string {
	return fmt.Sprintf("fetch_vf%d", registersNum)
}

func fetchResultType(registersNum uint32) string {
	if registersNum == 1 {
		return "%float"
	}
	return fmt.Sprintf("%%v%dfloat", registersNum)
}

// vertexFetchThunk expands the fetch-shader call (s_swappc_b64 at
// instruction index 1, per the input-shader convention) into one
// fetch_vf{1,2,3,4} call per bound vertex attribute, scattering the
// result into the attribute's destination VGPR range.
func vertexFetchThunk(ctx *TranslationContext, index int, code *gcn.ShaderCode) ([]string, *Error) {
	if ctx.Vertex == nil {
		return nil, ctx.Errorf(ErrInvalidStageCombination, "vertex fetch requires a vertex-stage shader")
	}
	if index != 1 {
		return nil, ctx.Bug("s_swappc_b64 vertex fetch thunk must be the second instruction, got index %d", index)
	}

	var lines []string
	for _, fetch := range ctx.Vertex.Fetches {
		helper := fetchHelperName(fetch.RegistersNum)
		attrName := fmt.Sprintf("in_attr%d", fetch.AttrIndex)

		callID := ctx.NewID()
		lines = append(lines, fmt.Sprintf("%%%s = %s %s %%%s %%%s", callID, OpFunctionCall, fetchResultType(fetch.RegistersNum), helper, attrName))

		if fetch.RegistersNum == 1 {
			dstName := fmt.Sprintf("v%d", fetch.RegisterStart)
			lines = append(lines, storeU(dstName, callID))
			continue
		}
		for r := uint32(0); r < fetch.RegistersNum; r++ {
			extractID := ctx.NewID()
			dstName := fmt.Sprintf("v%d", fetch.RegisterStart+r)
			lines = append(lines,
				fmt.Sprintf("%%%s = %s %%float %%%s %d", extractID, OpCompositeExtract, callID, r),
				storeU(dstName, extractID),
			)
		}
	}
	return lines, nil
}
