package spirv

import (
	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
)

// StageInfo pairs a decoded shader with the binding info for its stage.
// Exactly one of Vertex/Pixel/Compute must be set, and it must agree
// with Code.Type.
type StageInfo struct {
	Code    *gcn.ShaderCode
	Vertex  *binding.VertexInfo
	Pixel   *binding.PixelInfo
	Compute *binding.ComputeInfo
}

// Options configures SPIR-V generation. Grounded on the teacher's
// naga.CompileOptions.
type Options struct {
	SPIRVVersion Version
	Debug        bool
}

// DefaultOptions targets SPIR-V 1.3 with debug info disabled.
func DefaultOptions() Options {
	return Options{SPIRVVersion: Version1_3, Debug: false}
}

// Generate recompiles one shader to SPIR-V textual assembly using
// DefaultOptions. This is the package's single entry point: every other
// file in spirv exists to serve one phase of this pipeline. Grounded on
// the phase sequencing of the teacher's Backend.Compile (gather
// referenced handles, emit header sections, emit the function body, emit
// support functions, assemble).
func Generate(info StageInfo) (string, *Error) {
	return GenerateWithOptions(info, DefaultOptions())
}

// GenerateWithOptions is Generate with explicit Options, mirroring the
// teacher's Compile/CompileWithOptions split.
func GenerateWithOptions(info StageInfo, opts Options) (string, *Error) {
	ctx := NewTranslationContext(info.Code)
	ctx.Debug = opts.Debug

	switch info.Code.Type {
	case gcn.Vertex:
		if info.Vertex == nil {
			return "", NewError(ErrInvalidStageCombination, "vertex shader code requires VertexInfo")
		}
		ctx.Vertex = info.Vertex
	case gcn.Pixel:
		if info.Pixel == nil {
			return "", NewError(ErrInvalidStageCombination, "pixel shader code requires PixelInfo")
		}
		ctx.Pixel = info.Pixel
	case gcn.Compute:
		if info.Compute == nil {
			return "", NewError(ErrInvalidStageCombination, "compute shader code requires ComputeInfo")
		}
		ctx.Compute = info.Compute
	default:
		return "", NewError(ErrInvalidStageCombination, "unrecognized shader stage")
	}

	Prepass(ctx)

	mod := NewModule(opts.SPIRVVersion)
	if err := BuildHeader(ctx, mod); err != nil {
		return "", err
	}
	if err := BuildBody(ctx, mod); err != nil {
		return "", err
	}
	BuildSupport(ctx, mod)
	mod.Constants = ctx.Constants.Declarations()

	if err := Validate(ctx, mod); err != nil {
		return "", err
	}
	return mod.Assemble(), nil
}
