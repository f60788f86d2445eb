// Package gcnspirv recompiles a decoded AMD GCN shader into SPIR-V
// textual assembly.
//
// gcnspirv treats its gcn.ShaderCode input as read-only, borrowed state
// produced upstream by a GCN disassembler: this package never decodes
// raw GCN bytes itself, it only translates an already-decoded
// instruction stream plus its resource-binding layout.
//
// Example usage:
//
//	code := &gcn.ShaderCode{Type: gcn.Vertex, Instructions: instructions}
//	asm, err := gcnspirv.Generate(code, vsInfo, nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
package gcnspirv

import (
	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
	"github.com/InoriRus/kyty-gcnspirv/spirv"
)

// Options configures SPIR-V generation. Grounded on the teacher's
// naga.CompileOptions, minus the WGSL-specific Validate flag: this
// recompiler always validates the finished module (spirv.Validate is
// not optional).
type Options struct {
	SPIRVVersion spirv.Version
	Debug        bool
}

// DefaultOptions targets SPIR-V 1.3 with debug info disabled.
func DefaultOptions() Options {
	return Options{SPIRVVersion: spirv.Version1_3, Debug: false}
}

// Generate recompiles code to SPIR-V textual assembly using
// DefaultOptions. Exactly one of vsInfo/psInfo/csInfo must be non-nil,
// matching code.Type.
//
// This is the simplest way to recompile a shader. For more control use
// GenerateWithOptions.
func Generate(code *gcn.ShaderCode, vsInfo *binding.VertexInfo, psInfo *binding.PixelInfo, csInfo *binding.ComputeInfo) (string, error) {
	return GenerateWithOptions(code, vsInfo, psInfo, csInfo, DefaultOptions())
}

// GenerateWithOptions is Generate with explicit Options, mirroring the
// teacher's Compile/CompileWithOptions split.
func GenerateWithOptions(code *gcn.ShaderCode, vsInfo *binding.VertexInfo, psInfo *binding.PixelInfo, csInfo *binding.ComputeInfo, opts Options) (string, error) {
	asm, err := spirv.GenerateWithOptions(spirv.StageInfo{
		Code:    code,
		Vertex:  vsInfo,
		Pixel:   psInfo,
		Compute: csInfo,
	}, spirv.Options{SPIRVVersion: opts.SPIRVVersion, Debug: opts.Debug})
	if err != nil {
		return "", err
	}
	return asm, nil
}
