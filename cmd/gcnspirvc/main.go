// Command gcnspirvc is the GCN-to-SPIR-V shader recompiler CLI.
//
// Usage:
//
//	gcnspirvc [options] <input.gcnasm>
//
// Examples:
//
//	gcnspirvc shader.gcnasm                    # recompile to stdout
//	gcnspirvc -o shader.spvasm shader.gcnasm   # recompile to file
//	gcnspirvc -stage pixel -pixel-kill shader.gcnasm
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/InoriRus/kyty-gcnspirv"
	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
	"github.com/InoriRus/kyty-gcnspirv/gcnasm"
)

var (
	output      = flag.String("o", "", "output file (default: stdout)")
	debugFlag   = flag.Bool("debug", false, "include debug info (OpName)")
	stage       = flag.String("stage", "vertex", "shader stage: vertex, pixel, or compute")
	pixelKill   = flag.Bool("pixel-kill", false, "pixel stage: enable discard support")
	fetch       = flag.Bool("fetch", false, "vertex stage: expect the s_swappc_b64 fetch-thunk pattern")
	versionFlag = flag.Bool("version", false, "print version")
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gcnspirvc version %s\n", version())
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}
	inputPath := args[0]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	stageType, err := parseStage(*stage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code, err := gcnasm.Parse(string(source), stageType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	opts := gcnspirv.Options{SPIRVVersion: gcnspirv.DefaultOptions().SPIRVVersion, Debug: *debugFlag}
	asm, genErr := gcnspirv.GenerateWithOptions(code, vertexInfo(stageType), pixelInfo(stageType), computeInfo(stageType), opts)
	if genErr != nil {
		fmt.Fprintf(os.Stderr, "Recompilation error: %v\n", genErr)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(asm), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully compiled %s to %s (%d bytes)\n", inputPath, *output, len(asm))
		return
	}
	if _, err := os.Stdout.WriteString(asm); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func parseStage(s string) (gcn.ShaderType, error) {
	switch s {
	case "vertex":
		return gcn.Vertex, nil
	case "pixel":
		return gcn.Pixel, nil
	case "compute":
		return gcn.Compute, nil
	default:
		return 0, fmt.Errorf("unknown -stage %q (want vertex, pixel, or compute)", s)
	}
}

func vertexInfo(t gcn.ShaderType) *binding.VertexInfo {
	if t != gcn.Vertex {
		return nil
	}
	return &binding.VertexInfo{Fetch: *fetch}
}

func pixelInfo(t gcn.ShaderType) *binding.PixelInfo {
	if t != gcn.Pixel {
		return nil
	}
	return &binding.PixelInfo{PSPixelKillEnable: *pixelKill}
}

func computeInfo(t gcn.ShaderType) *binding.ComputeInfo {
	if t != gcn.Compute {
		return nil
	}
	return &binding.ComputeInfo{ThreadsNum: [3]uint32{64, 1, 1}}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: gcnspirvc [options] <input.gcnasm>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  gcnspirvc shader.gcnasm                  Recompile to stdout\n")
	fmt.Fprintf(os.Stderr, "  gcnspirvc -o shader.spvasm shader.gcnasm Recompile to file\n")
	fmt.Fprintf(os.Stderr, "  gcnspirvc -stage pixel -pixel-kill shader.gcnasm\n")
}
