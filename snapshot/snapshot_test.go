// Package snapshot_test provides golden snapshot tests for the GCN-to-
// SPIR-V recompiler. For each GCN assembly input shader in testdata/in/,
// the test parses and recompiles it and compares the resulting SPIR-V
// assembly text to a golden file under testdata/golden/.
//
// To regenerate golden files after an intentional output change:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/InoriRus/kyty-gcnspirv"
	"github.com/InoriRus/kyty-gcnspirv/binding"
	"github.com/InoriRus/kyty-gcnspirv/gcn"
	"github.com/InoriRus/kyty-gcnspirv/gcnasm"
)

// shaderFile is one input GCN assembly shader loaded from disk. The
// filename encodes the stage: "<name>.<stage>.gcnasm".
type shaderFile struct {
	name  string
	stage gcn.ShaderType
	asm   string
}

// TestSnapshots is the golden snapshot test: parse every input, recompile
// it to SPIR-V assembly, and compare against its golden file.
func TestSnapshots(t *testing.T) {
	shaders := loadInputShaders(t, "testdata/in")
	if len(shaders) == 0 {
		t.Fatal("no input shaders found in testdata/in/")
	}

	for i := range shaders {
		shader := &shaders[i]
		t.Run(shader.name, func(t *testing.T) {
			code, err := gcnasm.Parse(shader.asm, shader.stage)
			if err != nil {
				t.Fatalf("[%s] assembly error: %v", shader.name, err)
			}

			out, genErr := gcnspirv.Generate(code, stageVertexInfo(shader.stage), stagePixelInfo(shader.stage), stageComputeInfo(shader.stage))
			if genErr != nil {
				t.Fatalf("[%s] recompile failed: %v", shader.name, genErr)
			}

			compareGolden(t, filepath.Join("testdata", "golden", shader.name+".spvasm"), out)
		})
	}
}

func stageVertexInfo(t gcn.ShaderType) *binding.VertexInfo {
	if t != gcn.Vertex {
		return nil
	}
	return &binding.VertexInfo{}
}

func stagePixelInfo(t gcn.ShaderType) *binding.PixelInfo {
	if t != gcn.Pixel {
		return nil
	}
	// One texture at s[0:7] and one sampler at s[8:11], as the
	// image_sample_rgba fixture addresses them.
	return &binding.PixelInfo{
		PSPixelKillEnable: true,
		Resources: binding.Resources{
			Textures2D: binding.ResourceRange{Count: 1, StartRegister: []uint32{0}, Extended: []bool{false}},
			Samplers:   binding.ResourceRange{Count: 1, StartRegister: []uint32{8}, Extended: []bool{false}},
		},
	}
}

func stageComputeInfo(t gcn.ShaderType) *binding.ComputeInfo {
	if t != gcn.Compute {
		return nil
	}
	return &binding.ComputeInfo{ThreadsNum: [3]uint32{64, 1, 1}, WorkgroupRegister: 4}
}

// loadInputShaders reads all .gcnasm files from dir, deriving each
// shader's stage from its "<name>.<stage>.gcnasm" filename.
func loadInputShaders(t *testing.T, dir string) []shaderFile {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read input directory %q: %v", dir, err)
	}

	var shaders []shaderFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gcnasm") {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			t.Fatalf("read shader %q: %v", entry.Name(), readErr)
		}

		base := strings.TrimSuffix(entry.Name(), ".gcnasm")
		parts := strings.Split(base, ".")
		if len(parts) < 2 {
			t.Fatalf("shader filename %q missing .<stage> component", entry.Name())
		}
		stage, stageErr := parseStageName(parts[len(parts)-1])
		if stageErr != nil {
			t.Fatalf("shader %q: %v", entry.Name(), stageErr)
		}

		shaders = append(shaders, shaderFile{name: base, stage: stage, asm: string(data)})
	}

	sort.Slice(shaders, func(i, j int) bool {
		return shaders[i].name < shaders[j].name
	})

	return shaders
}

func parseStageName(s string) (gcn.ShaderType, error) {
	switch s {
	case "vertex":
		return gcn.Vertex, nil
	case "pixel":
		return gcn.Pixel, nil
	case "compute":
		return gcn.Compute, nil
	default:
		return 0, fmt.Errorf("unknown stage %q", s)
	}
}

func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			t.Fatalf("create golden dir: %v", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(actual), 0o644); wErr != nil {
			t.Fatalf("write golden file: %v", wErr)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, truncate(actual, 500))
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}

	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")
	actualStr := strings.ReplaceAll(actual, "\r\n", "\n")

	if expectedStr != actualStr {
		diff := diffStrings(expectedStr, actualStr)
		t.Errorf("output differs from golden %s:\n%s", path, diff)
	}
}

// diffStrings produces a simple line-by-line diff showing the first
// difference and surrounding context.
func diffStrings(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var sb strings.Builder
	maxLines := len(expectedLines)
	if len(actualLines) > maxLines {
		maxLines = len(actualLines)
	}

	const contextLines = 3
	firstDiff := -1
	for i := 0; i < maxLines; i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			firstDiff = i
			break
		}
	}

	if firstDiff < 0 {
		return "(no difference found)"
	}

	fmt.Fprintf(&sb, "first difference at line %d:\n", firstDiff+1)
	fmt.Fprintf(&sb, "  expected lines: %d\n", len(expectedLines))
	fmt.Fprintf(&sb, "  actual lines:   %d\n\n", len(actualLines))

	start := firstDiff - contextLines
	if start < 0 {
		start = 0
	}
	end := firstDiff + contextLines + 1
	if end > maxLines {
		end = maxLines
	}

	for i := start; i < end; i++ {
		prefix := " "
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			prefix = "!"
		}
		fmt.Fprintf(&sb, "%s %4d expected: %s\n", prefix, i+1, truncate(eLine, 120))
		if eLine != aLine {
			fmt.Fprintf(&sb, "%s %4d actual:   %s\n", prefix, i+1, truncate(aLine, 120))
		}
	}

	return sb.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
