package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/meshtools/internal/config"
	"github.com/Faultbox/meshtools/pkg/formats"
	"github.com/Faultbox/meshtools/pkg/meshstats"
)

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestAnalyzeMeshMain_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.json", "b.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := AnalyzeMeshMain(config.Default(), tt.args, &stdout, &stderr)
			if code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			if !strings.HasPrefix(stdout.String(), "Usage: analyze_mesh") {
				t.Errorf("expected usage on stdout, got %q", stdout.String())
			}
		})
	}
}

func TestUsageError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError bool
	}{
		{"help", flag.ErrHelp, false},
		{"unknown flag", errors.New("flag provided but not defined: -bogus"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := UsageError(tt.err, AnalyzeMeshUsage, &stdout, &stderr); code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			if stdout.String() != AnalyzeMeshUsage+"\n" {
				t.Errorf("expected usage on stdout, got %q", stdout.String())
			}
			if got := stderr.String(); tt.wantError != (got != "") {
				t.Errorf("unexpected stderr %q", got)
			}
			if tt.wantError && !strings.HasPrefix(stderr.String(), "Error: flag provided") {
				t.Errorf("expected Error: prefix, got %q", stderr.String())
			}
		})
	}
}

func TestAnalyzeMeshMain_Legacy(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tri.json",
		`{"triangles": [{"v0": [0, 0, 0], "v1": [1, 0, 0], "v2": [0, 1, 0]}]}`)

	var stdout, stderr bytes.Buffer
	code := AnalyzeMeshMain(config.Default(), []string{path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}

	want := "=== Mesh Analysis: tri ===\n" +
		"File: " + path + "\n" +
		"Format: Legacy (explicit triangles)\n" +
		"Triangles: 1\n" +
		"Vertex entries: 3 (may include duplicates)\n" +
		"\n" +
		"Bounding Box:\n" +
		"  X: 0.0000 to 1.0000 (size: 1.0000)\n" +
		"  Y: 0.0000 to 1.0000 (size: 1.0000)\n" +
		"  Z: 0.0000 to 0.0000 (size: 0.0000)\n" +
		"Center: (0.5000, 0.5000, 0.0000)\n" +
		"Max dimension: 1.0000\n"
	if stdout.String() != want {
		t.Errorf("unexpected report:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestAnalyzeMesh_CompactWithDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "box.json", `{
		"name": "Box",
		"scale": 1.5,
		"center": [0, 0.25, 0],
		"vertices": [-1, -0.5, -2, 1, 1, 2, 0, 0, 0],
		"indices": [0, 1, 2]
	}`)

	var out bytes.Buffer
	if err := AnalyzeMesh(config.Default(), path, &out); err != nil {
		t.Fatalf("AnalyzeMesh failed: %v", err)
	}

	report := out.String()
	for _, line := range []string{
		"=== Mesh Analysis: Box ===",
		"Format: Compact (vertex/index buffers)",
		"Vertices: 3",
		"Triangles: 1",
		"  X: -1.0000 to 1.0000 (size: 2.0000)",
		"  Y: -0.5000 to 1.0000 (size: 1.5000)",
		"  Z: -2.0000 to 2.0000 (size: 4.0000)",
		"Center: (0.0000, 0.2500, 0.0000)",
		"Max dimension: 4.0000",
		"Default scale: 1.5",
		"Default center: (0.0000, 0.2500, 0.0000)",
	} {
		if !strings.Contains(report, line+"\n") {
			t.Errorf("expected line %q in report:\n%s", line, report)
		}
	}
}

func TestAnalyzeMesh_Precision(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.json", `{"vertices": [0.123456, 0, 0], "indices": []}`)

	cfg := config.Default()
	cfg.Output.Precision = 2

	var out bytes.Buffer
	if err := AnalyzeMesh(cfg, path, &out); err != nil {
		t.Fatalf("AnalyzeMesh failed: %v", err)
	}
	if !strings.Contains(out.String(), "  X: 0.12 to 0.12 (size: 0.00)\n") {
		t.Errorf("expected 2-decimal output, got:\n%s", out.String())
	}
}

func TestAnalyzeMesh_OutOfRangeIndicesAccepted(t *testing.T) {
	path := writeFile(t, t.TempDir(), "loose.json", `{"vertices": [0, 0, 0], "indices": [0, 5, 9]}`)

	var out bytes.Buffer
	if err := AnalyzeMesh(config.Default(), path, &out); err != nil {
		t.Fatalf("out-of-range indices must not fail analysis: %v", err)
	}
}

func TestAnalyzeMesh_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "missing.json"), formats.ErrFileNotFound},
		{"invalid json", writeFile(t, dir, "bad.json", `{"vertices": [`), formats.ErrInvalidJSON},
		{"malformed", writeFile(t, dir, "odd.json", `{"vertices": [0, 0, 0, 1], "indices": []}`), formats.ErrMalformedMesh},
		{"unrecognized", writeFile(t, dir, "other.json", `{"points": []}`), formats.ErrUnrecognizedFormat},
		{"empty compact", writeFile(t, dir, "empty.json", `{"vertices": [], "indices": []}`), meshstats.ErrEmptyMesh},
		{"empty legacy", writeFile(t, dir, "empty_legacy.json", `{"triangles": []}`), meshstats.ErrEmptyMesh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := AnalyzeMesh(config.Default(), tt.path, &out)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if strings.Contains(out.String(), "Bounding Box") {
				t.Error("no bounds should be printed on error")
			}

			var stdout, stderr bytes.Buffer
			if code := AnalyzeMeshMain(config.Default(), []string{tt.path}, &stdout, &stderr); code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			if !strings.HasPrefix(stderr.String(), "Error: ") {
				t.Errorf("expected error on stderr, got %q", stderr.String())
			}
		})
	}
}

func TestAnalyzeBunny(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Data.BunnyJSON = writeFile(t, dir, "data/models/bunny.json",
		`{"vertices": [-0.1, 0.03, -0.06, 0.06, 0.18, 0.05], "indices": []}`)

	var out bytes.Buffer
	if err := AnalyzeBunny(cfg, &out); err != nil {
		t.Fatalf("AnalyzeBunny failed: %v", err)
	}

	want := "Bunny bounds:\n" +
		"  X: -0.1000 to 0.0600 (size: 0.1600)\n" +
		"  Y: 0.0300 to 0.1800 (size: 0.1500)\n" +
		"  Z: -0.0600 to 0.0500 (size: 0.1100)\n" +
		"Center: (-0.0200, 0.1050, -0.0050)\n" +
		"Max dimension: 0.1600\n"
	if out.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestAnalyzeBunny_Missing(t *testing.T) {
	cfg := config.Default()
	cfg.Data.BunnyJSON = filepath.Join(t.TempDir(), "nope.json")

	var out bytes.Buffer
	if err := AnalyzeBunny(cfg, &out); !errors.Is(err, formats.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestConvertOBJ(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "bunny.obj",
		"# vertex count = 3\n# face count = 1\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	jsonPath := filepath.Join(dir, "data", "models", "bunny.json")

	var out bytes.Buffer
	if err := ConvertOBJ(config.Default(), objPath, jsonPath, &out); err != nil {
		t.Fatalf("ConvertOBJ failed: %v", err)
	}

	want := "Expected: 3 vertices, 1 faces\n" +
		"Actual: 3 vertices, 1 faces\n" +
		"Vertices array length: 9\n" +
		"Indices array length: 3\n" +
		"Converted " + objPath + " to " + jsonPath + "\n"
	if out.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}

	// The converted file analyzes like any compact mesh.
	var report bytes.Buffer
	if err := AnalyzeMesh(config.Default(), jsonPath, &report); err != nil {
		t.Fatalf("AnalyzeMesh on converted file failed: %v", err)
	}
	if !strings.Contains(report.String(), "=== Mesh Analysis: Stanford Bunny (OBJ Converted) ===") {
		t.Errorf("expected converted mesh name in report:\n%s", report.String())
	}
	if !strings.Contains(report.String(), "Center: (0.5000, 0.5000, 0.0000)") {
		t.Errorf("unexpected center in report:\n%s", report.String())
	}
}

func TestConvertOBJ_MismatchStillWrites(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "short.obj", "# vertex count = 10\nv 0 0 0\nv 1 1 1\nv 2 2 2\nf 1 2 3\n")
	jsonPath := filepath.Join(dir, "short.json")

	var out bytes.Buffer
	if err := ConvertOBJ(config.Default(), objPath, jsonPath, &out); err != nil {
		t.Fatalf("mismatch must not fail conversion: %v", err)
	}

	if !strings.Contains(out.String(), "Expected: 10 vertices, ? faces\n") {
		t.Errorf("expected declared counts line, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "WARNING: Vertex count mismatch!\n") {
		t.Errorf("expected vertex mismatch warning, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Face count mismatch") {
		t.Error("face count was not declared; no face warning expected")
	}
	if _, err := os.Stat(jsonPath); err != nil {
		t.Errorf("output should be written despite the mismatch: %v", err)
	}
}

func TestConvertOBJ_IndentAndName(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	jsonPath := filepath.Join(dir, "tri.json")

	cfg := config.Default()
	cfg.Output.JSONIndent = 4
	cfg.Output.OBJName = "Triangle"

	var out bytes.Buffer
	if err := ConvertOBJ(cfg, objPath, jsonPath, &out); err != nil {
		t.Fatalf("ConvertOBJ failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Expected: no counts declared in header\n") {
		t.Errorf("expected no-header line, got:\n%s", out.String())
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n    \"name\": \"Triangle\",") {
		t.Errorf("expected 4-space indent and configured name, got:\n%s", data)
	}
}

func TestConvertOBJ_Errors(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out.json")

	var out bytes.Buffer
	err := ConvertOBJ(config.Default(), filepath.Join(dir, "missing.obj"), jsonPath, &out)
	if !errors.Is(err, formats.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	quad := writeFile(t, dir, "quad.obj", "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	err = ConvertOBJ(config.Default(), quad, jsonPath, &out)
	if !errors.Is(err, formats.ErrUnsupportedOBJ) {
		t.Errorf("expected ErrUnsupportedOBJ, got %v", err)
	}
	if _, statErr := os.Stat(jsonPath); !os.IsNotExist(statErr) {
		t.Error("nothing should be written when the import fails")
	}
}
