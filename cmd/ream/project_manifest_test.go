package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ream.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write ream.toml: %v", err)
	}
	return path
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[run]\nmain = \"main.ream\"\n")

	manifest, ok, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatalf("loadProjectManifest failed: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Fatalf("package name = %q, want demo", manifest.Config.Package.Name)
	}
	if manifest.Config.Run.Main != "main.ream" {
		t.Fatalf("run main = %q, want main.ream", manifest.Config.Run.Main)
	}
	if manifest.Root != dir {
		t.Fatalf("root = %q, want %q", manifest.Root, dir)
	}
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[run]\nmain = \"main.ream\"\n")
	nested := filepath.Join(dir, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := loadProjectManifest(nested)
	if err != nil || !ok {
		t.Fatalf("manifest not found from nested dir: ok=%v err=%v", ok, err)
	}
	if manifest.Root != dir {
		t.Fatalf("root = %q, want %q", manifest.Root, dir)
	}
}

func TestLoadProjectManifestMissing(t *testing.T) {
	_, ok, err := loadProjectManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("found a manifest where none exists")
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing package", "[run]\nmain = \"main.ream\"\n", "missing [package]"},
		{"missing package name", "[package]\n\n[run]\nmain = \"main.ream\"\n", "missing [package].name"},
		{"missing run", "[package]\nname = \"demo\"\n", "missing [run]"},
		{"missing run main", "[package]\nname = \"demo\"\n\n[run]\n", "missing [run].main"},
		{"empty run main", "[package]\nname = \"demo\"\n\n[run]\nmain = \"  \"\n", "missing [run].main"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := loadProjectConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveProjectRunTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[run]\nmain = \"main.ream\"\n")
	mainPath := filepath.Join(dir, "main.ream")
	if err := os.WriteFile(mainPath, []byte("(print 1)"), 0o644); err != nil {
		t.Fatalf("write main.ream: %v", err)
	}

	manifest := &projectManifest{
		Path:   path,
		Root:   dir,
		Config: projectConfig{Package: packageConfig{Name: "demo"}, Run: runConfig{Main: "main.ream"}},
	}
	got, err := resolveProjectRunTarget(manifest)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != mainPath {
		t.Fatalf("target = %q, want %q", got, mainPath)
	}
}

func TestResolveProjectRunTargetMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[run]\nmain = \"absent.ream\"\n")

	manifest := &projectManifest{
		Path:   path,
		Root:   dir,
		Config: projectConfig{Package: packageConfig{Name: "demo"}, Run: runConfig{Main: "absent.ream"}},
	}
	if _, err := resolveProjectRunTarget(manifest); err == nil {
		t.Fatal("want error for missing [run].main target")
	}
}

func TestResolveProjectRunTargetWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[run]\nmain = \"main.txt\"\n")
	if err := os.WriteFile(filepath.Join(dir, "main.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write main.txt: %v", err)
	}

	manifest := &projectManifest{
		Path:   path,
		Root:   dir,
		Config: projectConfig{Package: packageConfig{Name: "demo"}, Run: runConfig{Main: "main.txt"}},
	}
	if _, err := resolveProjectRunTarget(manifest); err == nil {
		t.Fatal("want error for non-.ream [run].main")
	}
}
