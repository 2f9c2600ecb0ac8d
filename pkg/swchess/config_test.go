package swchess_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	swchess "swchess/pkg/swchess"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"input": "boards"}`)

	cfg, err := swchess.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := swchess.Config{Input: "boards", Output: "boards.parquet", Extension: ".txt", Workers: 1}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"input": `)
	if _, err := swchess.LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config.json"), `{"input": "boards", "output": "out/boards.parquet", "workers": 3, "extension": ".pos"}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	path, dir, err := swchess.FindConfigPath()
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	// TempDir may sit behind a symlink, so compare resolved paths.
	wantDir, _ := filepath.EvalSymlinks(root)
	gotDir, _ := filepath.EvalSymlinks(dir)
	if gotDir != wantDir {
		t.Fatalf("config dir: got %s want %s", dir, root)
	}

	cfg, err := swchess.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg = cfg.Resolve(dir)
	if cfg.Input != filepath.Join(dir, "boards") {
		t.Fatalf("input: got %s", cfg.Input)
	}
	if cfg.Output != filepath.Join(dir, "out", "boards.parquet") {
		t.Fatalf("output: got %s", cfg.Output)
	}
	if cfg.Workers != 3 || cfg.Extension != ".pos" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestFindConfigPathSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config.json"), `{"workers": 2}`)
	nested := filepath.Join(root, "a")
	if err := os.MkdirAll(filepath.Join(nested, "config.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	_, dir, err := swchess.FindConfigPath()
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	wantDir, _ := filepath.EvalSymlinks(root)
	gotDir, _ := filepath.EvalSymlinks(dir)
	if gotDir != wantDir {
		t.Fatalf("config dir: got %s want %s", dir, root)
	}
}

func TestFindConfigPathNotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	path, _, err := swchess.FindConfigPath()
	if err == nil {
		t.Skipf("config.json exists above the temp dir: %s", path)
	}
	if !errors.Is(err, swchess.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}
