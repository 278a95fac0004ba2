package installer

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "run.sh"), "#!/bin/sh\n")
	writeFile(t, filepath.Join(src, "data", "config.ini"), "[main]\n")
	writeFile(t, filepath.Join(src, "data", "nested", "deep.txt"), "deep")

	count, err := CopyTree(src, dst, nil, nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if got := readFile(t, filepath.Join(dst, "data", "nested", "deep.txt")); got != "deep" {
		t.Errorf("content = %q", got)
	}
	if DirSize(src) != DirSize(dst) {
		t.Errorf("size mismatch: src=%d dst=%d", DirSize(src), DirSize(dst))
	}
}

func TestCopyTreeExclusions(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "app.py"), "print()")
	writeFile(t, filepath.Join(src, "app.pyc"), "bytecode")
	writeFile(t, filepath.Join(src, "__pycache__", "mod.pyc"), "cache")
	writeFile(t, filepath.Join(src, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(src, "scratch.tmp"), "tmp")
	writeFile(t, filepath.Join(src, "keep", "notes.txt"), "keep me")

	count, err := CopyTree(src, dst, DefaultExcludePatterns, nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if !FileExists(filepath.Join(dst, "app.py")) {
		t.Error("app.py should be copied")
	}
	if !FileExists(filepath.Join(dst, "keep", "notes.txt")) {
		t.Error("keep/notes.txt should be copied")
	}
	for _, p := range []string{"app.pyc", "__pycache__", ".git", "scratch.tmp"} {
		if _, err := os.Stat(filepath.Join(dst, p)); !os.IsNotExist(err) {
			t.Errorf("%s should be excluded", p)
		}
	}
}

func TestCopyTreePathPatternExclusions(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "readme.md"), "root doc")
	writeFile(t, filepath.Join(src, "docs", "notes.md"), "notes")
	writeFile(t, filepath.Join(src, "docs", "diagram.png"), "png")
	writeFile(t, filepath.Join(src, "build", "cache", "obj.bin"), "obj")
	writeFile(t, filepath.Join(src, "build", "keep.txt"), "keep")

	count, err := CopyTree(src, dst, []string{"docs/*.md", "build/cache"}, nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	// Path-qualified patterns match against the source-relative path.
	if FileExists(filepath.Join(dst, "docs", "notes.md")) {
		t.Error("docs/notes.md should be excluded by docs/*.md")
	}
	if DirExists(filepath.Join(dst, "build", "cache")) {
		t.Error("build/cache should be pruned by build/cache")
	}

	// They do not overreach: same extension elsewhere still copies.
	if !FileExists(filepath.Join(dst, "readme.md")) {
		t.Error("readme.md at the root should be copied")
	}
	if !FileExists(filepath.Join(dst, "docs", "diagram.png")) {
		t.Error("docs/diagram.png should be copied")
	}
	if !FileExists(filepath.Join(dst, "build", "keep.txt")) {
		t.Error("build/keep.txt should be copied")
	}
}

func TestCopyTreeMergesIntoExistingDest(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeFile(t, filepath.Join(src, "new.txt"), "new")
	writeFile(t, filepath.Join(dst, "existing.txt"), "existing")

	if _, err := CopyTree(src, dst, nil, nil); err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if !FileExists(filepath.Join(dst, "existing.txt")) {
		t.Error("pre-existing file should survive a merge copy")
	}
	if !FileExists(filepath.Join(dst, "new.txt")) {
		t.Error("new file should be copied")
	}
}

func TestCopyTreeEmptySource(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	count, err := CopyTree(src, dst, nil, nil)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !DirExists(dst) {
		t.Error("destination directory should be created even for an empty source")
	}
}

func TestCopyTreeMissingSource(t *testing.T) {
	var nferr *SourceNotFoundError
	_, err := CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil, nil)
	if !errors.As(err, &nferr) {
		t.Fatalf("err = %v, want *SourceNotFoundError", err)
	}
}

func TestCopyTreeProgress(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "b.txt"), "b")
	writeFile(t, filepath.Join(src, "c.txt"), "c")

	var calls []int
	total := 0
	_, err := CopyTree(src, filepath.Join(t.TempDir(), "out"), nil, func(current, tot int, msg string) {
		calls = append(calls, current)
		total = tot
	})
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(calls) != 3 || calls[0] != 1 || calls[2] != 3 {
		t.Errorf("progress calls = %v", calls)
	}
}

func TestCopyFilesMergeVsReplace(t *testing.T) {
	work := t.TempDir()
	install := filepath.Join(t.TempDir(), "install")

	srcDir := filepath.Join(work, "data")
	writeFile(t, filepath.Join(srcDir, "fresh.txt"), "fresh")

	// Pre-existing stale files in both destinations.
	writeFile(t, filepath.Join(install, "merged", "stale.txt"), "stale")
	writeFile(t, filepath.Join(install, "replaced", "stale.txt"), "stale")

	pairs := []FilePair{
		{Source: srcDir, Dest: "merged/"},
		{Source: srcDir, Dest: "replaced"},
	}
	if _, err := CopyFiles(pairs, install, nil); err != nil {
		t.Fatalf("CopyFiles: %v", err)
	}

	// Trailing separator merges: the stale file survives.
	if !FileExists(filepath.Join(install, "merged", "stale.txt")) {
		t.Error("merge dest should keep pre-existing files")
	}
	if !FileExists(filepath.Join(install, "merged", "fresh.txt")) {
		t.Error("merge dest should receive new files")
	}

	// Plain dest replaces: the stale file is gone.
	if FileExists(filepath.Join(install, "replaced", "stale.txt")) {
		t.Error("replace dest should drop pre-existing files")
	}
	if !FileExists(filepath.Join(install, "replaced", "fresh.txt")) {
		t.Error("replace dest should receive new files")
	}
}

func TestCopyFilesPlainFile(t *testing.T) {
	work := t.TempDir()
	install := filepath.Join(t.TempDir(), "install")
	src := filepath.Join(work, "app.bin")
	writeFile(t, src, "binary")

	count, err := CopyFiles([]FilePair{{Source: src, Dest: filepath.Join("bin", "app.bin")}}, install, nil)
	if err != nil {
		t.Fatalf("CopyFiles: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if got := readFile(t, filepath.Join(install, "bin", "app.bin")); got != "binary" {
		t.Errorf("content = %q", got)
	}
}

func TestCopyFilesMissingSource(t *testing.T) {
	var nferr *SourceNotFoundError
	_, err := CopyFiles([]FilePair{{Source: filepath.Join(t.TempDir(), "nope"), Dest: "x"}}, t.TempDir(), nil)
	if !errors.As(err, &nferr) {
		t.Fatalf("err = %v, want *SourceNotFoundError", err)
	}
}

func TestCopyFilePreservesMode(t *testing.T) {
	src := filepath.Join(t.TempDir(), "run.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(t.TempDir(), "run.sh")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("execute bit lost: mode = %v", info.Mode())
	}
}
