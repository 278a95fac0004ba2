package installer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExcludePatterns are the globs excluded from bundle copies unless
// the request overrides them: build caches, version-control metadata, and
// temp files.
var DefaultExcludePatterns = []string{
	"__pycache__",
	"*.pyc",
	".git",
	".svn",
	".DS_Store",
	"*.tmp",
}

// CopyTree copies all files under srcDir into dstDir, preserving relative
// paths and file metadata. Files are skipped when any exclude pattern
// matches their name or their source-relative path (slash-separated, so
// patterns like "docs/*.md" work). The eligible file count is computed up
// front so onProgress(copied, total) has a deterministic denominator; it is
// invoked synchronously after each file.
//
// The copy is a non-destructive merge: files already in dstDir that do not
// exist in srcDir are left untouched. The first copy failure aborts the
// operation; already-copied files remain (callers decide about cleanup).
// An empty source directory succeeds with a count of 0.
func CopyTree(srcDir, dstDir string, excludePatterns []string, onProgress ProgressFunc) (int, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return 0, &SourceNotFoundError{Path: srcDir}
	}
	if !info.IsDir() {
		return 0, &SourceNotFoundError{Path: srcDir}
	}

	files, err := planTree(srcDir, excludePatterns)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return 0, &CopyError{Path: dstDir, Err: err}
	}

	copied := 0
	total := len(files)
	for _, rel := range files {
		dst := filepath.Join(dstDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return copied, &CopyError{Path: dst, Err: err}
		}
		if err := CopyFile(filepath.Join(srcDir, rel), dst); err != nil {
			return copied, &CopyError{Path: filepath.Join(srcDir, rel), Err: err}
		}
		copied++
		if onProgress != nil {
			onProgress(copied, total, rel)
		}
	}

	return copied, nil
}

// planTree enumerates eligible files under srcDir as relative paths.
// Excluded directories are pruned without descending.
func planTree(srcDir string, excludePatterns []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == srcDir {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if excluded(d.Name(), rel, excludePatterns) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, &CopyError{Path: srcDir, Err: err}
	}
	return files, nil
}

// excluded reports whether an entry matches any of the glob patterns,
// either by its base name ("*.pyc", "__pycache__") or by its slash-separated
// relative path ("docs/*.md"). A malformed pattern never matches.
func excluded(name, rel string, patterns []string) bool {
	relSlash := filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(p, relSlash); err == nil && ok {
			return true
		}
	}
	return false
}

// CopyFiles installs an explicit (source, relative dest) list under
// installPath. Plain files are copied additively. Directory sources follow
// the destination spelling: a dest ending in a path separator merges the
// directory's contents into the destination, while a plain dest replaces
// any pre-existing destination subtree (delete-then-copy) so no stale files
// survive. onProgress is invoked once per pair.
func CopyFiles(pairs []FilePair, installPath string, onProgress ProgressFunc) (int, error) {
	if err := os.MkdirAll(installPath, 0755); err != nil {
		return 0, &CopyError{Path: installPath, Err: err}
	}

	total := len(pairs)
	for i, pair := range pairs {
		info, err := os.Stat(pair.Source)
		if err != nil {
			return i, &SourceNotFoundError{Path: pair.Source}
		}

		dest := filepath.Join(installPath, pair.Dest)
		switch {
		case info.IsDir() && endsWithSeparator(pair.Dest):
			// Merge contents into dest, keeping unrelated files.
			if _, err := CopyTree(pair.Source, dest, nil, nil); err != nil {
				return i, err
			}
		case info.IsDir():
			// Replace-on-conflict: a stale destination subtree is removed
			// before copying. NOT an additive merge.
			if err := os.RemoveAll(dest); err != nil {
				return i, &CopyError{Path: dest, Err: err}
			}
			if _, err := CopyTree(pair.Source, dest, nil, nil); err != nil {
				return i, err
			}
		default:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return i, &CopyError{Path: dest, Err: err}
			}
			if err := CopyFile(pair.Source, dest); err != nil {
				return i, &CopyError{Path: pair.Source, Err: err}
			}
		}

		if onProgress != nil {
			onProgress(i+1, total, pair.Dest)
		}
	}

	return total, nil
}

func endsWithSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
}

// CopyFile copies a single file, preserving its mode and modification time.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("copy content: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	// Preserve the source timestamp where the filesystem allows it.
	_ = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())

	return nil
}

// DirSize returns the total size in bytes of all files under path.
// Unreadable entries contribute zero.
func DirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
