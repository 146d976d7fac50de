package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered files to disk.
type Writer struct {
	DryRun bool
}

// EnsureDir creates the target directory, including missing parents.
// It reports whether the directory had to be created.
func (w Writer) EnsureDir(targetDir string) (bool, error) {
	if info, err := os.Stat(targetDir); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("creating target directory %s: path exists and is not a directory", targetDir)
		}
		return false, nil
	}
	if w.DryRun {
		return true, nil
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return false, fmt.Errorf("creating target directory %s: %w", targetDir, err)
	}
	return true, nil
}

// WriteFile writes a single rendered file under targetDir, overwriting any
// existing file. In dry-run mode no file is written but the output path is
// still returned.
func (w Writer) WriteFile(f RenderedFile, targetDir string) (string, error) {
	fullPath := filepath.Join(targetDir, f.Path)
	if w.DryRun {
		return fullPath, nil
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("creating parent directory for %s: %w", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(f.Content), 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// WriteAll writes all files under targetDir in order. The first failure
// aborts the run; files already written stay in place.
func (w Writer) WriteAll(files []RenderedFile, targetDir string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		p, err := w.WriteFile(f, targetDir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
