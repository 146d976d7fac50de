package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepyr/pagegen/internal/config"
)

func writeManifest(t *testing.T, dir string, components []string) string {
	t.Helper()
	m := config.DefaultManifest()
	m.Spec.TargetDir = "out"
	m.Spec.Components = components
	path := filepath.Join(dir, "pagegen.yaml")
	require.NoError(t, config.Save(m, path))
	return path
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, []string{"badge"})

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	require.NoError(t, err)

	page := filepath.Join(tmp, "out", "badge_page.dart")
	data, err := os.ReadFile(page)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "class BadgePage extends StatelessComponent {")
	assert.Contains(t, content, "import '../preview/badge_preview.dart';")
	assert.Contains(t, content, "yield BadgePreview();")
}

func TestGenerateCmd_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, []string{"alert", "toggle"})

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(tmp, "out", "alert_page.dart"))
	require.NoError(t, err)

	_, _, err = executeCommand("generate", "--repo-root", tmp)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(tmp, "out", "alert_page.dart"))
	require.NoError(t, err)

	assert.Equal(t, first, second, "two runs must produce byte-identical files")
}

func TestGenerateCmd_DefaultManifest(t *testing.T) {
	tmp := t.TempDir()

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	require.NoError(t, err)

	outDir := filepath.Join(tmp, config.DefaultTargetDir)
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 13)
	assert.FileExists(t, filepath.Join(outDir, "alert_page.dart"))
	assert.FileExists(t, filepath.Join(outDir, "toggle_page.dart"))
}

func TestGenerateCmd_EmptyComponentList(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, []string{})

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	require.NoError(t, err)

	outDir := filepath.Join(tmp, "out")
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err, "target directory must still be created")
	assert.Empty(t, entries)
}

func TestGenerateCmd_PreservesUnrelatedFiles(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, []string{"card"})

	outDir := filepath.Join(tmp, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	unrelated := filepath.Join(outDir, "home_page.dart")
	require.NoError(t, os.WriteFile(unrelated, []byte("// handwritten"), 0o644))

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	require.NoError(t, err)

	data, err := os.ReadFile(unrelated)
	require.NoError(t, err)
	assert.Equal(t, "// handwritten", string(data))
}

func TestGenerateCmd_DryRun(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, []string{"badge"})

	_, _, err := executeCommand("generate", "--repo-root", tmp, "--dry-run")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(tmp, "out", "badge_page.dart"))
	assert.NoDirExists(t, filepath.Join(tmp, "out"))
}

func TestGenerateCmd_TargetPathIsFile(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, []string{"badge"})
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "out"), []byte("x"), 0o644))

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	require.Error(t, err, "an unusable target path must surface a fatal error")
}

func TestGenerateCmd_InvalidManifest(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pagegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apiVersion: pagegen/v1\nkind: Widget\nspec:\n  targetDir: out\n"), 0o644))

	_, _, err := executeCommand("generate", "--repo-root", tmp)
	assert.Error(t, err)
}

func TestGenerateCmd_ExplicitConfigMissing(t *testing.T) {
	tmp := t.TempDir()

	_, _, err := executeCommand("generate", "--config", filepath.Join(tmp, "nope.yaml"))
	assert.Error(t, err)
}
