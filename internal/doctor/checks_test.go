package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepyr/pagegen/internal/config"
)

// fakeExecutor returns canned command results.
type fakeExecutor struct {
	out string
	err error
}

func (f *fakeExecutor) Run(_ context.Context, _ string, _ ...string) (string, error) {
	return f.out, f.err
}

func testEnv(t *testing.T) Env {
	t.Helper()
	root := t.TempDir()
	m := config.DefaultManifest()
	m.Spec.TargetDir = "out/pages"
	m.Spec.Components = []string{"alert"}
	return Env{
		Root:         root,
		ManifestPath: filepath.Join(root, "pagegen.yaml"),
		Manifest:     m,
	}
}

func TestCheckManifest_MissingFileWarns(t *testing.T) {
	env := testEnv(t)

	r := checkManifest().Run(context.Background(), nil, env)
	assert.Equal(t, StatusWarn, r.Status)
	assert.NotEmpty(t, r.Fix)
}

func TestCheckManifest_ValidFile(t *testing.T) {
	schemaData, err := os.ReadFile(filepath.Join("..", "..", "schemas", "pagegen-v1.schema.json"))
	require.NoError(t, err)
	config.SetSchema(schemaData)

	env := testEnv(t)
	require.NoError(t, config.Save(env.Manifest, env.ManifestPath))

	r := checkManifest().Run(context.Background(), nil, env)
	assert.Equal(t, StatusPass, r.Status, r.Message)
}

func TestCheckTargetDir_MissingWarns(t *testing.T) {
	env := testEnv(t)

	r := checkTargetDir().Run(context.Background(), nil, env)
	assert.Equal(t, StatusWarn, r.Status)
}

func TestCheckTargetDir_WritablePasses(t *testing.T) {
	env := testEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.Root, "out", "pages"), 0o755))

	r := checkTargetDir().Run(context.Background(), nil, env)
	assert.Equal(t, StatusPass, r.Status, r.Message)
}

func TestCheckTargetDir_PathIsFileFails(t *testing.T) {
	env := testEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.Root, "out"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.Root, "out", "pages"), []byte("x"), 0o644))

	r := checkTargetDir().Run(context.Background(), nil, env)
	assert.Equal(t, StatusFail, r.Status)
}

func TestCheckPreviews(t *testing.T) {
	env := testEnv(t)
	previewDir := filepath.Join(env.Root, "out", "preview")
	require.NoError(t, os.MkdirAll(previewDir, 0o755))

	t.Run("missing preview warns", func(t *testing.T) {
		r := checkPreviews().Run(context.Background(), nil, env)
		assert.Equal(t, StatusWarn, r.Status)
		assert.Contains(t, r.Message, "alert_preview.dart")
	})

	t.Run("present preview passes", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(previewDir, "alert_preview.dart"), []byte("// preview"), 0o644))
		r := checkPreviews().Run(context.Background(), nil, env)
		assert.Equal(t, StatusPass, r.Status)
	})

	t.Run("empty component list skips", func(t *testing.T) {
		empty := testEnv(t)
		empty.Manifest.Spec.Components = nil
		r := checkPreviews().Run(context.Background(), nil, empty)
		assert.Equal(t, StatusSkip, r.Status)
	})
}

func TestCheckDartTool(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := checkDartTool().Run(context.Background(), &fakeExecutor{out: "Dart SDK version: 3.5.0\nmore"}, Env{})
		assert.Equal(t, StatusPass, r.Status)
		assert.Equal(t, "Dart SDK version: 3.5.0", r.Message)
	})

	t.Run("missing warns", func(t *testing.T) {
		r := checkDartTool().Run(context.Background(), &fakeExecutor{err: errors.New("not found")}, Env{})
		assert.Equal(t, StatusWarn, r.Status)
	})
}

func TestRunAll_Summary(t *testing.T) {
	env := testEnv(t)

	summary := RunAll(context.Background(), &fakeExecutor{err: errors.New("not found")}, env)
	assert.Len(t, summary.Results, len(AllChecks()))
	assert.False(t, summary.HasFailure, "warnings alone must not flag failure")
	assert.Zero(t, summary.TotalFail)
	assert.NotZero(t, summary.TotalWarn)
}
