package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepyr/pagegen/internal/config"
)

func sampleManifest(components ...string) *config.Manifest {
	m := &config.Manifest{
		Spec: config.Spec{
			TargetDir:  "out",
			Components: components,
		},
	}
	config.ApplyDefaults(m)
	m.Spec.Components = components
	return m
}

func TestRenderAll(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	files, err := engine.RenderAll(sampleManifest("alert", "badge", "toggle"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "alert_page.dart", files[0].Path)
	assert.Equal(t, "badge_page.dart", files[1].Path)
	assert.Equal(t, "toggle_page.dart", files[2].Path)
	for _, f := range files {
		assert.NotEmpty(t, f.Content)
	}
}

func TestRenderComponent_BadgeContent(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	f, err := engine.RenderComponent(sampleManifest("badge"), "badge")
	require.NoError(t, err)

	assert.Equal(t, "badge_page.dart", f.Path)
	assert.Contains(t, f.Content, "import 'package:jaspr/jaspr.dart';")
	assert.Contains(t, f.Content, "import '../preview/badge_preview.dart';")
	assert.Contains(t, f.Content, "class BadgePage extends StatelessComponent {")
	assert.Contains(t, f.Content, "yield BadgePreview();")
}

func TestRenderAll_Deterministic(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	m := sampleManifest("alert", "card")
	first, err := engine.RenderAll(m)
	require.NoError(t, err)
	second, err := engine.RenderAll(m)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce byte-identical output")
}

func TestRenderAll_EmptyList(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	files, err := engine.RenderAll(sampleManifest())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRenderAll_NilManifest(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	_, err = engine.RenderAll(nil)
	assert.Error(t, err)
}

func TestRenderComponent_UnknownTemplate(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	m := sampleManifest("alert")
	m.Spec.Template = "missing"

	_, err = engine.RenderComponent(m, "alert")
	assert.Error(t, err)
}

func TestRender_UnboundPlaceholderFails(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	_, err = engine.render("bad", "class {{ .Nope }}Page {}", Derive("alert", ".dart"))
	require.Error(t, err, "an unbound placeholder must fail loudly, never render empty")
	assert.Contains(t, err.Error(), "rendering")
}

func TestRender_HelperFuncs(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	out, err := engine.render("helper", `{{ pascalFirst "select" }}`, PageVars{})
	require.NoError(t, err)
	assert.Equal(t, "Select", out)
}
