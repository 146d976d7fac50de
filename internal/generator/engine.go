package generator

import (
	"fmt"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"github.com/deepyr/pagegen/internal/config"
	"github.com/deepyr/pagegen/templates"
)

// RenderedFile is a rendered output artifact.
type RenderedFile struct {
	Path    string
	Content string
}

// Engine renders manifest-driven page templates into files.
type Engine struct {
	funcMap texttemplate.FuncMap
}

// NewEngine creates a new template engine with helper functions.
func NewEngine() (*Engine, error) {
	return &Engine{funcMap: HelperFuncMap()}, nil
}

// RenderAll renders one page file per component, in manifest order.
// Rendering is deterministic: the same manifest always yields byte-identical
// content.
func (e *Engine) RenderAll(m *config.Manifest) ([]RenderedFile, error) {
	if m == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	files := make([]RenderedFile, 0, len(m.Spec.Components))
	for _, name := range m.Spec.Components {
		f, err := e.RenderComponent(m, name)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// RenderComponent renders the page file for a single component.
func (e *Engine) RenderComponent(m *config.Manifest, name string) (RenderedFile, error) {
	if m == nil {
		return RenderedFile{}, fmt.Errorf("manifest cannot be nil")
	}

	tplFile := m.Spec.Template + m.Spec.Extension + ".tmpl"
	data, err := fs.ReadFile(templates.FS, tplFile)
	if err != nil {
		return RenderedFile{}, fmt.Errorf("reading template %s: %w", tplFile, err)
	}

	vars := Derive(name, m.Spec.Extension)
	content, err := e.render(tplFile, string(data), vars)
	if err != nil {
		return RenderedFile{}, err
	}

	return RenderedFile{Path: vars.FileName, Content: content}, nil
}

// render executes a template against the substitution set. Substitution is
// total: a placeholder the set does not bind fails the render rather than
// emitting empty text.
func (e *Engine) render(name, text string, vars PageVars) (string, error) {
	t, err := texttemplate.New(name).Funcs(e.funcMap).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, vars); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return sb.String(), nil
}
