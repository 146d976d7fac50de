// Package generator derives per-component substitution values, renders the
// embedded page template, and writes the results into the target directory.
package generator

import (
	texttemplate "text/template"
	"unicode"
	"unicode/utf8"
)

// PageVars is the substitution set bound to the template for one component.
// It is a pure function of the component name and the configured extension.
type PageVars struct {
	Pascal          string // capitalized identifier, e.g. "Alert"
	FileName        string // generated file name, e.g. "alert_page.dart"
	PreviewFileName string // referenced preview file, e.g. "alert_preview.dart"
}

// Derive computes the substitution set for a component name.
func Derive(name, ext string) PageVars {
	return PageVars{
		Pascal:          PascalFirst(name),
		FileName:        name + "_page" + ext,
		PreviewFileName: name + "_preview" + ext,
	}
}

// PascalFirst uppercases only the first letter, leaving the rest unchanged.
// This is intentionally not full PascalCase: "date_picker" becomes
// "Date_picker". The downstream project expects this exact derivation.
func PascalFirst(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// HelperFuncMap returns template helper functions available to page templates.
func HelperFuncMap() texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"pascalFirst": PascalFirst,
	}
}
