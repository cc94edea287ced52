package gen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by daftgen. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{.}}
{{end}})
{{end}}
{{range .Fragments}}
{{.}}
{{end}}
`))

var companionTemplate = template.Must(template.New("companion").Parse(`{{if .Comments}}// {{.Name}} is the diff of two {{.Orig}} values.
{{end}}type {{.Decl}} struct {
{{range .Fields}}	{{.Member}} {{.Type}}
{{end}}{{if .NonExhaustive}}	_ struct{}
{{end}}}

{{if .Comments}}// String formats the diff field by field.
{{end}}func ({{.Self}} {{.Type}}) String() string {
	return {{.RT}}.{{if .Tuple}}DebugTuple{{else}}DebugStruct{{end}}("{{.Name}}").
{{range .Fields}}		Field({{if not $.Tuple}}"{{.Member}}", {{end}}{{$.Self}}.{{.Member}}).
{{end}}		{{if .NonExhaustive}}FinishNonExhaustive(){{else}}Finish(){{end}}
}

{{if .Comments}}// Equal reports whether both diffs hold equal field diffs.
{{end}}func ({{.Self}} {{.Type}}) Equal({{.Other}} {{.Type}}) bool {
{{if .Fields}}	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}{{$.Self}}.{{$f.Member}}.Equal({{$.Other}}.{{$f.Member}}){{end}}
{{else}}	return true
{{end}}}

{{if .Comments}}// Unchanged reports whether the compared values were equal in every diffed field.
{{end}}func ({{.Self}} {{.Type}}) Unchanged() bool {
{{if .Fields}}	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}{{$.Self}}.{{$f.Member}}.Unchanged(){{end}}
{{else}}	return true
{{end}}}
{{if .Assertions}}
var (
{{range .Assertions}}	{{.}}
{{end}})
{{end}}`))

var diffImplTemplate = template.Must(template.New("diff").Parse(`{{if .Comments}}// Diff compares {{.Before}} with {{.After}} field by field.
{{end}}func ({{.Before}} *{{.Orig}}) Diff({{.After}} *{{.Orig}}) {{.Result}} {
	return {{.Result}}{
{{range .Fields}}		{{.Member}}: {{.Call}},
{{end}}	}
}
{{if .Assertion}}
var {{.Assertion}}
{{end}}`))

var leafImplTemplate = template.Must(template.New("leaf").Parse(`{{if .Comments}}// Diff pairs {{.Before}} with {{.After}} without looking inside.
{{end}}func ({{.Before}} *{{.Orig}}) Diff({{.After}} *{{.Orig}}) {{.Result}} {
	return {{.RT}}.NewLeaf({{.Before}}, {{.After}})
}
{{if .Assertion}}
var {{.Assertion}}
{{end}}`))

var leafFuncTemplate = template.Must(template.New("leaf_func").Parse(`{{if .Comments}}// {{.Func}} pairs {{.Before}} with {{.After}} without looking inside.
{{end}}func {{.Func}}{{.TypeParams}}({{.Before}}, {{.After}} *{{.Orig}}) {{.Result}} {
	return {{.RT}}.NewLeaf({{.Before}}, {{.After}})
}
`))

var structTemplate = template.Must(template.New("struct").Parse(`{{range .Doc}}// {{.}}
{{end}}type {{.Decl}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}{{if .Tag}} {{.Tag}}{{end}}
{{end}}{{if .NonExhaustive}}	_ struct{}
{{end}}}
`))

var sealedTemplate = template.Must(template.New("sealed").Parse(`{{range .Doc}}// {{.}}
{{end}}type {{.Decl}} interface {
	{{.Marker}}()
}
{{range .Variants}}
{{if $.Comments}}// {{.Name}} is the {{.Variant}} variant of {{$.Name}}.
{{end}}type {{.Decl}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}

func ({{.Type}}) {{$.Marker}}() {}
{{end}}`))
