package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"daftgen/internal/attr"
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
)

const directivePrefix = "//" + attr.Namespace + ":"

// extractor walks the syntax of one package.
type extractor struct {
	pkg   *packages.Package
	opts  Options
	want  map[string]bool
	enums map[*types.TypeName]*decl.TypeDeclaration

	decls    []*decl.TypeDeclaration
	selected []string
	imports  []gen.ImportSpec
	diags    []diagnostic.Diagnostic
	seen     map[string]bool
}

func newExtractor(pkg *packages.Package, opts Options) *extractor {
	x := &extractor{
		pkg:   pkg,
		opts:  opts,
		want:  map[string]bool{},
		enums: map[*types.TypeName]*decl.TypeDeclaration{},
		seen:  map[string]bool{},
	}

	for _, name := range opts.Types {
		x.want[name] = true
	}

	return x
}

func (x *extractor) run() {
	var files []*ast.File

	for _, f := range x.pkg.Syntax {
		name := x.pkg.Fset.Position(f.Package).Filename
		if x.opts.SkipSuffix != "" && strings.HasSuffix(name, x.opts.SkipSuffix) {
			continue
		}

		files = append(files, f)
		before := len(x.decls)

		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				x.typeSpec(ts, doc)
			}
		}

		if len(x.decls) > before {
			x.addImports(f)
		}
	}

	if len(x.enums) == 0 {
		return
	}

	for _, f := range files {
		x.variants(f)
	}
}

func (x *extractor) typeSpec(ts *ast.TypeSpec, doc *ast.CommentGroup) {
	attrs := x.directives(doc)
	if !x.want[ts.Name.Name] && !optedIn(attrs) {
		return
	}

	x.selected = append(x.selected, ts.Name.Name)

	d := &decl.TypeDeclaration{
		Name:     ts.Name.Name,
		Exported: ts.Name.IsExported(),
		Doc:      doc.Text(),
		Attrs:    attrs,
		Source:   true,
		Generics: generics(ts.TypeParams),
		Pos:      x.position(ts.Name.Pos()),
	}

	if ts.Assign.IsValid() {
		x.unsupported(d, "type aliases cannot be diffed; annotate the aliased type instead")

		return
	}

	switch t := ts.Type.(type) {
	case *ast.StructType:
		d.Kind = decl.KindStruct
		x.structFields(d, t)
	case *ast.InterfaceType:
		d.Kind = decl.KindInterface

		if iface, ok := x.typeOf(t).(*types.Interface); ok && !iface.IsMethodSet() {
			x.unsupported(d, "constraint interfaces have no values to diff")

			return
		}
	default:
		switch x.underlying(ts.Name).(type) {
		case *types.Pointer:
			x.unsupported(d, "methods cannot be declared on a pointer type")

			return
		case *types.Interface:
			d.Kind = decl.KindInterface
		default:
			d.Kind = decl.KindEnum
			d.Underlying = ts.Type

			if tn, ok := x.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
				x.enums[tn] = d
			}
		}
	}

	x.decls = append(x.decls, d)
}

func (x *extractor) structFields(d *decl.TypeDeclaration, st *ast.StructType) {
	for _, fld := range st.Fields.List {
		attrs := x.tagAttrs(fld.Tag)
		goType := x.typeOf(fld.Type)

		if len(fld.Names) == 0 {
			d.Fields = append(d.Fields, decl.Field{
				Name:   embeddedName(fld.Type),
				Index:  len(d.Fields),
				Type:   fld.Type,
				GoType: goType,
				Attrs:  attrs,
				Pos:    x.position(fld.Type.Pos()),
			})

			continue
		}

		for _, n := range fld.Names {
			if n.Name == "_" {
				if isEmptyStruct(fld.Type) {
					d.NonExhaustive = true
				}

				continue
			}

			d.Fields = append(d.Fields, decl.Field{
				Name:   n.Name,
				Index:  len(d.Fields),
				Type:   fld.Type,
				GoType: goType,
				Attrs:  attrs,
				Pos:    x.position(n.Pos()),
			})
		}
	}
}

// variants attaches the constants of each enum-like type as its variants.
func (x *extractor) variants(f *ast.File) {
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			continue
		}

		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)

			doc := vs.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			for _, n := range vs.Names {
				c, ok := x.pkg.TypesInfo.Defs[n].(*types.Const)
				if !ok {
					continue
				}

				named, ok := c.Type().(*types.Named)
				if !ok {
					continue
				}

				if e := x.enums[named.Obj()]; e != nil {
					e.Variants = append(e.Variants, decl.Variant{
						Name:  n.Name,
						Shape: decl.ShapeUnit,
						Attrs: x.directives(doc),
						Pos:   x.position(n.Pos()),
					})
				}
			}
		}
	}
}

// directives returns the //daft: lines of a doc comment.
func (x *extractor) directives(doc *ast.CommentGroup) []decl.Attr {
	if doc == nil {
		return nil
	}

	var out []decl.Attr

	for _, c := range doc.List {
		if text, ok := strings.CutPrefix(c.Text, directivePrefix); ok {
			out = append(out, decl.Attr{
				Text: text,
				Pos:  x.position(c.Slash).Offset(len(directivePrefix)),
			})
		}
	}

	return out
}

// tagAttrs returns every daft entry of a struct tag, repeats included.
func (x *extractor) tagAttrs(tag *ast.BasicLit) []decl.Attr {
	if tag == nil {
		return nil
	}

	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return nil
	}

	base := x.position(tag.ValuePos)

	var out []decl.Attr

	for _, e := range scanTag(raw) {
		if e.key == attr.Namespace {
			out = append(out, decl.Attr{Text: e.value, Pos: base.Offset(1 + e.offset)})
		}
	}

	return out
}

func (x *extractor) addImports(f *ast.File) {
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || x.seen[path] {
			continue
		}

		spec := gen.ImportSpec{Path: path}
		if imp.Name != nil {
			if imp.Name.Name == "_" {
				continue
			}

			spec.Alias = imp.Name.Name
		}

		x.seen[path] = true
		x.imports = append(x.imports, spec)
	}
}

func (x *extractor) unsupported(d *decl.TypeDeclaration, msg string) {
	x.diags = append(x.diags, diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeUnsupported,
		Message:  msg,
		Pos:      d.Pos,
		TypeName: d.Name,
	})
}

func (x *extractor) position(p token.Pos) diagnostic.Position {
	return diagnostic.PositionFrom(x.pkg.Fset.Position(p))
}

func (x *extractor) typeOf(e ast.Expr) types.Type {
	if x.pkg.TypesInfo == nil {
		return nil
	}

	return x.pkg.TypesInfo.TypeOf(e)
}

func (x *extractor) underlying(name *ast.Ident) types.Type {
	if x.pkg.TypesInfo == nil {
		return nil
	}

	obj := x.pkg.TypesInfo.Defs[name]
	if obj == nil {
		return nil
	}

	return obj.Type().Underlying()
}

// optedIn reports whether a directive carries the diffable marker.
func optedIn(attrs []decl.Attr) bool {
	for _, a := range attrs {
		items, _ := attr.ParseItems(a)
		for _, it := range items {
			if it.Name == attr.NameDiffable {
				return true
			}
		}
	}

	return false
}

func generics(list *ast.FieldList) decl.Generics {
	if list == nil {
		return decl.Generics{}
	}

	var g decl.Generics

	for _, f := range list.List {
		for _, n := range f.Names {
			g.Params = append(g.Params, decl.Param{
				Kind:   decl.ParamType,
				Name:   n.Name,
				Bounds: []decl.Bound{decl.Constraint(f.Type)},
			})
		}
	}

	return g
}

func embeddedName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}

func isEmptyStruct(e ast.Expr) bool {
	st, ok := e.(*ast.StructType)

	return ok && (st.Fields == nil || len(st.Fields.List) == 0)
}
