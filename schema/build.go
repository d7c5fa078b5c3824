package schema

import (
	"github.com/gqlcore/gqlcore/ast"
	"github.com/gqlcore/gqlcore/diagnostic"
)

// mergedObject/mergedInterface/... hold a base type-system definition
// plus whatever its extensions in this build contributed, after orphan
// extensions (those with no matching base) have been filtered out and
// reported.
type mergedObject struct {
	desc       string
	implements []ast.Name
	directives []ast.Directive
	fields     []ast.FieldDefinition
}

type mergedInterface struct {
	desc       string
	implements []ast.Name
	directives []ast.Directive
	fields     []ast.FieldDefinition
}

type mergedUnion struct {
	desc       string
	directives []ast.Directive
	members    []ast.Name
}

type mergedEnum struct {
	desc       string
	directives []ast.Directive
	values     []ast.EnumValueDefinition
}

type mergedInputObject struct {
	desc       string
	directives []ast.Directive
	fields     []ast.InputValueDefinition
}

// reportOrphans records a TypeError diagnostic for every extension in
// extMap whose target name has no corresponding entry in baseMap (spec
// §4.4: "extensions whose target is missing are collected as 'orphan
// extensions'").
func reportOrphans[E ast.Definition, B any](diags *[]diagnostic.Diagnostic, extMap map[ast.Name][]E, baseMap map[ast.Name]B) {
	for name, exts := range extMap {
		if _, ok := baseMap[name]; ok {
			continue
		}
		for _, ext := range exts {
			*diags = append(*diags, diagnostic.New(diagnostic.KindTypeError,
				ext.Span().ToDiagnostic(), "orphan extension of "+name.String()))
		}
	}
}

func (b *Builder) typeError(message string, span ast.Span) {
	b.diags = append(b.diags, diagnostic.New(diagnostic.KindTypeError, span.ToDiagnostic(), message))
}

// Build applies every pending extension to its target (reporting orphan
// extensions for those with none), resolves every field/argument/value
// type reference, and returns the resulting (possibly partial) Schema
// together with every diagnostic accumulated along the way - redefined
// types/directives from AddDocument, orphan extensions, and unresolved
// type references (spec §4.4 step 2).
func (b *Builder) Build() (*Schema, []diagnostic.Diagnostic) {
	s := &Schema{
		Types:      make(map[ast.Name]NamedType),
		Directives: make(map[ast.Name]*DirectiveDecl),
	}

	// Phase 1: shells, so field/argument type references anywhere in the
	// document set can resolve regardless of definition order.
	for _, name := range b.typeOrder {
		switch {
		case b.objects[name] != nil:
			s.Types[name] = &Object{Name: name}
		case b.interfaces[name] != nil:
			s.Types[name] = &Interface{Name: name}
		case b.unions[name] != nil:
			s.Types[name] = &Union{Name: name}
		case b.enums[name] != nil:
			s.Types[name] = &Enum{Name: name}
		case b.inputObjects[name] != nil:
			s.Types[name] = &InputObject{Name: name}
		case b.scalars[name] != nil:
			s.Types[name] = &Scalar{Name: name}
		}
	}
	// The built-in scalars resolve without being declared; a document
	// type of the same name takes their place.
	for _, name := range []ast.Name{"Int", "Float", "String", "Boolean", "ID"} {
		if _, ok := s.Types[name]; !ok {
			s.Types[name] = &Scalar{Name: name}
		}
	}

	for name, d := range b.directives {
		s.Directives[name] = &DirectiveDecl{
			Name: name,
			Desc: d.Description,
			Args: b.resolveInputValues(d.Arguments, s.Types),
			Locs: d.Locations,
		}
	}

	// Phase 2: merge extensions into each base definition, reporting
	// orphans.
	objects := make(map[ast.Name]mergedObject, len(b.objects))
	for name, d := range b.objects {
		m := mergedObject{desc: d.Description, implements: d.Implements, directives: d.Directives, fields: d.Fields}
		for _, ext := range b.objectExt[name] {
			m.implements = append(m.implements, ext.Implements...)
			m.directives = append(m.directives, ext.Directives...)
			m.fields = append(m.fields, ext.Fields...)
		}
		objects[name] = m
	}
	reportOrphans(&b.diags, b.objectExt, b.objects)

	interfaces := make(map[ast.Name]mergedInterface, len(b.interfaces))
	for name, d := range b.interfaces {
		m := mergedInterface{desc: d.Description, implements: d.Implements, directives: d.Directives, fields: d.Fields}
		for _, ext := range b.interfaceExt[name] {
			m.implements = append(m.implements, ext.Implements...)
			m.directives = append(m.directives, ext.Directives...)
			m.fields = append(m.fields, ext.Fields...)
		}
		interfaces[name] = m
	}
	reportOrphans(&b.diags, b.interfaceExt, b.interfaces)

	unions := make(map[ast.Name]mergedUnion, len(b.unions))
	for name, d := range b.unions {
		m := mergedUnion{desc: d.Description, directives: d.Directives, members: d.Members}
		for _, ext := range b.unionExt[name] {
			m.directives = append(m.directives, ext.Directives...)
			m.members = append(m.members, ext.Members...)
		}
		unions[name] = m
	}
	reportOrphans(&b.diags, b.unionExt, b.unions)

	enums := make(map[ast.Name]mergedEnum, len(b.enums))
	for name, d := range b.enums {
		m := mergedEnum{desc: d.Description, directives: d.Directives, values: d.Values}
		for _, ext := range b.enumExt[name] {
			m.directives = append(m.directives, ext.Directives...)
			m.values = append(m.values, ext.Values...)
		}
		enums[name] = m
	}
	reportOrphans(&b.diags, b.enumExt, b.enums)

	inputObjects := make(map[ast.Name]mergedInputObject, len(b.inputObjects))
	for name, d := range b.inputObjects {
		m := mergedInputObject{desc: d.Description, directives: d.Directives, fields: d.Fields}
		for _, ext := range b.inputExt[name] {
			m.directives = append(m.directives, ext.Directives...)
			m.fields = append(m.fields, ext.Fields...)
		}
		inputObjects[name] = m
	}
	reportOrphans(&b.diags, b.inputExt, b.inputObjects)

	for name, d := range b.scalars {
		directives := append([]ast.Directive{}, d.Directives...)
		for _, ext := range b.scalarExt[name] {
			directives = append(directives, ext.Directives...)
		}
		sc := s.Types[name].(*Scalar)
		sc.Desc = d.Description
		sc.Directives = directives
	}
	reportOrphans(&b.diags, b.scalarExt, b.scalars)

	// Phase 3: fill in each shell's body, resolving type references
	// against the now-complete Types map.
	for name, m := range enums {
		e := s.Types[name].(*Enum)
		e.Desc = m.desc
		e.Directives = m.directives
		for _, v := range m.values {
			e.Values = append(e.Values, &EnumValue{Name: v.Value, Desc: v.Description, Directives: v.Directives})
		}
	}

	for name, m := range inputObjects {
		io := s.Types[name].(*InputObject)
		io.Desc = m.desc
		io.Directives = m.directives
		io.Values = b.resolveInputValues(m.fields, s.Types)
	}

	for name, m := range objects {
		o := s.Types[name].(*Object)
		o.Desc = m.desc
		o.Directives = m.directives
		o.Fields = b.resolveFields(m.fields, s.Types)
		for _, iname := range m.implements {
			it, ok := s.Types[iname]
			if !ok {
				b.typeError("implements unknown interface "+iname.String(), ast.Span{})
				continue
			}
			iface, ok := it.(*Interface)
			if !ok {
				b.typeError(iname.String()+" is not an interface", ast.Span{})
				continue
			}
			o.Interfaces = append(o.Interfaces, iface)
			iface.PossibleTypes = append(iface.PossibleTypes, o)
		}
	}

	for name, m := range interfaces {
		it := s.Types[name].(*Interface)
		it.Desc = m.desc
		it.Directives = m.directives
		it.Fields = b.resolveFields(m.fields, s.Types)
		for _, iname := range m.implements {
			parent, ok := s.Types[iname]
			if !ok {
				b.typeError("implements unknown interface "+iname.String(), ast.Span{})
				continue
			}
			pi, ok := parent.(*Interface)
			if !ok {
				b.typeError(iname.String()+" is not an interface", ast.Span{})
				continue
			}
			it.Interfaces = append(it.Interfaces, pi)
		}
	}

	for name, m := range unions {
		u := s.Types[name].(*Union)
		u.Desc = m.desc
		u.Directives = m.directives
		for _, mname := range m.members {
			mt, ok := s.Types[mname]
			if !ok {
				b.typeError("union member type "+mname.String()+" not found", ast.Span{})
				continue
			}
			obj, ok := mt.(*Object)
			if !ok {
				b.typeError(mname.String()+" is not an object type; union members must be object types", ast.Span{})
				continue
			}
			u.PossibleTypes = append(u.PossibleTypes, obj)
		}
	}

	// Phase 4: root operation types (explicit SchemaDefinition, else the
	// "Query"/"Mutation"/"Subscription" convention).
	b.resolveRootTypes(s)

	return s, b.diags
}

func (b *Builder) resolveRootTypes(s *Schema) {
	assign := func(name ast.Name, role string) *Object {
		if name == "" {
			return nil
		}
		t, ok := s.Types[name]
		if !ok {
			b.typeError("root "+role+" type "+name.String()+" not found", ast.Span{})
			return nil
		}
		o, ok := t.(*Object)
		if !ok {
			b.typeError("root "+role+" type "+name.String()+" is not an object type", ast.Span{})
			return nil
		}
		return o
	}

	if b.schemaDef != nil {
		roots := append([]ast.RootOperationTypeDefinition{}, b.schemaDef.RootTypes...)
		for _, ext := range b.schemaExt {
			roots = append(roots, ext.RootTypes...)
		}
		for _, r := range roots {
			switch r.Operation {
			case ast.Query:
				s.Query = assign(r.Type, "query")
			case ast.Mutation:
				s.Mutation = assign(r.Type, "mutation")
			case ast.Subscription:
				s.Subscription = assign(r.Type, "subscription")
			}
		}
		return
	}

	if _, ok := s.Types["Query"]; ok {
		s.Query = assign("Query", "query")
	}
	if _, ok := s.Types["Mutation"]; ok {
		s.Mutation = assign("Mutation", "mutation")
	}
	if _, ok := s.Types["Subscription"]; ok {
		s.Subscription = assign("Subscription", "subscription")
	}
}

func (b *Builder) resolveFields(defs []ast.FieldDefinition, types map[ast.Name]NamedType) FieldList {
	var out FieldList
	for _, d := range defs {
		ref, ok := b.resolveTypeRef(d.Type, types)
		if !ok {
			b.typeError("field "+d.Name.String()+" has unresolved type", d.Span)
		}
		out = append(out, &Field{
			Name:       d.Name,
			Desc:       d.Description,
			Args:       b.resolveInputValues(d.Arguments, types),
			Type:       ref,
			Directives: d.Directives,
		})
	}
	return out
}

func (b *Builder) resolveInputValues(defs []ast.InputValueDefinition, types map[ast.Name]NamedType) InputValueList {
	var out InputValueList
	for _, d := range defs {
		ref, ok := b.resolveTypeRef(d.Type, types)
		if !ok {
			b.typeError("input value "+d.Name.String()+" has unresolved type", d.Span)
		}
		out = append(out, &InputValue{
			Name:       d.Name,
			Desc:       d.Description,
			Type:       ref,
			Default:    d.DefaultValue,
			Directives: d.Directives,
		})
	}
	return out
}

func (b *Builder) resolveTypeRef(t ast.Type, types map[ast.Name]NamedType) (TypeRef, bool) {
	switch v := t.(type) {
	case *ast.NamedType:
		nt, ok := types[v.Name]
		return nt, ok
	case *ast.ListType:
		if v.Element == nil {
			return nil, false
		}
		inner, ok := b.resolveTypeRef(v.Element, types)
		if !ok {
			return nil, false
		}
		return &List{OfType: inner}, true
	case *ast.NonNullType:
		if v.Inner == nil {
			return nil, false
		}
		inner, ok := b.resolveTypeRef(v.Inner, types)
		if !ok {
			return nil, false
		}
		return &NonNull{OfType: inner}, true
	default:
		return nil, false
	}
}
