package schema

import "github.com/gqlcore/gqlcore/ast"

// ImplementersMap inverts the schema's forward "implements" edges: for
// every interface name, the set of object and interface names that
// implement it. Union membership is not included. It is always computed from a Schema rather
// than stored on one (spec §3: "derived from Schema; never stored there
// directly") - the database layer is what caches it as a query.
func ImplementersMap(s *Schema) map[ast.Name][]ast.Name {
	out := make(map[ast.Name][]ast.Name)
	for _, t := range s.Types {
		switch v := t.(type) {
		case *Object:
			for _, iface := range allInterfaces(v.Interfaces) {
				out[iface.Name] = append(out[iface.Name], v.Name)
			}
		case *Interface:
			for _, iface := range allInterfaces(v.Interfaces) {
				out[iface.Name] = append(out[iface.Name], v.Name)
			}
		}
	}
	return out
}

// allInterfaces returns direct, plus transitively inherited, interfaces.
func allInterfaces(direct []*Interface) []*Interface {
	seen := make(map[ast.Name]bool)
	var out []*Interface
	var walk func([]*Interface)
	walk = func(ifaces []*Interface) {
		for _, i := range ifaces {
			if seen[i.Name] {
				continue
			}
			seen[i.Name] = true
			out = append(out, i)
			walk(i.Interfaces)
		}
	}
	walk(direct)
	return out
}

// IsSubtype reports whether sub is a subtype of the abstract type named
// abstract: sub implements abstract (transitively, if abstract is an
// interface), or sub is a member of abstract (if abstract is a union).
// Spec §4.4's subtype relation.
func IsSubtype(s *Schema, sub, abstract ast.Name) bool {
	abstractType, ok := s.Types[abstract]
	if !ok {
		return false
	}
	switch a := abstractType.(type) {
	case *Interface:
		for _, name := range ImplementersMap(s)[abstract] {
			if name == sub {
				return true
			}
		}
		return false
	case *Union:
		for _, m := range a.PossibleTypes {
			if m.Name == sub {
				return true
			}
		}
		return false
	default:
		return false
	}
}
