package ast

import (
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
)

func lowerSchemaDefinition(file diagnostic.FileID, node *cst.Node) *SchemaDefinition {
	d := &SchemaDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	d.RootTypes = lowerRootOperationTypes(file, node)
	return d
}

func lowerSchemaExtension(file diagnostic.FileID, node *cst.Node) *SchemaExtension {
	d := &SchemaExtension{span: spanOf(file, node)}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	d.RootTypes = lowerRootOperationTypes(file, node)
	return d
}

func lowerRootOperationTypes(file diagnostic.FileID, node *cst.Node) []RootOperationTypeDefinition {
	var out []RootOperationTypeDefinition
	for _, c := range node.ChildrenOfKind(cst.ROOT_OPERATION_TYPE_DEFINITION) {
		out = append(out, lowerRootOperationTypeDefinition(file, c))
	}
	return out
}

func lowerRootOperationTypeDefinition(file diagnostic.FileID, e cst.Element) RootOperationTypeDefinition {
	node, _ := e.(*cst.Node)
	r := RootOperationTypeDefinition{Span: spanOf(file, node)}
	if node == nil {
		return r
	}
	r.Operation = lowerOperationType(node)
	if nt := node.FirstNode(cst.NAMED_TYPE); nt != nil {
		r.Type, r.TypeSpan = lowerName(file, nt.FirstChild(cst.NAME_NODE))
	}
	return r
}

func lowerOperationType(node *cst.Node) OperationType {
	switch {
	case node.FirstToken(cst.MutationKW) != nil:
		return Mutation
	case node.FirstToken(cst.SubscriptionKW) != nil:
		return Subscription
	default:
		return Query
	}
}

func lowerScalarTypeDefinition(file diagnostic.FileID, node *cst.Node) *ScalarTypeDefinition {
	d := &ScalarTypeDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	return d
}

func lowerScalarTypeExtension(file diagnostic.FileID, node *cst.Node) *ScalarTypeExtension {
	d := &ScalarTypeExtension{span: spanOf(file, node)}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	return d
}

func lowerObjectTypeDefinition(file diagnostic.FileID, node *cst.Node) *ObjectTypeDefinition {
	d := &ObjectTypeDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if impl := node.FirstNode(cst.IMPLEMENTS_INTERFACES); impl != nil {
		d.Implements = lowerImplementsInterfaces(file, impl)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if fields := node.FirstNode(cst.FIELDS_DEFINITION); fields != nil {
		d.Fields = lowerFieldsDefinition(file, fields)
	}
	return d
}

func lowerObjectTypeExtension(file diagnostic.FileID, node *cst.Node) *ObjectTypeExtension {
	d := &ObjectTypeExtension{span: spanOf(file, node)}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if impl := node.FirstNode(cst.IMPLEMENTS_INTERFACES); impl != nil {
		d.Implements = lowerImplementsInterfaces(file, impl)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if fields := node.FirstNode(cst.FIELDS_DEFINITION); fields != nil {
		d.Fields = lowerFieldsDefinition(file, fields)
	}
	return d
}

func lowerInterfaceTypeDefinition(file diagnostic.FileID, node *cst.Node) *InterfaceTypeDefinition {
	d := &InterfaceTypeDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if impl := node.FirstNode(cst.IMPLEMENTS_INTERFACES); impl != nil {
		d.Implements = lowerImplementsInterfaces(file, impl)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if fields := node.FirstNode(cst.FIELDS_DEFINITION); fields != nil {
		d.Fields = lowerFieldsDefinition(file, fields)
	}
	return d
}

func lowerInterfaceTypeExtension(file diagnostic.FileID, node *cst.Node) *InterfaceTypeExtension {
	d := &InterfaceTypeExtension{span: spanOf(file, node)}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if impl := node.FirstNode(cst.IMPLEMENTS_INTERFACES); impl != nil {
		d.Implements = lowerImplementsInterfaces(file, impl)
	}
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if fields := node.FirstNode(cst.FIELDS_DEFINITION); fields != nil {
		d.Fields = lowerFieldsDefinition(file, fields)
	}
	return d
}

func lowerUnionTypeDefinition(file diagnostic.FileID, node *cst.Node) *UnionTypeDefinition {
	d := &UnionTypeDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if members := node.FirstNode(cst.UNION_MEMBER_TYPES); members != nil {
		d.Members = lowerUnionMemberTypes(file, members)
	}
	return d
}

func lowerUnionTypeExtension(file diagnostic.FileID, node *cst.Node) *UnionTypeExtension {
	d := &UnionTypeExtension{span: spanOf(file, node)}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if members := node.FirstNode(cst.UNION_MEMBER_TYPES); members != nil {
		d.Members = lowerUnionMemberTypes(file, members)
	}
	return d
}

func lowerEnumTypeDefinition(file diagnostic.FileID, node *cst.Node) *EnumTypeDefinition {
	d := &EnumTypeDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if values := node.FirstNode(cst.ENUM_VALUES_DEFINITION); values != nil {
		d.Values = lowerEnumValuesDefinition(file, values)
	}
	return d
}

func lowerEnumTypeExtension(file diagnostic.FileID, node *cst.Node) *EnumTypeExtension {
	d := &EnumTypeExtension{span: spanOf(file, node)}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if values := node.FirstNode(cst.ENUM_VALUES_DEFINITION); values != nil {
		d.Values = lowerEnumValuesDefinition(file, values)
	}
	return d
}

func lowerInputObjectTypeDefinition(file diagnostic.FileID, node *cst.Node) *InputObjectTypeDefinition {
	d := &InputObjectTypeDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if fields := node.FirstNode(cst.INPUT_FIELDS_DEFINITION); fields != nil {
		d.Fields = lowerInputFieldsDefinition(file, fields)
	}
	return d
}

func lowerInputObjectTypeExtension(file diagnostic.FileID, node *cst.Node) *InputObjectTypeExtension {
	d := &InputObjectTypeExtension{span: spanOf(file, node)}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if dirs := node.FirstNode(cst.DIRECTIVES); dirs != nil {
		d.Directives = lowerDirectives(file, dirs)
	}
	if fields := node.FirstNode(cst.INPUT_FIELDS_DEFINITION); fields != nil {
		d.Fields = lowerInputFieldsDefinition(file, fields)
	}
	return d
}

func lowerDirectiveDefinition(file diagnostic.FileID, node *cst.Node) *DirectiveDefinition {
	d := &DirectiveDefinition{span: spanOf(file, node)}
	if desc := node.FirstNode(cst.DESCRIPTION); desc != nil {
		d.Description = lowerDescription(file, desc)
	}
	d.Name, d.NameSpan = lowerName(file, node.FirstChild(cst.NAME_NODE))
	if args := node.FirstNode(cst.ARGUMENTS_DEFINITION); args != nil {
		d.Arguments = lowerArgumentsDefinition(file, args)
	}
	if locs := node.FirstNode(cst.DIRECTIVE_LOCATIONS); locs != nil {
		d.Locations = lowerDirectiveLocations(file, locs)
	}
	return d
}
