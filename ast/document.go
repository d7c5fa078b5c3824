package ast

import (
	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/diagnostic"
)

// Document is the lowered form of a parsed file: an ordered sequence of
// top-level definitions, spec §3 ("Document (AST)"). A Document mixes
// type-system and executable definitions exactly as its source file
// did; which subset a caller cares about is decided downstream by the
// schema/executable builders, not here.
type Document struct {
	Definitions []Definition
}

// FromCST lowers a parsed DOCUMENT element into a Document. Lowering is
// total: an Element that isn't a DOCUMENT node, or a child that doesn't
// match any known definition kind, is simply skipped rather than
// producing an error - the CST already carries every diagnostic that
// matters (spec §4.3).
func FromCST(file diagnostic.FileID, root cst.Element) *Document {
	doc := &Document{}
	node, ok := root.(*cst.Node)
	if !ok || node == nil {
		return doc
	}
	for _, c := range node.Children() {
		if def := lowerDefinition(file, c); def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	return doc
}

func lowerDefinition(file diagnostic.FileID, e cst.Element) Definition {
	node, ok := e.(*cst.Node)
	if !ok || node == nil {
		return nil
	}
	switch node.Kind() {
	case cst.SCHEMA_DEFINITION:
		return lowerSchemaDefinition(file, node)
	case cst.SCHEMA_EXTENSION:
		return lowerSchemaExtension(file, node)
	case cst.SCALAR_TYPE_DEFINITION:
		return lowerScalarTypeDefinition(file, node)
	case cst.SCALAR_TYPE_EXTENSION:
		return lowerScalarTypeExtension(file, node)
	case cst.OBJECT_TYPE_DEFINITION:
		return lowerObjectTypeDefinition(file, node)
	case cst.OBJECT_TYPE_EXTENSION:
		return lowerObjectTypeExtension(file, node)
	case cst.INTERFACE_TYPE_DEFINITION:
		return lowerInterfaceTypeDefinition(file, node)
	case cst.INTERFACE_TYPE_EXTENSION:
		return lowerInterfaceTypeExtension(file, node)
	case cst.UNION_TYPE_DEFINITION:
		return lowerUnionTypeDefinition(file, node)
	case cst.UNION_TYPE_EXTENSION:
		return lowerUnionTypeExtension(file, node)
	case cst.ENUM_TYPE_DEFINITION:
		return lowerEnumTypeDefinition(file, node)
	case cst.ENUM_TYPE_EXTENSION:
		return lowerEnumTypeExtension(file, node)
	case cst.INPUT_OBJECT_TYPE_DEFINITION:
		return lowerInputObjectTypeDefinition(file, node)
	case cst.INPUT_OBJECT_TYPE_EXTENSION:
		return lowerInputObjectTypeExtension(file, node)
	case cst.DIRECTIVE_DEFINITION:
		return lowerDirectiveDefinition(file, node)
	case cst.OPERATION_DEFINITION:
		return lowerOperationDefinition(file, node)
	case cst.FRAGMENT_DEFINITION:
		return lowerFragmentDefinition(file, node)
	default:
		return nil
	}
}
