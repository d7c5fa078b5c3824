package cst

// Kind identifies the syntactic category of a node or token in the CST.
// Token kinds and node kinds share one enum, following the "green tree"
// design: a token's Kind can be relabeled by the parser (e.g. a Name
// token whose text is "union" is bumped into the tree as UnionKW) without
// introducing a second enum the parser would have to keep in sync.
type Kind uint16

const (
	// Zero value is never a real kind; it exists to make an
	// accidentally-unset Kind field easy to spot.
	Invalid Kind = iota

	// --- trivia & literal tokens ---
	Whitespace
	Comment
	// Name is the raw identifier token (rendered as IDENT, see kindNames);
	// NAME_NODE is the composite node that wraps it plus trailing trivia.
	Name
	IntValue
	FloatValue
	StringValue
	EOF
	Error

	// --- punctuators ---
	LBrace   // {
	RBrace   // }
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	Colon    // :
	Equals   // =
	Pipe     // |
	At       // @
	Bang     // !
	Dollar   // $
	Amp      // &
	Spread   // ...

	// --- contextual keywords (lexed as Name, relabeled by the parser) ---
	QueryKW
	MutationKW
	SubscriptionKW
	FragmentKW
	OnKW
	SchemaKW
	ScalarKW
	TypeKW
	InterfaceKW
	ImplementsKW
	UnionKW
	EnumKW
	InputKW
	DirectiveKW
	ExtendKW
	TrueKW
	FalseKW
	NullKW

	// --- node kinds ---
	DOCUMENT
	NAME_NODE
	DESCRIPTION
	DIRECTIVE
	DIRECTIVES
	DIRECTIVE_LOCATIONS
	ARGUMENT
	ARGUMENTS
	ARGUMENTS_DEFINITION
	INPUT_VALUE_DEFINITION
	VARIABLE
	VARIABLE_DEFINITION
	VARIABLE_DEFINITIONS
	DEFAULT_VALUE
	NAMED_TYPE
	LIST_TYPE
	NON_NULL_TYPE
	INT_VALUE_NODE
	FLOAT_VALUE_NODE
	STRING_VALUE_NODE
	BOOLEAN_VALUE
	NULL_VALUE
	ENUM_VALUE
	LIST_VALUE
	OBJECT_VALUE
	OBJECT_FIELD
	SELECTION_SET
	FIELD
	ALIAS
	FRAGMENT_SPREAD
	INLINE_FRAGMENT
	FRAGMENT_DEFINITION
	TYPE_CONDITION
	OPERATION_DEFINITION
	OPERATION_TYPE
	SCHEMA_DEFINITION
	SCHEMA_EXTENSION
	ROOT_OPERATION_TYPE_DEFINITION
	SCALAR_TYPE_DEFINITION
	SCALAR_TYPE_EXTENSION
	OBJECT_TYPE_DEFINITION
	OBJECT_TYPE_EXTENSION
	IMPLEMENTS_INTERFACES
	FIELD_DEFINITION
	FIELDS_DEFINITION
	INTERFACE_TYPE_DEFINITION
	INTERFACE_TYPE_EXTENSION
	UNION_TYPE_DEFINITION
	UNION_TYPE_EXTENSION
	UNION_MEMBER_TYPES
	ENUM_TYPE_DEFINITION
	ENUM_TYPE_EXTENSION
	ENUM_VALUES_DEFINITION
	ENUM_VALUE_DEFINITION
	INPUT_OBJECT_TYPE_DEFINITION
	INPUT_OBJECT_TYPE_EXTENSION
	INPUT_FIELDS_DEFINITION
	DIRECTIVE_DEFINITION
)

var kindNames = map[Kind]string{
	Invalid:    "INVALID",
	Whitespace: "WHITESPACE",
	Comment:    "COMMENT",
	Name:       "IDENT",
	IntValue:   "INT",
	FloatValue: "FLOAT",
	StringValue: "STRING",
	EOF:        "EOF",
	Error:      "ERROR",

	LBrace:   "L_BRACE",
	RBrace:   "R_BRACE",
	LParen:   "L_PAREN",
	RParen:   "R_PAREN",
	LBracket: "L_BRACKET",
	RBracket: "R_BRACKET",
	Colon:    "COLON",
	Equals:   "EQ",
	Pipe:     "PIPE",
	At:       "AT",
	Bang:     "BANG",
	Dollar:   "DOLLAR",
	Amp:      "AMP",
	Spread:   "SPREAD",

	QueryKW:        "query_KW",
	MutationKW:     "mutation_KW",
	SubscriptionKW: "subscription_KW",
	FragmentKW:     "fragment_KW",
	OnKW:           "on_KW",
	SchemaKW:       "schema_KW",
	ScalarKW:       "scalar_KW",
	TypeKW:         "type_KW",
	InterfaceKW:    "interface_KW",
	ImplementsKW:   "implements_KW",
	UnionKW:        "union_KW",
	EnumKW:         "enum_KW",
	InputKW:        "input_KW",
	DirectiveKW:    "directive_KW",
	ExtendKW:       "extend_KW",
	TrueKW:         "true_KW",
	FalseKW:        "false_KW",
	NullKW:         "null_KW",

	DOCUMENT:                       "DOCUMENT",
	NAME_NODE:                      "NAME",
	DESCRIPTION:                    "DESCRIPTION",
	DIRECTIVE:                      "DIRECTIVE",
	DIRECTIVES:                     "DIRECTIVES",
	DIRECTIVE_LOCATIONS:            "DIRECTIVE_LOCATIONS",
	ARGUMENT:                       "ARGUMENT",
	ARGUMENTS:                      "ARGUMENTS",
	ARGUMENTS_DEFINITION:           "ARGUMENTS_DEFINITION",
	INPUT_VALUE_DEFINITION:         "INPUT_VALUE_DEFINITION",
	VARIABLE:                       "VARIABLE",
	VARIABLE_DEFINITION:            "VARIABLE_DEFINITION",
	VARIABLE_DEFINITIONS:           "VARIABLE_DEFINITIONS",
	DEFAULT_VALUE:                  "DEFAULT_VALUE",
	NAMED_TYPE:                     "NAMED_TYPE",
	LIST_TYPE:                      "LIST_TYPE",
	NON_NULL_TYPE:                  "NON_NULL_TYPE",
	INT_VALUE_NODE:                 "INT_VALUE",
	FLOAT_VALUE_NODE:               "FLOAT_VALUE",
	STRING_VALUE_NODE:              "STRING_VALUE",
	BOOLEAN_VALUE:                  "BOOLEAN_VALUE",
	NULL_VALUE:                     "NULL_VALUE",
	ENUM_VALUE:                     "ENUM_VALUE",
	LIST_VALUE:                     "LIST_VALUE",
	OBJECT_VALUE:                   "OBJECT_VALUE",
	OBJECT_FIELD:                   "OBJECT_FIELD",
	SELECTION_SET:                  "SELECTION_SET",
	FIELD:                          "FIELD",
	ALIAS:                          "ALIAS",
	FRAGMENT_SPREAD:                "FRAGMENT_SPREAD",
	INLINE_FRAGMENT:                "INLINE_FRAGMENT",
	FRAGMENT_DEFINITION:            "FRAGMENT_DEFINITION",
	TYPE_CONDITION:                 "TYPE_CONDITION",
	OPERATION_DEFINITION:           "OPERATION_DEFINITION",
	OPERATION_TYPE:                 "OPERATION_TYPE",
	SCHEMA_DEFINITION:              "SCHEMA_DEFINITION",
	SCHEMA_EXTENSION:               "SCHEMA_EXTENSION",
	ROOT_OPERATION_TYPE_DEFINITION: "ROOT_OPERATION_TYPE_DEFINITION",
	SCALAR_TYPE_DEFINITION:         "SCALAR_TYPE_DEFINITION",
	SCALAR_TYPE_EXTENSION:          "SCALAR_TYPE_EXTENSION",
	OBJECT_TYPE_DEFINITION:         "OBJECT_TYPE_DEFINITION",
	OBJECT_TYPE_EXTENSION:          "OBJECT_TYPE_EXTENSION",
	IMPLEMENTS_INTERFACES:          "IMPLEMENTS_INTERFACES",
	FIELD_DEFINITION:               "FIELD_DEFINITION",
	FIELDS_DEFINITION:              "FIELDS_DEFINITION",
	INTERFACE_TYPE_DEFINITION:      "INTERFACE_TYPE_DEFINITION",
	INTERFACE_TYPE_EXTENSION:       "INTERFACE_TYPE_EXTENSION",
	UNION_TYPE_DEFINITION:          "UNION_TYPE_DEFINITION",
	UNION_TYPE_EXTENSION:           "UNION_TYPE_EXTENSION",
	UNION_MEMBER_TYPES:             "UNION_MEMBER_TYPES",
	ENUM_TYPE_DEFINITION:           "ENUM_TYPE_DEFINITION",
	ENUM_TYPE_EXTENSION:            "ENUM_TYPE_EXTENSION",
	ENUM_VALUES_DEFINITION:         "ENUM_VALUES_DEFINITION",
	ENUM_VALUE_DEFINITION:          "ENUM_VALUE_DEFINITION",
	INPUT_OBJECT_TYPE_DEFINITION:   "INPUT_OBJECT_TYPE_DEFINITION",
	INPUT_OBJECT_TYPE_EXTENSION:    "INPUT_OBJECT_TYPE_EXTENSION",
	INPUT_FIELDS_DEFINITION:        "INPUT_FIELDS_DEFINITION",
	DIRECTIVE_DEFINITION:           "DIRECTIVE_DEFINITION",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// IsTrivia reports whether a token of this kind is whitespace or a
// comment: still part of the lossless CST, but skipped by every
// production's lookahead.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
