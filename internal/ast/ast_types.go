package ast

import (
	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

// TypeInstance is the pivotal data structure: a syntactic reference to a
// type appearing in a constructor or function signature, not yet known to
// be concrete, parametric, or invalid.
type TypeInstance struct {
	Token        token.Token
	Category     Category
	Namespace    string // "*" means "unspecified"; see resolver.
	Params       []*TypeInstance
	Resolved     arena.TypeDeclID // arena.NoTypeDecl until resolution succeeds
	Parametrized bool
	// Builtin marks a container-category instance (Tuple/List/Map) that the
	// weak resolver synthesized a built-in handle for: it never points at a
	// user TypeDecl, but is neither abstract nor invalid.
	Builtin bool
}

func (ti *TypeInstance) TokenLiteral() string { return ti.Token.Lexeme }
func (ti *TypeInstance) GetToken() token.Token {
	if ti == nil {
		return token.Token{}
	}
	return ti.Token
}

// IsAbstract reports whether ti matched a formal parameter rather than a
// concrete declared type.
func (ti *TypeInstance) IsAbstract() bool {
	return ti.Resolved == arena.NoTypeDecl && !ti.Builtin
}

// ResultType returns ti's result-type parameter for a functional type
// instance, or a TypeError — this checker never builds functional type
// instances itself, so the access always fails; the method exists to
// give TypeError a concrete, testable home matching the taxonomy in the
// error handling design.
func (ti *TypeInstance) ResultType() (*TypeInstance, *diagnostics.DiagnosticError) {
	return nil, diagnostics.NewError(diagnostics.ErrTypeError, ti.Token,
		"type instance %q is not a function type", ti.Token.Lexeme)
}

// NewTypeInstance constructs an unresolved type instance.
func NewTypeInstance(tok token.Token, category Category, namespace string, params []*TypeInstance) *TypeInstance {
	return &TypeInstance{
		Token:     tok,
		Category:  category,
		Namespace: namespace,
		Params:    params,
		Resolved:  arena.NoTypeDecl,
	}
}

// DefaultConstructor is a constructor with an ordered list of type-instance
// parameters and no field names.
type DefaultConstructor struct {
	Token  token.Token
	Name   string
	Params []*TypeInstance
	Owner  arena.TypeDeclID
}

func (dc *DefaultConstructor) Key() ConstructorKey {
	return ConstructorKey{Name: dc.Name, Arity: len(dc.Params)}
}

// RecordField pairs a field name token with its declared type instance.
type RecordField struct {
	Name token.Token
	Type *TypeInstance
}

// RecordConstructor is a constructor with a name-indexed, ordered mapping
// of field name to type instance.
type RecordConstructor struct {
	Token  token.Token
	Name   string
	Fields []RecordField
	Owner  arena.TypeDeclID
}

func (rc *RecordConstructor) Key() ConstructorKey {
	return ConstructorKey{Name: rc.Name, Arity: len(rc.Fields)}
}

// ListConstructor is the weak-check-only single-type-instance constructor
// backing a built-in List(a) category.
type ListConstructor struct {
	Token   token.Token
	Element *TypeInstance
	Owner   arena.TypeDeclID
}

// MapConstructor is the weak-check-only paired-type-instance constructor
// backing a built-in Map(k, v) category.
type MapConstructor struct {
	Token token.Token
	Key   *TypeInstance
	Value *TypeInstance
	Owner arena.TypeDeclID
}

// TypeDecl is a type declaration: a name, an ordered list of formal type
// parameters, its constructors of each kind in declaration order, its
// validity state, visibility, and owning namespace.
type TypeDecl struct {
	Token     token.Token
	Name      string
	Params    []token.Token // formal type variables, pairwise distinct
	Namespace string
	Validity  Validity
	Vis       Visibility

	// DefaultConstructors and RecordConstructors are ordered, as declared:
	// uniqueness among them is an invariant the constructor checker enforces
	// by inserting each one into the namespace's constructor table in turn,
	// not a property the storage shape guarantees on its own.
	DefaultConstructors []*DefaultConstructor
	RecordConstructors  []*RecordConstructor
	ListCons            *ListConstructor // weak variant only; nil otherwise
	MapCons             *MapConstructor  // weak variant only; nil otherwise
}

func (td *TypeDecl) TokenLiteral() string { return td.Token.Lexeme }
func (td *TypeDecl) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}

func (td *TypeDecl) Arity() int { return len(td.Params) }

func (td *TypeDecl) Key() ConstructorKey {
	return ConstructorKey{Name: td.Name, Arity: td.Arity()}
}

// NewTypeDecl constructs a type declaration with validity Unknown and
// empty constructor lists, ready for a parser (or a test) to populate.
func NewTypeDecl(tok token.Token, name string, params []token.Token, namespace string, vis Visibility) *TypeDecl {
	return &TypeDecl{
		Token:     tok,
		Name:      name,
		Params:    params,
		Namespace: namespace,
		Validity:  Unknown,
		Vis:       vis,
	}
}

// HasParam reports whether name names one of td's formal parameters.
func (td *TypeDecl) HasParam(name string) bool {
	for _, p := range td.Params {
		if p.Lexeme == name {
			return true
		}
	}
	return false
}
