// Package arena owns the flat node storage behind the AST so that scopes,
// type declarations, and type instances reference each other through
// small integer handles instead of shared pointers. A type declaration's
// constructors can point back at the type itself (a record constructor's
// field can name its own enclosing type), and scopes nest into their
// parents; indices sidestep the reference-cycle bookkeeping that owning
// pointers would otherwise require.
package arena

// ScopeID indexes into an Arena's scope storage. Zero is the first real
// handle; NoScope (-1) means "no scope" (used for a root scope's absent
// parent).
type ScopeID int

// TypeDeclID indexes into an Arena's type-declaration storage.
type TypeDeclID int

// InstanceID indexes into an Arena's type-instance storage.
type InstanceID int

// NoScope, NoTypeDecl, and NoInstance are the sentinel "absent" handles.
const (
	NoScope    ScopeID    = -1
	NoTypeDecl TypeDeclID = -1
	NoInstance InstanceID = -1
)

// Arena owns every Scope, TypeDecl, and TypeInstance allocated while
// checking one compilation unit. Handles are stable for the Arena's
// lifetime: nothing is ever removed, only appended.
type Arena struct {
	scopes    []interface{}
	typeDecls []interface{}
	instances []interface{}
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// PutScope appends v to scope storage and returns its handle.
func (a *Arena) PutScope(v interface{}) ScopeID {
	a.scopes = append(a.scopes, v)
	return ScopeID(len(a.scopes) - 1)
}

// Scope retrieves the value stored at id, or nil if id is out of range.
func (a *Arena) Scope(id ScopeID) interface{} {
	if id < 0 || int(id) >= len(a.scopes) {
		return nil
	}
	return a.scopes[id]
}

// PutTypeDecl appends v to type-declaration storage and returns its handle.
func (a *Arena) PutTypeDecl(v interface{}) TypeDeclID {
	a.typeDecls = append(a.typeDecls, v)
	return TypeDeclID(len(a.typeDecls) - 1)
}

// TypeDecl retrieves the value stored at id, or nil if id is out of range.
func (a *Arena) TypeDecl(id TypeDeclID) interface{} {
	if id < 0 || int(id) >= len(a.typeDecls) {
		return nil
	}
	return a.typeDecls[id]
}

// PutInstance appends v to type-instance storage and returns its handle.
func (a *Arena) PutInstance(v interface{}) InstanceID {
	a.instances = append(a.instances, v)
	return InstanceID(len(a.instances) - 1)
}

// Instance retrieves the value stored at id, or nil if id is out of range.
func (a *Arena) Instance(id InstanceID) interface{} {
	if id < 0 || int(id) >= len(a.instances) {
		return nil
	}
	return a.instances[id]
}
