package config

import "github.com/funvibe/funxy/internal/token"

// StarNamespace is the global fallback namespace complex_check retries
// against when a holder-namespace lookup fails.
const StarNamespace = "*"

// VoidTypeName names the built-in unit/void type used for bodies whose
// return type has no value.
const VoidTypeName = "void"

// StarToken and VoidTypeToken are dummy tokens for synthesized lookups that
// have no real source position to point at. The resolver and the checkers
// do not reference them; they use StarNamespace and VoidTypeName directly.
var (
	StarToken    = token.Token{Type: token.STAR, Lexeme: StarNamespace}
	VoidTypeToken = token.Token{Type: token.IDENT_UPPER, Lexeme: VoidTypeName}
)
