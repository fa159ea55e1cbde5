package symbols

// This package is split by concern: decl_table.go holds the declaration
// symbol table (types, functions, variables); cons_table.go holds the
// constructor symbol table (default, record, list, map).
