// Package ast defines the span-annotated syntax tree for ream programs.
// Every node carries the span of exactly the tokens it was parsed from,
// so diagnostics and the bytecode layer can always point back at source.
// The tree is immutable after parsing; closures share body and formal
// nodes freely and snapshot only their scope.
package ast
