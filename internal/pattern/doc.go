// Package pattern defines match templates: a declared variable set, a
// body term, and the traversal state that controls where variables act
// as binding sites.
//
// A Pattern is validated eagerly at construction. Malformed scopes -
// a non-variable declaration, a negative glob interval, an Absent clause
// with the wrong arity - fail with a ConstructError before any match
// runs. A match-time non-match is never an error.
//
// Quotation is a small value type threaded by value through the
// matcher's recursion. While a position is quoted, variable nodes are
// ordinary literals, not binding sites. Because Quotation is passed by
// value and never shared, concurrent match attempts cannot interfere.
package pattern
