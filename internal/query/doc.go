// Package query turns an operation description into a GraphQL document.
//
// A document is assembled from four parts:
//
//	<kind><typeDecls> { <operationName><callArgs><fields> }
//
// The kind is one of the two operation kinds this client sends (query or
// mutation). Type declarations are taken from the caller's VariableTypes,
// restricted to the variables actually being sent; a declared type whose
// variable is absent is dropped without error. Call arguments forward every
// sent variable as `name: $name`. Fields are serialized from a Selection tree
// where only included entries appear:
//
//	Selection{Leaf("id"), Node("user", Leaf("id"), Leaf("name")), Omit("secret")}
//
// serializes to ` {id user {id name}}`.
//
// The builder performs no GraphQL syntax validation. Names pass through
// verbatim, so callers that need a syntax check can parse the result with
// the language package.
package query
