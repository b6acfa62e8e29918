// Package response maps decoded GraphQL response bodies into results.
//
// Three kinds of problems are reported as result errors rather than Go
// errors: a body that is not JSON text (InvalidBody), an envelope that does
// not have the {data, errors, extensions} shape, and a payload slice that
// does not match the caller's shape. Errors returned by the server inside a
// well-formed envelope are passed through alongside data. Callers must
// always inspect Result.Errors; Result.Err offers them as a gqlerror.List.
package response
