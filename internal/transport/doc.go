// Package transport is the request executor the GraphQL client depends on.
//
// The client only needs to send one request and read back a status, headers
// and a body, so the contract is the Transport interface rather than
// *http.Client. HTTP is the production implementation; tests and callers
// with special needs can plug in a Func.
//
// Non-2xx statuses are not errors at this layer: GraphQL servers commonly
// answer 4xx with a regular error envelope, and the body is handed to the
// response mapper unchanged.
package transport
