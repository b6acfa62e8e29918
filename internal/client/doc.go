// Package client executes GraphQL operations over HTTP.
//
// A call goes through three steps: the operation is turned into a document
// by package query, the document and variables are posted once as
// {"query": ..., "variables": ...}, and the body is mapped by package
// response against the caller's payload shape.
//
//	c := client.New("https://api.example.com/graphql",
//		client.WithHeaders(map[string]string{"Authorization": "Bearer " + token}),
//		client.WithTimeout(10*time.Second),
//	)
//	res, err := c.Execute(ctx, client.Operation{
//		Name:          "user",
//		Kind:          query.Query,
//		Selection:     query.Selection{query.Leaf("id"), query.Leaf("name")},
//		Variables:     map[string]any{"id": "42"},
//		VariableTypes: query.VariableTypes{{Name: "id", Type: "ID!"}},
//	}, shape.Object(shape.Prop("id", shape.String()), shape.Prop("name", shape.String())))
//
// err is reserved for transport failures. The client never retries and
// keeps no state between calls; cancellation and timeouts come from ctx and
// the transport.
package client
