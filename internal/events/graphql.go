package events

import "time"

// OperationStart is emitted before a GraphQL operation is sent.
type OperationStart struct {
	OperationName string
	OperationType string
	Query         string
	URL           string
}

// OperationFinish is emitted after a GraphQL operation completes.
// Err is set only for transport failures; GraphQL errors are counted in
// ErrorCount.
type OperationFinish struct {
	OperationName string
	OperationType string
	URL           string
	ErrorCount    int
	Err           error
	Duration      time.Duration
}
