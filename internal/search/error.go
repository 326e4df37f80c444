package search

import "fmt"

// QueryError is the only error kind engines return: transport
// failures, non-200 responses, and undecodable bodies. A body that
// parses but lacks the expected keys is zero results, not an error.
type QueryError struct {
	Engine  string
	Message string
}

func (e *QueryError) Error() string {
	return e.Engine + " Error: " + e.Message
}

func queryErrorf(engine, format string, args ...any) *QueryError {
	return &QueryError{Engine: engine, Message: fmt.Sprintf(format, args...)}
}
