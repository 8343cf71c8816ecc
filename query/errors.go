package query

import "errors"

// ErrInvalidArgument indicates a malformed rule registration, such as a
// nil predicate or selector. The error is recorded on the Query (first
// one wins), the offending registration leaves no state behind, and the
// query yields nothing until Err is checked.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotImplemented is returned by surface methods that are declared for
// API completeness but intentionally not implemented. Calling one fails
// fast and mutates nothing.
var ErrNotImplemented = errors.New("not implemented")
