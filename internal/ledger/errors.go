package ledger

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a failed round trip to the settlement network.
// The engine aborts the command with no local mutation.
var ErrUnavailable = errors.New("ledger unavailable")

// RPCError is a structured failure returned by the ledger itself, as
// opposed to a transport failure. Surfaced to callers verbatim.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("ledger rejected call (%d): %s", e.Code, e.Message)
}
