package signalz

import "errors"

// Connection Errors
//
// Redundant disconnects are not failures for the boolean API
// (Disconnect reports false). These errors exist for callers that
// manage connections through io.Closer style cleanup.

// ErrAlreadyDisconnected is returned by Connection.Close when the
// connection had already been severed, either through the handle
// itself or through Signal.Disconnect / Signal.DisconnectAll.
var ErrAlreadyDisconnected = errors.New("connection already disconnected")

// Registration Errors

// ErrNilHandler is the panic value used when Connect is called with
// a nil handler. A nil handler is a programming error, not a runtime
// condition, so Connect does not return it.
var ErrNilHandler = errors.New("signalz: nil handler")
