// Package client contains the client side of the Moodyssey transport.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     journal server: Register, Login, Logout, Ping, AddMood, ListMoods and
//     the Summarize/Compare/Frequency aggregates.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token and a per-call deadline via an
//     interceptor, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Failures the server reports are returned as *ServerError, whose Error text
// is the server's user-facing message and which unwraps to a sentinel from
// internal/common (ErrDuplicateUsername, ErrUnknownUsername,
// ErrInvalidCredential, ErrUnauthorized, ErrStorageUnavailable) or to
// ErrInvalidArgument. Transport failures unwrap to ErrUnavailable.
//
// Aggregate and list calls also return a warning string: the server read the
// user's data from a missing or damaged document and the result is empty.
package client
