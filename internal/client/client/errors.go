package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/moodyssey/internal/common"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotLoggedIn     = errors.New("not logged in")
)

// ServerError is a failure reported by the server. Message is meant for the
// user; Err is the sentinel it corresponds to.
type ServerError struct {
	Err     error
	Message string
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Unwrap() error { return e.Err }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	var sentinel error
	switch st.Code() {
	case codes.AlreadyExists:
		sentinel = common.ErrDuplicateUsername
	case codes.NotFound:
		sentinel = common.ErrUnknownUsername
	case codes.Unauthenticated, codes.PermissionDenied:
		sentinel = common.ErrUnauthorized
	case codes.InvalidArgument:
		sentinel = ErrInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return &ServerError{Err: sentinel, Message: st.Message()}
}
