package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

var codeMap = []struct {
	err  error
	code codes.Code
}{
	{common.ErrDuplicateUsername, codes.AlreadyExists},
	{common.ErrUnknownUsername, codes.NotFound},
	{common.ErrInvalidCredential, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidUsername, codes.InvalidArgument},
	{common.ErrInvalidPassword, codes.InvalidArgument},
	{common.ErrEmptyMood, codes.InvalidArgument},
	{summary.ErrInvalidBucket, codes.InvalidArgument},
	{summary.ErrInvalidWindow, codes.InvalidArgument},
	{common.ErrStorageUnavailable, codes.Unavailable},
	{common.ErrPersistence, codes.Internal},
}

// toStatus converts a service error into a gRPC status. msg, when set,
// replaces the error text.
func toStatus(err error, msg string) error {
	if msg == "" {
		msg = err.Error()
	}
	for _, m := range codeMap {
		if errors.Is(err, m.err) {
			return status.Error(m.code, msg)
		}
	}
	return status.Error(codes.Internal, "internal error")
}
