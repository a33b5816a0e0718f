// Package common defines shared constants and sentinel errors used across
// client and server layers of Moodyssey. Callers should use errors.Is to
// match these values.
package common

import "errors"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

var (
	// Storage errors. Load operations report the first two as warnings
	// alongside empty data; write failures surface as ErrPersistence.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptData        = errors.New("corrupt data")
	ErrPersistence        = errors.New("persistence error")

	// Account errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnknownUsername   = errors.New("username not found")
	ErrInvalidCredential = errors.New("incorrect password")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidPassword   = errors.New("invalid password")

	// Journal errors.
	ErrEmptyMood = errors.New("mood must be a non-empty string")

	// Session and token errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
