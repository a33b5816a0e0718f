package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodyssey/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errEmptyUsername    = errors.New("username must not be empty")
	errEmptyPassword    = errors.New("password must not be empty")
	errPasswordMismatch = errors.New("passwords do not match")
)

// Register asks for a username, a password and its confirmation, and creates
// the account. Nothing is sent to the server unless both fields are filled
// and the passwords match.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		return errEmptyUsername
	}

	password, err := getPassword("Choose a password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		return errEmptyPassword
	}

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	if !bytes.Equal(password, confirm) {
		return errPasswordMismatch
	}

	msg, err := a.client.Register(ctx, username, password)
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}

// Login authenticates and opens a session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		return errEmptyUsername
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		return errEmptyPassword
	}

	msg, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.logger.Debug(ctx, "login failed", "username", username, "error", err)
		return err
	}

	a.session = &Session{Username: username}
	printlnFn(msg)
	return nil
}

// Logout ends the session locally even when the server could not be told.
func (a *App) Logout(ctx context.Context) error {
	username := a.session.Username
	a.session = nil

	if err := a.client.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "server logout failed", "error", err)
	}
	printlnFn(fmt.Sprintf("Goodbye, %s.", username))
	return nil
}

// expireSession drops the session after the server stopped accepting its
// token.
func (a *App) expireSession(ctx context.Context) {
	a.session = nil
	if err := a.client.Logout(ctx); err != nil {
		a.logger.Debug(ctx, "dropping expired session", "error", err)
	}
}
