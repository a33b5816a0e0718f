package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/moodyssey/internal/common"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	LogMood(ctx context.Context) error
	History(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Trend(ctx context.Context, bucket string) error
	Compare(ctx context.Context, recent, previous string) error
	expireSession(ctx context.Context)
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: log, history, dashboard, trend <day|weekday|hour>, compare <recent> <previous>, logout, help, exit"
)

// runREPL reads one command per line from reader and dispatches it to a
// until the user types "exit" (or "quit") or input ends.
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//
//	Logged in:
//	  - log            record a mood with an optional note
//	  - history        list entries, newest first
//	  - dashboard      frequency, comparison, trends and history
//	  - trend <b>      category counts by day, weekday or hour
//	  - compare <r> <p>  category shares of the last r days vs the p before
//	  - logout         end the session
//
// Handler errors are printed and the loop continues. A call the server
// rejects as unauthorized ends the local session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		fmt.Printf("moodyssey %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		}

		err = dispatch(ctx, a, cmd, args)
		if errors.Is(err, common.ErrUnauthorized) && a.isLoggedIn() {
			a.expireSession(ctx)
			printlnFn("Session expired, please log in again.")
			continue
		}
		report(err)
	}
}

var errUnknownCommand = errors.New("unknown command")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	if !a.isLoggedIn() {
		switch cmd {
		case "register":
			return a.Register(ctx)
		case "login":
			return a.Login(ctx)
		case "log", "history", "dashboard", "trend", "compare", "logout":
			return errors.New("please log in first")
		}
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}

	switch cmd {
	case "log":
		return a.LogMood(ctx)
	case "history":
		return a.History(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "trend":
		if len(args) != 1 {
			return errors.New("usage: trend <day|weekday|hour>")
		}
		return a.Trend(ctx, args[0])
	case "compare":
		if len(args) != 2 {
			return errors.New("usage: compare <recent days> <previous days>")
		}
		return a.Compare(ctx, args[0], args[1])
	case "logout":
		return a.Logout(ctx)
	case "register", "login":
		return errors.New("already logged in, log out first")
	}
	return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
