package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/moodyssey/internal/client/client"
	"github.com/dmitrijs2005/moodyssey/internal/client/config"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
)

// Session is the logged-in state of the REPL. It is nil while logged out.
type Session struct {
	Username string
}

type App struct {
	config  *config.Config
	client  client.Client
	session *Session
	reader  *bufio.Reader
	out     io.Writer
	logger  logging.Logger
}

func NewApp(c *config.Config, cl client.Client, logger logging.Logger) *App {
	return &App{
		config: c,
		client: cl,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		logger: logger,
	}
}

// Run blocks in the REPL until the user exits or stdin is closed, then
// closes the connection to the server.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.client.Close(); err != nil {
			a.logger.Warn(ctx, "closing connection", "error", err)
		}
	}()

	if err := a.client.Ping(ctx); err != nil {
		a.logger.Warn(ctx, "server is not reachable", "addr", a.config.ServerEndpointAddr, "error", err)
	}

	printlnFn("Welcome to Moodyssey (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return "(" + a.session.Username + ")"
}
