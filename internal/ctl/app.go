// Package ctl implements the interactive control CLI for the tgpolish
// daemon. It speaks the daemon's gRPC control API, minting its own access
// token from the shared secret, and drives the connect/code/start lifecycle
// from a small REPL.
package ctl

import (
	"bufio"
	"context"
	"errors"
	"os"
	"time"

	"github.com/dmitrijs2005/tgpolish/internal/auth"
)

// tokenValidity bounds how long a single CLI session stays authorized.
const tokenValidity = 24 * time.Hour

type App struct {
	config     *Config
	client     SessionClient
	reader     *bufio.Reader
	lastStatus string
}

func NewApp(c *Config) (*App, error) {
	if c.UserID == 0 {
		return nil, errors.New("user id is not set (use -u)")
	}

	token, err := auth.GenerateToken(c.UserID, []byte(c.SecretKey), tokenValidity)
	if err != nil {
		return nil, err
	}

	client, err := NewSessionClient(c.ServerEndpointAddr, token)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}
