// Package cli is the interactive snapnote client: a small REPL over the
// data-access facade. Which backend sits behind the facade is decided by the
// composition root; the commands here never know.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"snapnote/internal/logging"
	"snapnote/internal/models"
	"snapnote/internal/session"
	"snapnote/internal/store"
)

type App struct {
	store    store.Store
	sessions *session.Manager
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(st store.Store, sessions *session.Manager, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		store:    st,
		sessions: sessions,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run greets a restored session, then hands control to the REPL until the
// user exits or stdin closes.
func (a *App) Run(ctx context.Context) error {
	defer a.store.Close()

	if u, err := a.sessions.Current(ctx); err != nil {
		return err
	} else if u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Name)
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// currentUser returns the active user or an error telling the user to log in.
func (a *App) currentUser(ctx context.Context) (*models.User, error) {
	u, err := a.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("not logged in")
	}
	return u, nil
}

func (a *App) isLoggedIn() bool {
	u, err := a.sessions.Current(context.Background())
	return err == nil && u != nil
}

func (a *App) status() string {
	u, err := a.sessions.Current(context.Background())
	if err != nil || u == nil {
		return "logged out"
	}
	return u.Email
}
