package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.store.Users().Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	if err := a.sessions.Set(ctx, user); err != nil {
		return err
	}

	a.log.Info(ctx, "registered", "user", user.ID)
	fmt.Fprintf(a.out, "Welcome, %s\n", user.Name)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.store.Users().Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.sessions.Set(ctx, user); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> (theme: %s)\n", user.Name, user.Email, user.Preferences.Theme)
	return nil
}
