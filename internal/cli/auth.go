package cli

import (
	"context"
	"flag"
	"fmt"

	"gitlab.com/algoarena-2025.net/internal/domain"
)

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" || *password == "" {
		return fmt.Errorf("register requires -username, -email and -password")
	}

	identity, err := a.Auth.Register(ctx, *username, *email, *password)
	if err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Registration failed"))
	}
	fmt.Fprintf(a.Out, "Welcome, %s. You are now signed in.\n", identity.Username)
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	identity, err := a.Auth.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("%s", domain.ErrorMessage(err, "Login failed"))
	}
	fmt.Fprintf(a.Out, "Signed in as %s.\n", identity.Username)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	if err := a.Sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Signed out.")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	identity, ok := a.Sessions.Current()
	if !ok {
		fmt.Fprintln(a.Out, "Not signed in.")
		return nil
	}

	// Revalidate against the server; an expired credential clears the
	// session here and nowhere else.
	fresh, err := a.Auth.Profile(ctx)
	if err != nil {
		if domain.IsUnauthorized(err) {
			fmt.Fprintln(a.Out, "Your session has expired. Please log in again.")
			return nil
		}
		fmt.Fprintf(a.Out, "%s <%s> (offline, last known)\n", identity.Username, identity.Email)
		return nil
	}
	fmt.Fprintf(a.Out, "%s <%s>\n", fresh.Username, fresh.Email)
	return nil
}
