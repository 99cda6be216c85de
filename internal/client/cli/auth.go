package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Register prompts for the account fields and creates a new account via the
// AuthService. A successful registration signs the user in immediately; the
// returned session is already persisted when this prints "Success!".
func (a *App) Register(ctx context.Context) error {
	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	netID, err := getSimpleText(a.reader, "Enter netid", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, api.RegisterPayload{
		DisplayName: displayName,
		Email:       email,
		NetID:       netID,
		Password:    password,
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Success! Welcome, %s.", user.DisplayName))
	return nil
}

// Login prompts for an identifier (email or netid) and password and tries to
// authenticate. On success the session is persisted and the cached user set.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or netid", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, identifier, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.DisplayName))
	return nil
}

// Logout forgets the session. The server call inside is best-effort; the
// local session is always gone when this returns.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.guard.Cancel()
	printlnFn("Signed out.")
	return nil
}
