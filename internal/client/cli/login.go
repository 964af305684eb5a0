package cli

import (
	"context"
	"net/mail"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, performs the login exchange, persists
// the returned token in the session store and proceeds to the employee
// list. On failure nothing is persisted and the server's message is
// surfaced as a notification.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if username == "" || password == "" {
		a.Notify("Username and password are required")
		return nil
	}

	payload, err := a.auth.Login(ctx, username, password)
	if err != nil {
		a.log.Error(ctx, "login failed", "user", username, "error", err)
		a.Notify("Login failed: " + err.Error())
		return err
	}

	if err := a.session.Set(ctx, payload.Token); err != nil {
		a.Notify("Could not persist session: " + err.Error())
		return err
	}

	a.log.Info(ctx, "login successful", "user", payload.User.Username)
	a.Navigate(ctx, routeEmployees, nil)
	return nil
}

// Signup prompts for the new account fields, performs the signup
// exchange and, like Login, establishes the session on success.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if username == "" || email == "" || password == "" {
		a.Notify("Username, email and password are required")
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		a.Notify("Please provide a valid email address")
		return nil
	}

	payload, err := a.auth.Signup(ctx, username, email, password)
	if err != nil {
		a.log.Error(ctx, "signup failed", "user", username, "error", err)
		a.Notify("Signup failed: " + err.Error())
		return err
	}

	if err := a.session.Set(ctx, payload.Token); err != nil {
		a.Notify("Could not persist session: " + err.Error())
		return err
	}

	a.log.Info(ctx, "signup successful", "user", payload.User.Username)
	a.Navigate(ctx, routeEmployees, nil)
	return nil
}

// Logout clears the session token. Clearing an absent session is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.Notify("Logout failed: " + err.Error())
		return err
	}
	a.Notify("Logged out")
	return nil
}
