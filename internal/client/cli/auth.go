package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/client/services"
	"github.com/dmitrijs2005/experiences/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for the registration form and creates the account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	ageText, err := getSimpleText(a.reader, "Enter age", a.out)
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(ageText)
	if err != nil {
		return a.report(ctx, "Registration", &services.ValidationError{Field: "age", Reason: "must be a number"})
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	// Only the prompt buffer is wiped; the request body carries its own
	// string copy that cannot be cleared.
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form := services.RegisterForm{Name: name, Email: email, Age: age, Password: password, Confirm: confirm}
	if err := a.authService.Register(ctx, form); err != nil {
		return a.report(ctx, "Registration", err)
	}

	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Registration successful, you are logged in.")
		return nil
	}
	fmt.Fprintln(a.out, "Registration successful, you can log in now.")
	return nil
}

// Login prompts for credentials and starts a session. On failure the
// previous session state is left as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	// Wipes the prompt buffer only; the JSON request keeps a string copy.
	defer common.WipeByteArray(password)

	identity, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return a.report(ctx, "Login", err)
	}

	a.logger.Info(ctx, "login successful", "user", identity.FullName())
	fmt.Fprintf(a.out, "Welcome, %s!\n", identity.FullName())
	return nil
}

// Logout discards the session. It is safe to call when logged out.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current identity and, for JWT credentials, when the
// session expires.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.Current()
	if !st.IsAuthenticated || st.Identity == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	id := st.Identity
	fmt.Fprintf(a.out, "%s %s\n", id.AvatarColor.Badge(models.Initials(id.FullName())), id.FullName())
	if id.ID != "" {
		fmt.Fprintf(a.out, "id: %s\n", id.ID)
	}
	if exp, ok := a.session.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "session expires: %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}
