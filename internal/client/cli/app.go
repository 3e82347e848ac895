package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/experiences/internal/client/client"
	"github.com/dmitrijs2005/experiences/internal/client/config"
	"github.com/dmitrijs2005/experiences/internal/client/guard"
	"github.com/dmitrijs2005/experiences/internal/client/services"
	"github.com/dmitrijs2005/experiences/internal/client/session"
	"github.com/dmitrijs2005/experiences/internal/logging"
)

// Views the REPL can navigate to.
const (
	ViewHome        = "home"
	ViewLogin       = guard.LoginView
	ViewRegister    = "register"
	ViewExperiences = "experiences"
	ViewProfile     = "profile"
	ViewWrite       = "write"
	ViewContact     = "contact"
)

// sessionView is what the CLI reads from the session store.
type sessionView interface {
	Current() session.State
	ExpiresAt() (time.Time, bool)
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	session sessionView
	guard   *guard.Guard

	authService       services.AuthService
	experienceService services.ExperienceService
	profileService    services.ProfileService
	contactService    services.ContactService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session database, restores any saved session and builds
// the API client and services on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	store := session.NewStore(db, logger)
	store.Restore(ctx)

	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, logger)

	return &App{
		config:            c,
		logger:            logger,
		db:                db,
		session:           store,
		guard:             guard.New(store, logger, ViewProfile, ViewWrite),
		authService:       services.NewAuthService(api, store),
		experienceService: services.NewExperienceService(api),
		profileService:    services.NewProfileService(api, store),
		contactService:    services.NewContactService(api),
		reader:            bufio.NewReader(os.Stdin),
		out:               os.Stdout,
	}, nil
}

// Run wakes the backend in the background and blocks in the REPL until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	a.authService.WakeUp(ctx)

	fmt.Fprintln(a.out, "Welcome to Experiences CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "error closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().IsAuthenticated
}

// status is shown in the prompt.
func (a *App) status() string {
	st := a.session.Current()
	if !st.IsAuthenticated || st.Identity == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", st.Identity.FullName())
}

// navigate enters view through the guard. A protected view without a
// session runs the login flow instead.
func (a *App) navigate(ctx context.Context, view string, render func(ctx context.Context) error) error {
	d, err := a.guard.Enter(ctx, view, render, func(ctx context.Context) error {
		fmt.Fprintf(a.out, "Please log in to open %s.\n", view)
		return a.Login(ctx)
	})
	a.logger.Debug(ctx, "navigation", "view", view, "decision", d.String())
	return err
}

// report prints err in a form fit for the terminal and returns it.
func (a *App) report(ctx context.Context, action string, err error) error {
	var (
		vErr   *services.ValidationError
		apiErr *client.APIError
	)

	switch {
	case errors.As(err, &vErr):
		fmt.Fprintf(a.out, "Invalid %s: %s\n", vErr.Field, vErr.Reason)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later.")
	case errors.Is(err, client.ErrNotAuthenticated), errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "You are not logged in.")
	case errors.As(err, &apiErr):
		fmt.Fprintf(a.out, "%s failed: %s\n", action, apiErr.Details)
	default:
		fmt.Fprintf(a.out, "%s failed: %v\n", action, err)
	}

	a.logger.Debug(ctx, action+" failed", "error", err)
	return err
}
