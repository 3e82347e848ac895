package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/experiences/internal/client/client"
	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/client/session"
)

// SessionStore is the part of session.Store the services use.
type SessionStore interface {
	Adopt(ctx context.Context, identity models.Identity, token string)
	Clear(ctx context.Context)
	Current() session.State
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a session; the session is adopted
//     only when the backend reports success with a token.
//   - Register: validate locally, then create the account. It logs in only
//     when the backend returns a token.
//   - Logout: discard the session.
//   - WakeUp: start the advisory backend ping once; the returned channel is
//     closed when it finishes.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.Identity, error)
	Register(ctx context.Context, form RegisterForm) error
	Logout(ctx context.Context)
	WakeUp(ctx context.Context) <-chan struct{}
	Close(ctx context.Context) error
}

// RegisterForm is what the user typed on the registration view.
type RegisterForm struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Age      int    `json:"age" validate:"gte=13,lte=120"`
	Password []byte `json:"password" validate:"min=6"`
	Confirm  []byte `json:"confirm" validate:"bytes_eqfield=Password"`
}

// Validate applies the client-side registration rules.
func (f RegisterForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return validateStruct(f)
}

type authService struct {
	client  client.Client
	session SessionStore

	wakeOnce sync.Once
	wakeDone chan struct{}
}

// NewAuthService constructs an AuthService bound to the API client and the
// session store.
func NewAuthService(c client.Client, s SessionStore) AuthService {
	return &authService{client: c, session: s, wakeDone: make(chan struct{})}
}

// Login authenticates and adopts the returned credential. An unsuccessful
// envelope, or one without a token, yields ErrLoginRejected and leaves the
// session untouched.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Identity, error) {
	env, err := a.client.Login(ctx, models.LoginRequest{Email: strings.TrimSpace(email), Password: string(password)})
	if err != nil {
		return models.Identity{}, fmt.Errorf("login error: %w", err)
	}
	if !env.Success || env.Data == nil || env.Data.Token == "" {
		return models.Identity{}, rejected(ErrLoginRejected, envelopeDetails(env.Error, env.Message))
	}

	identity, token := env.Data.Split()
	if identity.ID == "" {
		identity.ID = session.TokenSubject(token)
	}

	a.session.Adopt(ctx, identity, token)
	return identity, nil
}

// Register validates form and creates the account. The session is adopted
// only when the backend returns a token with the new account.
func (a *authService) Register(ctx context.Context, form RegisterForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	env, err := a.client.Register(ctx, models.RegisterRequest{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Age:      form.Age,
		Password: string(form.Password),
	})
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	if !env.Success {
		return rejected(ErrRegisterRejected, envelopeDetails(env.Error, env.Message))
	}

	// Backends that hand out a token on registration start the session
	// right away; otherwise the user logs in next.
	if env.Data != nil && env.Data.Token != "" {
		identity := env.Data.User
		if identity.ID == "" {
			identity.ID = session.TokenSubject(env.Data.Token)
		}
		a.session.Adopt(ctx, identity, env.Data.Token)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Clear(ctx)
}

// WakeUp fires the advisory ping in the background. Only the first call
// issues a request; later calls return the same channel.
func (a *authService) WakeUp(ctx context.Context) <-chan struct{} {
	a.wakeOnce.Do(func() {
		go func() {
			defer close(a.wakeDone)
			a.client.WakeUp(ctx)
		}()
	})
	return a.wakeDone
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func envelopeDetails(e *client.ErrorBody, message string) string {
	if e != nil && e.Details != "" {
		return e.Details
	}
	if e != nil && e.Code != "" {
		return e.Code
	}
	return message
}
