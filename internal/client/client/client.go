package client

import (
	"context"

	"github.com/dmitrijs2005/experiences/internal/client/models"
)

// Client is the backend API contract used by the services layer.
type Client interface {
	Close() error
	Login(ctx context.Context, req models.LoginRequest) (*Envelope[models.AuthData], error)
	Register(ctx context.Context, req models.RegisterRequest) (*Envelope[models.RegisterResult], error)
	WakeUp(ctx context.Context)
	ListExperiences(ctx context.Context) (*Envelope[[]models.Experience], error)
	GetExperience(ctx context.Context, id string) (*Envelope[models.Experience], error)
	CreateExperience(ctx context.Context, draft models.ExperienceDraft) (*Envelope[models.Experience], error)
	UpdateExperience(ctx context.Context, id string, draft models.ExperienceDraft) (*Envelope[models.Experience], error)
	DeleteExperience(ctx context.Context, id string) error
	ListQuestions(ctx context.Context) (*Envelope[[]models.Question], error)
	GetProfile(ctx context.Context, userID string) (*Envelope[models.UserProfile], error)
	SendContact(ctx context.Context, msg models.ContactMessage) (*Envelope[struct{}], error)
}

// TokenSource yields the bearer token of the current session, if any.
type TokenSource interface {
	Token() (string, bool)
}
