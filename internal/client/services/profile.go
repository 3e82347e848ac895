package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/experiences/internal/client/client"
	"github.com/dmitrijs2005/experiences/internal/client/models"
)

type ProfileService interface {
	Fetch(ctx context.Context) (*models.UserProfile, error)
}

type profileService struct {
	client  client.Client
	session SessionStore
}

func NewProfileService(c client.Client, s SessionStore) ProfileService {
	return &profileService{client: c, session: s}
}

// Fetch loads the profile of the logged-in user. Without a session it fails
// with client.ErrNotAuthenticated and sends nothing.
func (p *profileService) Fetch(ctx context.Context) (*models.UserProfile, error) {
	st := p.session.Current()
	if !st.IsAuthenticated || st.Identity == nil {
		return nil, client.ErrNotAuthenticated
	}

	env, err := p.client.GetProfile(ctx, st.Identity.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !env.Success || env.Data == nil {
		return nil, rejected(ErrProfileUnavailable, envelopeDetails(env.Error, env.Message))
	}
	return env.Data, nil
}
