package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/experiences/internal/client/client"
	"github.com/dmitrijs2005/experiences/internal/client/models"
)

type ContactService interface {
	Send(ctx context.Context, msg models.ContactMessage) (string, error)
}

type contactService struct {
	client client.Client
}

func NewContactService(c client.Client) ContactService {
	return &contactService{client: c}
}

// Send posts msg and returns the backend's acknowledgement text.
func (s *contactService) Send(ctx context.Context, msg models.ContactMessage) (string, error) {
	msg.Email = strings.TrimSpace(msg.Email)
	if err := validateStruct(msg); err != nil {
		return "", err
	}

	env, err := s.client.SendContact(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("send contact: %w", err)
	}
	if !env.Success {
		return "", rejected(ErrContactRejected, envelopeDetails(env.Error, env.Message))
	}
	return env.Message, nil
}
