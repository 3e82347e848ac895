package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/experiences/internal/client/client"
	"github.com/dmitrijs2005/experiences/internal/client/models"
	"golang.org/x/sync/errgroup"
)

type ExperienceService interface {
	Feed(ctx context.Context) ([]models.Card, error)
	ActiveQuestions(ctx context.Context) ([]models.Question, error)
	Get(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, draft models.ExperienceDraft) (*models.Experience, error)
	Update(ctx context.Context, id string, draft models.ExperienceDraft) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceService struct {
	client client.Client
}

func NewExperienceService(c client.Client) ExperienceService {
	return &experienceService{client: c}
}

// Feed loads experiences and questions in parallel and resolves every
// answer to its question text. Either list failing fails the feed.
func (s *experienceService) Feed(ctx context.Context) ([]models.Card, error) {
	var (
		experiences *client.Envelope[[]models.Experience]
		questions   *client.Envelope[[]models.Question]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := s.client.ListExperiences(gctx)
		experiences = env
		return err
	})
	g.Go(func() error {
		env, err := s.client.ListQuestions(gctx)
		questions = env
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	if !experiences.Success || !questions.Success {
		return nil, ErrFeedUnavailable
	}
	return models.BuildCards(deref(experiences.Data), deref(questions.Data)), nil
}

// ActiveQuestions returns the questions a new experience should answer.
func (s *experienceService) ActiveQuestions(ctx context.Context) ([]models.Question, error) {
	env, err := s.client.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if !env.Success {
		return nil, rejected(ErrFeedUnavailable, envelopeDetails(env.Error, env.Message))
	}

	all := deref(env.Data)
	active := make([]models.Question, 0, len(all))
	for _, q := range all {
		if q.IsActive {
			active = append(active, q)
		}
	}
	return active, nil
}

func (s *experienceService) Get(ctx context.Context, id string) (*models.Experience, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	env, err := s.client.GetExperience(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return experienceOf(env)
}

func (s *experienceService) Create(ctx context.Context, draft models.ExperienceDraft) (*models.Experience, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	env, err := s.client.CreateExperience(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return experienceOf(env)
}

func (s *experienceService) Update(ctx context.Context, id string, draft models.ExperienceDraft) (*models.Experience, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	env, err := s.client.UpdateExperience(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return experienceOf(env)
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.client.DeleteExperience(ctx, id); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func validateDraft(d models.ExperienceDraft) error {
	return validateStruct(d)
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	return nil
}

func experienceOf(env *client.Envelope[models.Experience]) (*models.Experience, error) {
	if !env.Success || env.Data == nil {
		return nil, rejected(ErrExperienceRejected, envelopeDetails(env.Error, env.Message))
	}
	return env.Data, nil
}

func deref[T any](p *[]T) []T {
	if p == nil {
		return nil
	}
	return *p
}
