package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/experiences/internal/client/client"
	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/client/session"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	LoginRet  *client.Envelope[models.AuthData]
	LoginErr  error
	LastLogin models.LoginRequest

	RegisterRet  *client.Envelope[models.RegisterResult]
	RegisterErr  error
	LastRegister models.RegisterRequest

	WakeUps atomic.Int32

	ExperiencesRet *client.Envelope[[]models.Experience]
	ExperiencesErr error
	QuestionsRet   *client.Envelope[[]models.Question]
	QuestionsErr   error

	ExperienceRet *client.Envelope[models.Experience]
	ExperienceErr error
	DeleteErr     error
	LastDraft     models.ExperienceDraft
	LastID        string

	ProfileRet    *client.Envelope[models.UserProfile]
	ProfileErr    error
	LastProfileID string

	ContactRet *client.Envelope[struct{}]
	ContactErr error

	CloseErr error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*client.Envelope[models.AuthData], error) {
	f.record("login")
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*client.Envelope[models.RegisterResult], error) {
	f.record("register")
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) WakeUp(context.Context) {
	f.record("wakeup")
	f.WakeUps.Add(1)
}

func (f *fakeClient) ListExperiences(context.Context) (*client.Envelope[[]models.Experience], error) {
	f.record("experiences")
	return f.ExperiencesRet, f.ExperiencesErr
}

func (f *fakeClient) GetExperience(_ context.Context, id string) (*client.Envelope[models.Experience], error) {
	f.record("get")
	f.LastID = id
	return f.ExperienceRet, f.ExperienceErr
}

func (f *fakeClient) CreateExperience(_ context.Context, d models.ExperienceDraft) (*client.Envelope[models.Experience], error) {
	f.record("create")
	f.LastDraft = d
	return f.ExperienceRet, f.ExperienceErr
}

func (f *fakeClient) UpdateExperience(_ context.Context, id string, d models.ExperienceDraft) (*client.Envelope[models.Experience], error) {
	f.record("update")
	f.LastID, f.LastDraft = id, d
	return f.ExperienceRet, f.ExperienceErr
}

func (f *fakeClient) DeleteExperience(_ context.Context, id string) error {
	f.record("delete")
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) ListQuestions(context.Context) (*client.Envelope[[]models.Question], error) {
	f.record("questions")
	return f.QuestionsRet, f.QuestionsErr
}

func (f *fakeClient) GetProfile(_ context.Context, id string) (*client.Envelope[models.UserProfile], error) {
	f.record("profile")
	f.LastProfileID = id
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) SendContact(context.Context, models.ContactMessage) (*client.Envelope[struct{}], error) {
	f.record("contact")
	return f.ContactRet, f.ContactErr
}

// fakeSession is an in-memory SessionStore.
type fakeSession struct {
	state  session.State
	adopts int
	clears int
}

func (f *fakeSession) Adopt(_ context.Context, identity models.Identity, token string) {
	f.adopts++
	f.state = session.State{Identity: &identity, Token: token, IsAuthenticated: token != ""}
}

func (f *fakeSession) Clear(context.Context) {
	f.clears++
	f.state = session.State{}
}

func (f *fakeSession) Current() session.State { return f.state }

func ptr[T any](v T) *T { return &v }
