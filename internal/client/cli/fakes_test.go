package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/experiences/internal/client/guard"
	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/client/services"
	"github.com/dmitrijs2005/experiences/internal/client/session"
	"github.com/dmitrijs2005/experiences/internal/logging"
)

type fakeSession struct {
	state  session.State
	exp    time.Time
	hasExp bool
}

func (f *fakeSession) Current() session.State       { return f.state }
func (f *fakeSession) ExpiresAt() (time.Time, bool) { return f.exp, f.hasExp }

func (f *fakeSession) login(name string) {
	f.state = session.State{
		Identity:        &models.Identity{ID: "u1", Name: name, AvatarColor: models.AvatarGreen},
		Token:           "tok",
		IsAuthenticated: true,
	}
}

type fakeAuth struct {
	session *fakeSession

	loginEmail string
	loginPass  []byte
	loginErr   error
	loginCalls int

	regForm  services.RegisterForm
	regErr   error
	regCalls int

	logoutCalls int
	wakeCalls   int
	closeCalls  int
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) (models.Identity, error) {
	f.loginCalls++
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	if f.loginErr != nil {
		return models.Identity{}, f.loginErr
	}
	f.session.login("Ann")
	return *f.session.state.Identity, nil
}

func (f *fakeAuth) Register(_ context.Context, form services.RegisterForm) error {
	f.regCalls++
	f.regForm = form
	f.regForm.Password = append([]byte(nil), form.Password...)
	f.regForm.Confirm = append([]byte(nil), form.Confirm...)
	return f.regErr
}

func (f *fakeAuth) Logout(context.Context) {
	f.logoutCalls++
	f.session.state = session.State{}
}

func (f *fakeAuth) WakeUp(context.Context) <-chan struct{} {
	f.wakeCalls++
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (f *fakeAuth) Close(context.Context) error {
	f.closeCalls++
	return nil
}

type fakeExperiences struct {
	cards     []models.Card
	feedErr   error
	questions []models.Question

	created  []models.ExperienceDraft
	updated  map[string]models.ExperienceDraft
	deleted  []string
	existing *models.Experience
	saveErr  error
}

func (f *fakeExperiences) Feed(context.Context) ([]models.Card, error) {
	return f.cards, f.feedErr
}

func (f *fakeExperiences) ActiveQuestions(context.Context) ([]models.Question, error) {
	return f.questions, nil
}

func (f *fakeExperiences) Get(_ context.Context, id string) (*models.Experience, error) {
	if f.existing == nil {
		return nil, services.ErrExperienceRejected
	}
	return f.existing, nil
}

func (f *fakeExperiences) Create(_ context.Context, d models.ExperienceDraft) (*models.Experience, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = append(f.created, d)
	return &models.Experience{ID: "e-new", Title: d.Title, Content: d.Content}, nil
}

func (f *fakeExperiences) Update(_ context.Context, id string, d models.ExperienceDraft) (*models.Experience, error) {
	if f.updated == nil {
		f.updated = map[string]models.ExperienceDraft{}
	}
	f.updated[id] = d
	return &models.Experience{ID: id, Title: d.Title, Content: d.Content}, nil
}

func (f *fakeExperiences) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProfile struct {
	profile *models.UserProfile
	err     error
	calls   int
}

func (f *fakeProfile) Fetch(context.Context) (*models.UserProfile, error) {
	f.calls++
	return f.profile, f.err
}

type fakeContact struct {
	sent []models.ContactMessage
	ack  string
	err  error
}

func (f *fakeContact) Send(_ context.Context, msg models.ContactMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return f.ack, nil
}

type testApp struct {
	*App
	sess        *fakeSession
	auth        *fakeAuth
	experiences *fakeExperiences
	profile     *fakeProfile
	contact     *fakeContact
	buf         *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	st := &fakeSession{}
	ta := &testApp{
		sess:        st,
		auth:        &fakeAuth{session: st},
		experiences: &fakeExperiences{},
		profile:     &fakeProfile{},
		contact:     &fakeContact{},
		buf:         &bytes.Buffer{},
	}
	log := logging.Discard()
	ta.App = &App{
		logger:            log,
		session:           st,
		guard:             guard.New(st, log, ViewProfile, ViewWrite),
		authService:       ta.auth,
		experienceService: ta.experiences,
		profileService:    ta.profile,
		contactService:    ta.contact,
		reader:            bufio.NewReader(strings.NewReader("")),
		out:               ta.buf,
	}
	return ta
}

// stubText makes getSimpleText return answers in order, then "".
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", nil
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPasswords makes getPassword return passwords in order.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return []byte{}, nil
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// stubMultiline makes getMultiline return answers in order, then "".
func stubMultiline(t *testing.T, answers ...string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", nil
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getMultiline = orig })
}
