package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

// fakeBackend counts requests and delegates to handler.
type fakeBackend struct {
	srv   *httptest.Server
	calls atomic.Int32
}

func newFakeBackend(t *testing.T, handler http.HandlerFunc) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(fb.srv.Close)
	return fb
}

func newTestClient(fb *fakeBackend, token string) *HTTPClient {
	return NewHTTPClient(fb.srv.URL+"/api/", 5*time.Second, staticToken(token), logging.Discard())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestLogin_SendsCredentialsAndDecodesEnvelope(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.LoginRequest{Email: "a@b.com", Password: "secret1"}, req)

		writeJSON(w, http.StatusOK, `{"success":true,"data":{"name":"Mario","surname":"Rossi","avatarColor":"Blue","token":"abc123"}}`)
	})

	env, err := newTestClient(fb, "").Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Equal(t, "abc123", env.Data.Token)
	assert.Equal(t, models.AvatarBlue, env.Data.AvatarColor)
}

func TestRegister_ConflictCarriesBackendCodeAndDetails(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"error":{"code":"EMAIL_TAKEN","details":"Email already registered"}}`)
	})

	_, err := newTestClient(fb, "").Register(context.Background(), models.RegisterRequest{Name: "Mario", Email: "a@b.com", Age: 30, Password: "secret1"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "EMAIL_TAKEN", apiErr.Code)
	assert.Equal(t, "Email already registered", apiErr.Details)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestFailedResponse_WithoutErrorBodyFallsBackToGenericCode(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := newTestClient(fb, "").ListExperiences(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, GenericErrorCode, apiErr.Code)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Details)
}

func TestFailedResponse_CodeWithoutDetails(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":{"code":"TOKEN_EXPIRED"}}`)
	})

	_, err := newTestClient(fb, "tok").GetProfile(context.Background(), "u1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "TOKEN_EXPIRED", apiErr.Code)
	assert.Equal(t, http.StatusText(http.StatusUnauthorized), apiErr.Details)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticatedCalls_WithoutToken_IssueNoRequests(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	c := newTestClient(fb, "")
	ctx := context.Background()

	_, err := c.GetProfile(ctx, "u1")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.GetExperience(ctx, "e1")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.CreateExperience(ctx, models.ExperienceDraft{Title: "t"})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.UpdateExperience(ctx, "e1", models.ExperienceDraft{Title: "t"})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	require.ErrorIs(t, c.DeleteExperience(ctx, "e1"), ErrNotAuthenticated)

	assert.Zero(t, fb.calls.Load())
}

func TestGetProfile_EmptyUserID_IsNotAuthenticated(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request")
	})

	_, err := newTestClient(fb, "tok").GetProfile(context.Background(), "")
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, fb.calls.Load())
}

func TestGetProfile_AttachesBearerToken(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/u%201", r.URL.EscapedPath())
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"_id":"u 1","name":"Mario","surname":"Rossi","email":"a@b.com","dateOfBirth":"1990-01-01"}}`)
	})

	env, err := newTestClient(fb, "abc123").GetProfile(context.Background(), "u 1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", env.Data.Email)
}

func TestExperienceMutations_UseExpectedRoutes(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"_id":"e1","title":"t"}}`)
	})
	c := newTestClient(fb, "tok")
	ctx := context.Background()

	_, err := c.CreateExperience(ctx, models.ExperienceDraft{Title: "t"})
	require.NoError(t, err)
	_, err = c.GetExperience(ctx, "e1")
	require.NoError(t, err)
	_, err = c.UpdateExperience(ctx, "e1", models.ExperienceDraft{Title: "t2"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteExperience(ctx, "e1"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /api/experiences",
		"GET /api/experiences/e1",
		"PUT /api/experiences/e1",
		"DELETE /api/experiences/e1",
	}, seen)
}

func TestListQuestions_DecodesData(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/question", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"_id":"q1","isActive":true,"text":"Why?"}]}`)
	})

	env, err := newTestClient(fb, "").ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, *env.Data, 1)
	assert.Equal(t, "Why?", (*env.Data)[0].Text)
}

func TestEnvelope_UnsuccessfulWith2xxIsReturnedAsIs(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false,"error":{"code":"INVALID_CREDENTIALS","details":"Wrong password"}}`)
	})

	env, err := newTestClient(fb, "").Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestEnvelope_BarePayloadIsWrapped(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"token":"t1","user":{"name":"Mario","surname":"Rossi","avatarColor":"Green"}}`)
	})

	env, err := newTestClient(fb, "").Register(context.Background(), models.RegisterRequest{Name: "Mario"})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "t1", env.Data.Token)
	assert.Equal(t, models.AvatarGreen, env.Data.User.AvatarColor)
}

func TestSendContact_MessageOnlyEnvelope(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Message sent"}`)
	})

	env, err := newTestClient(fb, "").SendContact(context.Background(), models.ContactMessage{Name: "M", Email: "a@b.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "Message sent", env.Message)
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	c := newTestClient(fb, "")
	fb.srv.Close()

	_, err := c.ListExperiences(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestWakeUp_NeverSurfacesErrors(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/wakeUp", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(fb, "")

	require.NotPanics(t, func() { c.WakeUp(context.Background()) })
	assert.EqualValues(t, 1, fb.calls.Load())

	fb.srv.Close()
	require.NotPanics(t, func() { c.WakeUp(context.Background()) })
}

func TestClient_DoesNotRetry(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newTestClient(fb, "").ListQuestions(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 1, fb.calls.Load())
}
