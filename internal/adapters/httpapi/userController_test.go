package httpapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/adapters/httpapi/middleware"
)

func sessionCookie(w *http.Response) *http.Cookie {
	for _, c := range w.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestSignupLogsIn(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/auth/signup/", url.Values{
		"first_name": {"Leo"},
		"last_name":  {"Tolstoy"},
		"username":   {"leo"},
		"email":      {"leo@example.com"},
		"password1":  {"war-and-peace"},
		"password2":  {"war-and-peace"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Equal(t, http.StatusOK, app.get("/create/", cookie).Code)
}

func TestSignupErrors(t *testing.T) {
	app := newTestApp(t)
	app.user("leo")

	w := app.postForm("/auth/signup/", url.Values{
		"username":  {"leo"},
		"password1": {"war-and-peace"},
		"password2": {"war-and-peace"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A user with that username already exists.")

	w = app.postForm("/auth/signup/", url.Values{
		"username":  {"anna"},
		"password1": {"war-and-peace"},
		"password2": {"peace-and-war"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, sessionCookie(w.Result()))
}

func TestLoginRedirectsToNext(t *testing.T) {
	app := newTestApp(t)
	app.user("leo")

	w := app.get("/auth/login/?next=%2Fcreate%2F", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="/create/"`)

	w = app.postForm("/auth/login/", url.Values{
		"username": {"leo"},
		"password": {"password-leo"},
		"next":     {"/create/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/create/", w.Header().Get("Location"))
	require.NotNil(t, sessionCookie(w.Result()))

	w = app.postForm("/auth/login/", url.Values{
		"username": {"leo"},
		"password": {"password-leo"},
		"next":     {"//evil.example.com/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.user("leo")

	w := app.postForm("/auth/login/", url.Values{"username": {"leo"}, "password": {"nope"}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a correct username and password.")
	assert.Nil(t, sessionCookie(w.Result()))
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.user("leo")

	w := app.get("/auth/logout/", app.session("leo"))
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
	assert.Contains(t, w.Body.String(), "/auth/login/")
}

func TestStaticPages(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/about/author/", "/about/tech/"} {
		assert.Equal(t, http.StatusOK, app.get(path, nil).Code, path)
	}
}
