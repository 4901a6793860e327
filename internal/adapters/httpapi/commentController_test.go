package httpapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentEntity "yatube/internal/core/comment"
)

func TestAddComment(t *testing.T) {
	app := newTestApp(t)
	author := app.user("leo")
	app.user("reader")
	id := app.post(author.ID, "", "post with comments")
	detail := "/posts/" + id + "/"
	cookie := app.session("reader")

	w := app.postForm(detail+"comment/", url.Values{"text": {"Nice post"}}, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detail, w.Header().Get("Location"))

	body := app.get(detail, nil).Body.String()
	assert.Contains(t, body, "Nice post")
	assert.Contains(t, body, "/profile/reader/")
}

func TestAddComment_InvalidIsDropped(t *testing.T) {
	app := newTestApp(t)
	author := app.user("leo")
	id := app.post(author.ID, "", "post")
	detail := "/posts/" + id + "/"
	cookie := app.session("leo")

	w := app.postForm(detail+"comment/", url.Values{"text": {"  "}}, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detail, w.Header().Get("Location"))

	w = app.get(detail+"comment/", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, detail, w.Header().Get("Location"))

	assert.Zero(t, app.count(&commentEntity.Comment{}))
}

func TestAddComment_UnknownPost(t *testing.T) {
	app := newTestApp(t)
	app.user("leo")
	cookie := app.session("leo")

	for _, id := range []string{"00000000-0000-0000-0000-000000000000", "not-a-uuid"} {
		for _, text := range []string{"hello", ""} {
			w := app.postForm("/posts/"+id+"/comment/", url.Values{"text": {text}}, cookie)
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %q", id, text)
			assert.Contains(t, w.Body.String(), "Custom 404")
		}
	}
	assert.Zero(t, app.count(&commentEntity.Comment{}))
}
