package httpapi

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"
)

const (
	tplIndex     = "posts/index.html"
	tplGroupList = "posts/group_list.html"
	tplProfile   = "posts/profile.html"
	tplDetail    = "posts/post_detail.html"
	tplPostForm  = "posts/create_or_update_post.html"
	tplFollow    = "posts/follow.html"
	tplLogin     = "users/login.html"
	tplSignup    = "users/signup.html"
	tplLoggedOut = "users/logged_out.html"
	tplAuthor    = "about/author.html"
	tplTech      = "about/tech.html"
	tplNotFound  = "core/404.html"
	tplError     = "core/500.html"
)

var pages = []string{
	tplIndex, tplGroupList, tplProfile, tplDetail, tplPostForm, tplFollow,
	tplLogin, tplSignup, tplLoggedOut, tplAuthor, tplTech, tplNotFound, tplError,
}

// Renderer executes page templates into memory so a page can be cached
// before it is written.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the layout and includes
// found under the "templates" directory of fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2 Jan 2006 15:04") },
		"media": func(name string) string {
			return "/media/" + strings.TrimPrefix(name, "/")
		},
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(path.Base(name)).Funcs(funcs).ParseFS(fsys,
			"templates/layout.html",
			"templates/includes/*.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the "base" layout of page name with data.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %s", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
