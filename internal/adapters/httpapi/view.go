package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
)

const contentTypeHTML = "text/html; charset=utf-8"

// view renders pages with the layout data every template expects.
type view struct {
	renderer *Renderer
	logger   *zap.Logger
}

// page renders name for the current request user.
func (v *view) page(c *gin.Context, name string, data gin.H) ([]byte, error) {
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.CurrentUser(c)
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = FormErrors{}
	}
	return v.renderer.Render(name, data)
}

func (v *view) html(c *gin.Context, status int, name string, data gin.H) {
	body, err := v.page(c, name, data)
	if err != nil {
		v.serverError(c, err)
		return
	}
	c.Data(status, contentTypeHTML, body)
}

func (v *view) notFound(c *gin.Context) {
	v.html(c, http.StatusNotFound, tplNotFound, gin.H{"Path": c.Request.URL.Path})
}

// serverError logs err and answers with the 500 page. It never recurses
// into itself if the error page cannot be rendered.
func (v *view) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	v.logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))

	body, rerr := v.renderer.Render(tplError, gin.H{"User": nil, "Errors": FormErrors{}})
	if rerr != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusInternalServerError, contentTypeHTML, body)
}
