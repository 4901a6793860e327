package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	postEntity "yatube/internal/core/post"
)

type CommentController struct {
	v  *view
	cc CommentUseCase
}

func NewCommentController(v *view, cc CommentUseCase) *CommentController {
	return &CommentController{v: v, cc: cc}
}

// AddComment ends on the post page; an invalid comment is dropped. An
// unknown post answers 404.
func (ctl *CommentController) AddComment(c *gin.Context) {
	postID := c.Param("id")
	detailURL := "/posts/" + postID + "/"

	if c.Request.Method == http.MethodPost {
		var form CommentForm
		if err := c.ShouldBind(&form); err != nil {
			ctl.v.logger.Debug("Comment form invalid", zap.String("postID", postID), zap.Error(err))
		}
		user := middleware.CurrentUser(c)
		_, err := ctl.cc.AddComment(c.Request.Context(), postID, user.ID, form.Text)
		switch {
		case errors.Is(err, postEntity.ErrNotFound):
			ctl.v.notFound(c)
			return
		case err != nil:
			ctl.v.logger.Debug("Comment dropped", zap.String("postID", postID), zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, detailURL)
}
