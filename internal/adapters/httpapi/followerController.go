package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/internal/adapters/httpapi/middleware"
	userEntity "yatube/internal/core/user"
)

type FollowerController struct {
	v     *view
	users UserUseCase
	fc    FollowerUseCase
}

func NewFollowerController(v *view, users UserUseCase, fc FollowerUseCase) *FollowerController {
	return &FollowerController{v: v, users: users, fc: fc}
}

func (ctl *FollowerController) FollowUser(c *gin.Context) {
	ctl.apply(c, ctl.fc.FollowUser)
}

func (ctl *FollowerController) UnfollowUser(c *gin.Context) {
	ctl.apply(c, ctl.fc.UnfollowUser)
}

// apply runs op for (current user, profile author) and returns to the
// author's profile. Self-follows and repeats are no-ops in the service.
func (ctl *FollowerController) apply(c *gin.Context, op func(ctx context.Context, userID, authorID string) error) {
	author, err := ctl.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if errors.Is(err, userEntity.ErrNotFound) {
		ctl.v.notFound(c)
		return
	}
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	if err := op(c.Request.Context(), user.ID, author.ID); err != nil {
		ctl.v.logger.Error("Follow change failed",
			zap.String("userID", user.ID), zap.String("authorID", author.ID), zap.Error(err))
		ctl.v.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
