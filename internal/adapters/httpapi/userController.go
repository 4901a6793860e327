package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"yatube/internal/adapters/httpapi/middleware"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"
)

type UserController struct {
	v        *view
	uc       UserUseCase
	lifetime time.Duration
}

func NewUserController(v *view, uc UserUseCase, lifetime time.Duration) *UserController {
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &UserController{v: v, uc: uc, lifetime: lifetime}
}

func (ctl *UserController) Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		ctl.v.html(c, http.StatusOK, tplSignup, gin.H{"Form": SignupForm{}})
		return
	}

	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		ctl.v.html(c, http.StatusOK, tplSignup, gin.H{"Form": form, "Errors": bindErrors(err)})
		return
	}

	_, err := ctl.uc.RegisterUser(c.Request.Context(), form.FirstName, form.LastName, form.Username, form.Email, form.Password1)
	if errors.Is(err, userEntity.ErrUsernameTaken) {
		ctl.v.html(c, http.StatusOK, tplSignup, gin.H{
			"Form":   form,
			"Errors": FormErrors{"username": "A user with that username already exists."},
		})
		return
	}
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	res, err := ctl.uc.LoginUser(c.Request.Context(), form.Username, form.Password1)
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}
	ctl.startSession(c, res)
	c.Redirect(http.StatusFound, "/")
}

func (ctl *UserController) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		ctl.v.html(c, http.StatusOK, tplLogin, gin.H{
			"Form": LoginForm{},
			"Next": safeNext(c.Query("next")),
		})
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		ctl.v.html(c, http.StatusOK, tplLogin, gin.H{"Form": form, "Next": safeNext(form.Next), "Errors": bindErrors(err)})
		return
	}

	res, err := ctl.uc.LoginUser(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, userEntity.ErrInvalidCredentials) {
		ctl.v.html(c, http.StatusOK, tplLogin, gin.H{
			"Form":   form,
			"Next":   safeNext(form.Next),
			"Errors": FormErrors{"form": "Please enter a correct username and password."},
		})
		return
	}
	if err != nil {
		ctl.v.serverError(c, err)
		return
	}

	ctl.startSession(c, res)
	next := safeNext(form.Next)
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (ctl *UserController) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	ctl.v.html(c, http.StatusOK, tplLoggedOut, gin.H{"User": (*userPort.UserDTO)(nil)})
}

func (ctl *UserController) startSession(c *gin.Context, res *userPort.LoginResponse) {
	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(ctl.lifetime.Seconds())
	}
	middleware.SetSession(c, res.Token, maxAge)
}

// safeNext keeps only local redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
