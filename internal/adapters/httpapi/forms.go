package httpapi

import (
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// EmptyGroupLabel is the first option of the group selector.
const EmptyGroupLabel = "No group selected"

const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
)

type PostForm struct {
	Text       string `form:"text" binding:"required,notblank"`
	Group      string `form:"group"`
	ClearImage string `form:"image-clear"`
}

type CommentForm struct {
	Text string `form:"text" binding:"required,notblank"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

type SignupForm struct {
	FirstName string `form:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" binding:"max=150"`
	Username  string `form:"username" binding:"required,max=150,username"`
	Email     string `form:"email" binding:"omitempty,email"`
	Password1 string `form:"password1" binding:"required,min=8"`
	Password2 string `form:"password2" binding:"required,eqfield=Password1"`
}

// FormErrors maps a form field name to its message. The key "form" holds
// errors that do not belong to a single field.
type FormErrors map[string]string

var registerOnce sync.Once

// RegisterValidators adds the custom tags used by the forms to gin's
// validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			for _, r := range fl.Field().String() {
				if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("@.+-_", r)) {
					return false
				}
			}
			return true
		})
	})
}

var fieldNames = map[string]string{
	"Text":      "text",
	"Group":     "group",
	"Username":  "username",
	"Password":  "password",
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Email":     "email",
	"Password1": "password1",
	"Password2": "password2",
}

// bindErrors turns a binding error into per-field messages.
func bindErrors(err error) FormErrors {
	errs := FormErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = "The submitted form could not be read."
		return errs
	}
	for _, fe := range verrs {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		if _, seen := errs[name]; seen {
			continue
		}
		errs[name] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return msgRequired
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. It may contain only letters, numbers, and @/./+/-/_ characters."
	case "eqfield":
		return "The two password fields didn't match."
	case "min":
		return "This value is too short. It must contain at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	}
	return "Enter a valid value."
}
