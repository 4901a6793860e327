package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StaticController struct{ v *view }

func NewStaticController(v *view) *StaticController { return &StaticController{v: v} }

func (ctl *StaticController) Author(c *gin.Context) {
	ctl.v.html(c, http.StatusOK, tplAuthor, gin.H{})
}

func (ctl *StaticController) Tech(c *gin.Context) {
	ctl.v.html(c, http.StatusOK, tplTech, gin.H{})
}

func (ctl *StaticController) NotFound(c *gin.Context) {
	ctl.v.notFound(c)
}
