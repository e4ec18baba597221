package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the email endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/latest", h.Latest)
	rg.GET("/recent", h.Recent)
}
