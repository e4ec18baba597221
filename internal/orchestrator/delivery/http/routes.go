package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the prompt endpoint. Extra handlers (rate limiting)
// run before the handler.
func RegisterRoutes(r gin.IRoutes, h Handler, mws ...gin.HandlerFunc) {
	r.POST("/prompt", append(mws, h.Prompt)...)
}
