package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processLatestReq(c *gin.Context) (latestReq, error) {
	var req latestReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processRecentReq(c *gin.Context) (recentReq, error) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
