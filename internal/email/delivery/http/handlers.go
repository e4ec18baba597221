package http

import (
	"github.com/gin-gonic/gin"

	"rag-assistant/pkg/response"
)

// Latest godoc
// @Summary     Latest email from a sender
// @Description Looks up the newest inbox message from the sender and returns a short answer with a body preview.
// @Tags        Email
// @Accept      json
// @Produce     json
// @Param       sender query string true "Sender name or address"
// @Success     200 {object} latestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Mail not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/email/latest [GET]
func (h *handler) Latest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLatestReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Latest(ctx, req.Sender)
	if err != nil {
		h.l.Errorf(ctx, "uc.Latest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLatestResp(out))
}

// Recent godoc
// @Summary     Recent emails
// @Description Lists the newest inbox messages.
// @Tags        Email
// @Accept      json
// @Produce     json
// @Param       limit query int false "Number of messages (default: 50, max: 100)"
// @Success     200 {object} recentResp
// @Failure     503 {object} response.Resp "Mail not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/email/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	emails, err := h.uc.Recent(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecentResp(emails))
}
